package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/SscSPs/hord_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService   portssvc.CurrencySvcFacade
	conversionService portssvc.ConversionSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, conv portssvc.ConversionSvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService:   cs,
		conversionService: conv,
	}
}

// registerCurrencyRoutes registers the public currency reads and the GM-only writes.
func registerCurrencyRoutes(public, gm *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, conversionService portssvc.ConversionSvcFacade) {
	h := newCurrencyHandler(currencyService, conversionService)

	currencies := public.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:name", h.getCurrency)
		currencies.GET("/:name/breakdown", h.breakdown)
	}

	gmCurrencies := gm.Group("/currencies")
	{
		gmCurrencies.POST("", h.createCurrency)
		gmCurrencies.PATCH("/:name", h.patchCurrency)
		gmCurrencies.DELETE("/:name", h.deleteCurrency)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Registers a currency with its peg and denominations. With upsert=true an existing currency is replaced.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   upsert query bool false "Replace an existing currency of the same name"
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Currency already exists"
// @Failure 500 {object} ErrorResponse "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	upsert := false
	if raw := c.Query("upsert"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "upsert must be a boolean"})
			return
		}
		upsert = parsed
	}

	actor, ok := middleware.GetGMSubjectFromContext(c)
	if !ok {
		logger.Error("GM subject not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("currency", req.Name), slog.Bool("upsert", upsert))
	logger.Info("Received request to create currency")

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req, upsert, actor)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create currency")
		return
	}

	logger.Info("Currency created successfully")
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// getCurrency godoc
// @Summary Get a currency by name
// @Description Retrieves a currency with its peg and denominations
// @Tags currencies
// @Produce  json
// @Param   name path string true "Currency name"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve currency"
// @Router /currencies/{name} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	name := c.Param("name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency", name))

	currency, err := h.currencyService.GetCurrency(c.Request.Context(), name)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every registered currency, USD first
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} ErrorResponse "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Debug("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// patchCurrency godoc
// @Summary Partially update a currency
// @Description Replaces peg fields and adds, updates or removes denominations in one transaction
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   name path string true "Currency name"
// @Param   patch body dto.PatchCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Currency or denomination not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{name} [patch]
func (h *currencyHandler) patchCurrency(c *gin.Context) {
	name := c.Param("name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency", name))

	var req dto.PatchCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PatchCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetGMSubjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.currencyService.PatchCurrency(c.Request.Context(), name, req, actor)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update currency")
		return
	}

	logger.Info("Currency updated successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency and its denominations. USD cannot be deleted.
// @Tags currencies
// @Param   name path string true "Currency name"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Attempt to delete USD"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{name} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	name := c.Param("name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency", name))

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), name); err != nil {
		handleServiceError(c, logger, err, "Failed to delete currency")
		return
	}

	logger.Info("Currency deleted")
	c.Status(http.StatusNoContent)
}

// breakdown godoc
// @Summary Denomination breakdown
// @Description Splits an amount of a currency into its denominations, largest first
// @Tags currencies
// @Produce  json
// @Param   name path string true "Currency name"
// @Param   amount query string true "Amount in the currency"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /currencies/{name}/breakdown [get]
func (h *currencyHandler) breakdown(c *gin.Context) {
	name := c.Param("name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency", name))

	var q dto.BreakdownQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	amount, ok := parseAmount(c, "amount", q.Amount)
	if !ok {
		return
	}

	b, err := h.conversionService.Breakdown(c.Request.Context(), amount, name)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to compute breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.ToBreakdownResponse(b))
}
