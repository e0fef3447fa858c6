package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/SscSPs/hord_manager/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// conversionHandler serves the read-only conversion engine endpoints.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	convert := rg.Group("/convert")
	{
		convert.GET("", h.convert)
		convert.GET("/to-usd", h.toUSD)
		convert.GET("/from-usd", h.fromUSD)
		convert.GET("/metal", h.commodityValue(domain.Metal))
		convert.GET("/material", h.commodityValue(domain.Material))
		convert.GET("/gemstone", h.gemstoneValue)
	}
	rg.GET("/rates", h.rates)
	rg.POST("/display", h.display)
}

// convert godoc
// @Summary Convert between currencies
// @Description Converts an amount from one currency to another, bridging through USD.
// @Tags conversion
// @Produce json
// @Param amount query string true "Amount in the source currency"
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Param period query int false "Price period to resolve metal pegs against"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency or missing price"
// @Failure 422 {object} ErrorResponse "Unresolvable peg chain"
// @Failure 500 {object} ErrorResponse
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	amount, ok := parseAmount(c, "amount", q.Amount)
	if !ok {
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), amount, q.From, q.To, q.Period)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("from", q.From), slog.String("to", q.To)), err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ConversionResponse{Amount: amount, From: q.From, To: q.To, Result: result, Period: q.Period})
}

// toUSD godoc
// @Summary Convert a currency amount to USD
// @Tags conversion
// @Produce json
// @Param amount query string true "Amount in the currency"
// @Param currency query string true "Currency name"
// @Param period query int false "Price period"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /convert/to-usd [get]
func (h *conversionHandler) toUSD(c *gin.Context) {
	h.usdLeg(c, true)
}

// fromUSD godoc
// @Summary Convert a USD amount into a currency
// @Tags conversion
// @Produce json
// @Param amount query string true "Amount in USD"
// @Param currency query string true "Currency name"
// @Param period query int false "Price period"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /convert/from-usd [get]
func (h *conversionHandler) fromUSD(c *gin.Context) {
	h.usdLeg(c, false)
}

func (h *conversionHandler) usdLeg(c *gin.Context, toUSD bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.USDLegQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	amount, ok := parseAmount(c, "amount", q.Amount)
	if !ok {
		return
	}

	var (
		result   decimal.Decimal
		err      error
		from, to = q.Currency, domain.BaseCurrencyName
	)
	if toUSD {
		result, err = h.conversionService.CurrencyToUSD(c.Request.Context(), amount, q.Currency, q.Period)
	} else {
		from, to = domain.BaseCurrencyName, q.Currency
		result, err = h.conversionService.USDToCurrency(c.Request.Context(), amount, q.Currency, q.Period)
	}
	if err != nil {
		handleServiceError(c, logger.With(slog.String("currency", q.Currency)), err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ConversionResponse{Amount: amount, From: from, To: to, Result: result, Period: q.Period})
}

// commodityValue godoc
// @Summary Value a quantity of metal or material in USD
// @Tags conversion
// @Produce json
// @Param name query string true "Metal or material name"
// @Param amount query string true "Quantity"
// @Param unit query string true "Unit of the quantity (oz, lb, kg, ...)"
// @Param period query int false "Price period"
// @Success 200 {object} dto.CommodityValueResponse
// @Failure 400 {object} ErrorResponse "Bad input or unsupported unit"
// @Failure 404 {object} ErrorResponse "No price recorded"
// @Failure 422 {object} ErrorResponse
// @Router /convert/metal [get]
// @Router /convert/material [get]
func (h *conversionHandler) commodityValue(kind domain.CommodityKind) gin.HandlerFunc {
	valueOf := h.conversionService.MetalToUSD
	if kind == domain.Material {
		valueOf = h.conversionService.MaterialToUSD
	}

	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		var q dto.CommodityValueQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
			return
		}
		amount, ok := parseAmount(c, "amount", q.Amount)
		if !ok {
			return
		}

		usd, err := valueOf(c.Request.Context(), q.Name, amount, q.Unit, q.Period)
		if err != nil {
			handleServiceError(c, logger.With(slog.String("kind", string(kind)), slog.String("name", q.Name)), err, "Failed to value "+strings.ToLower(string(kind)))
			return
		}
		c.JSON(http.StatusOK, dto.CommodityValueResponse{Name: q.Name, Amount: amount, Unit: q.Unit, USDValue: usd, Period: q.Period})
	}
}

// gemstoneValue godoc
// @Summary Value a gemstone in USD
// @Tags conversion
// @Produce json
// @Param name query string true "Gemstone name"
// @Param carats query string true "Weight in carats"
// @Success 200 {object} dto.CommodityValueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Gemstone has no usable value"
// @Router /convert/gemstone [get]
func (h *conversionHandler) gemstoneValue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.GemstoneValueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	carats, ok := parseAmount(c, "carats", q.Carats)
	if !ok {
		return
	}

	usd, err := h.conversionService.GemstoneToUSD(c.Request.Context(), q.Name, carats)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("gemstone", q.Name)), err, "Failed to value gemstone")
		return
	}
	c.JSON(http.StatusOK, dto.CommodityValueResponse{Name: q.Name, Amount: carats, Unit: "carat", USDValue: usd})
}

// rates godoc
// @Summary Exchange rate table
// @Description Units of every registered currency per one unit of the base currency.
// @Tags conversion
// @Produce json
// @Param base query string false "Base currency" default(USD)
// @Param period query int false "Price period"
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown base currency"
// @Failure 422 {object} ErrorResponse
// @Router /rates [get]
func (h *conversionHandler) rates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.RatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	table, err := h.conversionService.Rates(c.Request.Context(), q.Base, q.Period)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("base", q.Base)), err, "Failed to build rate table")
		return
	}
	c.JSON(http.StatusOK, dto.ToRatesResponse(table))
}

// display godoc
// @Summary Project a USD value into several currencies
// @Description Without targetCurrencies the value is shown in USD and every registered currency. Currencies that cannot be resolved are omitted.
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body dto.DisplayRequest true "USD value and targets"
// @Success 200 {object} dto.DisplayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /display [post]
func (h *conversionHandler) display(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.conversionService.Display(c.Request.Context(), req.USDValue, req.TargetCurrencies, req.Period)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to display value")
		return
	}
	c.JSON(http.StatusOK, dto.ToDisplayResponse(view))
}
