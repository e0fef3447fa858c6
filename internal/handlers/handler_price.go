package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/SscSPs/hord_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceHandler serves the price history of one commodity kind.
type priceHandler struct {
	kind         domain.CommodityKind
	priceService portssvc.PriceSvcFacade
}

func newPriceHandler(kind domain.CommodityKind, ps portssvc.PriceSvcFacade) *priceHandler {
	return &priceHandler{kind: kind, priceService: ps}
}

// registerPriceRoutes mounts identical price routes under /metals and /materials.
func registerPriceRoutes(public, gm *gin.RouterGroup, priceService portssvc.PriceSvcFacade) {
	for path, kind := range map[string]domain.CommodityKind{
		"/metals":    domain.Metal,
		"/materials": domain.Material,
	} {
		h := newPriceHandler(kind, priceService)

		prices := public.Group(path + "/prices")
		{
			prices.GET("/current", h.currentPrices)
			prices.GET("/latest", h.latestPrice)
			prices.GET("/history", h.priceHistory)
		}
		gm.POST(path+"/prices", h.recordPrice)
	}
}

// recordPrice godoc
// @Summary Record a metal or material price
// @Description Appends an immutable price point. The newest period wins when prices are resolved.
// @Tags prices
// @Accept json
// @Produce json
// @Param price body dto.RecordPriceRequest true "Price point"
// @Success 201 {object} dto.PricePointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metals/prices [post]
// @Router /materials/prices [post]
func (h *priceHandler) recordPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
	var req dto.RecordPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	point, err := h.priceService.RecordPrice(c.Request.Context(), h.kind, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to record price")
		return
	}

	logger.Info("Price recorded", slog.String("name", point.CommodityName), slog.Int("period", point.Period))
	c.JSON(http.StatusCreated, dto.ToPricePointResponse(point))
}

// latestPrice godoc
// @Summary Current price of a metal or material
// @Tags prices
// @Produce json
// @Param name query string true "Commodity name"
// @Param period query int false "Restrict to one period"
// @Success 200 {object} dto.PricePointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /metals/prices/latest [get]
// @Router /materials/prices/latest [get]
func (h *priceHandler) latestPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
	var q dto.LatestPriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	point, err := h.priceService.GetLatestPrice(c.Request.Context(), h.kind, q.Name, q.Period)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve price")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricePointResponse(point))
}

// currentPrices godoc
// @Summary Current prices of all metals or materials
// @Description One point per commodity, the newest period first, then the newest recording.
// @Tags prices
// @Produce json
// @Param period query int false "Restrict to one period"
// @Success 200 {array} dto.PricePointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metals/prices/current [get]
// @Router /materials/prices/current [get]
func (h *priceHandler) currentPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
	var q dto.CurrentPricesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	points, err := h.priceService.ListLatestPrices(c.Request.Context(), h.kind, q.Period)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list current prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricePointResponses(points))
}

// priceHistory godoc
// @Summary Price history of a metal or material
// @Description Newest first, paginated with an opaque nextToken.
// @Tags prices
// @Produce json
// @Param name query string false "Commodity name"
// @Param period query int false "Period"
// @Param limit query int false "Page size" default(100) minimum(1) maximum(500)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPriceHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metals/prices/history [get]
// @Router /materials/prices/history [get]
func (h *priceHandler) priceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
	var params dto.ListPriceHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	points, nextToken, err := h.priceService.ListPriceHistory(c.Request.Context(), h.kind, params)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list price history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceHistoryResponse(points, nextToken))
}
