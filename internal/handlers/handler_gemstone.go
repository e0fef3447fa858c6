package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/SscSPs/hord_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

type gemstoneHandler struct {
	gemstoneService portssvc.GemstoneSvcFacade
}

func newGemstoneHandler(gs portssvc.GemstoneSvcFacade) *gemstoneHandler {
	return &gemstoneHandler{gemstoneService: gs}
}

func registerGemstoneRoutes(public, gm *gin.RouterGroup, gemstoneService portssvc.GemstoneSvcFacade) {
	h := newGemstoneHandler(gemstoneService)

	public.GET("/gemstones", h.listGemstones)
	public.GET("/gemstones/:name", h.getGemstone)
	gm.PUT("/gemstones/:name", h.upsertGemstone)
	gm.DELETE("/gemstones/:name", h.deleteGemstone)
}

// upsertGemstone godoc
// @Summary Set the value of a gemstone
// @Description Creates the gemstone or replaces its USD value per carat.
// @Tags gemstones
// @Accept json
// @Produce json
// @Param name path string true "Gemstone name"
// @Param gemstone body dto.UpsertGemstoneRequest true "Value per carat"
// @Success 200 {object} dto.GemstoneResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /gemstones/{name} [put]
func (h *gemstoneHandler) upsertGemstone(c *gin.Context) {
	name := c.Param("name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("gemstone", name))

	var req dto.UpsertGemstoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := middleware.GetGMSubjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	gem, err := h.gemstoneService.UpsertGemstone(c.Request.Context(), name, req, actor)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to save gemstone")
		return
	}
	logger.Info("Gemstone saved")
	c.JSON(http.StatusOK, dto.ToGemstoneResponse(gem))
}

// getGemstone godoc
// @Summary Get a gemstone
// @Tags gemstones
// @Produce json
// @Param name path string true "Gemstone name"
// @Success 200 {object} dto.GemstoneResponse
// @Failure 404 {object} ErrorResponse
// @Router /gemstones/{name} [get]
func (h *gemstoneHandler) getGemstone(c *gin.Context) {
	name := c.Param("name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("gemstone", name))

	gem, err := h.gemstoneService.GetGemstone(c.Request.Context(), name)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve gemstone")
		return
	}
	c.JSON(http.StatusOK, dto.ToGemstoneResponse(gem))
}

// listGemstones godoc
// @Summary List gemstones
// @Tags gemstones
// @Produce json
// @Success 200 {array} dto.GemstoneResponse
// @Failure 500 {object} ErrorResponse
// @Router /gemstones [get]
func (h *gemstoneHandler) listGemstones(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	gems, err := h.gemstoneService.ListGemstones(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list gemstones")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGemstoneResponse(gems))
}

// deleteGemstone godoc
// @Summary Delete a gemstone
// @Tags gemstones
// @Param name path string true "Gemstone name"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /gemstones/{name} [delete]
func (h *gemstoneHandler) deleteGemstone(c *gin.Context) {
	name := c.Param("name")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("gemstone", name))

	if err := h.gemstoneService.DeleteGemstone(c.Request.Context(), name); err != nil {
		handleServiceError(c, logger, err, "Failed to delete gemstone")
		return
	}
	logger.Info("Gemstone deleted")
	c.Status(http.StatusNoContent)
}
