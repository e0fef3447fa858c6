package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/SscSPs/hord_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// login godoc
// @Summary GM login
// @Description Exchanges the GM password for a signed JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "GM password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if statusForError(err) == http.StatusUnauthorized {
			logger.Warn("GM login rejected", slog.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
			return
		}
		handleServiceError(c, logger, err, "Failed to generate token")
		return
	}

	logger.Info("GM logged in")
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
