package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps a service error onto an HTTP status code.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnsupportedUnit):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrInvalidConfiguration),
		errors.Is(err, apperrors.ErrUnsupportedPeg),
		errors.Is(err, apperrors.ErrCyclicPeg):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes the JSON error for err. Internal errors are logged and
// replaced by fallbackMsg so driver details do not leak to clients.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallbackMsg})
		return
	}
	logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseAmount parses a decimal query parameter, writing a 400 when it is malformed.
func parseAmount(c *gin.Context, field, raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + field + ": " + raw})
		return decimal.Zero, false
	}
	return amount, true
}
