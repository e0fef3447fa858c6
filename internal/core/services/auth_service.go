package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/platform/config"
	"github.com/SscSPs/hord_manager/internal/utils"
)

// GMSubject is the token subject of the game master.
const GMSubject = "gm"

// authService implements AuthSvcFacade for the single GM login.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

// Login checks password against the configured GM hash and issues an access token.
func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if s.cfg.GMPasswordHash == "" {
		s.LogWarn(ctx, "GM login attempted but GM_PASSWORD_HASH is not set")
		return "", time.Time{}, fmt.Errorf("%w: GM login is not configured", apperrors.ErrUnauthorized)
	}
	if err := utils.VerifyPassword(s.cfg.GMPasswordHash, password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			s.LogError(ctx, err, "GM password hash is unusable")
		}
		return "", time.Time{}, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(GMSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	s.LogInfo(ctx, "GM logged in")
	return token, expiresAt, nil
}
