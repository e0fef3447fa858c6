package services

import (
	"context"
	"time"
)

// AuthSvcFacade authenticates the game master.
type AuthSvcFacade interface {
	// Login checks the GM password and returns a signed token with its expiry.
	// A wrong password yields apperrors.ErrUnauthorized.
	Login(ctx context.Context, password string) (string, time.Time, error)
}
