package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type for values this package stores in a request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	// gmSubjectKey holds the subject of the authenticated GM token.
	gmSubjectKey = contextKey("gmSubject")
)

// GetGMSubjectFromContext retrieves the authenticated GM subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetGMSubjectFromContext(c *gin.Context) (string, bool) {
	return GetGMSubjectFromCtx(c.Request.Context())
}

// GetGMSubjectFromCtx retrieves the authenticated GM subject from a request context.
func GetGMSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(gmSubjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
