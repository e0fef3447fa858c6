package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryLimiter(t *testing.T) {
	l, err := NewMemoryLimiter("5-M")
	require.NoError(t, err)
	assert.Equal(t, int64(5), l.Rate.Limit)

	_, err = NewMemoryLimiter("five-per-minute")
	assert.Error(t, err)
}

func TestMustMemoryLimiter(t *testing.T) {
	assert.NotPanics(t, func() { MustMemoryLimiter("5-M") })
	assert.Panics(t, func() { MustMemoryLimiter("5-fortnight") })
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(MustMemoryLimiter("2-M")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
