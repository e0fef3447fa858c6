package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/handlers"
	"github.com/SscSPs/hord_manager/internal/platform/config"
	"github.com/SscSPs/hord_manager/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testIssuer    = "hord-test"
)

// HandlerTestSuite wires the real router to mocked services.
type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockConversion *MockConversionService
	mockCurrency   *MockCurrencyService
	mockPrice      *MockPriceService
	mockGemstone   *MockGemstoneService
	mockAuth       *MockAuthService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockConversion = new(MockConversionService)
	suite.mockCurrency = new(MockCurrencyService)
	suite.mockPrice = new(MockPriceService)
	suite.mockGemstone = new(MockGemstoneService)
	suite.mockAuth = new(MockAuthService)

	cfg := &config.Config{
		IsProduction: true,
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testIssuer,
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Conversion: suite.mockConversion,
		Currency:   suite.mockCurrency,
		Price:      suite.mockPrice,
		Gemstone:   suite.mockGemstone,
		Auth:       suite.mockAuth,
	})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockConversion.AssertExpectations(suite.T())
	suite.mockCurrency.AssertExpectations(suite.T())
	suite.mockPrice.AssertExpectations(suite.T())
	suite.mockGemstone.AssertExpectations(suite.T())
	suite.mockAuth.AssertExpectations(suite.T())
}

// gmToken creates a valid GM token for the test router.
func (suite *HandlerTestSuite) gmToken() string {
	token, _, err := utils.GenerateJWT("gm", testJWTSecret, time.Hour, testIssuer)
	suite.Require().NoError(err)
	return token
}

// do serves one request. A non-nil body is sent as JSON.
func (suite *HandlerTestSuite) do(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func decEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func intPtr(v int) *int { return &v }

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

var errTestDB = errors.New("pq: connection refused on 10.0.0.7")

func urlEscape(s string) string { return url.QueryEscape(s) }

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
