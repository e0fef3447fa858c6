package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestLogin_Success() {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockAuth.On("Login", mock.Anything, "dragon-hoard").Return("signed.jwt.token", expires, nil).Once()

	w := suite.do(http.MethodPost, "/auth/login", map[string]string{"password": "dragon-hoard"}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("signed.jwt.token", resp.Token)
	suite.True(resp.ExpiresAt.Equal(expires))
}

func (suite *HandlerTestSuite) TestLogin_Rejected() {
	suite.mockAuth.On("Login", mock.Anything, "kobold").
		Return("", time.Time{}, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)).Once()

	w := suite.do(http.MethodPost, "/auth/login", map[string]string{"password": "kobold"}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/auth/login", map[string]string{}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.mockAuth.On("Login", mock.Anything, "guess").
		Return("", time.Time{}, apperrors.ErrUnauthorized).Times(5)

	for i := 0; i < 5; i++ {
		w := suite.do(http.MethodPost, "/auth/login", map[string]string{"password": "guess"}, "")
		suite.Equal(http.StatusUnauthorized, w.Code)
	}
	w := suite.do(http.MethodPost, "/auth/login", map[string]string{"password": "guess"}, "")
	suite.Equal(http.StatusTooManyRequests, w.Code)
}
