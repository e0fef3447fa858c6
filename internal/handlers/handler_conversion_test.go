package handlers_test

import (
	"net/http"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestConvert_Success() {
	suite.mockConversion.On("Convert", mock.Anything, decEq("10"), "Doubloon", "Crown", (*int)(nil)).
		Return(decimal.RequireFromString("12.5"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/convert?amount=10&from=Doubloon&to=Crown", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConversionResponse
	suite.decode(w, &resp)
	suite.True(resp.Result.Equal(decimal.RequireFromString("12.5")))
	suite.Equal("Doubloon", resp.From)
	suite.Equal("Crown", resp.To)
	suite.Nil(resp.Period)
}

func (suite *HandlerTestSuite) TestConvert_WithPeriod() {
	suite.mockConversion.On("Convert", mock.Anything, decEq("1"), "GoldMark", "USD", intPtr(3)).
		Return(decimal.RequireFromString("40"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/convert?amount=1&from=GoldMark&to=USD&period=3", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConversionResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.Period)
	suite.Equal(3, *resp.Period)
}

func (suite *HandlerTestSuite) TestConvert_BadInput() {
	for _, url := range []string{
		"/api/v1/convert?amount=ten&from=A&to=B",
		"/api/v1/convert?from=A&to=B",
		"/api/v1/convert?amount=1&from=A&to=B&period=0",
	} {
		w := suite.do(http.MethodGet, url, nil, "")
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.mockConversion.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestConvert_ErrorStatuses() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown currency", apperrors.NewNotFoundError("currency Zorkmid"), http.StatusNotFound},
		{"cycle", &apperrors.CyclicPegError{Path: []string{"A", "B", "A"}}, http.StatusUnprocessableEntity},
		{"unsupported peg", apperrors.ErrUnsupportedPeg, http.StatusUnprocessableEntity},
		{"zero rate", apperrors.ErrInvalidConfiguration, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockConversion.On("Convert", mock.Anything, mock.Anything, "A", tt.name, (*int)(nil)).
				Return(decimal.Zero, tt.err).Once()

			w := suite.do(http.MethodGet, "/api/v1/convert?amount=1&from=A&to="+urlEscape(tt.name), nil, "")

			suite.Equal(tt.status, w.Code)
			var resp map[string]string
			suite.decode(w, &resp)
			suite.NotEmpty(resp["error"])
		})
	}
}

func (suite *HandlerTestSuite) TestConvert_InternalErrorIsMasked() {
	suite.mockConversion.On("Convert", mock.Anything, mock.Anything, "A", "B", (*int)(nil)).
		Return(decimal.Zero, apperrors.NewValidationError("x")).Once()
	w := suite.do(http.MethodGet, "/api/v1/convert?amount=1&from=A&to=B", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockConversion.On("Convert", mock.Anything, mock.Anything, "A", "C", (*int)(nil)).
		Return(decimal.Zero, errTestDB).Once()
	w = suite.do(http.MethodGet, "/api/v1/convert?amount=1&from=A&to=C", nil, "")
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), errTestDB.Error())
}

func (suite *HandlerTestSuite) TestToAndFromUSD() {
	suite.mockConversion.On("CurrencyToUSD", mock.Anything, decEq("4"), "Doubloon", (*int)(nil)).
		Return(decimal.RequireFromString("10"), nil).Once()
	suite.mockConversion.On("USDToCurrency", mock.Anything, decEq("10"), "Doubloon", (*int)(nil)).
		Return(decimal.RequireFromString("4"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/convert/to-usd?amount=4&currency=Doubloon", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var toResp dto.ConversionResponse
	suite.decode(w, &toResp)
	suite.Equal("USD", toResp.To)
	suite.True(toResp.Result.Equal(decimal.NewFromInt(10)))

	w = suite.do(http.MethodGet, "/api/v1/convert/from-usd?amount=10&currency=Doubloon", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var fromResp dto.ConversionResponse
	suite.decode(w, &fromResp)
	suite.Equal("USD", fromResp.From)
	suite.Equal("Doubloon", fromResp.To)
}

func (suite *HandlerTestSuite) TestCommodityValuation() {
	suite.mockConversion.On("MetalToUSD", mock.Anything, "Gold", decEq("2"), "lb", (*int)(nil)).
		Return(decimal.RequireFromString("64000"), nil).Once()
	suite.mockConversion.On("MaterialToUSD", mock.Anything, "Iron", decEq("1"), "furlong", (*int)(nil)).
		Return(decimal.Zero, apperrors.ErrUnsupportedUnit).Once()

	w := suite.do(http.MethodGet, "/api/v1/convert/metal?name=Gold&amount=2&unit=lb", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CommodityValueResponse
	suite.decode(w, &resp)
	suite.True(resp.USDValue.Equal(decimal.NewFromInt(64000)))

	w = suite.do(http.MethodGet, "/api/v1/convert/material?name=Iron&amount=1&unit=furlong", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGemstoneValuation() {
	suite.mockConversion.On("GemstoneToUSD", mock.Anything, "Ruby", decEq("1.5")).
		Return(decimal.RequireFromString("675"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/convert/gemstone?name=Ruby&carats=1.5", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CommodityValueResponse
	suite.decode(w, &resp)
	suite.Equal("carat", resp.Unit)
	suite.True(resp.USDValue.Equal(decimal.NewFromInt(675)))
}

func (suite *HandlerTestSuite) TestRates_DefaultsToUSD() {
	table := &domain.RateTable{
		BaseCurrency: "USD",
		Rates: map[string]decimal.Decimal{
			"USD":      decimal.NewFromInt(1),
			"Doubloon": decimal.RequireFromString("0.4"),
		},
	}
	suite.mockConversion.On("Rates", mock.Anything, "USD", (*int)(nil)).Return(table, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RatesResponse
	suite.decode(w, &resp)
	suite.Equal("USD", resp.BaseCurrency)
	suite.True(resp.Rates["Doubloon"].Equal(decimal.RequireFromString("0.4")))
}

func (suite *HandlerTestSuite) TestRates_UnknownBase() {
	suite.mockConversion.On("Rates", mock.Anything, "Zorkmid", intPtr(2)).
		Return(nil, apperrors.NewNotFoundError("currency Zorkmid")).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates?base=Zorkmid&period=2", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDisplay() {
	view := &domain.ValueDisplay{
		USDValue: decimal.NewFromInt(25),
		Conversions: map[string]domain.CurrencyDisplay{
			"USD":      {Amount: decimal.NewFromInt(25), Formatted: "$25.00"},
			"Doubloon": {Amount: decimal.NewFromInt(10), Formatted: "10 Doubloon"},
		},
	}
	suite.mockConversion.On("Display", mock.Anything, decEq("25"), []string{"USD", "Doubloon"}, (*int)(nil)).
		Return(view, nil).Once()

	body := map[string]any{"usdValue": "25", "targetCurrencies": []string{"USD", "Doubloon"}}
	w := suite.do(http.MethodPost, "/api/v1/display", body, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DisplayResponse
	suite.decode(w, &resp)
	suite.Len(resp.Conversions, 2)
	suite.Equal("$25.00", resp.Conversions["USD"].Formatted)
}
