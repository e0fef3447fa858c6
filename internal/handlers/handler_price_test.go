package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func goldPoint() *domain.PricePoint {
	return &domain.PricePoint{
		PricePointID:    7,
		Kind:            domain.Metal,
		CommodityName:   "Gold",
		Unit:            "oz",
		PricePerUnitUSD: decimal.NewFromInt(2000),
		Period:          3,
		RecordedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (suite *HandlerTestSuite) TestRecordPrice_PerKind() {
	suite.mockPrice.On("RecordPrice", mock.Anything, domain.Metal, mock.MatchedBy(func(req dto.RecordPriceRequest) bool {
		return req.Name == "Gold" && req.Period == 3
	})).Return(goldPoint(), nil).Once()
	suite.mockPrice.On("RecordPrice", mock.Anything, domain.Material, mock.Anything).
		Return(nil, apperrors.NewValidationError("price per unit must be greater than zero")).Once()

	body := map[string]any{"name": "Gold", "unit": "oz", "pricePerUnitUSD": "2000", "period": 3}
	w := suite.do(http.MethodPost, "/api/v1/metals/prices", body, suite.gmToken())
	suite.Equal(http.StatusCreated, w.Code)

	body = map[string]any{"name": "Iron", "unit": "lb", "pricePerUnitUSD": "0", "period": 1}
	w = suite.do(http.MethodPost, "/api/v1/materials/prices", body, suite.gmToken())
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecordPrice_RequiresToken() {
	body := map[string]any{"name": "Gold", "unit": "oz", "pricePerUnitUSD": "2000", "period": 3}
	w := suite.do(http.MethodPost, "/api/v1/metals/prices", body, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLatestPrice() {
	suite.mockPrice.On("GetLatestPrice", mock.Anything, domain.Metal, "Gold", (*int)(nil)).Return(goldPoint(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/metals/prices/latest?name=Gold", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PricePointResponse
	suite.decode(w, &resp)
	suite.Equal(3, resp.Period)
}

func (suite *HandlerTestSuite) TestCurrentPrices() {
	silver := domain.PricePoint{PricePointID: 8, Kind: domain.Metal, CommodityName: "Silver", Unit: "oz", PricePerUnitUSD: decimal.NewFromInt(25), Period: 3}
	suite.mockPrice.On("ListLatestPrices", mock.Anything, domain.Metal, intPtr(3)).
		Return([]domain.PricePoint{*goldPoint(), silver}, nil).Once()
	suite.mockPrice.On("ListLatestPrices", mock.Anything, domain.Material, (*int)(nil)).
		Return([]domain.PricePoint{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/metals/prices/current?period=3", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.PricePointResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 2)
	suite.Equal("Gold", resp[0].Name)
	suite.Equal("Silver", resp[1].Name)

	w = suite.do(http.MethodGet, "/api/v1/materials/prices/current", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/metals/prices/current?period=0", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPriceHistory_Paginated() {
	next := "next-page"
	suite.mockPrice.On("ListPriceHistory", mock.Anything, domain.Material, mock.MatchedBy(func(p dto.ListPriceHistoryParams) bool {
		return p.Limit == 100 && p.NextToken == nil
	})).Return([]domain.PricePoint{*goldPoint()}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/materials/prices/history", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPriceHistoryResponse
	suite.decode(w, &resp)
	suite.Len(resp.Prices, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/materials/prices/history?limit=501", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}
