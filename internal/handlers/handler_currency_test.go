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

func doubloon() *domain.Currency {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Currency{
		Name:          "Doubloon",
		PegType:       domain.PegTypeCurrency,
		PegTarget:     "USD",
		BaseUnitValue: decimal.RequireFromString("2.5"),
		Denominations: []domain.Denomination{
			{DenominationID: 1, CurrencyName: "Doubloon", Name: "Doubloon", ValueInBaseUnits: decimal.NewFromInt(1)},
			{DenominationID: 2, CurrencyName: "Doubloon", Name: "Half-Doubloon", ValueInBaseUnits: decimal.RequireFromString("0.5")},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "gm", LastUpdatedAt: now, LastUpdatedBy: "gm"},
	}
}

func createDoubloonBody() map[string]any {
	return map[string]any{
		"name":          "Doubloon",
		"pegType":       "CURRENCY",
		"pegTarget":     "USD",
		"baseUnitValue": "2.5",
		"denominations": []map[string]any{
			{"name": "Doubloon", "valueInBaseUnits": "1"},
			{"name": "Half-Doubloon", "valueInBaseUnits": "0.5"},
		},
	}
}

func (suite *HandlerTestSuite) TestListCurrencies_Public() {
	suite.mockCurrency.On("ListCurrencies", mock.Anything).
		Return([]domain.Currency{domain.BaseCurrency(), *doubloon()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 2)
	suite.Equal("USD", resp[0].Name)
	suite.Len(resp[1].Denominations, 2)
}

func (suite *HandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockCurrency.On("GetCurrency", mock.Anything, "Zorkmid").
		Return(nil, apperrors.NewNotFoundError("currency Zorkmid")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/Zorkmid", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCurrency_RequiresToken() {
	w := suite.do(http.MethodPost, "/api/v1/currencies", createDoubloonBody(), "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/currencies", createDoubloonBody(), "not-a-jwt")
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.mockCurrency.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateCurrency_Success() {
	suite.mockCurrency.On("CreateCurrency", mock.Anything, mock.MatchedBy(func(req dto.CreateCurrencyRequest) bool {
		return req.Name == "Doubloon" && req.BaseUnitValue.Equal(decimal.RequireFromString("2.5")) && len(req.Denominations) == 2
	}), false, "gm").Return(doubloon(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", createDoubloonBody(), suite.gmToken())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CurrencyResponse
	suite.decode(w, &resp)
	suite.Equal("Doubloon", resp.Name)
	suite.Equal("CURRENCY", resp.PegType)
}

func (suite *HandlerTestSuite) TestCreateCurrency_UpsertFlag() {
	suite.mockCurrency.On("CreateCurrency", mock.Anything, mock.Anything, true, "gm").Return(doubloon(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies?upsert=true", createDoubloonBody(), suite.gmToken())
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/currencies?upsert=maybe", createDoubloonBody(), suite.gmToken())
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCurrency_InvalidPegType() {
	body := createDoubloonBody()
	body["pegType"] = "BARTER"

	w := suite.do(http.MethodPost, "/api/v1/currencies", body, suite.gmToken())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrency.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateCurrency_Duplicate() {
	suite.mockCurrency.On("CreateCurrency", mock.Anything, mock.Anything, false, "gm").
		Return(nil, apperrors.NewDuplicateError("currency Doubloon already exists")).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", createDoubloonBody(), suite.gmToken())
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPatchCurrency() {
	suite.mockCurrency.On("PatchCurrency", mock.Anything, "Doubloon", mock.MatchedBy(func(req dto.PatchCurrencyRequest) bool {
		return req.PegTarget == nil && len(req.DenominationIDsRemove) == 1 && req.DenominationIDsRemove[0] == 2 &&
			len(req.DenominationsAddOrUpdate) == 1 && req.DenominationsAddOrUpdate[0].ID == nil
	}), "gm").Return(doubloon(), nil).Once()

	body := map[string]any{
		"denominationsAddOrUpdate": []map[string]any{{"name": "Piece of Eight", "valueInBaseUnits": "0.125"}},
		"denominationIdsRemove":    []int64{2},
	}
	w := suite.do(http.MethodPatch, "/api/v1/currencies/Doubloon", body, suite.gmToken())

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestPatchCurrency_UnknownDenomination() {
	suite.mockCurrency.On("PatchCurrency", mock.Anything, "Doubloon", mock.Anything, "gm").
		Return(nil, apperrors.NewNotFoundError("denomination 99 of Doubloon")).Once()

	body := map[string]any{"denominationIdsRemove": []int64{99}}
	w := suite.do(http.MethodPatch, "/api/v1/currencies/Doubloon", body, suite.gmToken())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteCurrency() {
	suite.mockCurrency.On("DeleteCurrency", mock.Anything, "Doubloon").Return(nil).Once()
	suite.mockCurrency.On("DeleteCurrency", mock.Anything, "USD").
		Return(apperrors.NewValidationError("the USD base currency cannot be deleted")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/currencies/Doubloon", nil, suite.gmToken())
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/currencies/USD", nil, suite.gmToken())
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestBreakdown() {
	b := &domain.Breakdown{
		Currency: "Doubloon",
		Total:    decimal.RequireFromString("3.5"),
		Entries: []domain.BreakdownEntry{
			{Denomination: "Doubloon", Count: 3, Value: decimal.NewFromInt(1), TotalValue: decimal.NewFromInt(3)},
			{Denomination: "Half-Doubloon", Count: 1, Value: decimal.RequireFromString("0.5"), TotalValue: decimal.RequireFromString("0.5")},
		},
		Formatted: "3 Doubloon + 1 Half-Doubloon",
	}
	suite.mockConversion.On("Breakdown", mock.Anything, decEq("3.5"), "Doubloon").Return(b, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/Doubloon/breakdown?amount=3.5", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BreakdownResponse
	suite.decode(w, &resp)
	suite.Len(resp.Entries, 2)
	suite.Equal("3 Doubloon + 1 Half-Doubloon", resp.Formatted)

	w = suite.do(http.MethodGet, "/api/v1/currencies/Doubloon/breakdown", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}
