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

func (suite *HandlerTestSuite) TestUpsertGemstone() {
	ruby := &domain.Gemstone{Name: "Ruby", ValuePerCarat: decimal.NewFromInt(450), LastUpdatedAt: time.Now().UTC(), LastUpdatedBy: "gm"}
	suite.mockGemstone.On("UpsertGemstone", mock.Anything, "Ruby", mock.MatchedBy(func(req dto.UpsertGemstoneRequest) bool {
		return req.ValuePerCaratUSD.Equal(decimal.NewFromInt(450))
	}), "gm").Return(ruby, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/gemstones/Ruby", map[string]any{"valuePerCaratUSD": "450"}, suite.gmToken())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GemstoneResponse
	suite.decode(w, &resp)
	suite.Equal("Ruby", resp.Name)
}

func (suite *HandlerTestSuite) TestGemstoneReadsArePublic() {
	suite.mockGemstone.On("ListGemstones", mock.Anything).Return([]domain.Gemstone{}, nil).Once()
	suite.mockGemstone.On("GetGemstone", mock.Anything, "Opal").Return(nil, apperrors.NewNotFoundError("gemstone Opal")).Once()

	w := suite.do(http.MethodGet, "/api/v1/gemstones", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/gemstones/Opal", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteGemstone() {
	w := suite.do(http.MethodDelete, "/api/v1/gemstones/Ruby", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.mockGemstone.On("DeleteGemstone", mock.Anything, "Ruby").Return(nil).Once()
	w = suite.do(http.MethodDelete, "/api/v1/gemstones/Ruby", nil, suite.gmToken())
	suite.Equal(http.StatusNoContent, w.Code)
}
