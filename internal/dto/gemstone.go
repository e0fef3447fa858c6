package dto

import (
	"time"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertGemstoneRequest sets the current value of a gemstone.
type UpsertGemstoneRequest struct {
	ValuePerCaratUSD decimal.Decimal `json:"valuePerCaratUSD" swaggertype:"string" example:"450"`
}

// GemstoneResponse defines the data returned for a gemstone.
type GemstoneResponse struct {
	Name             string          `json:"name"`
	ValuePerCaratUSD decimal.Decimal `json:"valuePerCaratUSD" swaggertype:"string"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// ToGemstoneResponse converts a domain.Gemstone to its DTO.
func ToGemstoneResponse(g *domain.Gemstone) GemstoneResponse {
	return GemstoneResponse{
		Name:             g.Name,
		ValuePerCaratUSD: g.ValuePerCarat,
		LastUpdatedAt:    g.LastUpdatedAt,
		LastUpdatedBy:    g.LastUpdatedBy,
	}
}

// ToListGemstoneResponse converts a slice of domain.Gemstone to DTOs.
func ToListGemstoneResponse(gems []domain.Gemstone) []GemstoneResponse {
	res := make([]GemstoneResponse, len(gems))
	for i := range gems {
		res[i] = ToGemstoneResponse(&gems[i])
	}
	return res
}
