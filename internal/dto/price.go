package dto

import (
	"time"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPriceRequest appends a price point for a metal or material.
type RecordPriceRequest struct {
	Name            string          `json:"name" binding:"required,max=100" example:"Gold"`
	Unit            string          `json:"unit" binding:"required,max=20" example:"oz"`
	PricePerUnitUSD decimal.Decimal `json:"pricePerUnitUSD" swaggertype:"string" example:"2000"`
	Period          int             `json:"period" binding:"required,min=1" example:"3"`
}

// LatestPriceQuery selects the current price of a commodity.
type LatestPriceQuery struct {
	Name   string `form:"name" binding:"required"`
	Period *int   `form:"period" binding:"omitempty,min=1"`
}

// CurrentPricesQuery optionally restricts current prices to one period.
type CurrentPricesQuery struct {
	Period *int `form:"period" binding:"omitempty,min=1"`
}

// ListPriceHistoryParams defines the parameters for listing price history.
type ListPriceHistoryParams struct {
	Name      *string `form:"name"`
	Period    *int    `form:"period" binding:"omitempty,min=1"`
	Limit     int     `form:"limit,default=100" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// PricePointResponse defines the data returned for a price point.
type PricePointResponse struct {
	PricePointID    int64           `json:"pricePointID"`
	Kind            string          `json:"kind"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	PricePerUnitUSD decimal.Decimal `json:"pricePerUnitUSD" swaggertype:"string"`
	Period          int             `json:"period"`
	RecordedAt      time.Time       `json:"recordedAt"`
}

// ListPriceHistoryResponse wraps a page of price points.
type ListPriceHistoryResponse struct {
	Prices    []PricePointResponse `json:"prices"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToPricePointResponse converts a domain.PricePoint to its DTO.
func ToPricePointResponse(p *domain.PricePoint) PricePointResponse {
	return PricePointResponse{
		PricePointID:    p.PricePointID,
		Kind:            string(p.Kind),
		Name:            p.CommodityName,
		Unit:            p.Unit,
		PricePerUnitUSD: p.PricePerUnitUSD,
		Period:          p.Period,
		RecordedAt:      p.RecordedAt,
	}
}

// ToPricePointResponses converts a list of price points to DTOs.
func ToPricePointResponses(points []domain.PricePoint) []PricePointResponse {
	res := make([]PricePointResponse, len(points))
	for i := range points {
		res[i] = ToPricePointResponse(&points[i])
	}
	return res
}

// ToListPriceHistoryResponse converts a page of price points to its DTO.
func ToListPriceHistoryResponse(points []domain.PricePoint, nextToken *string) ListPriceHistoryResponse {
	return ListPriceHistoryResponse{Prices: ToPricePointResponses(points), NextToken: nextToken}
}
