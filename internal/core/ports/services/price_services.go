package services

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/dto"
)

// PriceReaderSvc defines read operations for commodity prices
type PriceReaderSvc interface {
	GetLatestPrice(ctx context.Context, kind domain.CommodityKind, name string, period *int) (*domain.PricePoint, error)
	ListLatestPrices(ctx context.Context, kind domain.CommodityKind, period *int) ([]domain.PricePoint, error)
	// ListPriceHistory returns a page of points, newest first, and the token of the next page if any.
	ListPriceHistory(ctx context.Context, kind domain.CommodityKind, params dto.ListPriceHistoryParams) ([]domain.PricePoint, *string, error)
}

// PriceWriterSvc defines write operations for commodity prices
type PriceWriterSvc interface {
	RecordPrice(ctx context.Context, kind domain.CommodityKind, req dto.RecordPriceRequest) (*domain.PricePoint, error)
}

// PriceSvcFacade combines all price-related service interfaces
type PriceSvcFacade interface {
	PriceReaderSvc
	PriceWriterSvc
}
