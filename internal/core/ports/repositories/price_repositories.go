package repositories

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
)

// PriceReader defines read operations for commodity price history
type PriceReader interface {
	// FindLatestPrice returns the current price point for a commodity.
	// With a period, only points of that period are considered.
	// Returns apperrors.ErrNotFound when no point matches.
	FindLatestPrice(ctx context.Context, kind domain.CommodityKind, name string, period *int) (*domain.PricePoint, error)

	// ListLatestPrices returns the latest point of every commodity of kind, ordered by name.
	// With a period, only points of that period are considered.
	ListLatestPrices(ctx context.Context, kind domain.CommodityKind, period *int) ([]domain.PricePoint, error)

	// ListPriceHistory returns price points newest first.
	ListPriceHistory(ctx context.Context, filter domain.PriceHistoryFilter) ([]domain.PricePoint, error)
}

// PriceWriter defines write operations for commodity price history.
// Points are append-only.
type PriceWriter interface {
	SavePrice(ctx context.Context, point domain.PricePoint) (*domain.PricePoint, error)
}

// PriceRepositoryFacade combines all price-related repository interfaces
type PriceRepositoryFacade interface {
	PriceReader
	PriceWriter
}
