package repositories

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
)

// GemstoneReader defines read operations for gemstone values
type GemstoneReader interface {
	// FindGemstoneByName returns apperrors.ErrNotFound for unknown gemstones.
	FindGemstoneByName(ctx context.Context, name string) (*domain.Gemstone, error)
	ListGemstones(ctx context.Context) ([]domain.Gemstone, error)
}

// GemstoneWriter defines write operations for gemstone values
type GemstoneWriter interface {
	// SaveGemstone inserts or replaces the current value of a gemstone.
	SaveGemstone(ctx context.Context, gemstone domain.Gemstone) error
	DeleteGemstone(ctx context.Context, name string) error
}

// GemstoneRepositoryFacade combines all gemstone-related repository interfaces
type GemstoneRepositoryFacade interface {
	GemstoneReader
	GemstoneWriter
}
