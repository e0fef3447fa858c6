package services

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/dto"
)

// GemstoneSvcFacade defines operations on gemstone values
type GemstoneSvcFacade interface {
	UpsertGemstone(ctx context.Context, name string, req dto.UpsertGemstoneRequest, actor string) (*domain.Gemstone, error)
	GetGemstone(ctx context.Context, name string) (*domain.Gemstone, error)
	ListGemstones(ctx context.Context) ([]domain.Gemstone, error)
	DeleteGemstone(ctx context.Context, name string) error
}
