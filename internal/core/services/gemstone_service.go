package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hord_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
)

type gemstoneService struct {
	BaseService
	gemstoneRepo portsrepo.GemstoneRepositoryFacade
}

// NewGemstoneService creates the service that maintains gemstone values.
func NewGemstoneService(gemstoneRepo portsrepo.GemstoneRepositoryFacade) portssvc.GemstoneSvcFacade {
	return &gemstoneService{gemstoneRepo: gemstoneRepo}
}

var _ portssvc.GemstoneSvcFacade = (*gemstoneService)(nil)

// UpsertGemstone sets the value per carat of a gemstone. Zero is accepted here
// and rejected when the gemstone is valued.
func (s *gemstoneService) UpsertGemstone(ctx context.Context, name string, req dto.UpsertGemstoneRequest, actor string) (*domain.Gemstone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("gemstone name is required")
	}
	if req.ValuePerCaratUSD.IsNegative() {
		return nil, apperrors.NewValidationError("value per carat cannot be negative")
	}

	gem := domain.Gemstone{
		Name:          name,
		ValuePerCarat: req.ValuePerCaratUSD,
		LastUpdatedAt: time.Now().UTC(),
		LastUpdatedBy: actor,
	}
	if err := s.gemstoneRepo.SaveGemstone(ctx, gem); err != nil {
		s.LogError(ctx, err, "Failed to save gemstone", slog.String("gemstone", name))
		return nil, fmt.Errorf("failed to save gemstone %q: %w", name, err)
	}
	return &gem, nil
}

func (s *gemstoneService) GetGemstone(ctx context.Context, name string) (*domain.Gemstone, error) {
	gem, err := s.gemstoneRepo.FindGemstoneByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get gemstone %q: %w", name, err)
	}
	return gem, nil
}

func (s *gemstoneService) ListGemstones(ctx context.Context) ([]domain.Gemstone, error) {
	gems, err := s.gemstoneRepo.ListGemstones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gemstones: %w", err)
	}
	if gems == nil {
		return []domain.Gemstone{}, nil
	}
	return gems, nil
}

func (s *gemstoneService) DeleteGemstone(ctx context.Context, name string) error {
	if err := s.gemstoneRepo.DeleteGemstone(ctx, name); err != nil {
		return fmt.Errorf("failed to delete gemstone %q: %w", name, err)
	}
	s.LogInfo(ctx, "Gemstone deleted", slog.String("gemstone", name))
	return nil
}
