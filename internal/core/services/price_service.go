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
	"github.com/SscSPs/hord_manager/internal/utils/pagination"
)

const (
	defaultPriceHistoryLimit = 100
	maxPriceHistoryLimit     = 500
)

type priceService struct {
	BaseService
	priceRepo portsrepo.PriceRepositoryFacade
}

// NewPriceService creates the service that records and queries commodity prices.
func NewPriceService(priceRepo portsrepo.PriceRepositoryFacade) portssvc.PriceSvcFacade {
	return &priceService{priceRepo: priceRepo}
}

var _ portssvc.PriceSvcFacade = (*priceService)(nil)

// RecordPrice appends a new price point. Points are never updated afterwards.
func (s *priceService) RecordPrice(ctx context.Context, kind domain.CommodityKind, req dto.RecordPriceRequest) (*domain.PricePoint, error) {
	point := domain.PricePoint{
		Kind:            kind,
		CommodityName:   strings.TrimSpace(req.Name),
		Unit:            domain.NormalizeUnit(req.Unit),
		PricePerUnitUSD: req.PricePerUnitUSD,
		Period:          req.Period,
		RecordedAt:      time.Now().UTC(),
	}
	switch {
	case point.CommodityName == "":
		return nil, apperrors.NewValidationError("commodity name is required")
	case point.Unit == "":
		return nil, apperrors.NewValidationError("unit is required")
	case !point.PricePerUnitUSD.IsPositive():
		return nil, apperrors.NewValidationError("price per unit must be greater than zero")
	case point.Period < 1:
		return nil, apperrors.NewValidationError("period must be at least 1")
	}

	saved, err := s.priceRepo.SavePrice(ctx, point)
	if err != nil {
		s.LogError(ctx, err, "Failed to record price", slog.String("kind", string(kind)), slog.String("commodity", point.CommodityName))
		return nil, fmt.Errorf("failed to record %s price: %w", strings.ToLower(string(kind)), err)
	}
	s.LogInfo(ctx, "Price recorded",
		slog.String("kind", string(kind)),
		slog.String("commodity", saved.CommodityName),
		slog.Int("period", saved.Period),
		slog.String("price_per_unit_usd", saved.PricePerUnitUSD.String()))
	return saved, nil
}

// GetLatestPrice returns the current price point of a commodity, optionally within one period.
func (s *priceService) GetLatestPrice(ctx context.Context, kind domain.CommodityKind, name string, period *int) (*domain.PricePoint, error) {
	point, err := s.priceRepo.FindLatestPrice(ctx, kind, name, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price of %s: %w", name, err)
	}
	return point, nil
}

// ListLatestPrices returns the current price point of every commodity of kind.
func (s *priceService) ListLatestPrices(ctx context.Context, kind domain.CommodityKind, period *int) ([]domain.PricePoint, error) {
	points, err := s.priceRepo.ListLatestPrices(ctx, kind, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list current %s prices: %w", strings.ToLower(string(kind)), err)
	}
	if points == nil {
		points = []domain.PricePoint{}
	}
	return points, nil
}

// ListPriceHistory returns one page of price points, newest first.
func (s *priceService) ListPriceHistory(ctx context.Context, kind domain.CommodityKind, params dto.ListPriceHistoryParams) ([]domain.PricePoint, *string, error) {
	limit := params.Limit
	if limit == 0 {
		limit = defaultPriceHistoryLimit
	}
	if limit < 1 || limit > maxPriceHistoryLimit {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", maxPriceHistoryLimit))
	}

	filter := domain.PriceHistoryFilter{
		Kind:          kind,
		CommodityName: params.Name,
		Period:        params.Period,
		Limit:         limit + 1,
	}
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodePriceCursor(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(err.Error())
		}
		filter.After = cursor
	}

	points, err := s.priceRepo.ListPriceHistory(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list price history: %w", err)
	}
	if points == nil {
		points = []domain.PricePoint{}
	}

	var nextToken *string
	if len(points) > limit {
		points = points[:limit]
		last := points[limit-1]
		token := pagination.EncodePriceCursor(domain.PriceCursor{Period: last.Period, RecordedAt: last.RecordedAt, ID: last.PricePointID})
		nextToken = &token
	}
	return points, nextToken, nil
}
