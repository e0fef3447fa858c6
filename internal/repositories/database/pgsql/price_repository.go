package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hord_manager/internal/core/ports/repositories"
	"github.com/SscSPs/hord_manager/internal/models"
	"github.com/SscSPs/hord_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPriceRepository struct {
	BaseRepository
}

func newPgxPriceRepository(pool *pgxpool.Pool) *PgxPriceRepository {
	return &PgxPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PriceRepositoryFacade = (*PgxPriceRepository)(nil)

const (
	selectPriceFields = `price_point_id, kind, commodity_name, unit, price_per_unit_usd, period, recorded_at`

	// Newest period wins, then newest recording; the id breaks exact ties.
	priceOrder = `ORDER BY period DESC, recorded_at DESC, price_point_id DESC`
)

func scanPricePoint(row pgx.Row) (models.PricePoint, error) {
	var m models.PricePoint
	err := row.Scan(
		&m.PricePointID,
		&m.Kind,
		&m.CommodityName,
		&m.Unit,
		&m.PricePerUnitUSD,
		&m.Period,
		&m.RecordedAt,
	)
	return m, err
}

// SavePrice appends a price point and returns it with its generated id.
func (r *PgxPriceRepository) SavePrice(ctx context.Context, point domain.PricePoint) (*domain.PricePoint, error) {
	m := mapping.ToModelPricePoint(point)
	query := `
		INSERT INTO commodity_prices (kind, commodity_name, unit, price_per_unit_usd, period, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + selectPriceFields + `;`
	saved, err := scanPricePoint(r.db(ctx).QueryRow(ctx, query,
		m.Kind, m.CommodityName, m.Unit, m.PricePerUnitUSD, m.Period, m.RecordedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save %s price for %s: %w", m.Kind, m.CommodityName, err)
	}
	p := mapping.ToDomainPricePoint(saved)
	return &p, nil
}

// FindLatestPrice returns the newest price point of a commodity, optionally restricted to one period.
// Names match case-insensitively.
func (r *PgxPriceRepository) FindLatestPrice(ctx context.Context, kind domain.CommodityKind, name string, period *int) (*domain.PricePoint, error) {
	query := `SELECT ` + selectPriceFields + `
		FROM commodity_prices
		WHERE kind = $1 AND LOWER(commodity_name) = LOWER($2) AND ($3::INTEGER IS NULL OR period = $3)
		` + priceOrder + `
		LIMIT 1;`
	m, err := scanPricePoint(r.db(ctx).QueryRow(ctx, query, string(kind), name, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			msg := fmt.Sprintf("%s price for %s", strings.ToLower(string(kind)), name)
			if period != nil {
				msg = fmt.Sprintf("%s in period %d", msg, *period)
			}
			return nil, apperrors.NewNotFoundError(msg)
		}
		return nil, fmt.Errorf("failed to find latest price for %s: %w", name, err)
	}
	p := mapping.ToDomainPricePoint(m)
	return &p, nil
}

// ListLatestPrices returns one point per commodity of kind: the one FindLatestPrice would pick.
func (r *PgxPriceRepository) ListLatestPrices(ctx context.Context, kind domain.CommodityKind, period *int) ([]domain.PricePoint, error) {
	query := `SELECT ` + selectPriceFields + `
		FROM (
			SELECT DISTINCT ON (LOWER(commodity_name)) ` + selectPriceFields + `
			FROM commodity_prices
			WHERE kind = $1 AND ($2::INTEGER IS NULL OR period = $2)
			ORDER BY LOWER(commodity_name), period DESC, recorded_at DESC, price_point_id DESC
		) latest
		ORDER BY LOWER(commodity_name);`
	rows, err := r.db(ctx).Query(ctx, query, string(kind), period)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest %s prices: %w", strings.ToLower(string(kind)), err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PricePoint, error) {
		return scanPricePoint(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan latest prices: %w", err)
	}
	return mapping.ToDomainPricePointSlice(ms), nil
}

// ListPriceHistory returns price points newest first, continuing after filter.After when set.
func (r *PgxPriceRepository) ListPriceHistory(ctx context.Context, filter domain.PriceHistoryFilter) ([]domain.PricePoint, error) {
	conds := []string{"kind = $1"}
	args := []any{string(filter.Kind)}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CommodityName != nil {
		conds = append(conds, "LOWER(commodity_name) = LOWER("+next(*filter.CommodityName)+")")
	}
	if filter.Period != nil {
		conds = append(conds, "period = "+next(*filter.Period))
	}
	if filter.After != nil {
		conds = append(conds, fmt.Sprintf("(period, recorded_at, price_point_id) < (%s, %s, %s)",
			next(filter.After.Period), next(filter.After.RecordedAt), next(filter.After.ID)))
	}

	query := `SELECT ` + selectPriceFields + `
		FROM commodity_prices
		WHERE ` + strings.Join(conds, " AND ") + `
		` + priceOrder
	if filter.Limit > 0 {
		query += " LIMIT " + next(filter.Limit)
	}

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PricePoint, error) {
		return scanPricePoint(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan price history: %w", err)
	}
	return mapping.ToDomainPricePointSlice(ms), nil
}
