package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hord_manager/internal/core/ports/repositories"
	"github.com/SscSPs/hord_manager/internal/models"
	"github.com/SscSPs/hord_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGemstoneRepository struct {
	BaseRepository
}

func newPgxGemstoneRepository(pool *pgxpool.Pool) *PgxGemstoneRepository {
	return &PgxGemstoneRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GemstoneRepositoryFacade = (*PgxGemstoneRepository)(nil)

const selectGemstoneFields = `name, value_per_carat_usd, last_updated_at, last_updated_by`

func scanGemstone(row pgx.Row) (models.Gemstone, error) {
	var m models.Gemstone
	err := row.Scan(&m.Name, &m.ValuePerCaratUSD, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// SaveGemstone inserts a gemstone or overwrites its current value.
func (r *PgxGemstoneRepository) SaveGemstone(ctx context.Context, gemstone domain.Gemstone) error {
	m := mapping.ToModelGemstone(gemstone)
	query := `
		INSERT INTO gemstones (name, value_per_carat_usd, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			value_per_carat_usd = EXCLUDED.value_per_carat_usd,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db(ctx).Exec(ctx, query, m.Name, m.ValuePerCaratUSD, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save gemstone %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxGemstoneRepository) FindGemstoneByName(ctx context.Context, name string) (*domain.Gemstone, error) {
	query := `SELECT ` + selectGemstoneFields + ` FROM gemstones WHERE name = $1;`
	m, err := scanGemstone(r.db(ctx).QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("gemstone " + name)
		}
		return nil, fmt.Errorf("failed to find gemstone %s: %w", name, err)
	}
	g := mapping.ToDomainGemstone(m)
	return &g, nil
}

func (r *PgxGemstoneRepository) ListGemstones(ctx context.Context) ([]domain.Gemstone, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+selectGemstoneFields+` FROM gemstones ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query gemstones: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Gemstone, error) {
		return scanGemstone(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan gemstones: %w", err)
	}
	return mapping.ToDomainGemstoneSlice(ms), nil
}

func (r *PgxGemstoneRepository) DeleteGemstone(ctx context.Context, name string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM gemstones WHERE name = $1;`, name)
	if err != nil {
		return fmt.Errorf("failed to delete gemstone %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("gemstone " + name)
	}
	return nil
}
