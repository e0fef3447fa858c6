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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

const (
	selectCurrencyFields = `name, peg_type, peg_target, base_unit_value, created_at, created_by, last_updated_at, last_updated_by`

	selectDenominationFields = `denomination_id, currency_name, name, value_in_base_units`
)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.Name,
		&m.PegType,
		&m.PegTarget,
		&m.BaseUnitValue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanDenomination(row pgx.CollectableRow) (models.Denomination, error) {
	var m models.Denomination
	err := row.Scan(&m.DenominationID, &m.CurrencyName, &m.Name, &m.ValueInBaseUnits)
	return m, err
}

// SaveCurrency inserts a new currency row.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (name, peg_type, peg_target, base_unit_value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.Name,
		m.PegType,
		m.PegTarget,
		m.BaseUnitValue,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(fmt.Sprintf("currency %s already exists", m.Name))
		}
		return fmt.Errorf("failed to save currency %s: %w", m.Name, err)
	}
	return nil
}

// UpdateCurrency rewrites the peg and audit columns of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		UPDATE currencies
		SET peg_type = $2, peg_target = $3, base_unit_value = $4, last_updated_at = $5, last_updated_by = $6
		WHERE name = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, m.Name, m.PegType, m.PegTarget, m.BaseUnitValue, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", m.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + m.Name)
	}
	return nil
}

// DeleteCurrency removes a currency. Denominations are removed by the foreign key cascade.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, name string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM currencies WHERE name = $1;`, name)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + name)
	}
	return nil
}

// FindCurrencyByName retrieves a currency and its denominations.
func (r *PgxCurrencyRepository) FindCurrencyByName(ctx context.Context, name string) (*domain.Currency, error) {
	query := `SELECT ` + selectCurrencyFields + ` FROM currencies WHERE name = $1;`
	m, err := scanCurrency(r.db(ctx).QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + name)
		}
		return nil, fmt.Errorf("failed to find currency %s: %w", name, err)
	}

	denoms, err := r.listDenominations(ctx, `WHERE currency_name = $1`, name)
	if err != nil {
		return nil, err
	}
	currency := mapping.ToDomainCurrency(m, denoms)
	return &currency, nil
}

// ListCurrencies retrieves every currency ordered by name, each with its denominations.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + selectCurrencyFields + ` FROM currencies ORDER BY name;`
	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	modelCurrs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	allDenoms, err := r.listDenominations(ctx, "")
	if err != nil {
		return nil, err
	}
	byCurrency := make(map[string][]models.Denomination, len(modelCurrs))
	for _, d := range allDenoms {
		byCurrency[d.CurrencyName] = append(byCurrency[d.CurrencyName], d)
	}

	currencies := make([]domain.Currency, 0, len(modelCurrs))
	for _, m := range modelCurrs {
		currencies = append(currencies, mapping.ToDomainCurrency(m, byCurrency[m.Name]))
	}
	return currencies, nil
}

func (r *PgxCurrencyRepository) listDenominations(ctx context.Context, where string, args ...any) ([]models.Denomination, error) {
	query := `SELECT ` + selectDenominationFields + ` FROM currency_denominations ` + where + ` ORDER BY value_in_base_units DESC, name;`
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query denominations: %w", err)
	}
	denoms, err := pgx.CollectRows(rows, scanDenomination)
	if err != nil {
		return nil, fmt.Errorf("failed to scan denominations: %w", err)
	}
	return denoms, nil
}

// ReplaceDenominations deletes every denomination of a currency and inserts the given set.
// Callers run it inside WithinTransaction.
func (r *PgxCurrencyRepository) ReplaceDenominations(ctx context.Context, currencyName string, denominations []domain.Denomination) error {
	db := r.db(ctx)
	if _, err := db.Exec(ctx, `DELETE FROM currency_denominations WHERE currency_name = $1;`, currencyName); err != nil {
		return fmt.Errorf("failed to clear denominations of %s: %w", currencyName, err)
	}
	for _, d := range denominations {
		_, err := db.Exec(ctx,
			`INSERT INTO currency_denominations (currency_name, name, value_in_base_units) VALUES ($1, $2, $3);`,
			currencyName, d.Name, d.ValueInBaseUnits,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewDuplicateError(fmt.Sprintf("denomination %s of %s", d.Name, currencyName))
			}
			return fmt.Errorf("failed to insert denomination %s of %s: %w", d.Name, currencyName, err)
		}
	}
	return nil
}

// SaveDenomination inserts a denomination when its ID is zero and updates it otherwise.
func (r *PgxCurrencyRepository) SaveDenomination(ctx context.Context, denomination domain.Denomination) (*domain.Denomination, error) {
	m := mapping.ToModelDenomination(denomination)
	var row pgx.Row
	if m.DenominationID == 0 {
		row = r.db(ctx).QueryRow(ctx, `
			INSERT INTO currency_denominations (currency_name, name, value_in_base_units)
			VALUES ($1, $2, $3)
			RETURNING `+selectDenominationFields+`;`,
			m.CurrencyName, m.Name, m.ValueInBaseUnits,
		)
	} else {
		row = r.db(ctx).QueryRow(ctx, `
			UPDATE currency_denominations
			SET name = $3, value_in_base_units = $4
			WHERE denomination_id = $1 AND currency_name = $2
			RETURNING `+selectDenominationFields+`;`,
			m.DenominationID, m.CurrencyName, m.Name, m.ValueInBaseUnits,
		)
	}

	var saved models.Denomination
	err := row.Scan(&saved.DenominationID, &saved.CurrencyName, &saved.Name, &saved.ValueInBaseUnits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("denomination %d of %s", m.DenominationID, m.CurrencyName))
		}
		if isUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("denomination %s of %s", m.Name, m.CurrencyName))
		}
		return nil, fmt.Errorf("failed to save denomination %s of %s: %w", m.Name, m.CurrencyName, err)
	}
	d := mapping.ToDomainDenomination(saved)
	return &d, nil
}

// DeleteDenominations removes the given denominations of a currency.
func (r *PgxCurrencyRepository) DeleteDenominations(ctx context.Context, currencyName string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db(ctx).Exec(ctx,
		`DELETE FROM currency_denominations WHERE currency_name = $1 AND denomination_id = ANY($2);`,
		currencyName, ids,
	)
	if err != nil {
		return fmt.Errorf("failed to delete denominations of %s: %w", currencyName, err)
	}
	return nil
}
