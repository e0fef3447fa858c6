package repositories

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByName retrieves a currency and its denominations.
	// Returns apperrors.ErrNotFound when no such currency exists.
	FindCurrencyByName(ctx context.Context, name string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies with their denominations.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency inserts a new currency. Returns apperrors.ErrDuplicate if the name is taken.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency replaces the peg fields of an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes a currency; its denominations go with it.
	DeleteCurrency(ctx context.Context, name string) error

	// ReplaceDenominations swaps the full denomination set of a currency.
	ReplaceDenominations(ctx context.Context, currencyName string, denominations []domain.Denomination) error

	// SaveDenomination inserts a denomination (zero ID) or updates one by ID.
	SaveDenomination(ctx context.Context, denomination domain.Denomination) (*domain.Denomination, error)

	// DeleteDenominations removes denominations of a currency by ID.
	DeleteDenominations(ctx context.Context, currencyName string, ids []int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
