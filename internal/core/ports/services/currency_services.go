package services

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrency retrieves a specific currency and its denominations by name.
	GetCurrency(ctx context.Context, name string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies, USD first.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency. With upsert set an existing currency
	// has its peg replaced along with its whole denomination set.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, upsert bool, actor string) (*domain.Currency, error)

	// PatchCurrency applies a partial update in a single transaction.
	PatchCurrency(ctx context.Context, name string, req dto.PatchCurrencyRequest, actor string) (*domain.Currency, error)

	// DeleteCurrency removes a currency with its denominations. USD cannot be deleted.
	DeleteCurrency(ctx context.Context, name string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
