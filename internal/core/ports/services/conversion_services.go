package services

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyConverterSvc resolves peg chains and converts between currencies.
// Every conversion bridges through USD.
type CurrencyConverterSvc interface {
	CurrencyToUSD(ctx context.Context, amount decimal.Decimal, currency string, period *int) (decimal.Decimal, error)
	USDToCurrency(ctx context.Context, usd decimal.Decimal, currency string, period *int) (decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string, period *int) (decimal.Decimal, error)
}

// CommodityValuerSvc values commodity quantities in USD.
type CommodityValuerSvc interface {
	MetalToUSD(ctx context.Context, metal string, amount decimal.Decimal, unit string, period *int) (decimal.Decimal, error)
	MaterialToUSD(ctx context.Context, material string, amount decimal.Decimal, unit string, period *int) (decimal.Decimal, error)
	GemstoneToUSD(ctx context.Context, name string, carats decimal.Decimal) (decimal.Decimal, error)
}

// CurrencyPresenterSvc produces breakdowns, rate tables and display projections.
type CurrencyPresenterSvc interface {
	Breakdown(ctx context.Context, amount decimal.Decimal, currency string) (*domain.Breakdown, error)
	Rates(ctx context.Context, base string, period *int) (*domain.RateTable, error)
	// Display projects a USD value into targets, or into USD plus every registered currency when targets is empty.
	Display(ctx context.Context, usd decimal.Decimal, targets []string, period *int) (*domain.ValueDisplay, error)
}

// ConversionSvcFacade combines all conversion engine interfaces
type ConversionSvcFacade interface {
	CurrencyConverterSvc
	CommodityValuerSvc
	CurrencyPresenterSvc
}
