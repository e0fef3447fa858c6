package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) CurrencyToUSD(ctx context.Context, amount decimal.Decimal, currency string, period *int) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, currency, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) USDToCurrency(ctx context.Context, usd decimal.Decimal, currency string, period *int) (decimal.Decimal, error) {
	args := m.Called(ctx, usd, currency, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) Convert(ctx context.Context, amount decimal.Decimal, from, to string, period *int) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, from, to, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) MetalToUSD(ctx context.Context, metal string, amount decimal.Decimal, unit string, period *int) (decimal.Decimal, error) {
	args := m.Called(ctx, metal, amount, unit, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) MaterialToUSD(ctx context.Context, material string, amount decimal.Decimal, unit string, period *int) (decimal.Decimal, error) {
	args := m.Called(ctx, material, amount, unit, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) GemstoneToUSD(ctx context.Context, name string, carats decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, name, carats)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) Breakdown(ctx context.Context, amount decimal.Decimal, currency string) (*domain.Breakdown, error) {
	args := m.Called(ctx, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Breakdown), args.Error(1)
}

func (m *MockConversionService) Rates(ctx context.Context, base string, period *int) (*domain.RateTable, error) {
	args := m.Called(ctx, base, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockConversionService) Display(ctx context.Context, usd decimal.Decimal, targets []string, period *int) (*domain.ValueDisplay, error) {
	args := m.Called(ctx, usd, targets, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValueDisplay), args.Error(1)
}

var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrency(ctx context.Context, name string) (*domain.Currency, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, upsert bool, actor string) (*domain.Currency, error) {
	args := m.Called(ctx, req, upsert, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) PatchCurrency(ctx context.Context, name string, req dto.PatchCurrencyRequest, actor string) (*domain.Currency, error) {
	args := m.Called(ctx, name, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock PriceService ---
type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) GetLatestPrice(ctx context.Context, kind domain.CommodityKind, name string, period *int) (*domain.PricePoint, error) {
	args := m.Called(ctx, kind, name, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricePoint), args.Error(1)
}

func (m *MockPriceService) ListLatestPrices(ctx context.Context, kind domain.CommodityKind, period *int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, kind, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricePoint), args.Error(1)
}

func (m *MockPriceService) ListPriceHistory(ctx context.Context, kind domain.CommodityKind, params dto.ListPriceHistoryParams) ([]domain.PricePoint, *string, error) {
	args := m.Called(ctx, kind, params)
	var points []domain.PricePoint
	if args.Get(0) != nil {
		points = args.Get(0).([]domain.PricePoint)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return points, next, args.Error(2)
}

func (m *MockPriceService) RecordPrice(ctx context.Context, kind domain.CommodityKind, req dto.RecordPriceRequest) (*domain.PricePoint, error) {
	args := m.Called(ctx, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricePoint), args.Error(1)
}

var _ portssvc.PriceSvcFacade = (*MockPriceService)(nil)

// --- Mock GemstoneService ---
type MockGemstoneService struct {
	mock.Mock
}

func (m *MockGemstoneService) UpsertGemstone(ctx context.Context, name string, req dto.UpsertGemstoneRequest, actor string) (*domain.Gemstone, error) {
	args := m.Called(ctx, name, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gemstone), args.Error(1)
}

func (m *MockGemstoneService) GetGemstone(ctx context.Context, name string) (*domain.Gemstone, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gemstone), args.Error(1)
}

func (m *MockGemstoneService) ListGemstones(ctx context.Context) ([]domain.Gemstone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gemstone), args.Error(1)
}

func (m *MockGemstoneService) DeleteGemstone(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

var _ portssvc.GemstoneSvcFacade = (*MockGemstoneService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
