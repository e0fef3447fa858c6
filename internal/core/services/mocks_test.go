package services_test

import (
	"context"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByName(ctx context.Context, name string) (*domain.Currency, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCurrencyRepository) ReplaceDenominations(ctx context.Context, currencyName string, denominations []domain.Denomination) error {
	args := m.Called(ctx, currencyName, denominations)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SaveDenomination(ctx context.Context, denomination domain.Denomination) (*domain.Denomination, error) {
	args := m.Called(ctx, denomination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Denomination), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteDenominations(ctx context.Context, currencyName string, ids []int64) error {
	args := m.Called(ctx, currencyName, ids)
	return args.Error(0)
}

// WithinTransaction runs fn directly; the call is recorded so tests can assert on it.
func (m *MockCurrencyRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *MockCurrencyRepository) WithinReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- Mock PriceRepository ---
type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) FindLatestPrice(ctx context.Context, kind domain.CommodityKind, name string, period *int) (*domain.PricePoint, error) {
	args := m.Called(ctx, kind, name, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricePoint), args.Error(1)
}

func (m *MockPriceRepository) ListLatestPrices(ctx context.Context, kind domain.CommodityKind, period *int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, kind, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricePoint), args.Error(1)
}

func (m *MockPriceRepository) ListPriceHistory(ctx context.Context, filter domain.PriceHistoryFilter) ([]domain.PricePoint, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricePoint), args.Error(1)
}

func (m *MockPriceRepository) SavePrice(ctx context.Context, point domain.PricePoint) (*domain.PricePoint, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricePoint), args.Error(1)
}

// --- Mock GemstoneRepository ---
type MockGemstoneRepository struct {
	mock.Mock
}

func (m *MockGemstoneRepository) FindGemstoneByName(ctx context.Context, name string) (*domain.Gemstone, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gemstone), args.Error(1)
}

func (m *MockGemstoneRepository) ListGemstones(ctx context.Context) ([]domain.Gemstone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gemstone), args.Error(1)
}

func (m *MockGemstoneRepository) SaveGemstone(ctx context.Context, gemstone domain.Gemstone) error {
	args := m.Called(ctx, gemstone)
	return args.Error(0)
}

func (m *MockGemstoneRepository) DeleteGemstone(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
