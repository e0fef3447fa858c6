package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hord_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/utils"
	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of fractional digits kept when dividing by a rate.
const divisionPrecision = 28

// DefaultMetalPeg is the metal every deployment accepts as a peg target.
const DefaultMetalPeg = "Gold"

// conversionService implements portssvc.ConversionSvcFacade.
type conversionService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	priceRepo    portsrepo.PriceReader
	gemstoneRepo portsrepo.GemstoneReader
	snapshots    portsrepo.TransactionManager
	metalPegs    map[string]struct{}
}

// ConversionOption is a functional option for configuring the conversion service
type ConversionOption func(*conversionService)

// WithSupportedMetalPegs replaces the set of metals a currency may peg to.
// Names are matched case-insensitively; an empty list keeps the default.
func WithSupportedMetalPegs(metals ...string) ConversionOption {
	return func(s *conversionService) {
		pegs := make(map[string]struct{}, len(metals))
		for _, m := range metals {
			if m = strings.TrimSpace(m); m != "" {
				pegs[strings.ToLower(m)] = struct{}{}
			}
		}
		if len(pegs) > 0 {
			s.metalPegs = pegs
		}
	}
}

// WithReadSnapshot makes every engine call read through one read-only snapshot.
func WithReadSnapshot(tm portsrepo.TransactionManager) ConversionOption {
	return func(s *conversionService) {
		s.snapshots = tm
	}
}

// NewConversionService creates the conversion engine over a currency registry and price store.
func NewConversionService(
	currencyRepo portsrepo.CurrencyReader,
	priceRepo portsrepo.PriceReader,
	gemstoneRepo portsrepo.GemstoneReader,
	options ...ConversionOption,
) portssvc.ConversionSvcFacade {
	svc := &conversionService{
		currencyRepo: currencyRepo,
		priceRepo:    priceRepo,
		gemstoneRepo: gemstoneRepo,
		metalPegs:    map[string]struct{}{strings.ToLower(DefaultMetalPeg): {}},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

func (s *conversionService) inSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.snapshots == nil {
		return fn(ctx)
	}
	return s.snapshots.WithinReadSnapshot(ctx, fn)
}

// usdPerUnit walks the peg chain of currency and returns the USD value of one unit of it.
// The walk is iterative; a currency seen twice on the path is a cycle.
func (s *conversionService) usdPerUnit(ctx context.Context, currency string, period *int) (decimal.Decimal, error) {
	factor := decimal.NewFromInt(1)
	visited := make(map[string]struct{})
	var path []string

	for current := currency; ; {
		if current == domain.BaseCurrencyName {
			return factor, nil
		}
		if _, seen := visited[current]; seen {
			return decimal.Zero, &apperrors.CyclicPegError{Path: append(path, current)}
		}
		visited[current] = struct{}{}
		path = append(path, current)

		cur, err := s.currencyRepo.FindCurrencyByName(ctx, current)
		if err != nil {
			return decimal.Zero, fmt.Errorf("resolving currency %q: %w", current, err)
		}
		if !cur.BaseUnitValue.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: currency %q has base unit value %s",
				apperrors.ErrInvalidConfiguration, current, cur.BaseUnitValue)
		}
		peg, err := cur.Peg()
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: currency %q: %v", apperrors.ErrUnsupportedPeg, current, err)
		}
		factor = factor.Mul(cur.BaseUnitValue)

		switch p := peg.(type) {
		case domain.CurrencyPeg:
			current = p.Currency
		case domain.MetalPeg:
			price, err := s.metalPegPrice(ctx, p.Metal, period)
			if err != nil {
				return decimal.Zero, fmt.Errorf("resolving currency %q: %w", current, err)
			}
			return factor.Mul(price), nil
		case domain.MaterialPeg:
			return decimal.Zero, fmt.Errorf("%w: currency %q pegs to material %q",
				apperrors.ErrUnsupportedPeg, current, p.Material)
		default:
			return decimal.Zero, fmt.Errorf("%w: currency %q has peg type %s",
				apperrors.ErrUnsupportedPeg, current, peg.Type())
		}
	}
}

// metalPegPrice returns the USD price of one ounce of a supported peg metal,
// whatever unit the latest point was recorded in.
func (s *conversionService) metalPegPrice(ctx context.Context, metal string, period *int) (decimal.Decimal, error) {
	if _, ok := s.metalPegs[strings.ToLower(strings.TrimSpace(metal))]; !ok {
		return decimal.Zero, fmt.Errorf("%w: metal %q is not a supported peg target", apperrors.ErrUnsupportedPeg, metal)
	}
	point, err := s.priceRepo.FindLatestPrice(ctx, domain.Metal, metal, period)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price of %s: %w", metal, err)
	}
	if !point.PricePerUnitUSD.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price of %s is %s",
			apperrors.ErrInvalidConfiguration, metal, point.PricePerUnitUSD)
	}
	perOunce, err := domain.ConvertQuantity(decimal.NewFromInt(1), domain.UnitOunce, point.Unit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s priced per %s: %v", apperrors.ErrUnsupportedUnit, metal, point.Unit, err)
	}
	return point.PricePerUnitUSD.Mul(perOunce), nil
}

func (s *conversionService) currencyToUSD(ctx context.Context, amount decimal.Decimal, currency string, period *int) (decimal.Decimal, error) {
	if currency == domain.BaseCurrencyName {
		return amount, nil
	}
	unit, err := s.usdPerUnit(ctx, currency, period)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(unit), nil
}

func (s *conversionService) usdToCurrency(ctx context.Context, usd decimal.Decimal, currency string, period *int) (decimal.Decimal, error) {
	if currency == domain.BaseCurrencyName {
		return usd, nil
	}
	unit, err := s.usdPerUnit(ctx, currency, period)
	if err != nil {
		return decimal.Zero, err
	}
	return usd.DivRound(unit, divisionPrecision), nil
}

// CurrencyToUSD converts amount units of currency to USD.
func (s *conversionService) CurrencyToUSD(ctx context.Context, amount decimal.Decimal, currency string, period *int) (decimal.Decimal, error) {
	var result decimal.Decimal
	err := s.inSnapshot(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.currencyToUSD(ctx, amount, currency, period)
		return err
	})
	return result, err
}

// USDToCurrency converts a USD amount into units of currency.
func (s *conversionService) USDToCurrency(ctx context.Context, usd decimal.Decimal, currency string, period *int) (decimal.Decimal, error) {
	var result decimal.Decimal
	err := s.inSnapshot(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.usdToCurrency(ctx, usd, currency, period)
		return err
	})
	return result, err
}

// Convert converts between two currencies through USD.
func (s *conversionService) Convert(ctx context.Context, amount decimal.Decimal, from, to string, period *int) (decimal.Decimal, error) {
	var result decimal.Decimal
	err := s.inSnapshot(ctx, func(ctx context.Context) error {
		usd, err := s.currencyToUSD(ctx, amount, from, period)
		if err != nil {
			return err
		}
		result, err = s.usdToCurrency(ctx, usd, to, period)
		return err
	})
	return result, err
}

// MetalToUSD values a quantity of metal at its latest price.
func (s *conversionService) MetalToUSD(ctx context.Context, metal string, amount decimal.Decimal, unit string, period *int) (decimal.Decimal, error) {
	return s.commodityToUSD(ctx, domain.Metal, metal, amount, unit, period)
}

// MaterialToUSD values a quantity of material at its latest price.
func (s *conversionService) MaterialToUSD(ctx context.Context, material string, amount decimal.Decimal, unit string, period *int) (decimal.Decimal, error) {
	return s.commodityToUSD(ctx, domain.Material, material, amount, unit, period)
}

func (s *conversionService) commodityToUSD(ctx context.Context, kind domain.CommodityKind, name string, amount decimal.Decimal, unit string, period *int) (decimal.Decimal, error) {
	point, err := s.priceRepo.FindLatestPrice(ctx, kind, name, period)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price of %s: %w", name, err)
	}
	if !point.PricePerUnitUSD.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price of %s is %s",
			apperrors.ErrInvalidConfiguration, name, point.PricePerUnitUSD)
	}
	native, err := domain.ConvertQuantity(amount, unit, point.Unit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s priced per %s: %v", apperrors.ErrUnsupportedUnit, name, point.Unit, err)
	}
	return native.Mul(point.PricePerUnitUSD), nil
}

// GemstoneToUSD values carats of a gemstone at its current per-carat value.
func (s *conversionService) GemstoneToUSD(ctx context.Context, name string, carats decimal.Decimal) (decimal.Decimal, error) {
	gem, err := s.gemstoneRepo.FindGemstoneByName(ctx, name)
	if err != nil {
		return decimal.Zero, fmt.Errorf("gemstone %s: %w", name, err)
	}
	if !gem.ValuePerCarat.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: gemstone %s has no value per carat", apperrors.ErrInvalidConfiguration, name)
	}
	return carats.Mul(gem.ValuePerCarat), nil
}

// denominationsOf returns the denominations of currency. USD has none when it is not stored.
func (s *conversionService) denominationsOf(ctx context.Context, currency string) ([]domain.Denomination, error) {
	cur, err := s.currencyRepo.FindCurrencyByName(ctx, currency)
	if err != nil {
		if currency == domain.BaseCurrencyName && errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("currency %q: %w", currency, err)
	}
	return cur.Denominations, nil
}

// Breakdown splits amount of currency into its denominations.
func (s *conversionService) Breakdown(ctx context.Context, amount decimal.Decimal, currency string) (*domain.Breakdown, error) {
	var result domain.Breakdown
	err := s.inSnapshot(ctx, func(ctx context.Context) error {
		denoms, err := s.denominationsOf(ctx, currency)
		if err != nil {
			return err
		}
		result = computeBreakdown(amount, currency, denoms)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Rates returns how many units of every registered currency equal one unit of base.
// A currency that cannot be resolved gets rate zero instead of failing the table.
// A registered base that cannot be resolved yields a table of zeros; an unknown base is ErrNotFound.
func (s *conversionService) Rates(ctx context.Context, base string, period *int) (*domain.RateTable, error) {
	if base == "" {
		base = domain.BaseCurrencyName
	}
	table := &domain.RateTable{
		BaseCurrency: base,
		Period:       period,
		Rates:        make(map[string]decimal.Decimal),
	}

	err := s.inSnapshot(ctx, func(ctx context.Context) error {
		if base != domain.BaseCurrencyName {
			if _, err := s.currencyRepo.FindCurrencyByName(ctx, base); err != nil {
				return fmt.Errorf("base currency %q: %w", base, err)
			}
		}
		baseUSD, err := s.currencyToUSD(ctx, decimal.NewFromInt(1), base, period)
		if err != nil {
			s.LogDebug(ctx, "Base currency unresolvable, rate table zeroed",
				slog.String("currency", base), slog.String("error", err.Error()))
			baseUSD = decimal.Zero
		}
		currencies, err := s.currencyRepo.ListCurrencies(ctx)
		if err != nil {
			return fmt.Errorf("listing currencies: %w", err)
		}
		for _, c := range currencies {
			rate, err := s.usdToCurrency(ctx, baseUSD, c.Name, period)
			if err != nil {
				s.LogDebug(ctx, "Currency excluded from rate table",
					slog.String("currency", c.Name), slog.String("error", err.Error()))
				rate = decimal.Zero
			}
			table.Rates[c.Name] = rate
		}
		if _, ok := table.Rates[domain.BaseCurrencyName]; !ok {
			table.Rates[domain.BaseCurrencyName] = baseUSD
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Display projects a USD value into several currencies, each with its breakdown.
// Currencies that cannot be converted are left out.
func (s *conversionService) Display(ctx context.Context, usd decimal.Decimal, targets []string, period *int) (*domain.ValueDisplay, error) {
	display := &domain.ValueDisplay{
		USDValue:    usd,
		Conversions: make(map[string]domain.CurrencyDisplay),
	}

	err := s.inSnapshot(ctx, func(ctx context.Context) error {
		if len(targets) == 0 {
			currencies, err := s.currencyRepo.ListCurrencies(ctx)
			if err != nil {
				return fmt.Errorf("listing currencies: %w", err)
			}
			targets = make([]string, 0, len(currencies)+1)
			targets = append(targets, domain.BaseCurrencyName)
			for _, c := range currencies {
				if c.Name != domain.BaseCurrencyName {
					targets = append(targets, c.Name)
				}
			}
		}

		for _, name := range targets {
			if name == domain.BaseCurrencyName {
				display.Conversions[name] = domain.CurrencyDisplay{
					Amount:    usd,
					Formatted: utils.FormatUSD(usd),
				}
				continue
			}
			entry, err := s.displayIn(ctx, usd, name, period)
			if err != nil {
				s.LogDebug(ctx, "Currency omitted from display",
					slog.String("currency", name), slog.String("error", err.Error()))
				continue
			}
			display.Conversions[name] = entry
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return display, nil
}

func (s *conversionService) displayIn(ctx context.Context, usd decimal.Decimal, currency string, period *int) (domain.CurrencyDisplay, error) {
	amount, err := s.usdToCurrency(ctx, usd, currency, period)
	if err != nil {
		return domain.CurrencyDisplay{}, err
	}
	denoms, err := s.denominationsOf(ctx, currency)
	if err != nil {
		return domain.CurrencyDisplay{}, err
	}
	// Amount is the breakdown total so the entries sum to it exactly.
	b := computeBreakdown(amount, currency, denoms)
	return domain.CurrencyDisplay{
		Amount:    b.Total,
		Formatted: b.Formatted,
		Breakdown: b.Entries,
	}, nil
}
