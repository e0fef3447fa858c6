package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/hord_manager/internal/apperrors"
	"github.com/SscSPs/hord_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hord_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/shopspring/decimal"
)

// SystemActor is recorded as the author of rows written by the service itself.
const SystemActor = "system"

// CurrencyService manages the currency registry.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryWithTx
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryWithTx) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var (
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.StaticDataService = (*CurrencyService)(nil)
)

// validateCurrencyDef checks the peg of a currency about to be written.
// Peg targets are resolved by name at conversion time, so their existence is not checked here.
func validateCurrencyDef(c domain.Currency) error {
	if c.Name == "" {
		return apperrors.NewValidationError("currency name is required")
	}
	if _, err := domain.NewPeg(c.PegType, c.PegTarget); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(c.PegTarget) == "" {
		return apperrors.NewValidationError("peg target is required")
	}
	if !c.BaseUnitValue.IsPositive() {
		return apperrors.NewValidationError("base unit value must be greater than zero")
	}
	if c.IsBase() {
		usd := domain.BaseCurrency()
		if c.PegType != usd.PegType || c.PegTarget != usd.PegTarget || !c.BaseUnitValue.Equal(usd.BaseUnitValue) {
			return apperrors.NewValidationError("USD must stay pegged to itself at 1")
		}
		return nil
	}
	if c.PegType == domain.PegTypeCurrency && c.PegTarget == c.Name {
		return apperrors.NewValidationError("a currency cannot peg to itself")
	}
	return nil
}

func validateDenomination(d dto.DenominationInput) error {
	if strings.TrimSpace(d.Name) == "" {
		return apperrors.NewValidationError("denomination name is required")
	}
	if !d.ValueInBaseUnits.IsPositive() {
		return apperrors.NewValidationError(fmt.Sprintf("denomination %q must have a value greater than zero", d.Name))
	}
	return nil
}

func toDenominations(currency string, inputs []dto.DenominationInput) ([]domain.Denomination, error) {
	seen := make(map[string]struct{}, len(inputs))
	denoms := make([]domain.Denomination, 0, len(inputs))
	for _, in := range inputs {
		if err := validateDenomination(in); err != nil {
			return nil, err
		}
		name := strings.TrimSpace(in.Name)
		if _, dup := seen[name]; dup {
			return nil, apperrors.NewValidationError(fmt.Sprintf("denomination %q listed twice", name))
		}
		seen[name] = struct{}{}
		denoms = append(denoms, domain.Denomination{
			CurrencyName:     currency,
			Name:             name,
			ValueInBaseUnits: in.ValueInBaseUnits,
		})
	}
	return denoms, nil
}

// CreateCurrency persists a new currency with its denominations.
// With upsert an existing currency has its peg and its full denomination set replaced.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, upsert bool, actor string) (*domain.Currency, error) {
	pegType, err := domain.ParsePegType(req.PegType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	now := time.Now().UTC()
	currency := domain.Currency{
		Name:          strings.TrimSpace(req.Name),
		PegType:       pegType,
		PegTarget:     strings.TrimSpace(req.PegTarget),
		BaseUnitValue: req.BaseUnitValue,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := validateCurrencyDef(currency); err != nil {
		return nil, err
	}
	denoms, err := toDenominations(currency.Name, req.Denominations)
	if err != nil {
		return nil, err
	}

	var saved *domain.Currency
	err = s.currencyRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.currencyRepo.FindCurrencyByName(ctx, currency.Name)
		switch {
		case err == nil:
			if !upsert {
				return apperrors.NewDuplicateError(fmt.Sprintf("currency %q already exists", currency.Name))
			}
			currency.CreatedAt = existing.CreatedAt
			currency.CreatedBy = existing.CreatedBy
			if err := s.currencyRepo.UpdateCurrency(ctx, currency); err != nil {
				return err
			}
		case errors.Is(err, apperrors.ErrNotFound):
			if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
				return err
			}
		default:
			return err
		}
		if err := s.currencyRepo.ReplaceDenominations(ctx, currency.Name, denoms); err != nil {
			return err
		}
		saved, err = s.currencyRepo.FindCurrencyByName(ctx, currency.Name)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create currency", slog.String("currency", currency.Name), slog.Bool("upsert", upsert))
		return nil, fmt.Errorf("failed to create currency %q: %w", currency.Name, err)
	}

	s.LogInfo(ctx, "Currency saved", slog.String("currency", saved.Name), slog.Int("denominations", len(saved.Denominations)))
	return saved, nil
}

// GetCurrency retrieves a currency with its denominations.
func (s *CurrencyService) GetCurrency(ctx context.Context, name string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %q: %w", name, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies, USD first and the rest by name.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	sort.SliceStable(currencies, func(i, j int) bool {
		if currencies[i].IsBase() != currencies[j].IsBase() {
			return currencies[i].IsBase()
		}
		return currencies[i].Name < currencies[j].Name
	})
	return currencies, nil
}

// PatchCurrency applies a partial update to a currency and its denominations in one transaction.
func (s *CurrencyService) PatchCurrency(ctx context.Context, name string, req dto.PatchCurrencyRequest, actor string) (*domain.Currency, error) {
	var patched *domain.Currency
	err := s.currencyRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.currencyRepo.FindCurrencyByName(ctx, name)
		if err != nil {
			return err
		}

		updated := *current
		pegChanged := false
		if req.PegType != nil {
			pt, err := domain.ParsePegType(*req.PegType)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			updated.PegType, pegChanged = pt, true
		}
		if req.PegTarget != nil {
			updated.PegTarget, pegChanged = strings.TrimSpace(*req.PegTarget), true
		}
		if req.BaseUnitValue != nil {
			updated.BaseUnitValue, pegChanged = *req.BaseUnitValue, true
		}
		if pegChanged {
			if err := validateCurrencyDef(updated); err != nil {
				return err
			}
			updated.LastUpdatedAt = time.Now().UTC()
			updated.LastUpdatedBy = actor
			if err := s.currencyRepo.UpdateCurrency(ctx, updated); err != nil {
				return err
			}
		}

		owned := make(map[int64]struct{}, len(current.Denominations))
		for _, d := range current.Denominations {
			owned[d.DenominationID] = struct{}{}
		}
		removed := make(map[int64]struct{}, len(req.DenominationIDsRemove))
		for _, id := range req.DenominationIDsRemove {
			if _, ok := owned[id]; !ok {
				return apperrors.NewNotFoundError(fmt.Sprintf("denomination %d of currency %q", id, name))
			}
			removed[id] = struct{}{}
		}

		for _, in := range req.DenominationsAddOrUpdate {
			if err := validateDenomination(in); err != nil {
				return err
			}
			denom := domain.Denomination{
				CurrencyName:     current.Name,
				Name:             strings.TrimSpace(in.Name),
				ValueInBaseUnits: in.ValueInBaseUnits,
			}
			if in.ID != nil {
				if _, ok := owned[*in.ID]; !ok {
					return apperrors.NewNotFoundError(fmt.Sprintf("denomination %d of currency %q", *in.ID, name))
				}
				if _, ok := removed[*in.ID]; ok {
					return apperrors.NewValidationError(fmt.Sprintf("denomination %d is both updated and removed", *in.ID))
				}
				denom.DenominationID = *in.ID
			}
			if _, err := s.currencyRepo.SaveDenomination(ctx, denom); err != nil {
				return err
			}
		}

		if len(req.DenominationIDsRemove) > 0 {
			if err := s.currencyRepo.DeleteDenominations(ctx, current.Name, req.DenominationIDsRemove); err != nil {
				return err
			}
		}

		patched, err = s.currencyRepo.FindCurrencyByName(ctx, current.Name)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to patch currency", slog.String("currency", name))
		return nil, fmt.Errorf("failed to patch currency %q: %w", name, err)
	}
	return patched, nil
}

// DeleteCurrency removes a currency and its denominations.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, name string) error {
	if name == domain.BaseCurrencyName {
		return apperrors.NewValidationError("the USD base currency cannot be deleted")
	}
	if err := s.currencyRepo.DeleteCurrency(ctx, name); err != nil {
		return fmt.Errorf("failed to delete currency %q: %w", name, err)
	}
	s.LogInfo(ctx, "Currency deleted", slog.String("currency", name))
	return nil
}

// InitializeStaticData makes sure the USD base currency exists and is pegged to itself at 1.
func (s *CurrencyService) InitializeStaticData(ctx context.Context) error {
	usd := domain.BaseCurrency()
	now := time.Now().UTC()
	usd.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: SystemActor, LastUpdatedAt: now, LastUpdatedBy: SystemActor}

	return s.currencyRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.currencyRepo.FindCurrencyByName(ctx, usd.Name)
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Seeding USD base currency")
			return s.currencyRepo.SaveCurrency(ctx, usd)
		}
		if err != nil {
			return fmt.Errorf("checking USD base currency: %w", err)
		}
		if existing.PegType == usd.PegType && existing.PegTarget == usd.PegTarget && existing.BaseUnitValue.Equal(decimal.NewFromInt(1)) {
			return nil
		}
		s.LogWarn(ctx, "Repairing USD base currency peg",
			slog.String("peg_type", string(existing.PegType)),
			slog.String("peg_target", existing.PegTarget),
			slog.String("base_unit_value", existing.BaseUnitValue.String()))
		usd.CreatedAt, usd.CreatedBy = existing.CreatedAt, existing.CreatedBy
		return s.currencyRepo.UpdateCurrency(ctx, usd)
	})
}
