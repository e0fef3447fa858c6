package services

import (
	portsrepo "github.com/SscSPs/hord_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)

	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(
			repos.CurrencyRepo,
			repos.PriceRepo,
			repos.GemstoneRepo,
			WithSupportedMetalPegs(cfg.SupportedMetalPegs...),
			WithReadSnapshot(repos.TxManager),
		),
		Currency:   currencySvc,
		Price:      NewPriceService(repos.PriceRepo),
		Gemstone:   NewGemstoneService(repos.GemstoneRepo),
		Auth:       NewAuthService(cfg),
		StaticData: currencySvc,
	}
}
