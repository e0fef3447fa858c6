package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Conversion ConversionSvcFacade
	Currency   CurrencySvcFacade
	Price      PriceSvcFacade
	Gemstone   GemstoneSvcFacade
	Auth       AuthSvcFacade
	StaticData StaticDataService
}

// StaticDataService seeds the rows the engine relies on, such as the USD base currency.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
