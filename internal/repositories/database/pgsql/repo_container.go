package pgsql

import (
	portsrepo "github.com/SscSPs/hord_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository over one pool. All of them read the
// transaction from the context, so any of them can serve as the TransactionManager.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	priceRepo := newPgxPriceRepository(dbPool)
	gemstoneRepo := newPgxGemstoneRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
		PriceRepo:    priceRepo,
		GemstoneRepo: gemstoneRepo,
		TxManager:    currencyRepo,
	}
}
