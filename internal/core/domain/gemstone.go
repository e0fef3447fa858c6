package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gemstone holds the current USD value per carat for a named gemstone.
type Gemstone struct {
	Name          string          `json:"name"`
	ValuePerCarat decimal.Decimal `json:"valuePerCaratUSD"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}
