package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gemstone is a row of the gemstones table.
type Gemstone struct {
	Name             string          `json:"name"`
	ValuePerCaratUSD decimal.Decimal `json:"valuePerCaratUSD"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}
