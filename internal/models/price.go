package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is a row of the commodity_prices table.
type PricePoint struct {
	PricePointID    int64           `json:"pricePointID"`
	Kind            string          `json:"kind"`
	CommodityName   string          `json:"commodityName"`
	Unit            string          `json:"unit"`
	PricePerUnitUSD decimal.Decimal `json:"pricePerUnitUSD"`
	Period          int             `json:"period"`
	RecordedAt      time.Time       `json:"recordedAt"`
}
