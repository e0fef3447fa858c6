package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CommodityKind distinguishes the two historized commodity price series.
type CommodityKind string

const (
	Metal    CommodityKind = "METAL"
	Material CommodityKind = "MATERIAL"
)

// ParseCommodityKind parses a commodity kind case-insensitively.
func ParseCommodityKind(s string) (CommodityKind, error) {
	switch k := CommodityKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case Metal, Material:
		return k, nil
	default:
		return "", fmt.Errorf("unknown commodity kind %q", s)
	}
}

// PricePoint is an immutable historical price for a metal or material.
// The current price is the point with the highest Period, then the latest RecordedAt.
type PricePoint struct {
	PricePointID    int64           `json:"pricePointID"`
	Kind            CommodityKind   `json:"kind"`
	CommodityName   string          `json:"commodityName"`
	Unit            string          `json:"unit"` // native unit, e.g. "oz", "lb", "kg"
	PricePerUnitUSD decimal.Decimal `json:"pricePerUnitUSD"`
	Period          int             `json:"period"` // session number
	RecordedAt      time.Time       `json:"recordedAt"`
}

// PriceHistoryFilter narrows a price history listing. Results are ordered newest first.
type PriceHistoryFilter struct {
	Kind          CommodityKind
	CommodityName *string
	Period        *int
	Limit         int
	// After is the keyset cursor; only points strictly older than it are returned.
	After *PriceCursor
}

// PriceCursor identifies a position in the (period, recorded_at, id) ordering.
type PriceCursor struct {
	Period     int
	RecordedAt time.Time
	ID         int64
}
