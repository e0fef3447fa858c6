package domain

import "github.com/shopspring/decimal"

// BreakdownEntry is one line of a denomination breakdown.
type BreakdownEntry struct {
	Denomination string          `json:"denomination"`
	Count        int64           `json:"count"`
	Value        decimal.Decimal `json:"value"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	Fractional   bool            `json:"fractional"`
}

// Breakdown expresses an amount as greedy, largest-first denomination counts.
type Breakdown struct {
	Currency  string           `json:"currency"`
	Total     decimal.Decimal  `json:"total"`
	Entries   []BreakdownEntry `json:"entries"`
	Formatted string           `json:"formatted"`
}

// RateTable maps each currency to the units of it equal to one unit of BaseCurrency.
type RateTable struct {
	BaseCurrency string                     `json:"baseCurrency"`
	Period       *int                       `json:"period,omitempty"`
	Rates        map[string]decimal.Decimal `json:"rates"`
}

// CurrencyDisplay is one currency's projection of a USD value.
type CurrencyDisplay struct {
	Amount    decimal.Decimal  `json:"amount"`
	Formatted string           `json:"formatted"`
	Breakdown []BreakdownEntry `json:"breakdown"`
}

// ValueDisplay is a USD value projected into several currencies.
type ValueDisplay struct {
	USDValue    decimal.Decimal            `json:"usdValue"`
	Conversions map[string]CurrencyDisplay `json:"conversions"`
}
