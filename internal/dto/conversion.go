package dto

import (
	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertQuery holds the query parameters of a currency-to-currency conversion.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Period *int   `form:"period" binding:"omitempty,min=1"`
}

// USDLegQuery holds the query parameters of a conversion to or from USD.
type USDLegQuery struct {
	Amount   string `form:"amount" binding:"required"`
	Currency string `form:"currency" binding:"required"`
	Period   *int   `form:"period" binding:"omitempty,min=1"`
}

// CommodityValueQuery holds the query parameters of a metal or material valuation.
type CommodityValueQuery struct {
	Name   string `form:"name" binding:"required"`
	Amount string `form:"amount" binding:"required"`
	Unit   string `form:"unit" binding:"required"`
	Period *int   `form:"period" binding:"omitempty,min=1"`
}

// GemstoneValueQuery holds the query parameters of a gemstone valuation.
type GemstoneValueQuery struct {
	Name   string `form:"name" binding:"required"`
	Carats string `form:"carats" binding:"required"`
}

// RatesQuery holds the query parameters of a rate table request.
type RatesQuery struct {
	Base   string `form:"base,default=USD"`
	Period *int   `form:"period" binding:"omitempty,min=1"`
}

// BreakdownQuery holds the query parameters of a denomination breakdown.
type BreakdownQuery struct {
	Amount string `form:"amount" binding:"required"`
}

// ConversionResponse is the result of a single conversion.
type ConversionResponse struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Result decimal.Decimal `json:"result" swaggertype:"string"`
	Period *int            `json:"period,omitempty"`
}

// CommodityValueResponse is the USD value of a quantity of metal, material or gemstone.
type CommodityValueResponse struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string"`
	Unit     string          `json:"unit"`
	USDValue decimal.Decimal `json:"usdValue" swaggertype:"string"`
	Period   *int            `json:"period,omitempty"`
}

// BreakdownEntryResponse is one line of a denomination breakdown.
type BreakdownEntryResponse struct {
	Denomination string          `json:"denomination"`
	Count        int64           `json:"count"`
	Value        decimal.Decimal `json:"value" swaggertype:"string"`
	TotalValue   decimal.Decimal `json:"totalValue" swaggertype:"string"`
	Fractional   bool            `json:"fractional,omitempty"`
}

// BreakdownResponse is a denomination breakdown of an amount.
type BreakdownResponse struct {
	Currency  string                   `json:"currency"`
	Total     decimal.Decimal          `json:"total" swaggertype:"string"`
	Entries   []BreakdownEntryResponse `json:"entries"`
	Formatted string                   `json:"formatted"`
}

// RatesResponse maps each currency to the units of it equal to one unit of the base.
type RatesResponse struct {
	BaseCurrency string                     `json:"baseCurrency"`
	Period       *int                       `json:"period,omitempty"`
	Rates        map[string]decimal.Decimal `json:"rates" swaggertype:"object,string"`
}

// DisplayRequest asks for a USD value projected into several currencies.
type DisplayRequest struct {
	USDValue         decimal.Decimal `json:"usdValue" swaggertype:"string" example:"1234.5"`
	TargetCurrencies []string        `json:"targetCurrencies,omitempty"`
	Period           *int            `json:"period,omitempty" binding:"omitempty,min=1"`
}

// CurrencyDisplayResponse is one currency's projection of a USD value.
type CurrencyDisplayResponse struct {
	Amount    decimal.Decimal          `json:"amount" swaggertype:"string"`
	Formatted string                   `json:"formatted"`
	Breakdown []BreakdownEntryResponse `json:"breakdown,omitempty"`
}

// DisplayResponse maps currency names to their projection of the USD value.
type DisplayResponse struct {
	USDValue    decimal.Decimal                    `json:"usdValue" swaggertype:"string"`
	Conversions map[string]CurrencyDisplayResponse `json:"conversions"`
}

func toBreakdownEntries(entries []domain.BreakdownEntry) []BreakdownEntryResponse {
	if entries == nil {
		return nil
	}
	res := make([]BreakdownEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = BreakdownEntryResponse{
			Denomination: e.Denomination,
			Count:        e.Count,
			Value:        e.Value,
			TotalValue:   e.TotalValue,
			Fractional:   e.Fractional,
		}
	}
	return res
}

// ToBreakdownResponse converts a domain.Breakdown to its DTO.
func ToBreakdownResponse(b *domain.Breakdown) BreakdownResponse {
	entries := toBreakdownEntries(b.Entries)
	if entries == nil {
		entries = []BreakdownEntryResponse{}
	}
	return BreakdownResponse{
		Currency:  b.Currency,
		Total:     b.Total,
		Entries:   entries,
		Formatted: b.Formatted,
	}
}

// ToRatesResponse converts a domain.RateTable to its DTO.
func ToRatesResponse(t *domain.RateTable) RatesResponse {
	return RatesResponse{
		BaseCurrency: t.BaseCurrency,
		Period:       t.Period,
		Rates:        t.Rates,
	}
}

// ToDisplayResponse converts a domain.ValueDisplay to its DTO.
func ToDisplayResponse(v *domain.ValueDisplay) DisplayResponse {
	conversions := make(map[string]CurrencyDisplayResponse, len(v.Conversions))
	for name, d := range v.Conversions {
		conversions[name] = CurrencyDisplayResponse{
			Amount:    d.Amount,
			Formatted: d.Formatted,
			Breakdown: toBreakdownEntries(d.Breakdown),
		}
	}
	return DisplayResponse{USDValue: v.USDValue, Conversions: conversions}
}
