package models

import "github.com/shopspring/decimal"

// Currency is a row of the currencies table.
type Currency struct {
	Name          string          `json:"name"` // Primary Key
	PegType       string          `json:"pegType"`
	PegTarget     string          `json:"pegTarget"`
	BaseUnitValue decimal.Decimal `json:"baseUnitValue"`
	AuditFields
}

// Denomination is a row of the currency_denominations table.
type Denomination struct {
	DenominationID   int64           `json:"denominationID"`
	CurrencyName     string          `json:"currencyName"`
	Name             string          `json:"name"`
	ValueInBaseUnits decimal.Decimal `json:"valueInBaseUnits"`
}
