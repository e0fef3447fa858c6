package domain

import "github.com/shopspring/decimal"

// BaseCurrencyName is the universal base every peg chain terminates at.
const BaseCurrencyName = "USD"

// Currency represents one in-game currency and its peg.
// One unit of the currency equals BaseUnitValue units of the peg target's base measure.
type Currency struct {
	Name          string          `json:"name"` // Primary Key (e.g., "USD", "Gold Standard Note")
	PegType       PegType         `json:"pegType"`
	PegTarget     string          `json:"pegTarget"`
	BaseUnitValue decimal.Decimal `json:"baseUnitValue"`
	Denominations []Denomination  `json:"denominations"`
	AuditFields
}

// Peg returns the tagged peg variant for the currency.
func (c Currency) Peg() (Peg, error) {
	return NewPeg(c.PegType, c.PegTarget)
}

// IsBase reports whether c is the USD base currency.
func (c Currency) IsBase() bool {
	return c.Name == BaseCurrencyName
}

// BaseCurrency returns the canonical USD definition (USD pegged to itself at 1).
func BaseCurrency() Currency {
	return Currency{
		Name:          BaseCurrencyName,
		PegType:       PegTypeCurrency,
		PegTarget:     BaseCurrencyName,
		BaseUnitValue: decimal.NewFromInt(1),
	}
}

// Denomination is a named sub-unit of a currency, valued in the currency's base units.
type Denomination struct {
	DenominationID   int64           `json:"denominationID"`
	CurrencyName     string          `json:"currencyName"` // FK -> currencies.name (ON DELETE CASCADE)
	Name             string          `json:"name"`
	ValueInBaseUnits decimal.Decimal `json:"valueInBaseUnits"`
}
