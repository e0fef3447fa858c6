package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Weight units with a fixed factor to ounces.
const (
	UnitOunce    = "oz"
	UnitPound    = "lb"
	UnitKilogram = "kg"
)

var (
	ouncesPerPound    = decimal.NewFromInt(16)
	ouncesPerKilogram = decimal.RequireFromString("35.274")
)

var unitAliases = map[string]string{
	"oz": UnitOunce, "ounce": UnitOunce, "ounces": UnitOunce, "troy oz": UnitOunce,
	"lb": UnitPound, "lbs": UnitPound, "pound": UnitPound, "pounds": UnitPound,
	"kg": UnitKilogram, "kilogram": UnitKilogram, "kilograms": UnitKilogram,
}

// NormalizeUnit maps a unit spelling to its canonical short form.
// Units outside the weight table are returned trimmed and lower-cased.
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := unitAliases[u]; ok {
		return canonical
	}
	return u
}

func ouncesPer(unit string) (decimal.Decimal, bool) {
	switch unit {
	case UnitOunce:
		return decimal.NewFromInt(1), true
	case UnitPound:
		return ouncesPerPound, true
	case UnitKilogram:
		return ouncesPerKilogram, true
	}
	return decimal.Zero, false
}

// ConvertQuantity expresses amount (in unit from) in unit to.
// Identical units pass through unchanged; otherwise both must be weight units.
func ConvertQuantity(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = NormalizeUnit(from), NormalizeUnit(to)
	if from == to {
		return amount, nil
	}
	fromOz, okFrom := ouncesPer(from)
	toOz, okTo := ouncesPer(to)
	if !okFrom || !okTo {
		return decimal.Zero, fmt.Errorf("cannot convert %s to %s", from, to)
	}
	return amount.Mul(fromOz).DivRound(toOz, 28), nil
}
