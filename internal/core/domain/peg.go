package domain

import (
	"fmt"
	"strings"
)

// PegType names what kind of entity a currency's value is anchored to.
type PegType string

const (
	PegTypeCurrency PegType = "CURRENCY"
	PegTypeMetal    PegType = "METAL"
	PegTypeMaterial PegType = "MATERIAL"
)

// ParsePegType parses a peg type case-insensitively.
func ParsePegType(s string) (PegType, error) {
	switch pt := PegType(strings.ToUpper(strings.TrimSpace(s))); pt {
	case PegTypeCurrency, PegTypeMetal, PegTypeMaterial:
		return pt, nil
	default:
		return "", fmt.Errorf("unknown peg type %q", s)
	}
}

// Peg is the closed set of peg variants. Only the types in this file implement it.
type Peg interface {
	Type() PegType
	Target() string
	isPeg()
}

// CurrencyPeg anchors a currency to another currency.
type CurrencyPeg struct{ Currency string }

// MetalPeg anchors a currency to a metal's native unit (e.g. troy ounces of Gold).
type MetalPeg struct{ Metal string }

// MaterialPeg anchors a currency to a material's native unit.
type MaterialPeg struct{ Material string }

func (p CurrencyPeg) Type() PegType  { return PegTypeCurrency }
func (p CurrencyPeg) Target() string { return p.Currency }
func (CurrencyPeg) isPeg()           {}
func (p MetalPeg) Type() PegType     { return PegTypeMetal }
func (p MetalPeg) Target() string    { return p.Metal }
func (MetalPeg) isPeg()              {}
func (p MaterialPeg) Type() PegType  { return PegTypeMaterial }
func (p MaterialPeg) Target() string { return p.Material }
func (MaterialPeg) isPeg()           {}

// NewPeg builds the peg variant for a stored (type, target) pair.
func NewPeg(pegType PegType, target string) (Peg, error) {
	switch pegType {
	case PegTypeCurrency:
		return CurrencyPeg{Currency: target}, nil
	case PegTypeMetal:
		return MetalPeg{Metal: target}, nil
	case PegTypeMaterial:
		return MaterialPeg{Material: target}, nil
	default:
		return nil, fmt.Errorf("unknown peg type %q", pegType)
	}
}
