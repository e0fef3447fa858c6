package dto

import (
	"time"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DenominationInput describes a denomination in a create or patch request.
// ID is only meaningful in a patch, where it selects the denomination to update.
type DenominationInput struct {
	ID               *int64          `json:"id,omitempty"`
	Name             string          `json:"name" binding:"required,max=100"`
	ValueInBaseUnits decimal.Decimal `json:"valueInBaseUnits" swaggertype:"string" example:"0.01"`
}

// CreateCurrencyRequest defines the data needed to create (or upsert) a currency.
type CreateCurrencyRequest struct {
	Name          string              `json:"name" binding:"required,max=100" example:"Doubloon"`
	PegType       string              `json:"pegType" binding:"required,pegtype" example:"CURRENCY"`
	PegTarget     string              `json:"pegTarget" binding:"required,max=100" example:"USD"`
	BaseUnitValue decimal.Decimal     `json:"baseUnitValue" swaggertype:"string" example:"2.5"`
	Denominations []DenominationInput `json:"denominations" binding:"omitempty,dive"`
}

// PatchCurrencyRequest carries a partial currency update. Absent fields are left untouched.
type PatchCurrencyRequest struct {
	PegType                  *string             `json:"pegType,omitempty" binding:"omitempty,pegtype"`
	PegTarget                *string             `json:"pegTarget,omitempty" binding:"omitempty,min=1,max=100"`
	BaseUnitValue            *decimal.Decimal    `json:"baseUnitValue,omitempty" swaggertype:"string"`
	DenominationsAddOrUpdate []DenominationInput `json:"denominationsAddOrUpdate,omitempty" binding:"omitempty,dive"`
	DenominationIDsRemove    []int64             `json:"denominationIdsRemove,omitempty"`
}

// DenominationResponse defines the data returned for a denomination.
type DenominationResponse struct {
	DenominationID   int64           `json:"denominationID"`
	Name             string          `json:"name"`
	ValueInBaseUnits decimal.Decimal `json:"valueInBaseUnits" swaggertype:"string"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Name          string                 `json:"name"`
	PegType       string                 `json:"pegType"`
	PegTarget     string                 `json:"pegTarget"`
	BaseUnitValue decimal.Decimal        `json:"baseUnitValue" swaggertype:"string"`
	Denominations []DenominationResponse `json:"denominations"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	denoms := make([]DenominationResponse, len(curr.Denominations))
	for i, d := range curr.Denominations {
		denoms[i] = DenominationResponse{
			DenominationID:   d.DenominationID,
			Name:             d.Name,
			ValueInBaseUnits: d.ValueInBaseUnits,
		}
	}
	return CurrencyResponse{
		Name:          curr.Name,
		PegType:       string(curr.PegType),
		PegTarget:     curr.PegTarget,
		BaseUnitValue: curr.BaseUnitValue,
		Denominations: denoms,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
