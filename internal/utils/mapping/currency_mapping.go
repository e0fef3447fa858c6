package mapping

import (
	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency. Denominations are mapped separately.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		Name:          d.Name,
		PegType:       string(d.PegType),
		PegTarget:     d.PegTarget,
		BaseUnitValue: d.BaseUnitValue,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency and its denomination rows to a domain Currency
func ToDomainCurrency(m models.Currency, denoms []models.Denomination) domain.Currency {
	return domain.Currency{
		Name:          m.Name,
		PegType:       domain.PegType(m.PegType),
		PegTarget:     m.PegTarget,
		BaseUnitValue: m.BaseUnitValue,
		Denominations: ToDomainDenominationSlice(denoms),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDenomination converts a domain Denomination to a model Denomination
func ToModelDenomination(d domain.Denomination) models.Denomination {
	return models.Denomination{
		DenominationID:   d.DenominationID,
		CurrencyName:     d.CurrencyName,
		Name:             d.Name,
		ValueInBaseUnits: d.ValueInBaseUnits,
	}
}

// ToDomainDenomination converts a model Denomination to a domain Denomination
func ToDomainDenomination(m models.Denomination) domain.Denomination {
	return domain.Denomination{
		DenominationID:   m.DenominationID,
		CurrencyName:     m.CurrencyName,
		Name:             m.Name,
		ValueInBaseUnits: m.ValueInBaseUnits,
	}
}

// ToDomainDenominationSlice converts denomination rows to domain Denominations
func ToDomainDenominationSlice(ms []models.Denomination) []domain.Denomination {
	ds := make([]domain.Denomination, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDenomination(m)
	}
	return ds
}
