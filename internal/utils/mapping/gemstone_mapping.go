package mapping

import (
	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/models"
)

// ToModelGemstone converts a domain Gemstone to a model Gemstone
func ToModelGemstone(d domain.Gemstone) models.Gemstone {
	return models.Gemstone{
		Name:             d.Name,
		ValuePerCaratUSD: d.ValuePerCarat,
		LastUpdatedAt:    d.LastUpdatedAt,
		LastUpdatedBy:    d.LastUpdatedBy,
	}
}

// ToDomainGemstone converts a model Gemstone to a domain Gemstone
func ToDomainGemstone(m models.Gemstone) domain.Gemstone {
	return domain.Gemstone{
		Name:          m.Name,
		ValuePerCarat: m.ValuePerCaratUSD,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToDomainGemstoneSlice converts model Gemstones to domain Gemstones
func ToDomainGemstoneSlice(ms []models.Gemstone) []domain.Gemstone {
	ds := make([]domain.Gemstone, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGemstone(m)
	}
	return ds
}
