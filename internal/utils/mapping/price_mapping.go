package mapping

import (
	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/models"
)

// ToModelPricePoint converts a domain PricePoint to a model PricePoint
func ToModelPricePoint(d domain.PricePoint) models.PricePoint {
	return models.PricePoint{
		PricePointID:    d.PricePointID,
		Kind:            string(d.Kind),
		CommodityName:   d.CommodityName,
		Unit:            d.Unit,
		PricePerUnitUSD: d.PricePerUnitUSD,
		Period:          d.Period,
		RecordedAt:      d.RecordedAt,
	}
}

// ToDomainPricePoint converts a model PricePoint to a domain PricePoint
func ToDomainPricePoint(m models.PricePoint) domain.PricePoint {
	return domain.PricePoint{
		PricePointID:    m.PricePointID,
		Kind:            domain.CommodityKind(m.Kind),
		CommodityName:   m.CommodityName,
		Unit:            m.Unit,
		PricePerUnitUSD: m.PricePerUnitUSD,
		Period:          m.Period,
		RecordedAt:      m.RecordedAt,
	}
}

// ToDomainPricePointSlice converts model PricePoints to domain PricePoints
func ToDomainPricePointSlice(ms []models.PricePoint) []domain.PricePoint {
	ds := make([]domain.PricePoint, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPricePoint(m)
	}
	return ds
}
