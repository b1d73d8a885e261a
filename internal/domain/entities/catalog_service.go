package entities

import (
	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/correlate"
)

// CatalogService is a catalog entry (oil change, brake service, ...) that
// work orders reference by id or, in older records, by name.
type CatalogService struct {
	ID        string
	Name      string
	Category  string
	BasePrice decimal.Decimal
}

func (s CatalogService) Keys() correlate.Ref {
	return correlate.NewRef(s.ID, s.Name)
}
