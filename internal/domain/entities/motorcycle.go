package entities

import (
	"time"

	"taller_dashboards/internal/domain/correlate"
)

// Motorcycle is a registered vehicle. Odometer is monotonically
// non-decreasing by business rule; this service does not enforce it.
type Motorcycle struct {
	ID             string
	ClientRef      correlate.Ref
	Brand          string
	Model          string
	Year           int
	Plate          string
	VIN            string
	Color          string
	Odometer       int
	Active         bool
	TechnicalState string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (m Motorcycle) Keys() correlate.Ref {
	return correlate.NewRef(m.ID, m.Plate, m.VIN)
}
