package entities

import (
	"time"

	"taller_dashboards/internal/domain/correlate"
)

// Client is a workshop customer as read from the backend.
type Client struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	NationalID string
	Address    string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Keys returns the candidate identifiers under which orders and motorcycles
// may reference this client (numeric id or national-ID string).
func (c Client) Keys() correlate.Ref {
	return correlate.NewRef(c.ID, c.NationalID)
}
