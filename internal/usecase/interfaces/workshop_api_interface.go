package interfaces

import (
	"context"
	"errors"

	"taller_dashboards/internal/domain/entities"
)

// ErrForbidden is returned by IWorkshopAPI implementations when the backend
// denies access to a resource (HTTP 403). It is the only error class the
// snapshot loader retries.
var ErrForbidden = errors.New("workshop api: forbidden")

// IsForbidden reports whether err is an authorization denial.
func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }

// IWorkshopAPI abstracts the workshop backend's read-only collection
// endpoints. One call per resource, each returning the full collection.
//
// Implementations tolerate field-naming drift in the payloads; callers
// receive canonical entities only.

type IWorkshopAPI interface {
	ListWorkOrders(ctx context.Context) ([]entities.WorkOrder, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	ListMotorcycles(ctx context.Context) ([]entities.Motorcycle, error)
	ListPayments(ctx context.Context) ([]entities.Payment, error)
	ListServices(ctx context.Context) ([]entities.CatalogService, error)
	ListParts(ctx context.Context) ([]entities.Part, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}
