package entities

import (
	"strings"
	"time"

	"taller_dashboards/internal/domain/correlate"
)

// OrderState represents the stored lifecycle of a work order.
//
// Domain notes:
//   - The workshop backend is the source of truth; this service only reads.
//   - "Billed" is NOT a stored state: an order counts as DELIVERED in every
//     tally as soon as a payment references it (see usecase/aggregate).
//   - CANCELLED orders are excluded from every "active" count.

type OrderState string

const (
	OrderStateReceived   OrderState = "RECEIVED"
	OrderStateDiagnosed  OrderState = "DIAGNOSED"
	OrderStateInProgress OrderState = "IN_PROGRESS"
	OrderStateCompleted  OrderState = "COMPLETED"
	OrderStateDelivered  OrderState = "DELIVERED"
	OrderStateCancelled  OrderState = "CANCELLED"
	OrderStateUnknown    OrderState = "UNKNOWN"
)

// NormalizeOrderState maps the state tokens seen in the wild (English and
// Spanish, any casing) onto the canonical set. Anything unrecognized becomes
// UNKNOWN rather than failing.
func NormalizeOrderState(raw string) OrderState {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "RECEIVED", "RECIBIDA", "RECIBIDO", "NUEVA":
		return OrderStateReceived
	case "DIAGNOSED", "DIAGNOSTICADA", "DIAGNOSTICO", "EN_DIAGNOSTICO":
		return OrderStateDiagnosed
	case "IN_PROGRESS", "EN_PROCESO", "EN_PROGRESO", "EN_REPARACION":
		return OrderStateInProgress
	case "COMPLETED", "COMPLETADA", "COMPLETADO", "TERMINADA", "FINALIZADA":
		return OrderStateCompleted
	case "DELIVERED", "ENTREGADA", "ENTREGADO", "FACTURADA":
		return OrderStateDelivered
	case "CANCELLED", "CANCELED", "CANCELADA", "CANCELADO", "ANULADA":
		return OrderStateCancelled
	default:
		return OrderStateUnknown
	}
}

type OrderPriority string

const (
	PriorityLow     OrderPriority = "LOW"
	PriorityNormal  OrderPriority = "NORMAL"
	PriorityHigh    OrderPriority = "HIGH"
	PriorityUrgent  OrderPriority = "URGENT"
	PriorityUnknown OrderPriority = "UNKNOWN"
)

func NormalizePriority(raw string) OrderPriority {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LOW", "BAJA":
		return PriorityLow
	case "NORMAL", "MEDIA":
		return PriorityNormal
	case "HIGH", "ALTA":
		return PriorityHigh
	case "URGENT", "URGENTE":
		return PriorityUrgent
	default:
		return PriorityUnknown
	}
}

// WorkOrder is the canonical read model for one service order. References to
// other collections are candidate-key sets (correlate.Ref) because the
// backend names them inconsistently.
type WorkOrder struct {
	ID     string
	Number string

	State    OrderState
	Priority OrderPriority

	CreatedAt         time.Time
	EstimatedDelivery time.Time
	CompletedAt       time.Time

	ClientRef     correlate.Ref
	MotorcycleRef correlate.Ref
	MechanicRef   correlate.Ref
	CreatedByRef  correlate.Ref
	ServiceRefs   []correlate.Ref

	Problem   string
	Diagnosis string
	Notes     string
}

// Keys returns the candidate identifiers under which payments or other
// collections may reference this order.
func (o WorkOrder) Keys() correlate.Ref {
	return correlate.NewRef(o.ID, o.Number)
}

// Cancelled reports whether the order is excluded from active counts.
func (o WorkOrder) Cancelled() bool { return o.State == OrderStateCancelled }
