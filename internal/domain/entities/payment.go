package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/correlate"
)

// PaymentStatus is the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusComplete PaymentStatus = "COMPLETE"
	PaymentStatusUnknown  PaymentStatus = "UNKNOWN"
)

func NormalizePaymentStatus(raw string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDING", "PENDIENTE":
		return PaymentStatusPending
	case "COMPLETE", "COMPLETED", "COMPLETADO", "PAGADO", "APROBADO":
		return PaymentStatusComplete
	default:
		return PaymentStatusUnknown
	}
}

// Payment is one recorded payment. OrderRef carries every candidate the
// backend may have used to link it to a work order (numeric order id, order
// number, or a nested order object) — the link is resolved by correlation,
// never assumed.
type Payment struct {
	ID       string
	Amount   decimal.Decimal
	Method   string
	OrderRef correlate.Ref
	PaidAt   time.Time
	Status   PaymentStatus
}
