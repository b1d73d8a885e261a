package response

import (
	"time"

	"github.com/google/uuid"
)

// DashboardEnvelope is the wire wrapper around every role summary. The
// summary payload itself is pure and idempotent; the report id and timestamp
// are minted here, at the edge.
type DashboardEnvelope struct {
	ReportID          string    `json:"report_id"`
	Role              string    `json:"role"`
	GeneratedAt       time.Time `json:"generated_at"`
	DegradedResources []string  `json:"degraded_resources"`
	Data              any       `json:"data"`
}

func NewDashboardEnvelope(role string, degraded []string, data any) DashboardEnvelope {
	if degraded == nil {
		degraded = []string{}
	}
	return DashboardEnvelope{
		ReportID:          uuid.NewString(),
		Role:              role,
		GeneratedAt:       time.Now().UTC(),
		DegradedResources: degraded,
		Data:              data,
	}
}
