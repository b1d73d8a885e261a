package aggregate

import (
	"math"
	"time"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
)

// Productivity is the rolling 30-day completion/on-time view, either for one
// mechanic or workshop-wide (empty mechanic ref).
type Productivity struct {
	Assigned30d    int     `json:"assigned_30d"`
	Completed30d   int     `json:"completed_30d"`
	CompletionRate float64 `json:"completion_rate"`
	OnTimeRate     float64 `json:"on_time_rate"`
}

func ProductivityOf(orders []entities.WorkOrder, mechanic correlate.Ref, now time.Time) Productivity {
	p := Productivity{}
	since := now.AddDate(0, 0, -30)
	withDates, onTime := 0, 0

	for _, o := range orders {
		if o.Cancelled() || !inWindow(o.CreatedAt, since) {
			continue
		}
		if !mechanic.Empty() && !o.MechanicRef.Matches(mechanic) {
			continue
		}
		p.Assigned30d++
		if isCompleted(o) {
			p.Completed30d++
		}
		if !o.CompletedAt.IsZero() && !o.EstimatedDelivery.IsZero() {
			withDates++
			if !o.CompletedAt.After(o.EstimatedDelivery) {
				onTime++
			}
		}
	}

	p.CompletionRate = ratioPct(p.Completed30d, p.Assigned30d)
	p.OnTimeRate = ratioPct(onTime, withDates)
	return p
}

func isCompleted(o entities.WorkOrder) bool {
	return !o.CompletedAt.IsZero() ||
		o.State == entities.OrderStateCompleted ||
		o.State == entities.OrderStateDelivered
}

func ratioPct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}

// ActivitySummary is the receptionist's front-desk 30-day view.
type ActivitySummary struct {
	OrdersRegistered     int     `json:"orders_registered"`
	ClientsRegistered    int     `json:"clients_registered"`
	PaymentsCollected    int     `json:"payments_collected"`
	AvgOrdersPerDay      float64 `json:"avg_orders_per_day"`
	AvgAttentionTimeDays float64 `json:"avg_attention_time_days"`
}

func ActivitySummaryOf(orders []entities.WorkOrder, clients []entities.Client, payments []entities.Payment, now time.Time) ActivitySummary {
	s := ActivitySummary{}
	since := now.AddDate(0, 0, -30)

	attentionDays, attended := 0.0, 0
	for _, o := range orders {
		if inWindow(o.CreatedAt, since) {
			s.OrdersRegistered++
		}
		if !o.CreatedAt.IsZero() && !o.CompletedAt.IsZero() && inWindow(o.CompletedAt, since) &&
			!o.CompletedAt.Before(o.CreatedAt) {
			attentionDays += o.CompletedAt.Sub(o.CreatedAt).Hours() / 24
			attended++
		}
	}
	for _, c := range clients {
		if inWindow(c.CreatedAt, since) {
			s.ClientsRegistered++
		}
	}
	for _, p := range payments {
		if inWindow(p.PaidAt, since) {
			s.PaymentsCollected++
		}
	}

	s.AvgOrdersPerDay = round2(float64(s.OrdersRegistered) / 30)
	if attended > 0 {
		s.AvgAttentionTimeDays = round2(attentionDays / float64(attended))
	}
	return s
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
