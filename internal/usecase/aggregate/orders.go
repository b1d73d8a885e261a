package aggregate

import (
	"sort"
	"time"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
)

// OrderStats is the order-state tally plus window counts. CANCELLED orders
// are excluded everywhere; billed orders are tallied under DELIVERED.
type OrderStats struct {
	Total           int            `json:"total"`
	NewToday        int            `json:"new_today"`
	ThisWeek        int            `json:"this_week"`
	ThisMonth       int            `json:"this_month"`
	ByState         map[string]int `json:"by_state"`
	Billed          int            `json:"billed"`
	AwaitingBilling int            `json:"awaiting_billing"`
}

func OrderStatsOf(orders []entities.WorkOrder, billed map[int]bool, now time.Time) OrderStats {
	s := OrderStats{ByState: map[string]int{}}
	day := StartOfDay(now)
	week := now.AddDate(0, 0, -7)
	month := StartOfMonth(now)

	for i, o := range orders {
		if o.Cancelled() {
			continue
		}
		s.Total++
		s.ByState[string(EffectiveState(o, billed[i]))]++
		if billed[i] {
			s.Billed++
		}
		// Awaiting billing means finished work with no payment on record.
		if o.State == entities.OrderStateCompleted && !billed[i] {
			s.AwaitingBilling++
		}
		if inWindow(o.CreatedAt, day) {
			s.NewToday++
		}
		if inWindow(o.CreatedAt, week) {
			s.ThisWeek++
		}
		if inWindow(o.CreatedAt, month) {
			s.ThisMonth++
		}
	}
	return s
}

// OrderDigest is a display row for the recent-orders widget.
type OrderDigest struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	State       string    `json:"state"`
	Priority    string    `json:"priority"`
	Problem     string    `json:"problem"`
	CreatedAt   time.Time `json:"created_at"`
	DaysElapsed int       `json:"days_elapsed"`
}

// RecentOrders returns the newest non-cancelled orders, newest first, capped
// at limit, each annotated with its age in days.
func RecentOrders(orders []entities.WorkOrder, billed map[int]bool, now time.Time, limit int) []OrderDigest {
	type pos struct {
		i int
		o entities.WorkOrder
	}
	kept := make([]pos, 0, len(orders))
	for i, o := range orders {
		if o.Cancelled() {
			continue
		}
		kept = append(kept, pos{i: i, o: o})
	}
	sort.SliceStable(kept, func(a, b int) bool {
		ta, tb := kept[a].o.CreatedAt, kept[b].o.CreatedAt
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return kept[a].o.ID < kept[b].o.ID
	})
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	out := make([]OrderDigest, 0, len(kept))
	for _, p := range kept {
		out = append(out, OrderDigest{
			ID:          p.o.ID,
			Number:      p.o.Number,
			State:       string(EffectiveState(p.o, billed[p.i])),
			Priority:    string(p.o.Priority),
			Problem:     p.o.Problem,
			CreatedAt:   p.o.CreatedAt,
			DaysElapsed: DaysBetween(p.o.CreatedAt, now),
		})
	}
	return out
}

// AssignedStats is the mechanic-facing breakdown of their own orders.
type AssignedStats struct {
	Total    int            `json:"total"`
	ByState  map[string]int `json:"by_state"`
	Urgent   int            `json:"urgent"`
	DueToday int            `json:"due_today"`
}

// AssignedStatsOf tallies the orders whose mechanic reference correlates with
// mechanic. An empty mechanic ref matches nothing.
func AssignedStatsOf(orders []entities.WorkOrder, billed map[int]bool, mechanic correlate.Ref, now time.Time) AssignedStats {
	s := AssignedStats{ByState: map[string]int{}}
	day := StartOfDay(now)
	nextDay := day.AddDate(0, 0, 1)

	for i, o := range orders {
		if o.Cancelled() || !o.MechanicRef.Matches(mechanic) {
			continue
		}
		s.Total++
		st := EffectiveState(o, billed[i])
		s.ByState[string(st)]++
		if o.Priority == entities.PriorityUrgent {
			s.Urgent++
		}
		open := st != entities.OrderStateDelivered && st != entities.OrderStateCompleted
		if open && !o.EstimatedDelivery.IsZero() &&
			!o.EstimatedDelivery.Before(day) && o.EstimatedDelivery.Before(nextDay) {
			s.DueToday++
		}
	}
	return s
}

// RecentAssigned returns the mechanic's newest orders, same shape as
// RecentOrders.
func RecentAssigned(orders []entities.WorkOrder, billed map[int]bool, mechanic correlate.Ref, now time.Time, limit int) []OrderDigest {
	mine := make([]entities.WorkOrder, 0, len(orders))
	mineBilled := make(map[int]bool)
	for i, o := range orders {
		if !o.MechanicRef.Matches(mechanic) {
			continue
		}
		mineBilled[len(mine)] = billed[i]
		mine = append(mine, o)
	}
	return RecentOrders(mine, mineBilled, now, limit)
}
