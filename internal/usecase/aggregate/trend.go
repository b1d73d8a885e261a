package aggregate

import (
	"math"
	"time"

	"taller_dashboards/internal/domain/entities"
)

// trendDeadBandPct is the band around zero inside which a delta is reported
// as neutral.
const trendDeadBandPct = 5.0

type MonthTrend struct {
	CurrentMonth  int     `json:"current_month"`
	PreviousMonth int     `json:"previous_month"`
	DeltaPct      float64 `json:"delta_pct"`
	Direction     string  `json:"direction"`
}

// MonthTrendOf compares order volume between the current and the immediately
// preceding calendar month. A zero previous month yields a zero delta, never
// a division by zero.
func MonthTrendOf(orders []entities.WorkOrder, now time.Time) MonthTrend {
	t := MonthTrend{Direction: "neutral"}
	prevMonth := StartOfPreviousMonth(now)

	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		if SameCalendarMonth(o.CreatedAt, now) {
			t.CurrentMonth++
		} else if SameCalendarMonth(o.CreatedAt, prevMonth) {
			t.PreviousMonth++
		}
	}

	if t.PreviousMonth == 0 {
		return t
	}
	t.DeltaPct = math.Round(float64(t.CurrentMonth-t.PreviousMonth)/float64(t.PreviousMonth)*1000) / 10
	switch {
	case t.DeltaPct > trendDeadBandPct:
		t.Direction = "positive"
	case t.DeltaPct < -trendDeadBandPct:
		t.Direction = "negative"
	}
	return t
}
