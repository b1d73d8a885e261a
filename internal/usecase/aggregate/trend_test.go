package aggregate

import (
	"testing"

	"taller_dashboards/internal/domain/entities"
)

func TestMonthTrendOf(t *testing.T) {
	mk := func(current, previous int) []entities.WorkOrder {
		var orders []entities.WorkOrder
		for i := 0; i < current; i++ {
			orders = append(orders, entities.WorkOrder{CreatedAt: StartOfMonth(testNow).Add(1)})
		}
		for i := 0; i < previous; i++ {
			orders = append(orders, entities.WorkOrder{CreatedAt: StartOfPreviousMonth(testNow).Add(1)})
		}
		return orders
	}

	t.Run("both months zero", func(t *testing.T) {
		tr := MonthTrendOf(nil, testNow)
		if tr.DeltaPct != 0 || tr.Direction != "neutral" {
			t.Fatalf("expected 0/neutral, got %+v", tr)
		}
	})

	t.Run("previous month zero never divides", func(t *testing.T) {
		tr := MonthTrendOf(mk(7, 0), testNow)
		if tr.CurrentMonth != 7 || tr.PreviousMonth != 0 {
			t.Fatalf("unexpected counts: %+v", tr)
		}
		if tr.DeltaPct != 0 || tr.Direction != "neutral" {
			t.Fatalf("expected delta 0 when previous is 0, got %+v", tr)
		}
	})

	t.Run("growth above dead band is positive", func(t *testing.T) {
		tr := MonthTrendOf(mk(12, 10), testNow)
		if tr.DeltaPct != 20 || tr.Direction != "positive" {
			t.Fatalf("expected +20%% positive, got %+v", tr)
		}
	})

	t.Run("drop below dead band is negative", func(t *testing.T) {
		tr := MonthTrendOf(mk(5, 10), testNow)
		if tr.DeltaPct != -50 || tr.Direction != "negative" {
			t.Fatalf("expected -50%% negative, got %+v", tr)
		}
	})

	t.Run("small change stays neutral", func(t *testing.T) {
		tr := MonthTrendOf(mk(102, 100), testNow)
		if tr.DeltaPct != 2 || tr.Direction != "neutral" {
			t.Fatalf("expected +2%% neutral, got %+v", tr)
		}
	})
}
