package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/entities"
)

func TestPaymentSummaryOf(t *testing.T) {
	t.Run("empty payments keep fixed shape", func(t *testing.T) {
		s := PaymentSummaryOf(nil, testNow, 5)
		if s.MostUsedMethod != "UNKNOWN" {
			t.Fatalf("expected UNKNOWN method, got %q", s.MostUsedMethod)
		}
		if s.Recent == nil || len(s.Recent) != 0 {
			t.Fatalf("recent must be empty, not nil")
		}
		if !s.AmountThisMonth.IsZero() || !s.AmountThisWeek.IsZero() {
			t.Fatalf("expected zero amounts, got %+v", s)
		}
	})

	t.Run("windows, pending and method mode", func(t *testing.T) {
		payments := []entities.Payment{
			{ID: "p1", Amount: decimal.NewFromInt(100), Method: "cash", PaidAt: testNow.AddDate(0, 0, -1),
				Status: entities.PaymentStatusComplete},
			{ID: "p2", Amount: decimal.NewFromInt(50), Method: "CARD", PaidAt: testNow.AddDate(0, 0, -10),
				Status: entities.PaymentStatusPending},
			{ID: "p3", Amount: decimal.NewFromInt(25), Method: "cash", PaidAt: testNow.AddDate(0, -1, 0),
				Status: entities.PaymentStatusComplete},
		}
		s := PaymentSummaryOf(payments, testNow, 2)
		if s.TotalPayments != 3 || s.ThisMonth != 2 || s.ThisWeek != 1 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if !s.AmountThisMonth.Equal(decimal.NewFromInt(150)) || !s.AmountThisWeek.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("unexpected amounts: month=%s week=%s", s.AmountThisMonth, s.AmountThisWeek)
		}
		if s.Pending != 1 {
			t.Fatalf("expected 1 pending, got %d", s.Pending)
		}
		if s.MostUsedMethod != "CASH" {
			t.Fatalf("expected CASH, got %q", s.MostUsedMethod)
		}
		if len(s.Recent) != 2 || s.Recent[0].ID != "p1" {
			t.Fatalf("expected newest-first capped recents, got %+v", s.Recent)
		}
	})
}
