package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
)

func TestFinanceOf(t *testing.T) {
	t.Run("month totals and average", func(t *testing.T) {
		// 10 payments this month summing to 1500.00.
		payments := make([]entities.Payment, 0, 10)
		for i := 0; i < 10; i++ {
			payments = append(payments, entities.Payment{
				ID:     "p",
				Amount: decimal.NewFromFloat(150),
				PaidAt: testNow.AddDate(0, 0, -i),
			})
		}
		f := FinanceOf(nil, payments, nil, testNow)
		if !f.AmountThisMonth.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected 1500 this month, got %s", f.AmountThisMonth)
		}
		if !f.AveragePayment.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("expected average 150, got %s", f.AveragePayment)
		}
	})

	t.Run("average is zero with no payments", func(t *testing.T) {
		f := FinanceOf(nil, nil, nil, testNow)
		if !f.AveragePayment.IsZero() || !f.AmountAllTime.IsZero() {
			t.Fatalf("expected zeroed summary, got %+v", f)
		}
	})

	t.Run("awaiting billing counts completed unbilled orders", func(t *testing.T) {
		orders := []entities.WorkOrder{
			{ID: "1", Number: "ORD-1", State: entities.OrderStateCompleted},
			{ID: "2", Number: "ORD-2", State: entities.OrderStateCompleted},
			{ID: "3", Number: "ORD-3", State: entities.OrderStateInProgress},
		}
		payments := []entities.Payment{
			{ID: "p1", Amount: decimal.NewFromInt(200), OrderRef: correlate.NewRef("ORD-1"), PaidAt: testNow},
		}
		billed := BilledOrders(orders, payments)
		f := FinanceOf(orders, payments, billed, testNow)
		if f.AwaitingBilling != 1 {
			t.Fatalf("expected 1 awaiting billing, got %d", f.AwaitingBilling)
		}
	})

	t.Run("last month excluded from month total", func(t *testing.T) {
		payments := []entities.Payment{
			{Amount: decimal.NewFromInt(100), PaidAt: testNow},
			{Amount: decimal.NewFromInt(40), PaidAt: testNow.AddDate(0, -1, 0)},
			{Amount: decimal.NewFromInt(60), PaidAt: time.Time{}},
		}
		f := FinanceOf(nil, payments, nil, testNow)
		if !f.AmountThisMonth.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected 100 this month, got %s", f.AmountThisMonth)
		}
		if !f.AmountAllTime.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected 200 all time, got %s", f.AmountAllTime)
		}
	})
}
