package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/entities"
)

// FinancialSummary is the admin-facing money view. All amounts are decimals;
// unavailable data leaves them at zero.
type FinancialSummary struct {
	AmountThisMonth decimal.Decimal `json:"amount_this_month"`
	AmountAllTime   decimal.Decimal `json:"amount_all_time"`
	AveragePayment  decimal.Decimal `json:"average_payment"`
	AwaitingBilling int             `json:"awaiting_billing"`
}

func FinanceOf(orders []entities.WorkOrder, payments []entities.Payment, billed map[int]bool, now time.Time) FinancialSummary {
	f := FinancialSummary{}
	month := StartOfMonth(now)

	for _, p := range payments {
		f.AmountAllTime = f.AmountAllTime.Add(p.Amount)
		if inWindow(p.PaidAt, month) {
			f.AmountThisMonth = f.AmountThisMonth.Add(p.Amount)
		}
	}
	if n := len(payments); n > 0 {
		f.AveragePayment = f.AmountAllTime.DivRound(decimal.NewFromInt(int64(n)), 2)
	}

	for i, o := range orders {
		if !o.Cancelled() && o.State == entities.OrderStateCompleted && !billed[i] {
			f.AwaitingBilling++
		}
	}
	return f
}
