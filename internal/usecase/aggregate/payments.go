package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/entities"
)

type PaymentDigest struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	PaidAt time.Time       `json:"paid_at"`
	Status string          `json:"status"`
}

type PaymentSummary struct {
	TotalPayments   int             `json:"total_payments"`
	ThisMonth       int             `json:"this_month"`
	ThisWeek        int             `json:"this_week"`
	AmountThisMonth decimal.Decimal `json:"amount_this_month"`
	AmountThisWeek  decimal.Decimal `json:"amount_this_week"`
	Pending         int             `json:"pending"`
	MostUsedMethod  string          `json:"most_used_method"`
	Recent          []PaymentDigest `json:"recent"`
}

func PaymentSummaryOf(payments []entities.Payment, now time.Time, limit int) PaymentSummary {
	s := PaymentSummary{MostUsedMethod: "UNKNOWN", Recent: []PaymentDigest{}}
	month := StartOfMonth(now)
	week := now.AddDate(0, 0, -7)
	methods := map[string]int{}

	for _, p := range payments {
		s.TotalPayments++
		if inWindow(p.PaidAt, month) {
			s.ThisMonth++
			s.AmountThisMonth = s.AmountThisMonth.Add(p.Amount)
		}
		if inWindow(p.PaidAt, week) {
			s.ThisWeek++
			s.AmountThisWeek = s.AmountThisWeek.Add(p.Amount)
		}
		if p.Status == entities.PaymentStatusPending {
			s.Pending++
		}
		if m := strings.ToUpper(strings.TrimSpace(p.Method)); m != "" {
			methods[m]++
		}
	}

	// Mode of the method field; lexicographic tiebreak keeps it deterministic.
	best := 0
	for m, n := range methods {
		if n > best || (n == best && best > 0 && m < s.MostUsedMethod) {
			best = n
			s.MostUsedMethod = m
		}
	}

	sorted := make([]entities.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(a, b int) bool {
		ta, tb := sorted[a].PaidAt, sorted[b].PaidAt
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return sorted[a].ID < sorted[b].ID
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	for _, p := range sorted {
		s.Recent = append(s.Recent, PaymentDigest{
			ID:     p.ID,
			Amount: p.Amount,
			Method: strings.ToUpper(strings.TrimSpace(p.Method)),
			PaidAt: p.PaidAt,
			Status: string(p.Status),
		})
	}
	return s
}
