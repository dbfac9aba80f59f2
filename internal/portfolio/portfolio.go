// Package portfolio aggregates a user's holdings for the dashboard.
package portfolio

import "bondbazaar/internal/models"

// Totals summarises the active holdings in a portfolio.
type Totals struct {
	TotalInvested    int64
	ActiveCount      int
	EstimatedAnnual  int64
	PendingRepayment int64
}

// Summarize computes dashboard totals from a set of investments. Inactive
// holdings are excluded from every figure. An empty portfolio yields the
// zero value, which renders as the empty state rather than an error.
func Summarize(investments []models.Investment, rates map[int]int64) Totals {
	var t Totals
	for _, inv := range investments {
		if !inv.IsActive {
			continue
		}
		t.ActiveCount++
		t.TotalInvested += inv.Amount
		if rate, ok := rates[inv.BondID]; ok {
			t.EstimatedAnnual += inv.Amount * rate / 10000
		}
		for _, r := range inv.Repayments {
			if r.Status == models.RepaymentPending {
				t.PendingRepayment += r.Amount
			}
		}
	}
	return t
}
