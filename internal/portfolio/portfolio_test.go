package portfolio

import (
	"testing"

	"bondbazaar/internal/models"
)

func TestSummarize(t *testing.T) {
	t.Run("empty_portfolio", func(t *testing.T) {
		got := Summarize(nil, nil)
		if got != (Totals{}) {
			t.Errorf("empty portfolio summarised to %+v, want zero totals", got)
		}
	})

	t.Run("ignores_inactive_holdings", func(t *testing.T) {
		investments := []models.Investment{
			{BondID: 1, Amount: 20000, IsActive: true},
			{BondID: 2, Amount: 90000, IsActive: false},
			{BondID: 3, Amount: 15000, IsActive: true},
		}
		got := Summarize(investments, nil)
		if got.TotalInvested != 35000 {
			t.Errorf("total invested = %d, want 35000", got.TotalInvested)
		}
		if got.ActiveCount != 2 {
			t.Errorf("active count = %d, want 2", got.ActiveCount)
		}
	})

	t.Run("estimated_annual_uses_bond_rates", func(t *testing.T) {
		investments := []models.Investment{
			{BondID: 1, Amount: 100000, IsActive: true},
			{BondID: 2, Amount: 50000, IsActive: true},
		}
		rates := map[int]int64{1: 1050, 2: 1200}
		got := Summarize(investments, rates)
		if got.EstimatedAnnual != 10500+6000 {
			t.Errorf("estimated annual = %d, want 16500", got.EstimatedAnnual)
		}
	})

	t.Run("pending_repayments_only", func(t *testing.T) {
		investments := []models.Investment{
			{BondID: 1, Amount: 100000, IsActive: true, Repayments: []models.Repayment{
				{Amount: 2500, Status: models.RepaymentPaid},
				{Amount: 2500, Status: models.RepaymentPending},
				{Amount: 102500, Status: models.RepaymentPending},
			}},
		}
		got := Summarize(investments, nil)
		if got.PendingRepayment != 105000 {
			t.Errorf("pending repayment = %d, want 105000", got.PendingRepayment)
		}
	})
}
