package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bondbazaar/internal/format"
	"bondbazaar/internal/models"
	"bondbazaar/internal/portfolio"
	"bondbazaar/internal/queries"
)

// DashboardHandler serves the signed-in user's portfolio dashboard.
type DashboardHandler struct {
	store *queries.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store *queries.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// HoldingResponse is one active holding row on the dashboard.
type HoldingResponse struct {
	BondID        int                 `json:"bond_id"`
	Issuer        string              `json:"issuer"`
	Amount        string              `json:"amount"`
	InvestedOn    string              `json:"invested_on"`
	NextRepayment *RepaymentResponse  `json:"next_repayment,omitempty"`
	Repayments    []RepaymentResponse `json:"repayments"`
}

// RepaymentResponse is one scheduled repayment row.
type RepaymentResponse struct {
	DueDate   string `json:"due_date"`
	Amount    string `json:"amount"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Status    string `json:"status"`
}

// DashboardResponse is the portfolio dashboard view. An empty portfolio is a
// valid response with zero totals, not an error.
type DashboardResponse struct {
	TotalInvested    string            `json:"total_invested"`
	ActiveCount      int               `json:"active_count"`
	EstimatedAnnual  string            `json:"estimated_annual"`
	PendingRepayment string            `json:"pending_repayment"`
	Holdings         []HoldingResponse `json:"holdings"`
}

func repaymentRow(r *models.Repayment) RepaymentResponse {
	return RepaymentResponse{
		DueDate:   format.Date(r.DueDate),
		Amount:    format.Currency(r.Amount),
		Principal: format.Currency(r.PrincipalComponent),
		Interest:  format.Currency(r.InterestAmount),
		Status:    format.RepaymentStatusLabel(r.Status),
	}
}

// GetDashboard returns the caller's portfolio dashboard.
// @Summary     Portfolio dashboard
// @Description Aggregated totals and active holdings for the signed-in user
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Registry unavailable"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.store.UserPortfolio(c.Request.Context(), principal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Coupon rates and issuer names come from the catalog; holdings only
	// reference bonds by id.
	listings, err := h.store.BondListingsWithIDs(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	rates := make(map[int]int64, len(listings))
	issuers := make(map[int]string, len(listings))
	for i := range listings {
		rates[listings[i].BondID] = listings[i].Listing.CouponRate
		issuers[listings[i].BondID] = listings[i].Listing.Issuer
	}

	totals := portfolio.Summarize(summary.ActiveHoldings, rates)

	holdings := make([]HoldingResponse, 0, len(summary.ActiveHoldings))
	for i := range summary.ActiveHoldings {
		inv := &summary.ActiveHoldings[i]
		if !inv.IsActive {
			continue
		}
		row := HoldingResponse{
			BondID:     inv.BondID,
			Issuer:     issuers[inv.BondID],
			Amount:     format.Currency(inv.Amount),
			InvestedOn: format.Date(inv.InvestedOn),
			Repayments: make([]RepaymentResponse, 0, len(inv.Repayments)),
		}
		for j := range inv.Repayments {
			r := repaymentRow(&inv.Repayments[j])
			row.Repayments = append(row.Repayments, r)
			if row.NextRepayment == nil && inv.Repayments[j].Status == models.RepaymentPending {
				next := r
				row.NextRepayment = &next
			}
		}
		holdings = append(holdings, row)
	}

	c.JSON(http.StatusOK, DashboardResponse{
		TotalInvested:    format.Currency(totals.TotalInvested),
		ActiveCount:      totals.ActiveCount,
		EstimatedAnnual:  format.Currency(totals.EstimatedAnnual),
		PendingRepayment: format.Currency(totals.PendingRepayment),
		Holdings:         holdings,
	})
}
