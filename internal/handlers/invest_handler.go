package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/format"
	"bondbazaar/internal/investflow"
	"bondbazaar/internal/queries"
)

// InvestHandler drives the invest workflow: start a session against a bond,
// enter an amount, review, and confirm.
type InvestHandler struct {
	store    *queries.Store
	sessions *investflow.Registry
}

// NewInvestHandler creates a new InvestHandler.
func NewInvestHandler(store *queries.Store, sessions *investflow.Registry) *InvestHandler {
	return &InvestHandler{store: store, sessions: sessions}
}

// EnterAmountRequest carries the amount entered on the first step.
type EnterAmountRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// WorkflowResponse is the state of an invest session after any transition.
type WorkflowResponse struct {
	SessionID       string `json:"session_id"`
	Step            string `json:"step"`
	BondID          int    `json:"bond_id"`
	Issuer          string `json:"issuer"`
	CouponRate      string `json:"coupon_rate"`
	Tenure          string `json:"tenure"`
	MinInvestment   string `json:"min_investment"`
	Amount          int64  `json:"amount,omitempty"`
	AmountDisplay   string `json:"amount_display,omitempty"`
	EstimatedReturn string `json:"estimated_return,omitempty"`
}

func (h *InvestHandler) workflowResponse(w *investflow.Workflow) WorkflowResponse {
	step, amount, _ := w.Snapshot()
	resp := WorkflowResponse{
		SessionID:     w.ID,
		Step:          string(step),
		BondID:        w.BondID,
		Issuer:        w.Bond.Issuer,
		CouponRate:    format.CouponRate(w.Bond.CouponRate),
		Tenure:        format.Tenure(w.Bond.Tenure),
		MinInvestment: format.Currency(w.Bond.MinInvestment),
	}
	if amount > 0 {
		resp.Amount = amount
		resp.AmountDisplay = format.Currency(amount)
		resp.EstimatedReturn = format.Currency(
			investflow.EstimatedAnnualReturn(amount, w.Bond.CouponRate))
	}
	return resp
}

func (h *InvestHandler) session(c *gin.Context) (*investflow.Workflow, error) {
	principal, err := getPrincipal(c)
	if err != nil {
		return nil, err
	}
	return h.sessions.Get(principal, c.Param("session_id"))
}

// StartInvestment opens an invest session against an active bond.
// @Summary     Start an investment
// @Description Open an invest workflow session for a bond; rejected when the bond is not open for investment
// @Tags        invest
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bond id"
// @Success     201 {object} WorkflowResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bond not found"
// @Failure     409 {object} ErrorResponse "Bond not open for investment"
// @Router      /invest/bonds/{id} [post]
func (h *InvestHandler) StartInvestment(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	bondID, err := parseBondID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	listing, err := h.store.BondListing(c.Request.Context(), bondID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	w, err := h.sessions.Start(principal, bondID, *listing)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.workflowResponse(w))
}

// GetWorkflow returns the current state of an invest session.
// @Summary     Get invest session state
// @Tags        invest
// @Produce     json
// @Security    BearerAuth
// @Param       session_id path string true "Session id"
// @Success     200 {object} WorkflowResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /invest/sessions/{session_id} [get]
func (h *InvestHandler) GetWorkflow(c *gin.Context) {
	w, err := h.session(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.workflowResponse(w))
}

// EnterAmount validates the amount and moves the session to review.
// @Summary     Enter investment amount
// @Description Validates the amount against the bond's minimum and moves the session to the review step
// @Tags        invest
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       session_id path string true "Session id"
// @Param       request body EnterAmountRequest true "Investment amount in INR"
// @Success     200 {object} WorkflowResponse
// @Failure     400 {object} ErrorResponse "Amount below minimum"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Failure     409 {object} ErrorResponse "Wrong step"
// @Router      /invest/sessions/{session_id}/amount [post]
func (h *InvestHandler) EnterAmount(c *gin.Context) {
	w, err := h.session(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req EnterAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := w.Continue(req.Amount); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.workflowResponse(w))
}

// Back returns the session from review to amount entry.
// @Summary     Back to amount entry
// @Description Returns to the amount step; the entered amount is preserved
// @Tags        invest
// @Produce     json
// @Security    BearerAuth
// @Param       session_id path string true "Session id"
// @Success     200 {object} WorkflowResponse
// @Failure     404 {object} ErrorResponse "Session not found"
// @Failure     409 {object} ErrorResponse "Wrong step"
// @Router      /invest/sessions/{session_id}/back [post]
func (h *InvestHandler) Back(c *gin.Context) {
	w, err := h.session(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := w.Back(); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.workflowResponse(w))
}

// Confirm places the investment. Exactly one registry mutation is fired per
// accepted confirmation; a failed attempt leaves the session in review so the
// user can resubmit.
// @Summary     Confirm investment
// @Tags        invest
// @Produce     json
// @Security    BearerAuth
// @Param       session_id path string true "Session id"
// @Success     200 {object} WorkflowResponse
// @Failure     404 {object} ErrorResponse "Session not found"
// @Failure     409 {object} ErrorResponse "Already confirmed or in flight"
// @Failure     502 {object} ErrorResponse "Investment failed"
// @Router      /invest/sessions/{session_id}/confirm [post]
func (h *InvestHandler) Confirm(c *gin.Context) {
	w, err := h.session(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := w.Confirm(c.Request.Context(), h.store); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.workflowResponse(w))
}
