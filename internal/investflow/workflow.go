// Package investflow drives the amount -> review -> success investment
// workflow. The state machine is an explicit value moved by transition
// methods, so the guards are testable without any transport around them.
//
// The invest mutation is not idempotent: the single concurrency hazard in
// this system is a double submit, so Confirm holds an in-flight flag and
// fires the mutation at most once per confirmation while one is pending.
package investflow

import (
	"context"
	"errors"
	"sync"

	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/format"
	"bondbazaar/internal/models"
)

// Step identifies a workflow state.
type Step string

const (
	StepAmountEntry Step = "amount"
	StepReview      Step = "review"
	StepSuccess     Step = "success"
)

// Investor places investments. *queries.Store satisfies this.
type Investor interface {
	Invest(ctx context.Context, principal string, bondID int, amount int64) error
}

// State is the pure workflow state: the current step and the entered amount.
type State struct {
	Step   Step
	Amount int64
}

// NewState returns the initial state.
func NewState() State {
	return State{Step: StepAmountEntry}
}

// Continue moves AmountEntry -> Review when the amount is positive and meets
// the bond's minimum. On violation the state is returned unchanged with a
// validation error naming the minimum; no network call is involved.
func (s State) Continue(amount, minInvestment int64) (State, error) {
	if s.Step != StepAmountEntry {
		return s, apperrors.ErrWrongStep
	}
	if amount <= 0 {
		return s, apperrors.WithMessage(apperrors.ErrInvalidInput, "Enter a positive amount")
	}
	if amount < minInvestment {
		return s, apperrors.WithMessage(apperrors.ErrBelowMinimum,
			"Minimum investment is "+format.Currency(minInvestment))
	}
	return State{Step: StepReview, Amount: amount}, nil
}

// Back moves Review -> AmountEntry, preserving the entered amount.
func (s State) Back() (State, error) {
	if s.Step != StepReview {
		return s, apperrors.ErrWrongStep
	}
	return State{Step: StepAmountEntry, Amount: s.Amount}, nil
}

// EstimatedAnnualReturn is the display-only annual estimate:
// floor(amount x couponRate / 10000). It rounds down, never up, so returns
// are never overstated. This is not a yield calculation.
func EstimatedAnnualReturn(amount, couponRateBps int64) int64 {
	return amount * couponRateBps / 10000
}

// Workflow is one user's invest session for one bond.
type Workflow struct {
	ID        string
	Principal string
	BondID    int
	Bond      models.BondListing

	mu      sync.Mutex
	state   State
	pending bool
}

// New creates a workflow for an active bond.
func New(id, principal string, bondID int, bond models.BondListing) (*Workflow, error) {
	if !bond.IsActive() {
		return nil, apperrors.ErrBondNotActive
	}
	return &Workflow{
		ID:        id,
		Principal: principal,
		BondID:    bondID,
		Bond:      bond,
		state:     NewState(),
	}, nil
}

// Snapshot returns the current step, amount, and pending flag.
func (w *Workflow) Snapshot() (Step, int64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Step, w.state.Amount, w.pending
}

// Continue applies the amount-entry guard.
func (w *Workflow) Continue(amount int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	next, err := w.state.Continue(amount, w.Bond.MinInvestment)
	if err != nil {
		return err
	}
	w.state = next
	return nil
}

// Back returns to amount entry, keeping the amount.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending {
		return apperrors.ErrInvestPending
	}
	next, err := w.state.Back()
	if err != nil {
		return err
	}
	w.state = next
	return nil
}

// Confirm fires the invest mutation exactly once per accepted confirmation.
// Concurrent confirms while one is in flight are rejected without reaching
// the registry. On failure the workflow stays in Review with the amount
// preserved so the user can resubmit; nothing is retried automatically.
func (w *Workflow) Confirm(ctx context.Context, investor Investor) error {
	w.mu.Lock()
	if w.state.Step == StepSuccess {
		w.mu.Unlock()
		return apperrors.ErrWorkflowCompleted
	}
	if w.state.Step != StepReview {
		w.mu.Unlock()
		return apperrors.ErrWrongStep
	}
	if w.pending {
		w.mu.Unlock()
		return apperrors.ErrInvestPending
	}
	w.pending = true
	amount := w.state.Amount
	w.mu.Unlock()

	err := investor.Invest(ctx, w.Principal, w.BondID, amount)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = false
	if err != nil {
		// Stay in Review; the registry's own validation errors pass
		// through, everything else becomes a generic retryable failure.
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case apperrors.ErrBelowMinimum.Code,
				apperrors.ErrBondNotActive.Code,
				apperrors.ErrBondNotFound.Code:
				return appErr
			}
		}
		return apperrors.Wrap(apperrors.ErrInvestFailed, err)
	}
	w.state = State{Step: StepSuccess, Amount: amount}
	return nil
}
