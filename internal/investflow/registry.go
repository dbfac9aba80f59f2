package investflow

import (
	"sync"

	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/models"
	"bondbazaar/internal/uuid"
)

// Registry holds live workflows keyed by session id. Sessions are in-process
// only; a restart drops them, which is fine because no money moves until
// Confirm and a dropped session just sends the user back to the bond page.
type Registry struct {
	mu        sync.RWMutex
	workflows map[string]*Workflow
}

// NewRegistry creates an empty workflow registry.
func NewRegistry() *Registry {
	return &Registry{workflows: make(map[string]*Workflow)}
}

// Start creates a workflow for the principal against an active bond and
// returns it. Inactive bonds are rejected before any session exists.
func (r *Registry) Start(principal string, bondID int, bond models.BondListing) (*Workflow, error) {
	w, err := New(uuid.New(), principal, bondID, bond)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.workflows[w.ID] = w
	r.mu.Unlock()
	return w, nil
}

// Get returns the principal's workflow by id. A session belonging to another
// principal is indistinguishable from a missing one.
func (r *Registry) Get(principal, id string) (*Workflow, error) {
	r.mu.RLock()
	w, ok := r.workflows[id]
	r.mu.RUnlock()
	if !ok || w.Principal != principal {
		return nil, apperrors.ErrWorkflowNotFound
	}
	return w, nil
}

// Remove drops a workflow session.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.workflows, id)
	r.mu.Unlock()
}

// ClearPrincipal drops every session belonging to a principal. Called on
// logout.
func (r *Registry) ClearPrincipal(principal string) {
	r.mu.Lock()
	for id, w := range r.workflows {
		if w.Principal == principal {
			delete(r.workflows, id)
		}
	}
	r.mu.Unlock()
}
