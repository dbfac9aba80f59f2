// Package backend defines the typed RPC surface of the bond registry and its
// remote HTTP implementation. The registry owns every entity and enforces
// every invariant; this service holds only transient copies of its data.
package backend

import (
	"context"

	"bondbazaar/internal/models"
)

// Client is the bond registry contract.
//
// Queries are idempotent and safe to re-issue; stale responses may be
// discarded or overwritten. Invest is NOT idempotent: a second call with
// identical arguments performs a second investment, so callers must guard
// against duplicate submission.
type Client interface {
	// GetBondListings returns the full bond catalog.
	GetBondListings(ctx context.Context) ([]models.BondListing, error)

	// GetBondListingsWithIDs returns the catalog with stable 1-based ids.
	GetBondListingsWithIDs(ctx context.Context) ([]models.BondListingWithID, error)

	// GetBondListing returns a single listing, or ErrBondNotFound.
	GetBondListing(ctx context.Context, bondID int) (*models.BondListing, error)

	// GetUserPortfolio returns the caller's aggregated holdings.
	GetUserPortfolio(ctx context.Context, principal string) (*models.PortfolioSummary, error)

	// Invest places an investment. The registry rejects amounts below the
	// bond's minimum and bonds that are not active.
	Invest(ctx context.Context, principal string, bondID int, amount int64, plan models.Diversification) error

	// GetUserProfile returns the caller's profile, or ErrProfileNotFound.
	GetUserProfile(ctx context.Context, principal string) (*models.UserProfile, error)

	// SaveUserProfile creates or replaces the caller's profile.
	SaveUserProfile(ctx context.Context, principal string, profile models.UserProfile) error

	// GetUserRole returns the caller's role as known to the registry.
	GetUserRole(ctx context.Context, principal string) (models.UserRole, error)

	// InitializeDefaultBonds seeds the default catalog. Administrative;
	// idempotent on the registry side.
	InitializeDefaultBonds(ctx context.Context) error
}
