// Package queries is the typed data access layer over the registry client.
// It owns the cache keys and the invalidation rules: reads fill the cache,
// mutations invalidate the keys they make stale, and nothing is ever updated
// in place.
package queries

import (
	"context"
	"fmt"

	"bondbazaar/internal/backend"
	"bondbazaar/internal/cache"
	"bondbazaar/internal/models"
)

// Cache keys owned by this layer.
const (
	KeyBondListings        = "bondListings"
	KeyBondListingsWithIDs = "bondListingsWithIds"

	bondKeyPrefix      = "bondListing:"
	portfolioKeyPrefix = "userPortfolio:"
	profileKeyPrefix   = "userProfile:"
	roleKeyPrefix      = "userRole:"
)

// BondKey returns the cache key for a single listing.
func BondKey(bondID int) string {
	return fmt.Sprintf("%s%d", bondKeyPrefix, bondID)
}

// PortfolioKey returns the cache key for a principal's portfolio.
func PortfolioKey(principal string) string {
	return portfolioKeyPrefix + principal
}

// ProfileKey returns the cache key for a principal's profile.
func ProfileKey(principal string) string {
	return profileKeyPrefix + principal
}

// RoleKey returns the cache key for a principal's role.
func RoleKey(principal string) string {
	return roleKeyPrefix + principal
}

// Store wraps the registry client with the session query cache.
type Store struct {
	client backend.Client
	cache  *cache.Cache
}

// NewStore creates a Store over the given client and cache.
func NewStore(client backend.Client, c *cache.Cache) *Store {
	return &Store{client: client, cache: c}
}

// BondListings returns the full catalog, cached under KeyBondListings.
func (s *Store) BondListings(ctx context.Context) ([]models.BondListing, error) {
	if v, ok := s.cache.Get(KeyBondListings); ok {
		return v.([]models.BondListing), nil
	}
	bonds, err := s.client.GetBondListings(ctx)
	if err != nil {
		// Failures are never cached; the caller may simply re-issue.
		return nil, err
	}
	s.cache.Set(KeyBondListings, bonds)
	return bonds, nil
}

// BondListingsWithIDs returns the id-tagged catalog.
func (s *Store) BondListingsWithIDs(ctx context.Context) ([]models.BondListingWithID, error) {
	if v, ok := s.cache.Get(KeyBondListingsWithIDs); ok {
		return v.([]models.BondListingWithID), nil
	}
	bonds, err := s.client.GetBondListingsWithIDs(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(KeyBondListingsWithIDs, bonds)
	return bonds, nil
}

// BondListing returns one listing by id.
func (s *Store) BondListing(ctx context.Context, bondID int) (*models.BondListing, error) {
	key := BondKey(bondID)
	if v, ok := s.cache.Get(key); ok {
		listing := v.(models.BondListing)
		return &listing, nil
	}
	listing, err := s.client.GetBondListing(ctx, bondID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, *listing)
	return listing, nil
}

// UserPortfolio returns the caller's portfolio.
func (s *Store) UserPortfolio(ctx context.Context, principal string) (*models.PortfolioSummary, error) {
	key := PortfolioKey(principal)
	if v, ok := s.cache.Get(key); ok {
		summary := v.(models.PortfolioSummary)
		return &summary, nil
	}
	summary, err := s.client.GetUserPortfolio(ctx, principal)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, *summary)
	return summary, nil
}

// Invest places an investment with an amount-allocated plan. On success the
// caller's portfolio and the bond catalog entries are invalidated so
// subsequent reads reflect the new state. The call is never retried here.
func (s *Store) Invest(ctx context.Context, principal string, bondID int, amount int64) error {
	plan := models.ByAmount(amount)
	if err := s.client.Invest(ctx, principal, bondID, amount, plan); err != nil {
		return err
	}
	s.cache.Invalidate(PortfolioKey(principal))
	s.cache.Invalidate(KeyBondListings)
	s.cache.Invalidate(KeyBondListingsWithIDs)
	s.cache.Invalidate(BondKey(bondID))
	return nil
}

// UserProfile returns the caller's profile.
func (s *Store) UserProfile(ctx context.Context, principal string) (*models.UserProfile, error) {
	key := ProfileKey(principal)
	if v, ok := s.cache.Get(key); ok {
		profile := v.(models.UserProfile)
		return &profile, nil
	}
	profile, err := s.client.GetUserProfile(ctx, principal)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, *profile)
	return profile, nil
}

// SaveUserProfile stores the caller's profile and invalidates the cached
// copy.
func (s *Store) SaveUserProfile(ctx context.Context, principal string, profile models.UserProfile) error {
	if err := s.client.SaveUserProfile(ctx, principal, profile); err != nil {
		return err
	}
	s.cache.Invalidate(ProfileKey(principal))
	s.cache.Invalidate(RoleKey(principal))
	return nil
}

// UserRole returns the caller's role.
func (s *Store) UserRole(ctx context.Context, principal string) (models.UserRole, error) {
	key := RoleKey(principal)
	if v, ok := s.cache.Get(key); ok {
		return v.(models.UserRole), nil
	}
	role, err := s.client.GetUserRole(ctx, principal)
	if err != nil {
		return "", err
	}
	s.cache.Set(key, role)
	return role, nil
}

// InitializeDefaultBonds seeds the registry catalog and drops every cached
// bond entry.
func (s *Store) InitializeDefaultBonds(ctx context.Context) error {
	if err := s.client.InitializeDefaultBonds(ctx); err != nil {
		return err
	}
	s.cache.Invalidate(KeyBondListings)
	s.cache.Invalidate(KeyBondListingsWithIDs)
	s.cache.InvalidatePrefix(bondKeyPrefix)
	return nil
}

// ClearUser drops every cached entry belonging to a principal. Called on
// logout.
func (s *Store) ClearUser(principal string) {
	s.cache.Invalidate(PortfolioKey(principal))
	s.cache.Invalidate(ProfileKey(principal))
	s.cache.Invalidate(RoleKey(principal))
}
