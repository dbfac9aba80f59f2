package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/models"
)

// principalHeader carries the authenticated caller identity to the registry.
// The registry trusts this gateway; the identity handshake itself happens
// upstream.
const principalHeader = "X-Caller-Principal"

// HTTPClient talks to a remote bond registry over JSON/HTTP.
//
// It performs no retries: queries are safe for the caller to re-issue, and
// the invest mutation must never be replayed automatically.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a registry client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ Client = (*HTTPClient)(nil)

// errorBody is the registry's error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do issues a request and decodes a 2xx JSON response into out (when non-nil).
// Non-2xx responses are mapped onto the local error taxonomy.
func (c *HTTPClient) do(ctx context.Context, method, path, principal string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if principal != "" {
		req.Header.Set(principalHeader, principal)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.Wrap(apperrors.ErrBackendUnavailable, err)
		}
		return nil
	}

	var envelope errorBody
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	return mapRegistryError(resp.StatusCode, envelope)
}

// mapRegistryError converts a registry error response into an AppError.
func mapRegistryError(status int, envelope errorBody) error {
	switch envelope.Error.Code {
	case apperrors.ErrBondNotFound.Code:
		return apperrors.ErrBondNotFound
	case apperrors.ErrProfileNotFound.Code:
		return apperrors.ErrProfileNotFound
	case apperrors.ErrBondNotActive.Code:
		return apperrors.ErrBondNotActive
	case apperrors.ErrBelowMinimum.Code:
		if envelope.Error.Message != "" {
			return apperrors.WithMessage(apperrors.ErrBelowMinimum, envelope.Error.Message)
		}
		return apperrors.ErrBelowMinimum
	}
	if status == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	return apperrors.Wrap(apperrors.ErrBackendUnavailable,
		fmt.Errorf("registry returned status %d (%s)", status, envelope.Error.Code))
}

// GetBondListings returns the full bond catalog.
func (c *HTTPClient) GetBondListings(ctx context.Context) ([]models.BondListing, error) {
	var bonds []models.BondListing
	if err := c.do(ctx, http.MethodGet, "/bonds", "", nil, &bonds); err != nil {
		return nil, err
	}
	return bonds, nil
}

// GetBondListingsWithIDs returns the catalog with stable registry ids.
func (c *HTTPClient) GetBondListingsWithIDs(ctx context.Context) ([]models.BondListingWithID, error) {
	var bonds []models.BondListingWithID
	if err := c.do(ctx, http.MethodGet, "/bonds/with-ids", "", nil, &bonds); err != nil {
		return nil, err
	}
	return bonds, nil
}

// GetBondListing returns a single listing by id.
func (c *HTTPClient) GetBondListing(ctx context.Context, bondID int) (*models.BondListing, error) {
	var bond models.BondListing
	path := fmt.Sprintf("/bonds/%d", bondID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &bond); err != nil {
		return nil, err
	}
	return &bond, nil
}

// GetUserPortfolio returns the caller's aggregated holdings.
func (c *HTTPClient) GetUserPortfolio(ctx context.Context, principal string) (*models.PortfolioSummary, error) {
	var summary models.PortfolioSummary
	if err := c.do(ctx, http.MethodGet, "/portfolio", principal, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// investRequest is the invest mutation payload.
type investRequest struct {
	BondID int                    `json:"bondId"`
	Amount int64                  `json:"amount"`
	Plan   models.Diversification `json:"plan"`
}

// Invest places an investment for the caller.
func (c *HTTPClient) Invest(ctx context.Context, principal string, bondID int, amount int64, plan models.Diversification) error {
	req := investRequest{BondID: bondID, Amount: amount, Plan: plan}
	return c.do(ctx, http.MethodPost, "/invest", principal, req, nil)
}

// GetUserProfile returns the caller's profile.
func (c *HTTPClient) GetUserProfile(ctx context.Context, principal string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/profile", principal, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveUserProfile creates or replaces the caller's profile.
func (c *HTTPClient) SaveUserProfile(ctx context.Context, principal string, profile models.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/profile", principal, profile, nil)
}

// GetUserRole returns the caller's role.
func (c *HTTPClient) GetUserRole(ctx context.Context, principal string) (models.UserRole, error) {
	var resp struct {
		Role models.UserRole `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/role", principal, nil, &resp); err != nil {
		return "", err
	}
	return resp.Role, nil
}

// InitializeDefaultBonds seeds the registry's default catalog.
func (c *HTTPClient) InitializeDefaultBonds(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/bonds/initialize", "", nil, nil)
}
