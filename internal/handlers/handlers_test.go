package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bondbazaar/internal/backend"
	"bondbazaar/internal/cache"
	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/middleware"
	"bondbazaar/internal/models"
	"bondbazaar/internal/queries"
	"bondbazaar/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

var errTransport = errors.New("connection refused")

// fakeBackend is an in-memory backend.Client for handler tests.
type fakeBackend struct {
	bonds      []models.BondListing
	portfolios map[string]models.PortfolioSummary
	profiles   map[string]models.UserProfile
	roles      map[string]models.UserRole

	investErr   error
	investCalls int
}

var _ backend.Client = (*fakeBackend)(nil)

func newFakeBackend(bonds ...models.BondListing) *fakeBackend {
	return &fakeBackend{
		bonds:      bonds,
		portfolios: make(map[string]models.PortfolioSummary),
		profiles:   make(map[string]models.UserProfile),
		roles:      make(map[string]models.UserRole),
	}
}

func (f *fakeBackend) GetBondListings(ctx context.Context) ([]models.BondListing, error) {
	return f.bonds, nil
}

func (f *fakeBackend) GetBondListingsWithIDs(ctx context.Context) ([]models.BondListingWithID, error) {
	out := make([]models.BondListingWithID, len(f.bonds))
	for i, b := range f.bonds {
		out[i] = models.BondListingWithID{BondID: i + 1, Listing: b}
	}
	return out, nil
}

func (f *fakeBackend) GetBondListing(ctx context.Context, bondID int) (*models.BondListing, error) {
	if bondID < 1 || bondID > len(f.bonds) {
		return nil, apperrors.ErrBondNotFound
	}
	bond := f.bonds[bondID-1]
	return &bond, nil
}

func (f *fakeBackend) GetUserPortfolio(ctx context.Context, principal string) (*models.PortfolioSummary, error) {
	summary := f.portfolios[principal]
	return &summary, nil
}

func (f *fakeBackend) Invest(ctx context.Context, principal string, bondID int, amount int64, plan models.Diversification) error {
	f.investCalls++
	if f.investErr != nil {
		return f.investErr
	}
	summary := f.portfolios[principal]
	summary.TotalInvested += amount
	summary.ActiveHoldings = append(summary.ActiveHoldings, models.Investment{
		BondID:         bondID,
		Amount:         amount,
		InvestedOn:     time.Now().UnixNano(),
		IsActive:       true,
		InvestmentPlan: plan,
	})
	f.portfolios[principal] = summary
	return nil
}

func (f *fakeBackend) GetUserProfile(ctx context.Context, principal string) (*models.UserProfile, error) {
	profile, ok := f.profiles[principal]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return &profile, nil
}

func (f *fakeBackend) SaveUserProfile(ctx context.Context, principal string, profile models.UserProfile) error {
	if profile.KYCStatus == "" {
		profile.KYCStatus = models.KYCPending
	}
	f.profiles[principal] = profile
	if _, ok := f.roles[principal]; !ok {
		f.roles[principal] = models.RoleUser
	}
	return nil
}

func (f *fakeBackend) GetUserRole(ctx context.Context, principal string) (models.UserRole, error) {
	if role, ok := f.roles[principal]; ok {
		return role, nil
	}
	return models.RoleGuest, nil
}

func (f *fakeBackend) InitializeDefaultBonds(ctx context.Context) error {
	if len(f.bonds) == 0 {
		f.bonds = []models.BondListing{activeListing("Seeded Issuer")}
	}
	return nil
}

func newTestStore(client backend.Client) *queries.Store {
	return queries.NewStore(client, cache.New())
}

func activeListing(issuer string) models.BondListing {
	return models.BondListing{
		Issuer:             issuer,
		RatingAgency:       "CRISIL",
		Rating:             'A',
		CouponRate:         1050,
		CouponType:         models.CouponType{Kind: models.CouponFixed, Rate: 1050},
		Tenure:             24,
		FaceValue:          1000,
		MinInvestment:      10000,
		RepaymentFrequency: models.RepaymentQuarterly,
		RedemptionType:     models.RedemptionBullet,
		RiskTags:           []models.RiskTag{models.RiskTagSecured},
		Status:             models.BondStatus{Kind: models.BondStatusActive},
		LaunchDate:         time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC).UnixNano(),
	}
}

// injectPrincipal fakes an authenticated session for handler tests.
func injectPrincipal(principal string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, principal)
		c.Set(middleware.RoleKey, string(models.RoleUser))
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseJSON(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}
