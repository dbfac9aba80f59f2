package local_test

import (
	"context"
	"testing"

	"bondbazaar/internal/backend/local"
	"bondbazaar/internal/models"
	"bondbazaar/internal/testutil"
)

func TestGetBondListing(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)
		bondID := testutil.CreateTestBondWith(t, db, testutil.BondParams{Issuer: "Muthoot Finance"})

		listing, err := registry.GetBondListing(context.Background(), bondID)
		testutil.AssertNoError(t, err)
		if listing.Issuer != "Muthoot Finance" {
			t.Errorf("issuer = %q", listing.Issuer)
		}
		if !listing.IsActive() {
			t.Error("expected active bond")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)

		_, err := registry.GetBondListing(context.Background(), 99)
		testutil.AssertAppError(t, err, "BOND_NOT_FOUND")
	})

	t.Run("rejects_non_positive_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)

		_, err := registry.GetBondListing(context.Background(), 0)
		testutil.AssertAppError(t, err, "BOND_NOT_FOUND")
	})
}

func TestGetBondListingsWithIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	registry := local.New(db)

	first := testutil.CreateTestBond(t, db)
	second := testutil.CreateTestBond(t, db)

	listings, err := registry.GetBondListingsWithIDs(context.Background())
	testutil.AssertNoError(t, err)
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].BondID != first || listings[1].BondID != second {
		t.Errorf("ids = %d, %d; want %d, %d", listings[0].BondID, listings[1].BondID, first, second)
	}
}

func TestInvest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)
		bondID := testutil.CreateTestBondWith(t, db, testutil.BondParams{
			MinInvestment: 10000,
			Tenure:        12,
			Frequency:     models.RepaymentQuarterly,
		})

		err := registry.Invest(context.Background(), "alice", bondID, 25000, models.ByAmount(25000))
		testutil.AssertNoError(t, err)

		summary, err := registry.GetUserPortfolio(context.Background(), "alice")
		testutil.AssertNoError(t, err)
		if summary.TotalInvested != 25000 {
			t.Errorf("total invested = %d, want 25000", summary.TotalInvested)
		}
		if len(summary.ActiveHoldings) != 1 {
			t.Fatalf("expected 1 active holding, got %d", len(summary.ActiveHoldings))
		}
		// 12 months at quarterly frequency -> 4 scheduled repayments.
		if got := len(summary.ActiveHoldings[0].Repayments); got != 4 {
			t.Errorf("expected 4 repayments, got %d", got)
		}
	})

	t.Run("below_minimum", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)
		bondID := testutil.CreateTestBondWith(t, db, testutil.BondParams{MinInvestment: 10000})

		err := registry.Invest(context.Background(), "alice", bondID, 9999, models.ByAmount(9999))
		testutil.AssertAppError(t, err, "BELOW_MINIMUM")

		summary, err := registry.GetUserPortfolio(context.Background(), "alice")
		testutil.AssertNoError(t, err)
		if len(summary.ActiveHoldings) != 0 {
			t.Error("rejected investment must not be recorded")
		}
	})

	t.Run("inactive_bond", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)
		bondID := testutil.CreateTestBondWith(t, db, testutil.BondParams{Status: models.BondStatusMatured})

		err := registry.Invest(context.Background(), "alice", bondID, 25000, models.ByAmount(25000))
		testutil.AssertAppError(t, err, "BOND_NOT_ACTIVE")
	})

	t.Run("unknown_bond", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)

		err := registry.Invest(context.Background(), "alice", 7, 25000, models.ByAmount(25000))
		testutil.AssertAppError(t, err, "BOND_NOT_FOUND")
	})
}

func TestRepaymentSchedule(t *testing.T) {
	t.Run("staggered_principal_sums_to_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)
		bondID := testutil.CreateTestBondWith(t, db, testutil.BondParams{
			Tenure:     18,
			Frequency:  models.RepaymentMonthly,
			Redemption: models.RedemptionStaggered,
		})

		err := registry.Invest(context.Background(), "bob", bondID, 100001, models.ByAmount(100001))
		testutil.AssertNoError(t, err)

		summary, err := registry.GetUserPortfolio(context.Background(), "bob")
		testutil.AssertNoError(t, err)
		repayments := summary.ActiveHoldings[0].Repayments
		if len(repayments) != 18 {
			t.Fatalf("expected 18 repayments, got %d", len(repayments))
		}
		var principal int64
		for _, r := range repayments {
			principal += r.PrincipalComponent
			if r.Status != models.RepaymentPending {
				t.Errorf("new repayment status = %s", r.Status)
			}
		}
		if principal != 100001 {
			t.Errorf("principal components sum to %d, want 100001", principal)
		}
	})

	t.Run("bullet_principal_on_final_payment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		registry := local.New(db)
		bondID := testutil.CreateTestBondWith(t, db, testutil.BondParams{
			Tenure:     24,
			Frequency:  models.RepaymentAnnually,
			Redemption: models.RedemptionBullet,
		})

		err := registry.Invest(context.Background(), "bob", bondID, 50000, models.ByAmount(50000))
		testutil.AssertNoError(t, err)

		summary, _ := registry.GetUserPortfolio(context.Background(), "bob")
		repayments := summary.ActiveHoldings[0].Repayments
		if len(repayments) != 2 {
			t.Fatalf("expected 2 repayments, got %d", len(repayments))
		}
		if repayments[0].PrincipalComponent != 0 {
			t.Errorf("interim repayment carries principal %d", repayments[0].PrincipalComponent)
		}
		if repayments[1].PrincipalComponent != 50000 {
			t.Errorf("final principal = %d, want 50000", repayments[1].PrincipalComponent)
		}
	})
}

func TestGetUserPortfolioIgnoresOtherPrincipals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	registry := local.New(db)
	bondID := testutil.CreateTestBond(t, db)

	testutil.CreateTestInvestment(t, db, "alice", bondID, 20000, true)
	testutil.CreateTestInvestment(t, db, "mallory", bondID, 90000, true)

	summary, err := registry.GetUserPortfolio(context.Background(), "alice")
	testutil.AssertNoError(t, err)
	if summary.TotalInvested != 20000 {
		t.Errorf("total invested = %d, want 20000", summary.TotalInvested)
	}
}

func TestProfileLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	registry := local.New(db)
	ctx := context.Background()

	_, err := registry.GetUserProfile(ctx, "alice")
	testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")

	role, err := registry.GetUserRole(ctx, "alice")
	testutil.AssertNoError(t, err)
	if role != models.RoleGuest {
		t.Errorf("role before profile = %s, want guest", role)
	}

	err = registry.SaveUserProfile(ctx, "alice", models.UserProfile{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	testutil.AssertNoError(t, err)

	profile, err := registry.GetUserProfile(ctx, "alice")
	testutil.AssertNoError(t, err)
	if profile.KYCStatus != models.KYCPending {
		t.Errorf("new profile KYC = %s, want pending", profile.KYCStatus)
	}

	role, err = registry.GetUserRole(ctx, "alice")
	testutil.AssertNoError(t, err)
	if role != models.RoleUser {
		t.Errorf("role after profile = %s, want user", role)
	}

	// Replacing keeps the principal unique.
	err = registry.SaveUserProfile(ctx, "alice", models.UserProfile{
		Name:      "Alice B",
		Email:     "alice@example.com",
		KYCStatus: models.KYCVerified,
	})
	testutil.AssertNoError(t, err)

	profile, _ = registry.GetUserProfile(ctx, "alice")
	if profile.Name != "Alice B" || profile.KYCStatus != models.KYCVerified {
		t.Errorf("profile not replaced: %+v", profile)
	}
}

func TestInitializeDefaultBonds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	registry := local.New(db)
	ctx := context.Background()

	testutil.AssertNoError(t, registry.InitializeDefaultBonds(ctx))

	listings, err := registry.GetBondListings(ctx)
	testutil.AssertNoError(t, err)
	if len(listings) == 0 {
		t.Fatal("expected seeded bonds")
	}
	seeded := len(listings)

	// Idempotent: a second call must not duplicate the catalog.
	testutil.AssertNoError(t, registry.InitializeDefaultBonds(ctx))
	listings, _ = registry.GetBondListings(ctx)
	if len(listings) != seeded {
		t.Errorf("second initialize changed catalog size: %d -> %d", seeded, len(listings))
	}
}
