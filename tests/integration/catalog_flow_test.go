package integration

import (
	"net/http"
	"testing"

	"bondbazaar/internal/models"
	"bondbazaar/internal/testutil"
)

func TestCatalogFilterAndSort(t *testing.T) {
	app := setupApp(t)

	testutil.CreateTestBondWith(t, app.DB, testutil.BondParams{
		Issuer: "Navi Finserv", CouponRate: 950,
		RiskTags: []models.RiskTag{models.RiskTagUnsecured},
	})
	testutil.CreateTestBondWith(t, app.DB, testutil.BondParams{
		Issuer: "Muthoot Finance", CouponRate: 1125,
		RiskTags: []models.RiskTag{models.RiskTagSecured, models.RiskTagSecuredByMovableAssets},
	})
	testutil.CreateTestBondWith(t, app.DB, testutil.BondParams{
		Issuer: "Shriram Finance", CouponRate: 1050,
	})

	t.Run("default_order_highest_coupon_first", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/bonds", "", "")
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 3 {
			t.Fatalf("expected 3 bonds, got %d", len(data))
		}
		issuers := make([]string, len(data))
		for i, d := range data {
			issuers[i] = d.(map[string]interface{})["issuer"].(string)
		}
		want := []string{"Muthoot Finance", "Shriram Finance", "Navi Finserv"}
		for i := range want {
			if issuers[i] != want[i] {
				t.Errorf("position %d: %s, want %s", i, issuers[i], want[i])
			}
		}
	})

	t.Run("risk_tag_filter_matches_any_selected", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/bonds?risk_tags=unsecured&risk_tags=securedByMovableAssets", "", "")
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 bonds, got %d", len(data))
		}
	})

	t.Run("search_and_detail", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/bonds?search=SHRIRAM", "", "")
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 1 {
			t.Fatalf("expected 1 bond, got %d", len(data))
		}
		card := data[0].(map[string]interface{})
		if card["coupon_rate"] != "10.50%" {
			t.Errorf("coupon_rate = %v", card["coupon_rate"])
		}
	})
}

func TestAdminSeedCatalog(t *testing.T) {
	app := setupApp(t)
	app.makeAdmin(t, "root")
	adminToken := app.signIn(t, "root")
	userToken := app.signIn(t, "alice")

	// Non-admins cannot seed.
	rec := app.request("POST", "/api/v1/admin/bonds/initialize", "", userToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}

	rec = app.request("POST", "/api/v1/admin/bonds/initialize", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/bonds", "", "")
	body := parseJSON(t, rec)
	if body["total_items"].(float64) == 0 {
		t.Error("catalog still empty after seeding")
	}
}

func TestProfileFlow(t *testing.T) {
	app := setupApp(t)
	token := app.signIn(t, "alice")

	// No profile yet.
	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	rec = app.request("PUT", "/api/v1/profile",
		`{"name":"Alice","email":"alice@example.com","phone_number":"+919876543210"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("save failed: %d %s", rec.Code, rec.Body.String())
	}
	if body := parseJSON(t, rec); body["kyc_label"] != "Verification Pending" {
		t.Errorf("kyc_label = %v", body["kyc_label"])
	}

	// Sign-out drops cached user data; the profile itself survives in the
	// registry and is refetched on the next read.
	rec = app.request("DELETE", "/api/v1/session", "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("sign-out failed: %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile after sign-out: %d %s", rec.Code, rec.Body.String())
	}
}
