package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"bondbazaar/internal/models"
	"bondbazaar/internal/queries"
)

func setupProfileRouter(store *queries.Store) *gin.Engine {
	handler := NewProfileHandler(store)
	r := gin.New()
	auth := r.Group("", injectPrincipal("alice"))
	auth.GET("/profile", handler.GetProfile)
	auth.PUT("/profile", handler.SaveProfile)
	return r
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		backend := newFakeBackend()
		backend.profiles["alice"] = models.UserProfile{
			Name:      "Alice",
			Email:     "alice@example.com",
			KYCStatus: models.KYCVerified,
		}
		r := setupProfileRouter(newTestStore(backend))

		rec := doRequest(r, "GET", "/profile", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["name"] != "Alice" {
			t.Errorf("name = %v", body["name"])
		}
		if body["kyc_label"] != "Verified" {
			t.Errorf("kyc_label = %v, want Verified", body["kyc_label"])
		}
	})

	t.Run("not_found", func(t *testing.T) {
		r := setupProfileRouter(newTestStore(newFakeBackend()))
		rec := doRequest(r, "GET", "/profile", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if code := errorCode(t, rec); code != "PROFILE_NOT_FOUND" {
			t.Errorf("error code = %q", code)
		}
	})
}

func TestProfileHandler_SaveProfile(t *testing.T) {
	t.Run("new_profile_starts_kyc_pending", func(t *testing.T) {
		r := setupProfileRouter(newTestStore(newFakeBackend()))

		rec := doRequest(r, "PUT", "/profile",
			`{"name":"Alice","email":"alice@example.com","phone_number":"+919876543210"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["kyc_status"] != "pending" {
			t.Errorf("kyc_status = %v, want pending", body["kyc_status"])
		}
		if body["kyc_label"] != "Verification Pending" {
			t.Errorf("kyc_label = %v", body["kyc_label"])
		}
	})

	t.Run("invalid_email_rejected", func(t *testing.T) {
		r := setupProfileRouter(newTestStore(newFakeBackend()))
		rec := doRequest(r, "PUT", "/profile", `{"name":"Alice","email":"not-an-email"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing_name_rejected", func(t *testing.T) {
		r := setupProfileRouter(newTestStore(newFakeBackend()))
		rec := doRequest(r, "PUT", "/profile", `{"email":"alice@example.com"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
