package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAdminHandler_InitializeBonds(t *testing.T) {
	backend := newFakeBackend()
	store := newTestStore(backend)
	handler := NewAdminHandler(store)
	bonds := NewBondHandler(store)

	r := gin.New()
	r.POST("/admin/bonds/initialize", injectPrincipal("root"), handler.InitializeBonds)
	r.GET("/bonds", bonds.ListBonds)

	// The catalog may already be cached as empty before seeding.
	rec := doRequest(r, "GET", "/bonds", "")
	if body := parseJSON(t, rec); len(body["data"].([]interface{})) != 0 {
		t.Fatal("expected an empty catalog before seeding")
	}

	rec = doRequest(r, "POST", "/admin/bonds/initialize", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	// Seeding invalidates the cached catalog; the next read sees the bonds.
	rec = doRequest(r, "GET", "/bonds", "")
	if body := parseJSON(t, rec); len(body["data"].([]interface{})) == 0 {
		t.Error("catalog still empty after seeding")
	}
}
