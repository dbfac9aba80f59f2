package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupPagesRouter() *gin.Engine {
	handler := NewPagesHandler()
	r := gin.New()
	r.GET("/pages/home", handler.Home)
	r.GET("/pages/how-it-works", handler.HowItWorks)
	r.GET("/pages/faq", handler.FAQ)
	r.GET("/pages/contact", handler.Contact)
	r.NoRoute(handler.NotFound)
	return r
}

func TestPagesHandler(t *testing.T) {
	r := setupPagesRouter()

	pages := []string{"/pages/home", "/pages/how-it-works", "/pages/faq", "/pages/contact"}
	for _, path := range pages {
		rec := doRequest(r, "GET", path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, rec.Code)
			continue
		}
		body := parseJSON(t, rec)
		if body["title"] == "" {
			t.Errorf("%s: missing title", path)
		}
		if sections := body["sections"].([]interface{}); len(sections) == 0 {
			t.Errorf("%s: no sections", path)
		}
	}
}

func TestPagesHandler_NotFound(t *testing.T) {
	r := setupPagesRouter()
	rec := doRequest(r, "GET", "/no/such/page", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "NOT_FOUND" {
		t.Errorf("error code = %q", code)
	}
}
