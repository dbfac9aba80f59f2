package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bondbazaar/internal/backend/local"
	"bondbazaar/internal/cache"
	"bondbazaar/internal/handlers"
	"bondbazaar/internal/investflow"
	"bondbazaar/internal/logger"
	"bondbazaar/internal/middleware"
	"bondbazaar/internal/models"
	"bondbazaar/internal/queries"
	"bondbazaar/internal/testutil"
	"bondbazaar/internal/validator"
)

// testApp holds the full application stack for integration tests: the local
// registry over an isolated in-memory SQLite, the query cache, and the router.
type testApp struct {
	DB     *gorm.DB
	Store  *queries.Store
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	client := local.New(db)
	store := queries.NewStore(client, cache.New())
	workflows := investflow.NewRegistry()

	sessionHandler := handlers.NewSessionHandler(store, workflows)
	bondHandler := handlers.NewBondHandler(store)
	investHandler := handlers.NewInvestHandler(store, workflows)
	dashboardHandler := handlers.NewDashboardHandler(store)
	profileHandler := handlers.NewProfileHandler(store)
	adminHandler := handlers.NewAdminHandler(store)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/session", sessionHandler.SignIn)

	bonds := v1.Group("/bonds")
	bonds.GET("", bondHandler.ListBonds)
	bonds.GET("/:id", bondHandler.GetBond)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.DELETE("/session", sessionHandler.SignOut)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.SaveProfile)

	invest := protected.Group("/invest")
	invest.POST("/bonds/:id", investHandler.StartInvestment)
	invest.GET("/sessions/:session_id", investHandler.GetWorkflow)
	invest.POST("/sessions/:session_id/amount", investHandler.EnterAmount)
	invest.POST("/sessions/:session_id/back", investHandler.Back)
	invest.POST("/sessions/:session_id/confirm", investHandler.Confirm)

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	admin.POST("/bonds/initialize", adminHandler.InitializeBonds)

	return &testApp{DB: db, Store: store, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// signIn exchanges a principal for a session token.
func (app *testApp) signIn(t *testing.T, principal string) string {
	t.Helper()
	body := fmt.Sprintf(`{"principal":%q}`, principal)
	rec := app.request("POST", "/api/v1/session", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("sign-in failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// makeAdmin stores an admin profile for the principal directly in the
// registry database.
func (app *testApp) makeAdmin(t *testing.T, principal string) {
	t.Helper()
	record := local.ProfileRecord{
		Principal: principal,
		Name:      "Operator",
		Email:     principal + "@bondbazaar.in",
		KYCStatus: string(models.KYCVerified),
		Role:      string(models.RoleAdmin),
	}
	if err := app.DB.Create(&record).Error; err != nil {
		t.Fatalf("failed to create admin profile: %v", err)
	}
}
