package main

import (
	"fmt"
	"net/http"
	"os"

	"bondbazaar/internal/backend"
	"bondbazaar/internal/backend/local"
	"bondbazaar/internal/cache"
	"bondbazaar/internal/config"
	"bondbazaar/internal/database"
	"bondbazaar/internal/handlers"
	"bondbazaar/internal/investflow"
	"bondbazaar/internal/logger"
	"bondbazaar/internal/middleware"
	"bondbazaar/internal/queries"
	"bondbazaar/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bondbazaar/internal/docs" // Import swagger docs
)

// @title           BondBazaar API
// @version         1.0
// @description     BondBazaar is a fixed-income marketplace for browsing rated corporate bonds, investing in them, and tracking holdings and repayment schedules.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

// newRegistryClient selects the bond registry implementation: the remote
// registry over HTTP, or the database-backed local registry for development.
func newRegistryClient(appConfig *config.Config) (backend.Client, error) {
	switch appConfig.BackendMode {
	case config.BackendModeRemote:
		logger.Get().Infof("Using remote bond registry at %s", appConfig.BackendBaseURL)
		return backend.NewHTTPClient(appConfig.BackendBaseURL, appConfig.BackendTimeout), nil

	case config.BackendModeLocal:
		dbConfig, err := database.NewConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load database configuration: %w", err)
		}
		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := dbManager.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		logger.Get().Infof("Using local bond registry (%s)", dbConfig.Driver)
		return local.New(dbManager.DB()), nil

	default:
		return nil, fmt.Errorf("unknown backend mode: %s", appConfig.BackendMode)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Bond registry client
	client, err := newRegistryClient(appConfig)
	if err != nil {
		return err
	}

	// Session-scoped query layer and invest workflows
	store := queries.NewStore(client, cache.New())
	workflows := investflow.NewRegistry()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store, workflows)
	bondHandler := handlers.NewBondHandler(store)
	investHandler := handlers.NewInvestHandler(store, workflows)
	dashboardHandler := handlers.NewDashboardHandler(store)
	profileHandler := handlers.NewProfileHandler(store)
	pagesHandler := handlers.NewPagesHandler()
	adminHandler := handlers.NewAdminHandler(store)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes: sign-in, catalog browsing, static pages
	v1.POST("/session", sessionHandler.SignIn)

	bonds := v1.Group("/bonds")
	bonds.GET("", bondHandler.ListBonds)
	bonds.GET("/:id", bondHandler.GetBond)

	pages := v1.Group("/pages")
	pages.GET("/home", pagesHandler.Home)
	pages.GET("/how-it-works", pagesHandler.HowItWorks)
	pages.GET("/faq", pagesHandler.FAQ)
	pages.GET("/contact", pagesHandler.Contact)

	// Protected routes
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

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	admin.POST("/bonds/initialize", adminHandler.InitializeBonds)

	// Unknown routes get the not-found page view
	router.NoRoute(pagesHandler.NotFound)

	log.Infof("Starting BondBazaar server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
