package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// BackendMode selects the bond registry implementation.
const (
	BackendModeRemote = "remote"
	BackendModeLocal  = "local"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Bond registry backend
	BackendMode    string
	BackendBaseURL string
	BackendTimeout time.Duration

	// Session tokens
	JWTSecret        string
	JWTExpirationDur time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Bond registry backend
		BackendMode:    getEnv("BACKEND_MODE", BackendModeLocal),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:9090"),

		// Session tokens
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	// Parse backend call timeout
	timeoutStr := getEnv("BACKEND_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid BACKEND_TIMEOUT value '%s', falling back to 10s\n", timeoutStr)
		timeout = 10 * time.Second
	}
	config.BackendTimeout = timeout

	// Parse session token expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
