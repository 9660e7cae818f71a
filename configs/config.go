package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port            string
	Environment     string
	APIKey          string
	CalcAPIURL      string
	InterpretAPIURL string
	GeocodeAPIURL   string
	AdminUsername   string
	AdminPassword   string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		APIKey:          getEnv("API_KEY", ""),
		CalcAPIURL:      getEnv("CALC_API_URL", "https://vedic-app-197322431493.europe-west1.run.app/api/vedic"),
		InterpretAPIURL: getEnv("INTERPRET_API_URL", "https://vedic-app-197322431493.europe-west1.run.app/api/explain"),
		GeocodeAPIURL:   getEnv("GEOCODE_API_URL", "https://nominatim.openstreetmap.org/search"),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "default_secret_key"),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
