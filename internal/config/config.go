package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Port              string
	Environment       string
	FrontendOrigin    string
	DashboardOrigin   string
	JWTSecret         string
	JWTExpirationDays int
	CookieExpireDays  int
	Database          DatabaseConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hospital_portal"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpDays, err := strconv.Atoi(getEnv("JWT_EXPIRATION_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_DAYS: %w", err)
	}

	cookieExpireDays, err := strconv.Atoi(getEnv("COOKIE_EXPIRE_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid COOKIE_EXPIRE_DAYS: %w", err)
	}

	return &Config{
		Port:              getEnv("PORT", "4000"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		FrontendOrigin:    getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		DashboardOrigin:   getEnv("DASHBOARD_ORIGIN", "http://localhost:5174"),
		JWTSecret:         getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationDays: jwtExpDays,
		CookieExpireDays:  cookieExpireDays,
		Database:          dbConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
