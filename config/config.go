package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	ApiBaseURL        string
	RequestTimeoutSec int

	SessionDBName  string
	SessionTTLDays int
	CookieName     string
	CookieSecure   bool

	SessionGCSpec string // cron spec for expired-session cleanup
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		ApiBaseURL:        getEnv("API_BASE_URL", "https://course-api.h47345576.workers.dev/api/v1"),
		RequestTimeoutSec: getEnvInt("API_REQUEST_TIMEOUT", 30),

		SessionDBName:  getEnv("SESSION_DB_NAME", "sessions.db"),
		SessionTTLDays: getEnvInt("SESSION_TTL_DAYS", 7),
		CookieName:     getEnv("SESSION_COOKIE_NAME", "course_session"),
		CookieSecure:   getEnvBool("SESSION_COOKIE_SECURE", false),

		SessionGCSpec: getEnv("SESSION_GC_SPEC", "@every 10m"),
	}

	if !AppConfig.CookieSecure {
		log.Println("Warning: SESSION_COOKIE_SECURE is disabled. Enable it behind HTTPS.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
