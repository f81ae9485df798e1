package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AdminAPIURL        string
	RedisURL           string
	ServerPort         string
	RequestTimeout     time.Duration
	RefreshPending     time.Duration
	RefreshApproved    time.Duration
	CancelledDateField string
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		AdminAPIURL:     getEnv("ADMIN_API_URL", "https://adminapi.kevelion.com"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		RequestTimeout:  time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		RefreshPending:  time.Duration(getEnvAsInt("REFRESH_PENDING_MS", 1500)) * time.Millisecond,
		RefreshApproved: time.Duration(getEnvAsInt("REFRESH_APPROVED_MS", 30000)) * time.Millisecond,
		// The backend is inconsistent about the spelling of the cancellation
		// date field; the client sends both, this picks which one we read back.
		// Pending confirmation from the backend team.
		CancelledDateField: getEnv("CANCELLED_DATE_FIELD", "cancelled_date"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
