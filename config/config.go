package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database configuration
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string

	// Redis configuration
	RedisHost     string
	RedisPassword string
	RedisPort     string

	// Decision engine configuration
	Decision DecisionConfig
}

// DecisionConfig holds wait-risk engine parameters
type DecisionConfig struct {
	// Historical lookup
	ScenarioLimit int // Max sold comparables pulled per zone

	// Result caching
	CacheEnabled bool
	CacheTTL     time.Duration

	// Timeout applied around the two read-only lookups (scenarios, profile)
	LookupTimeout time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Database configuration
		DatabaseHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DatabasePort:     getEnvOrDefault("DB_PORT", "5432"),
		DatabaseName:     getEnvOrDefault("DB_NAME", "pricewaze"),
		DatabaseUser:     getEnvOrDefault("DB_USER", "pricewaze"),
		DatabasePassword: getEnvOrDefault("DB_PASSWORD", "pricewaze123"),

		// Redis configuration
		RedisHost:     getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),

		// Decision engine configuration
		Decision: DecisionConfig{
			ScenarioLimit: getEnvInt("DECISION_SCENARIO_LIMIT", 20),

			CacheEnabled: getEnvOrDefault("DECISION_CACHE_ENABLED", "false") == "true",
			CacheTTL:     time.Duration(getEnvInt("DECISION_CACHE_TTL_MINUTES", 15)) * time.Minute,

			LookupTimeout: time.Duration(getEnvInt("DECISION_LOOKUP_TIMEOUT_SECONDS", 5)) * time.Second,
		},
	}
}

// getEnvInt gets environment variable as int or returns default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	if _, err := fmt.Sscanf(value, "%d", &intValue); err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
