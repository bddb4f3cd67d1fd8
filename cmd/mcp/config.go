package main

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/elC0mpa/aws-costpilot/service/catalog"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	AWSRegion  string
	AWSProfile string

	CatalogCachePath string
	CatalogTTL       time.Duration

	AnomalyThreshold float64
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AWSRegion:        getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile:       os.Getenv("AWS_PROFILE"),
		CatalogCachePath: getEnvOrDefault("COSTPILOT_CACHE_PATH", defaultCachePath()),
		CatalogTTL:       getEnvHours("COSTPILOT_CATALOG_TTL_HOURS", catalog.DefaultTTL),
		AnomalyThreshold: getEnvFloat("COSTPILOT_ANOMALY_THRESHOLD", 20),
	}
}

func defaultCachePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "aws-costpilot", catalog.DefaultCacheFile)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvHours(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	hours, err := strconv.Atoi(value)
	if err != nil || hours <= 0 {
		return defaultValue
	}
	return time.Duration(hours) * time.Hour
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
