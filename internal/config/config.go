package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server Config
	ServerAddress string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration

	// Store Config
	StorePath  string
	WatchStore bool

	// Auth Config
	JWTSecret string
	TokenTTL  time.Duration

	// Business rules
	TransferLimit   float64
	ProcessingDelay time.Duration

	// Logging
	LogLevel string
}

func New() *Config {
	return &Config{
		// Server
		ServerAddress: getEnv("SERVER_ADDRESS", ":8090"),
		ReadTimeout:   getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:  getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),

		// Store
		StorePath:  getEnv("STORE_PATH", "data/bank.json"),
		WatchStore: getEnvAsBool("WATCH_STORE", true),

		// Auth
		JWTSecret: getEnv("JWT_SECRET", "bank-demo-jwt-secret"),
		TokenTTL:  getEnvAsDuration("TOKEN_TTL", 24*time.Hour),

		// Business rules
		TransferLimit:   getEnvAsFloat("TRANSFER_LIMIT", 10000),
		ProcessingDelay: getEnvAsDuration("PROCESSING_DELAY", 0),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
