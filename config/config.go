package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"
)

// Server settings
var (
	ServerHost         string
	ServerPort         string
	ServerBodyLimit    int
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerRateLimitMax int
	ServerRateLimitExp time.Duration
)

// Model settings
var (
	ModelPath          string
	PredictionCacheTTL time.Duration
)

func init() {
	Load()
}

// Load (re)reads every setting from the environment. A .env file in the
// working directory is applied first when present.
func Load() {
	_ = godotenv.Load()

	ServerHost = getEnv("HOST", "")
	ServerPort = getEnv("PORT", "8080")
	ServerBodyLimit = getEnvAsInt("BODY_LIMIT", 64*1024)
	ServerReadTimeout = getEnvAsDuration("READ_TIMEOUT", 30*time.Second)
	ServerWriteTimeout = getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second)
	ServerRateLimitMax = getEnvAsInt("RATE_LIMIT_MAX", 60)
	ServerRateLimitExp = getEnvAsDuration("RATE_LIMIT_EXPIRATION", time.Minute)

	ModelPath = getEnv("MODEL_PATH", "model_pipeline.json")
	PredictionCacheTTL = getEnvAsDuration("PREDICTION_CACHE_TTL", time.Hour)
}

// ListenAddress returns the host:port the server binds to.
func ListenAddress() string {
	return ServerHost + ":" + ServerPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[config] Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("[config] Invalid duration value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return value
}
