package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort    string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	RedisURI      string

	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int

	// AdminUsernames may create, update and delete catalog movies.
	AdminUsernames []string

	LogLevel string
	LogMode  string

	// S3 image storage. Disabled when S3Endpoint is empty.
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3UseSSL       bool
	ImageURLExpiry time.Duration

	// Background removal of replaced and orphaned images.
	ImageCleanupWorkers   int
	ImageCleanupQueueSize int
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		MongoURI:       getEnvRequired("MONGO_URI"),
		MongoDatabase:  getEnvRequired("MONGO_DATABASE"),
		RedisURI:       getEnv("REDIS_URI", "localhost:6379"),
		JWTSecret:      getEnvRequired("JWT_SECRET"),
		JWTExpiry:      parseDuration(getEnv("JWT_EXPIRY", "24h")),
		BcryptCost:     parseInt(getEnv("BCRYPT_COST", "10")),
		AdminUsernames: splitList(getEnv("ADMIN_USERNAMES", "")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogMode:        getEnv("LOG_MODE", "development"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3Bucket:       getEnv("S3_BUCKET", "movie-images"),
		S3UseSSL:       getEnv("S3_USE_SSL", "false") == "true",
		ImageURLExpiry: parseDuration(getEnv("IMAGE_URL_EXPIRY", "15m")),

		ImageCleanupWorkers:   parseInt(getEnv("IMAGE_CLEANUP_WORKERS", "2")),
		ImageCleanupQueueSize: parseInt(getEnv("IMAGE_CLEANUP_QUEUE_SIZE", "100")),
	}

	return cfg
}

// StorageEnabled reports whether image storage is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != ""
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses an integer string, exits on error
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid integer format: %s", s)
	}
	return n
}

// splitList splits a comma separated list, dropping blank entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
