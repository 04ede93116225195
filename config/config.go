package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// SMTP transport defaults (overridable at runtime via /api/smtp-config)
	SMTPServer   string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
	// Path of the file-backed SMTP settings store
	SMTPConfigFile string
	// Optional submission archive database
	DBUrl string
	// Redis/Upstash Configuration (rate limiter backend)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "5001"),
		// SMTP Configuration
		SMTPServer:     getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "info@ddarchitecture.com"),
		SMTPConfigFile: getEnv("SMTP_CONFIG_FILE", "smtp_config.json"),
		// Submission archive (optional; falls back to in-memory store)
		DBUrl: getEnv("DATABASE_URL", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials not set. Sends will be attempted unauthenticated.")
	}
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL not configured. Submission archive will use in-memory storage.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
