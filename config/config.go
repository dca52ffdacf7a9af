package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort              = "8080"
	DefaultAccessExpiryMin   = 15
	DefaultRefreshExpiryMin  = 10080
	DefaultResetExpiryMin    = 10
	DefaultBcryptCost        = 12
	DefaultSMTPPort          = 587
	DefaultResetPasswordLink = "http://localhost:3000/reset-password"
)

// Config holds every environment-sourced setting. It is loaded once at
// startup and treated as read-only afterwards; services receive it through
// their constructors instead of reading os.Getenv themselves.
type Config struct {
	Env   string
	Port  string
	DBURL string

	AccessTokenSecret  string
	RefreshTokenSecret string
	ResetTokenSecret   string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	ResetExpiryMin     int

	BcryptCost int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	ResetPasswordLink string
	ClientURL         string
}

func Load() *Config {
	// Optional .env for local development; deployed environments set
	// variables directly.
	_ = godotenv.Load()

	return &Config{
		Env:   getEnv("ENV", "development"),
		Port:  getEnv("PORT", DefaultPort),
		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		ResetTokenSecret:   mustGetEnv("RESET_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshExpiryMin),
		ResetExpiryMin:     getEnvAsInt("RESET_TOKEN_EXPIRY", DefaultResetExpiryMin),

		BcryptCost: getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", "no-reply@skillsync.io"),

		ResetPasswordLink: getEnv("RESET_PASSWORD_LINK", DefaultResetPasswordLink),
		ClientURL:         getEnv("CLIENT_URL", "http://localhost:3000"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
