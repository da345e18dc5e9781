// Package config loads and validates all environment variables at startup.
// Every other package receives typed values — nothing reads os.Getenv directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the fully-parsed application configuration.
type Config struct {
	// ── Server ────────────────────────────────────────────────────────────────
	Port string // default "8080"
	Env  string // "development" | "staging" | "production"

	// ── SendGrid ──────────────────────────────────────────────────────────────
	SendGridAPIKey string
	FromEmail      string // verified sender address
	FromName       string // display name on outbound mail

	// ── Quote dispatch ────────────────────────────────────────────────────────
	AdminEmail string // administrative recipient of every quote request
	StoreName  string // appended to the customer subject line; may be empty

	// ── Store branding (email chrome) ─────────────────────────────────────────
	StoreLogoURL      string
	StoreWebsiteURL   string
	StoreContactEmail string
	StoreContactPhone string
	StoreInstagramURL string

	// ── Rate limiting ─────────────────────────────────────────────────────────
	RateLimitPerMinute int // default 60
	RateLimitBurst     int // default 10
}

// Load reads all environment variables and returns a validated Config.
// A .env file in the working directory is loaded first when present, so plain
// `go run ./cmd/api` works in development without any wrapper. Real
// environment variables always take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing file is fine

	c := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		FromEmail:          os.Getenv("FROM_EMAIL"),
		FromName:           getEnv("FROM_NAME", "Organik Nation"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		StoreName:          os.Getenv("STORE_NAME"),
		StoreLogoURL:       getEnv("STORE_LOGO_URL", "https://www.organiknation.ca/cdn/shop/files/LOGO-Footer.png"),
		StoreWebsiteURL:    getEnv("STORE_WEBSITE_URL", "https://www.organiknation.ca/"),
		StoreContactEmail:  getEnv("STORE_CONTACT_EMAIL", "info@organiknation.ca"),
		StoreContactPhone:  getEnv("STORE_CONTACT_PHONE", "+1 (418) 570-4073"),
		StoreInstagramURL:  getEnv("STORE_INSTAGRAM_URL", "https://instagram.com/organik_nation_/"),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),
	}

	return c, c.validate()
}

func (c *Config) validate() error {
	var errs []error

	required := map[string]string{
		"SENDGRID_API_KEY": c.SendGridAPIKey,
		"ADMIN_EMAIL":      c.AdminEmail,
		"FROM_EMAIL":       c.FromEmail,
	}

	for name, val := range required {
		if val == "" {
			errs = append(errs, fmt.Errorf("missing required env var: %s", name))
		}
	}

	if c.RateLimitPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive"))
	}
	if c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive"))
	}

	return errors.Join(errs...)
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
