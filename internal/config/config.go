package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings. It is read once at startup and handed to whatever needs it.
type Config struct {
	DatabasePath    string
	Port            int
	BaseURL         string
	CORSOrigins     []string
	SessionLifetime time.Duration

	StripeSecretKey     string
	StripeWebhookSecret string

	ResendAPIKey string
	MailFrom     string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Bucket          string
	R2PublicBaseURL   string

	DiscordKey         string
	DiscordSecret      string
	DiscordCallbackURL string
	GoogleKey          string
	GoogleSecret       string
	GoogleCallbackURL  string
}

// Load reads the environment, picking up a .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DatabasePath:        orDefault(getenv("DATABASE_PATH"), "tournament.db"),
		BaseURL:             strings.TrimRight(orDefault(getenv("BASE_URL"), "http://localhost:8080"), "/"),
		StripeSecretKey:     getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: getenv("STRIPE_WEBHOOK_SECRET"),
		ResendAPIKey:        getenv("RESEND_API_KEY"),
		MailFrom:            orDefault(getenv("MAIL_FROM"), "onboarding@resend.dev"),
		R2AccountID:         getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:       getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:   getenv("R2_SECRET_ACCESS_KEY"),
		R2Bucket:            getenv("R2_BUCKET"),
		R2PublicBaseURL:     getenv("R2_PUBLIC_BASE_URL"),
		DiscordKey:          getenv("DISCORD_KEY"),
		DiscordSecret:       getenv("DISCORD_SECRET"),
		DiscordCallbackURL:  getenv("DISCORD_CALLBACK_URL"),
		GoogleKey:           getenv("GOOGLE_KEY"),
		GoogleSecret:        getenv("GOOGLE_SECRET"),
		GoogleCallbackURL:   getenv("GOOGLE_CALLBACK_URL"),
	}

	port, err := strconv.Atoi(orDefault(getenv("PORT"), "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}
	cfg.Port = port

	lifetime, err := time.ParseDuration(orDefault(getenv("SESSION_LIFETIME"), "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_LIFETIME environment variable: %w", err)
	}
	cfg.SessionLifetime = lifetime

	for _, origin := range strings.Split(orDefault(getenv("CORS_ORIGINS"), cfg.BaseURL), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.StripeSecretKey != "" && cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("STRIPE_WEBHOOK_SECRET is required when STRIPE_SECRET_KEY is set")
	}

	return cfg, nil
}

// CORSCredentials reports whether cross-origin requests may carry cookies. A wildcard origin never does.
func (c *Config) CORSCredentials() bool {
	return !slices.Contains(c.CORSOrigins, "*")
}

func (c *Config) PaymentsEnabled() bool {
	return c.StripeSecretKey != ""
}

func (c *Config) MailEnabled() bool {
	return c.ResendAPIKey != ""
}

func (c *Config) UploadsEnabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2Bucket != "" && c.R2PublicBaseURL != ""
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
