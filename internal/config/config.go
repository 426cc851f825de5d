package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds the whole application configuration.
// Populated from environment variables, loaded once at startup.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Pricing PricingConfig
	Session SessionConfig
	Email   EmailConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	StoreName   string // storefront display name, used in receipt filenames
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Enabled  bool // false → in-memory stores only
}

// AuthConfig holds settings for the external auth provider integration.
// The core never issues tokens; it only verifies what the provider signed.
type AuthConfig struct {
	JWTSecret string
}

type PricingConfig struct {
	FreeShippingThreshold decimal.Decimal // subtotal at/above this ships free
	FlatShippingFee       decimal.Decimal
	EstimatedDeliveryDays int
}

type SessionConfig struct {
	CartTTL      time.Duration // anonymous cart lifetime
	OrderTTL     time.Duration // order handoff entry lifetime
	CookieSecure bool
}

type EmailConfig struct {
	Provider string // mock, smtp
	From     string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Heritage Marketplace API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			StoreName:   getEnv("STORE_NAME", "HeritageHaat"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", false),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		Pricing: PricingConfig{
			FreeShippingThreshold: getEnvDecimal("FREE_SHIPPING_THRESHOLD", "140"),
			FlatShippingFee:       getEnvDecimal("FLAT_SHIPPING_FEE", "50"),
			EstimatedDeliveryDays: getEnvInt("ESTIMATED_DELIVERY_DAYS", 5),
		},
		Session: SessionConfig{
			CartTTL:      getEnvDuration("CART_TTL", 24*time.Hour),
			OrderTTL:     getEnvDuration("ORDER_TTL", 2*time.Hour),
			CookieSecure: getEnvBool("COOKIE_SECURE", true),
		},
		Email: EmailConfig{
			Provider: getEnv("EMAIL_PROVIDER", "mock"),
			From:     getEnv("EMAIL_FROM", "noreply@heritagehaat.com"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for invalid combinations
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if c.Pricing.FlatShippingFee.IsNegative() {
		return fmt.Errorf("FLAT_SHIPPING_FEE must be >= 0")
	}
	if c.Pricing.FreeShippingThreshold.IsNegative() {
		return fmt.Errorf("FREE_SHIPPING_THRESHOLD must be >= 0")
	}
	if c.Pricing.EstimatedDeliveryDays < 1 {
		return fmt.Errorf("ESTIMATED_DELIVERY_DAYS must be >= 1")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDecimal(key string, defaultValue string) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		value, _ = decimal.NewFromString(defaultValue)
	}
	return value
}
