package main

import (
	"time"

	"github.com/dmitrymomot/landing/core/cookie"
	"github.com/dmitrymomot/landing/core/logger"
	"github.com/dmitrymomot/landing/core/server"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"landing"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	Cookie cookie.Config
	Server server.Config
	Log    logger.Config

	// ContactNotifyEmail receives a copy of every contact submission when an
	// email provider is configured.
	ContactNotifyEmail string `env:"CONTACT_NOTIFY_EMAIL"`

	// EmailProvider selects the outbound email backend: "none", "dev"
	// (writes files to EmailDevDir) or "postmark".
	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"none"`
	EmailDevDir   string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`

	// DeliveryDelay and DeliverySuccessRate tune the simulated deliverer.
	DeliveryDelay       time.Duration `env:"CONTACT_DELIVERY_DELAY" envDefault:"1500ms"`
	DeliverySuccessRate float64       `env:"CONTACT_DELIVERY_SUCCESS_RATE" envDefault:"0.9"`

	// RedisURL enables the Redis-backed rate limit store when set. Empty
	// falls back to the in-memory store, which is fine for a single replica.
	RedisURL string `env:"REDIS_URL"`

	// Token bucket for POST /contact, keyed by client IP.
	ContactRateCapacity int           `env:"CONTACT_RATE_CAPACITY" envDefault:"5"`
	ContactRateRefill   int           `env:"CONTACT_RATE_REFILL" envDefault:"1"`
	ContactRateInterval time.Duration `env:"CONTACT_RATE_INTERVAL" envDefault:"1m"`
}

// isProduction reports whether the app runs with production settings
// (JSON logs, HSTS enabled).
func (c Config) isProduction() bool {
	return c.Environment == "production"
}
