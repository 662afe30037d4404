// Package config loads service configuration from environment variables
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/SnickALt21/juego-pardo/internal/errors"
)

// Config is the full service configuration. Telegram settings are
// optional: without a bot token the webhook plumbing is disabled and
// the game API still serves. Without a Redis address match recording is
// disabled.
type Config struct {
	Port int `env:"PORT" envDefault:"10000"`

	BotToken   string `env:"BOT_TOKEN"`
	WebhookURL string `env:"WEBHOOK_URL"`
	GameURL    string `env:"GAME_HTML_URL"`

	RedisAddr string `env:"REDIS_ADDR"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field consistency
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.Fieldf("PORT", "must be between %d and %d", 1, 65535)
	}
	if c.BotToken != "" && c.GameURL == "" {
		vb.Field("GAME_HTML_URL", "is required when BOT_TOKEN is set")
	}

	return vb.Build()
}

// TelegramEnabled reports whether the chat-bot plumbing is configured
func (c *Config) TelegramEnabled() bool {
	return c.BotToken != ""
}
