package pulse

import (
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Config holds client configuration readable from the environment. Tags
// follow the go-flags convention so the same struct can be embedded into a
// consumer's own flag set.
type Config struct {
	// betteralign:ignore

	APIKey       string        `long:"api-key" env:"PULSE_API_KEY" description:"API key for the authenticated tier"`
	BaseURL      string        `long:"base-url" env:"PULSE_BASE_URL" description:"API base URL" default:"https://pulse.rectorspace.com"`
	Timeout      time.Duration `long:"timeout" env:"PULSE_TIMEOUT" description:"Per-request timeout" default:"30s"`
	RateLimitRPS float64       `long:"rate-limit" env:"PULSE_RATE_LIMIT" description:"Client-side request pacing, requests per second (0 disables)"`
}

// ConfigFromEnv reads client configuration from PULSE_* environment
// variables, loading a .env file first when one is present.
func ConfigFromEnv() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(nil); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Options expands the configuration into client options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithBaseURL(c.BaseURL),
		WithTimeout(c.Timeout),
	}

	if c.APIKey != "" {
		opts = append(opts, WithAPIKey(c.APIKey))
	}
	if c.RateLimitRPS > 0 {
		opts = append(opts, WithRateLimit(c.RateLimitRPS, 1))
	}

	return opts
}

// Client builds a synchronous client from the configuration, with any extra
// options appended.
func (c *Config) Client(extra ...Option) *Client {
	return New(append(c.Options(), extra...)...)
}

// AsyncClient builds a concurrent client from the configuration, with any
// extra options appended.
func (c *Config) AsyncClient(extra ...Option) *AsyncClient {
	return NewAsync(append(c.Options(), extra...)...)
}
