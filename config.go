package signet

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings captured by a Service at construction.
// The zero value of every optional field means "use the default".
type Config struct {
	// Secret is the signing key. Required; construction fails without it.
	Secret string `env:"SIGNET_SECRET,required"`
	// Algorithm selects the HMAC variant. Defaults to HS256.
	Algorithm Algorithm `env:"SIGNET_ALG" envDefault:"HS256"`
	// TokenType is the label written to the header "typ" field.
	// Defaults to "JWT".
	TokenType string `env:"SIGNET_TOKEN_TYPE" envDefault:"JWT"`
	// Expiry is the horizon added to the issuance time to determine when a
	// token stops being accepted. Defaults to 30 days.
	Expiry time.Duration `env:"SIGNET_EXPIRY" envDefault:"720h"`
}

// loadDotEnv loads a .env file into the process environment at most once.
var loadDotEnv sync.Once

// NewFromEnv builds a Service from SIGNET_* environment variables.
// A .env file in the working directory is loaded once per process if
// present; missing files are not an error. Options are applied on top of
// the environment values.
//
// Recognized variables:
//
//	SIGNET_SECRET      signing key (required)
//	SIGNET_ALG         HS256, HS384, or HS512 (default HS256)
//	SIGNET_TOKEN_TYPE  header "typ" label (default JWT)
//	SIGNET_EXPIRY      Go duration, e.g. 15m, 24h (default 720h)
func NewFromEnv(opts ...Option) (*Service, error) {
	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return NewFromConfig(cfg, opts...)
}

// NewFromConfig builds a Service from an explicit Config. Zero-valued
// optional fields fall back to the package defaults; use WithExpiry to set
// a literal zero expiry horizon.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	base := make([]Option, 0, 3+len(opts))
	if cfg.Algorithm != "" {
		base = append(base, WithAlgorithm(cfg.Algorithm))
	}
	if cfg.TokenType != "" {
		base = append(base, WithTokenType(cfg.TokenType))
	}
	if cfg.Expiry != 0 {
		base = append(base, WithExpiry(cfg.Expiry))
	}

	return New(cfg.Secret, append(base, opts...)...)
}
