package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"development"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN     string        `env:"DATABASE_DSN"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry       time.Duration `env:"JWT_EXPIRY" envDefault:"1h"`
	AdminSecretHash string        `env:"ADMIN_SECRET_HASH"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	LegacyStrength  bool          `env:"LEGACY_STRENGTH_OVERRIDES" envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureJWTSecret
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
