// Package config loads process configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// Config is everything the binaries read from the environment
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`
	// RedisAddr selects the Redis run store; empty keeps runs in memory
	RedisAddr string        `env:"REDIS_ADDR"`
	RunTTL    time.Duration `env:"RUN_TTL" envDefault:"24h"`
	// PresetDBPath is the SQLite preset database; empty disables presets
	PresetDBPath string `env:"PRESET_DB_PATH"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultSeed  uint64 `env:"DEFAULT_SEED" envDefault:"1"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks ranges env.Parse can't express
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	if c.RunTTL <= 0 {
		vb.Field("RUN_TTL", "must be positive")
	}
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel),
		[]string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
