package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Addr               string `env:"APP_ADDR"              envDefault:":8080"`
	Environment        string `env:"APP_ENV"               envDefault:"development"`
	LogLevel           string `env:"LOG_LEVEL"             envDefault:"info"`
	JWTSecret          string `env:"JWT_SECRET"`
	MaxBodyBytes       int64  `env:"MAX_BODY_BYTES"        envDefault:"1048576"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	MaxRosterSize      int    `env:"MAX_ROSTER_SIZE"       envDefault:"1000"`
	ReportTitle        string `env:"REPORT_TITLE"          envDefault:"Payroll Summary"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

func (c Config) Validate() error {
	if c.IsProduction() && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.MaxRosterSize <= 0 {
		return fmt.Errorf("MAX_ROSTER_SIZE must be positive")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.LogLevel)
	}
	return nil
}
