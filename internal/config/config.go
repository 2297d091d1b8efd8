// Package config loads service settings from config.yaml and VERIFIND_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	Env      string `mapstructure:"ENV"`

	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays int    `mapstructure:"LOG_MAX_AGE_DAYS"`

	AuthSecret string        `mapstructure:"AUTH_SECRET"`
	TokenTTL   time.Duration `mapstructure:"TOKEN_TTL"`

	SessionIdleTTL time.Duration `mapstructure:"SESSION_IDLE_TTL"`
	SessionSweep   time.Duration `mapstructure:"SESSION_SWEEP"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
	MaxBodyBytes   int64   `mapstructure:"MAX_BODY_BYTES"`
	CORSOrigins    string  `mapstructure:"CORS_ORIGINS"`

	// PGDSN switches the catalog to Postgres when set.
	PGDSN string `mapstructure:"PG_DSN"`

	// DemoAlertInterval re-broadcasts active alerts on the stream; zero disables.
	DemoAlertInterval time.Duration `mapstructure:"DEMO_ALERT_INTERVAL"`
}

var defaults = map[string]any{
	"HTTP_ADDR":           ":8080",
	"GRPC_ADDR":           ":9090",
	"ENV":                 "development",
	"LOG_LEVEL":           "info",
	"LOG_FILE":            "",
	"LOG_MAX_SIZE_MB":     10,
	"LOG_MAX_BACKUPS":     5,
	"LOG_MAX_AGE_DAYS":    30,
	"AUTH_SECRET":         "",
	"TOKEN_TTL":           "12h",
	"SESSION_IDLE_TTL":    "30m",
	"SESSION_SWEEP":       "1m",
	"RATE_LIMIT_RPS":      20.0,
	"RATE_LIMIT_BURST":    40,
	"MAX_BODY_BYTES":      1 << 20,
	"CORS_ORIGINS":        "*",
	"PG_DSN":              "",
	"DEMO_ALERT_INTERVAL": "30s",
}

// Load reads the configuration and validates it.
func Load(paths ...string) (Config, error) {
	cfg, err := Read(paths...)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read loads config.yaml from the given directories (default "." and
// "./config") and overlays VERIFIND_* environment variables, without
// validation. A missing file is not an error.
func Read(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("VERIFIND")
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail at first use.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.AuthSecret) == "" {
		errs = append(errs, errors.New("AUTH_SECRET is required"))
	} else if c.IsProduction() && len(c.AuthSecret) < 32 {
		errs = append(errs, errors.New("AUTH_SECRET must be at least 32 bytes in production"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.SessionIdleTTL <= 0 {
		errs = append(errs, errors.New("SESSION_IDLE_TTL must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}
	if c.DemoAlertInterval < 0 {
		errs = append(errs, errors.New("DEMO_ALERT_INTERVAL must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// IsProduction reports whether ENV is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
