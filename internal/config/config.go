// Package config loads service configuration from an optional config
// file and MATHCOACH_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the service-level settings. Generative backend settings
// live in llm.Config and are read separately from the environment.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`

	// DBPath is the SQLite database file path. Empty means the
	// platform default under XDG data home.
	DBPath string `mapstructure:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// CORSOrigins lists allowed origins for browser clients.
	// Empty means same-origin only.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Load reads configuration from configs/mathcoach.yaml (when present)
// and the environment. Environment variables use the MATHCOACH_ prefix:
// MATHCOACH_ADDR, MATHCOACH_DB_PATH, MATHCOACH_LOG_LEVEL,
// MATHCOACH_CORS_ORIGINS (comma-separated).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", []string{})

	v.SetConfigName("mathcoach")
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MATHCOACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Viper keeps comma-separated env lists as a single string.
	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
		for i := range cfg.CORSOrigins {
			cfg.CORSOrigins[i] = strings.TrimSpace(cfg.CORSOrigins[i])
		}
	}

	return &cfg, nil
}
