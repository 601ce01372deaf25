// Package config loads gamebot settings from flags, environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment override, e.g. GAMEBOT_API_KEY.
const EnvPrefix = "GAMEBOT"

// Config is the resolved runtime configuration. DB is the SQLite catalog
// database; Catalog, when set, names a YAML catalog file that takes
// precedence over DB. A non-zero Seed pins random choices. SessionIdle
// bounds how long an untouched HTTP conversation is kept; negative keeps
// conversations until deleted.
type Config struct {
	DB            string        `mapstructure:"db"`
	Catalog       string        `mapstructure:"catalog"`
	Addr          string        `mapstructure:"addr"`
	APIKey        string        `mapstructure:"api_key"`
	LogLevel      string        `mapstructure:"log_level"`
	Count         int           `mapstructure:"count"`
	PlatformCount int           `mapstructure:"platform_count"`
	Seed          int64         `mapstructure:"seed"`
	SessionIdle   time.Duration `mapstructure:"session_idle"`
}

// Dir returns the per-user gamebot directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".gamebot")
}

// SetDefaults registers default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("db", filepath.Join(Dir(), "catalog.db"))
	v.SetDefault("catalog", "")
	v.SetDefault("addr", ":8000")
	v.SetDefault("api_key", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("count", 3)
	v.SetDefault("platform_count", 5)
	v.SetDefault("seed", 0)
	v.SetDefault("session_idle", 30*time.Minute)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file (path, or config.yaml in Dir when path is
// empty) and unmarshals the merged settings. A missing default file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.PlatformCount <= 0 {
		return fmt.Errorf("platform_count must be positive, got %d", c.PlatformCount)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
