// Package config loads runtime configuration with viper: defaults, an
// optional YAML file, and environment overrides, in that order.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/dshills/valuelens/internal/schema"
)

// Config is the full runtime configuration.
type Config struct {
	Provider Provider `mapstructure:"provider"`
	Analysis Analysis `mapstructure:"analysis"`
}

// Provider configures the LLM backend.
type Provider struct {
	Name        string  `mapstructure:"name"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// Analysis configures the pipeline itself.
type Analysis struct {
	Mode           string        `mapstructure:"mode"`
	Locale         string        `mapstructure:"locale"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Mode returns the configured analysis mode as a typed value.
func (a Analysis) ModeValue() schema.Mode { return schema.Mode(a.Mode) }

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply; a named file that cannot be read is an
// error, a missing default file is not.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("provider.name", "anthropic")
	v.SetDefault("provider.model", "claude-sonnet-4-5")
	v.SetDefault("provider.max_tokens", 4096)
	v.SetDefault("provider.temperature", 0.2)
	v.SetDefault("analysis.mode", string(schema.ModeBalanced))
	v.SetDefault("analysis.locale", "en")
	v.SetDefault("analysis.request_timeout", 600*time.Second)

	v.SetEnvPrefix("VALUELENS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !schema.Mode(c.Analysis.Mode).Valid() {
		return fmt.Errorf("config: invalid analysis.mode %q (want fast, balanced, or deep)", c.Analysis.Mode)
	}
	if c.Provider.MaxTokens <= 0 {
		return fmt.Errorf("config: provider.max_tokens must be positive")
	}
	if c.Analysis.RequestTimeout <= 0 {
		return fmt.Errorf("config: analysis.request_timeout must be positive")
	}
	return nil
}
