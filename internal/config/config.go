// Package config loads optional user overrides for the violet demo:
// the startup theme and extra component defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/violetkit/violet/internal/kit"
)

const envPrefix = "VIOLET"

// Config holds user overrides layered onto the built-in framework
// configuration. The zero value changes nothing.
type Config struct {
	Theme    string                    `mapstructure:"theme"`
	LogLevel string                    `mapstructure:"log_level"`
	Defaults map[string]map[string]any `mapstructure:"defaults"`
}

// Load reads configuration from path, or from the standard search
// locations when path is empty. An explicitly given path must exist;
// an absent file in the search locations is not an error. Environment
// variables (VIOLET_THEME, VIOLET_LOG_LEVEL) always apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register scalar keys so env-only overrides survive Unmarshal.
	v.SetDefault("theme", "")
	v.SetDefault("log_level", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/violet")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			if path == "" {
				return nil, fmt.Errorf("read config: %w", err)
			}
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Apply layers the overrides onto a framework configuration. User
// defaults win over built-in defaults key by key; the theme choice
// replaces the built-in default theme name and is validated by
// kit.New like any other.
func (c *Config) Apply(opts kit.Options) kit.Options {
	if c == nil {
		return opts
	}

	if c.Theme != "" {
		opts.Theme.Default = c.Theme
	}

	if len(c.Defaults) > 0 {
		merged := kit.Defaults{}
		for name, props := range opts.Defaults {
			merged[name] = props
		}
		for name, overrides := range c.Defaults {
			props := kit.Props{}
			for key, value := range merged[name] {
				props[key] = value
			}
			for key, value := range overrides {
				props[key] = value
			}
			merged[name] = props
		}
		opts.Defaults = merged
	}

	return opts
}
