// Package config loads themekit configuration from file and
// environment and turns it into a running engine.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/opencode-ai/themekit/brand"
	"github.com/opencode-ai/themekit/engine"
	"github.com/opencode-ai/themekit/locale"
)

// LocaleEntry declares one supported locale in the config file.
type LocaleEntry struct {
	// Tag is the BCP 47 locale tag, e.g. "es-ES".
	Tag string `mapstructure:"tag"`

	// Name is the display name shown in language pickers.
	Name string `mapstructure:"name"`
}

// Config describes the initial design state.
type Config struct {
	// Brand names a registered brand. Default: "default".
	Brand string `mapstructure:"brand"`

	// DarkMode selects the initial mode.
	DarkMode bool `mapstructure:"dark_mode"`

	// Locale is the initial locale hint, e.g. "es-MX". Empty means
	// use the first supported locale.
	Locale string `mapstructure:"locale"`

	// LogLevel sets the zerolog level for themekit components.
	LogLevel string `mapstructure:"log_level"`

	// SupportedLocales lists the locales the application ships
	// translations for. Order defines the default.
	SupportedLocales []LocaleEntry `mapstructure:"supported_locales"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Brand:    "default",
		LogLevel: "warn",
		SupportedLocales: []LocaleEntry{
			{Tag: "en-US", Name: "English (US)"},
		},
	}
}

// Load reads themekit.yaml from path (or the working directory and
// ~/.config/themekit when path is empty), applies THEMEKIT_*
// environment overrides, and validates the result. A missing file is
// not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("themekit")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/themekit")
	}
	v.SetEnvPrefix("THEMEKIT")
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("brand", defaults.Brand)
	v.SetDefault("dark_mode", defaults.DarkMode)
	v.SetDefault("log_level", defaults.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.SupportedLocales) == 0 {
		cfg.SupportedLocales = defaults.SupportedLocales
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config against the brand registry and locale
// syntax, collecting all problems.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := brand.Lookup(c.Brand); !ok {
		errs = append(errs, fmt.Errorf("brand: unknown brand %q", c.Brand))
	}
	if len(c.SupportedLocales) == 0 {
		errs = append(errs, errors.New("supported_locales: at least one entry is required"))
	}
	for i, entry := range c.SupportedLocales {
		if _, err := locale.Parse(entry.Tag); err != nil {
			errs = append(errs, fmt.Errorf("supported_locales[%d]: %w", i, err))
		}
	}
	if c.Locale != "" {
		if _, err := locale.Parse(c.Locale); err != nil {
			errs = append(errs, fmt.Errorf("locale: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Build constructs an engine from the config.
func (c *Config) Build() (*engine.Engine, error) {
	b, ok := brand.Lookup(c.Brand)
	if !ok {
		return nil, fmt.Errorf("unknown brand %q", c.Brand)
	}

	supported := make([]locale.Localize, 0, len(c.SupportedLocales))
	for _, entry := range c.SupportedLocales {
		tag, err := locale.Parse(entry.Tag)
		if err != nil {
			return nil, err
		}
		supported = append(supported, locale.Localize{Tag: tag, DisplayName: entry.Name})
	}

	opts := engine.Options{DarkMode: c.DarkMode}
	if c.Locale != "" {
		hint, err := locale.Parse(c.Locale)
		if err != nil {
			return nil, err
		}
		opts.LocaleHint = hint
	}

	return engine.New(b, supported, opts)
}
