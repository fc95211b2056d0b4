// Package config loads the settings of the bt command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "BUDGET"

// Config stores all configuration of the application.
//
// The values are read by viper from a budget.env file or from environment
// variables, e.g. BUDGET_CURRENCY.
type Config struct {
	Currency  string `mapstructure:"CURRENCY"`   // display currency code
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // zerolog level name
	LogFormat string `mapstructure:"LOG_FORMAT"` // console or json
	Style     string `mapstructure:"STYLE"`      // glamour style, "auto" or "raw"
	Model     string `mapstructure:"MODEL"`      // Gemini model used by the advisor
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Currency:  "USD",
		LogLevel:  "warn",
		LogFormat: "console",
		Style:     "auto",
		Model:     "gemini-2.5-flash",
	}
}

// Load reads the configuration.
//
// A .env file in the working directory is loaded first, if any. Then the
// budget.env file is searched in the given paths; it is optional.
// Environment variables override file values.
func Load(paths ...string) (Config, error) {
	// .env is a convenience, a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load .env: %w", err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault("CURRENCY", def.Currency)
	v.SetDefault("LOG_LEVEL", def.LogLevel)
	v.SetDefault("LOG_FORMAT", def.LogFormat)
	v.SetDefault("STYLE", def.Style)
	v.SetDefault("MODEL", def.Model)

	v.SetConfigName("budget")
	v.SetConfigType("env")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cannot read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("cannot decode config: %w", err)
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DefaultPaths returns the folders searched for budget.env: the working
// directory and the user config folder.
func DefaultPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "budget"))
	}
	return paths
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	var errs []error
	if c.Currency == "" {
		errs = append(errs, errors.New("currency must not be empty"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be console or json", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
