// Package config loads CLI settings from defaults, an optional TOML file,
// UCC_* environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/uccal/internal/report"
	"github.com/roach88/uccal/internal/ucc"
)

// Keys understood by the configuration layer.
const (
	KeyFormat   = "format"
	KeyStyle    = "style"
	KeyPantheon = "pantheon"
	KeyLogLevel = "log_level"
)

// EnvPrefix prefixes every environment variable, e.g. UCC_PANTHEON.
const EnvPrefix = "UCC"

// Config holds resolved settings.
type Config struct {
	Format   string `mapstructure:"format"`
	Style    string `mapstructure:"style"`
	Pantheon string `mapstructure:"pantheon"`
	LogLevel string `mapstructure:"log_level"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyStyle, string(report.StyleFull))
	v.SetDefault(KeyPantheon, ucc.Western.String())
	v.SetDefault(KeyLogLevel, "warn")
}

// DefaultSearchPaths returns the config files tried when none is given
// explicitly: ./ucc.toml, then $HOME/.config/ucc/config.toml.
func DefaultSearchPaths() []string {
	paths := []string{"ucc.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ucc", "config.toml"))
	}
	return paths
}

// New returns a Viper instance with defaults and environment binding in
// place. When configFile is set it must exist; otherwise the first existing
// file in searchPaths is read, if any.
func New(configFile string, searchPaths []string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	path := configFile
	if path == "" {
		path = firstExisting(searchPaths)
	}
	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return v, nil
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		if used := v.ConfigFileUsed(); used != "" {
			return nil, fmt.Errorf("%s: %w", used, err)
		}
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its accepted values.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid %s %q: must be text, json or yaml", KeyFormat, c.Format)
	}
	if _, err := report.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyStyle, err)
	}
	if _, err := ucc.ParsePantheon(c.Pantheon); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyPantheon, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// PantheonValue returns the parsed pantheon. Call after Validate.
func (c *Config) PantheonValue() ucc.Pantheon {
	p, _ := ucc.ParsePantheon(c.Pantheon)
	return p
}

// StyleValue returns the parsed style. Call after Validate.
func (c *Config) StyleValue() report.Style {
	return report.Style(c.Style)
}

// SlogLevel returns the configured log level, or slog.LevelWarn when the
// level is not recognized.
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be debug, info, warn or error", KeyLogLevel, s)
	}
	return l, nil
}
