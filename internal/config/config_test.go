package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uccal/internal/report"
	"github.com/roach88/uccal/internal/ucc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ucc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "full", cfg.Style)
	assert.Equal(t, "western", cfg.Pantheon)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ucc.Western, cfg.PantheonValue())
	assert.Equal(t, report.StyleFull, cfg.StyleValue())
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestNew_NoFileFound(t *testing.T) {
	v, err := New("", []string{filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)
	assert.Empty(t, v.ConfigFileUsed())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
}

func TestNew_ExplicitFile(t *testing.T) {
	path := writeConfig(t, "format = \"json\"\npantheon = \"greek\"\nstyle = \"short\"\nlog_level = \"debug\"\n")

	v, err := New(path, nil)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, ucc.Greek, cfg.PantheonValue())
	assert.Equal(t, report.StyleShort, cfg.StyleValue())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestNew_ExplicitFileMissing(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestNew_SearchPathOrder(t *testing.T) {
	first := writeConfig(t, "pantheon = \"hindu\"\n")
	second := writeConfig(t, "pantheon = \"greek\"\n")

	v, err := New("", []string{filepath.Join(t.TempDir(), "absent.toml"), first, second})
	require.NoError(t, err)
	assert.Equal(t, first, v.ConfigFileUsed())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "hindu", cfg.Pantheon)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "pantheon = \"greek\"\n")
	t.Setenv("UCC_PANTHEON", "hindu")
	t.Setenv("UCC_LOG_LEVEL", "error")

	v, err := New(path, nil)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "hindu", cfg.Pantheon)
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())
}

func TestNew_FlagOverridesEnv(t *testing.T) {
	t.Setenv("UCC_FORMAT", "yaml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyFormat, "text", "")

	v, err := New("", nil)
	require.NoError(t, err)
	require.NoError(t, v.BindPFlag(KeyFormat, flags.Lookup(KeyFormat)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format, "unchanged flag must not override env")

	require.NoError(t, flags.Parse([]string{"--format", "json"}))
	cfg, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "format = \"xml\"\n")

	v, err := New(path, nil)
	require.NoError(t, err)
	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestValidate(t *testing.T) {
	valid := Config{Format: "text", Style: "full", Pantheon: "western", LogLevel: "info"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"format", func(c *Config) { c.Format = "csv" }, "invalid format"},
		{"style", func(c *Config) { c.Style = "fancy" }, "invalid style"},
		{"pantheon", func(c *Config) { c.Pantheon = "norse" }, "invalid pantheon"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSlogLevel_Fallback(t *testing.T) {
	c := Config{LogLevel: "chatty"}
	assert.Equal(t, slog.LevelWarn, c.SlogLevel())
}
