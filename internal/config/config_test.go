package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/logging"
	"github.com/conneroisu/gondola/internal/report"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			setup: func() {
				viper.Reset()
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, getDefaultConfig(), cfg)
			},
		},
		{
			name: "custom values",
			setup: func() {
				viper.Reset()
				viper.Set("input.dir", "puzzles")
				viper.Set("input.pattern", "%02d.txt")
				viper.Set("output.format", "json")
				viper.Set("output.group_digits", true)
				viper.Set("watch.debounce", "1s")
				viper.Set("log.level", "debug")
				viper.Set("log.format", "json")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "puzzles", cfg.Input.Dir)
				assert.Equal(t, "%02d.txt", cfg.Input.Pattern)
				assert.Equal(t, "json", cfg.Output.Format)
				assert.True(t, cfg.Output.GroupDigits)
				assert.Equal(t, time.Second, cfg.Watch.Debounce)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "invalid output format",
			setup: func() {
				viper.Reset()
				viper.Set("output.format", "xml")
			},
			expectError: true,
		},
		{
			name: "pattern without day",
			setup: func() {
				viper.Reset()
				viper.Set("input.pattern", "input.txt")
			},
			expectError: true,
		},
		{
			name: "negative debounce",
			setup: func() {
				viper.Reset()
				viper.Set("watch.debounce", "-1s")
			},
			expectError: true,
		},
		{
			name: "unknown log level",
			setup: func() {
				viper.Reset()
				viper.Set("log.level", "chatty")
			},
			expectError: true,
		},
		{
			name: "unknown log format",
			setup: func() {
				viper.Reset()
				viper.Set("log.format", "xml")
			},
			expectError: true,
		},
		{
			name: "invalid viper value",
			setup: func() {
				viper.Reset()
				viper.Set("watch.debounce", "soon")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer viper.Reset()

			cfg, err := Load()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gondola.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  dir: ./data
output:
  format: yaml
watch:
  debounce: 50ms
`), 0o644))

	t.Setenv("GONDOLA_OUTPUT_FORMAT", "html")

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "./data", cfg.Input.Dir)
	assert.Equal(t, DefaultInputPattern, cfg.Input.Pattern)
	assert.Equal(t, "html", cfg.Output.Format)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
}

func TestConfigHelpers(t *testing.T) {
	cfg := getDefaultConfig()
	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"
	cfg.Output.GroupDigits = true

	lc := cfg.LoggerConfig()
	assert.Equal(t, logging.LevelWarn, lc.Level)
	assert.Equal(t, "json", lc.Format)

	path, err := cfg.InputPath(3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("input", "day3.txt"), path)

	assert.Equal(t, report.Options{Format: report.FormatText, GroupDigits: true}, cfg.ReportOptions())
}

func TestValidateConfigErrorsAreTyped(t *testing.T) {
	cfg := getDefaultConfig()
	cfg.Input.Dir = "  "

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.True(t, perrors.HasCode(err, perrors.ErrCodeConfigInvalid))
}
