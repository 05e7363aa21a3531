//go:build property
// +build property

package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestConfigurationProperties tests configuration validation properties
func TestConfigurationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: any positive debounce with known enums validates
	properties.Property("valid config validates", prop.ForAll(
		func(ms int64, format string, level string, width int) bool {
			cfg := getDefaultConfig()
			cfg.Watch.Debounce = time.Duration(ms) * time.Millisecond
			cfg.Output.Format = format
			cfg.Log.Level = level
			cfg.Input.Pattern = fmt.Sprintf("day%%0%dd.txt", width)

			return validateConfig(cfg) == nil
		},
		gen.Int64Range(1, 10000),
		gen.OneConstOf("text", "json", "yaml", "html"),
		gen.OneConstOf("debug", "info", "warn", "error"),
		gen.IntRange(1, 4),
	))

	// Property: non-positive debounce is always rejected
	properties.Property("non-positive debounce rejected", prop.ForAll(
		func(ms int64) bool {
			cfg := getDefaultConfig()
			cfg.Watch.Debounce = time.Duration(ms) * time.Millisecond
			return validateConfig(cfg) != nil
		},
		gen.Int64Range(-10000, 0),
	))

	// Property: patterns without a day verb are rejected
	properties.Property("pattern needs a day", prop.ForAll(
		func(name string) bool {
			cfg := getDefaultConfig()
			cfg.Input.Pattern = name + ".txt"
			return validateConfig(cfg) != nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
