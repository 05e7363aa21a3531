package config

import (
	"fmt"
	"strings"

	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/input"
	"github.com/conneroisu/gondola/internal/logging"
	"github.com/conneroisu/gondola/internal/report"
)

// validateConfig validates configuration values for correctness
func validateConfig(config *Config) error {
	if err := validateInputConfig(&config.Input); err != nil {
		return fmt.Errorf("input config: %w", err)
	}

	if _, err := report.ParseFormat(config.Output.Format); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if config.Watch.Debounce <= 0 {
		return fmt.Errorf("watch config: %w", perrors.NewConfigError(
			perrors.ErrCodeConfigInvalid,
			fmt.Sprintf("debounce must be positive, got %s", config.Watch.Debounce),
		))
	}

	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	return nil
}

func validateInputConfig(config *InputConfig) error {
	if strings.TrimSpace(config.Dir) == "" {
		return perrors.NewConfigError(perrors.ErrCodeConfigInvalid, "dir must not be empty")
	}
	if strings.ContainsRune(config.Dir, 0) {
		return perrors.NewConfigError(perrors.ErrCodeConfigInvalid, "dir contains a NUL byte")
	}

	return input.ValidatePattern(config.Pattern)
}

func validateLogConfig(config *LogConfig) error {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		return perrors.WrapConfig(err, perrors.ErrCodeConfigInvalid, "invalid level")
	}

	switch config.Format {
	case "text", "json":
		return nil
	default:
		return perrors.NewConfigError(
			perrors.ErrCodeConfigInvalid,
			fmt.Sprintf("format %q is not one of text, json", config.Format),
		)
	}
}

// LoggerConfig converts the log section into a logging configuration.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	lc.Format = c.Log.Format
	return lc
}

// InputPath resolves the input file for day.
func (c *Config) InputPath(day int) (string, error) {
	return input.Resolve(c.Input.Dir, c.Input.Pattern, day)
}

// ReportOptions converts the output section into renderer options.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		Format:      report.Format(c.Output.Format),
		GroupDigits: c.Output.GroupDigits,
	}
}
