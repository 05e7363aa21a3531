// Package config provides configuration management for gondola using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration system supports a YAML file (.gondola.yml), environment
// variable overrides with the GONDOLA_ prefix, and validation. It manages
// where puzzle inputs are read from, how answers are printed, the watch
// debounce and logging.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable overrides.
const EnvPrefix = "GONDOLA"

// EnvKeyReplacer maps nested keys such as output.format onto
// GONDOLA_OUTPUT_FORMAT.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Defaults.
const (
	DefaultInputDir      = "./input"
	DefaultInputPattern  = "day%d.txt"
	DefaultOutputFormat  = "text"
	DefaultWatchDebounce = 250 * time.Millisecond
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Watch  WatchConfig  `yaml:"watch" mapstructure:"watch"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

type InputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Pattern string `yaml:"pattern" mapstructure:"pattern"`
}

type OutputConfig struct {
	Format      string `yaml:"format" mapstructure:"format"`
	GroupDigits bool   `yaml:"group_digits" mapstructure:"group_digits"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// SetDefaults registers default values on v so that environment variables
// are picked up by Unmarshal even when no config file sets the key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input.dir", DefaultInputDir)
	v.SetDefault("input.pattern", DefaultInputPattern)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.group_digits", false)
	v.SetDefault("watch.debounce", DefaultWatchDebounce)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v, applies defaults for anything
// left empty and validates the result.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Apply default values for anything not set
	if config.Input.Dir == "" {
		config.Input.Dir = DefaultInputDir
	}
	if config.Input.Pattern == "" {
		config.Input.Pattern = DefaultInputPattern
	}
	if config.Output.Format == "" {
		config.Output.Format = DefaultOutputFormat
	}
	if !v.IsSet("watch.debounce") && config.Watch.Debounce == 0 {
		config.Watch.Debounce = DefaultWatchDebounce
	}
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}

	// Validate configuration values
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// getDefaultConfig returns the configuration used when nothing is set.
func getDefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     DefaultInputDir,
			Pattern: DefaultInputPattern,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Watch: WatchConfig{
			Debounce: DefaultWatchDebounce,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
