// Package cmd provides the command-line interface for gondola with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports configuration through multiple sources with clear precedence:
//	1. Command-line flags (--output, --log-level, etc.) - highest priority
//	2. Individual environment variables (GONDOLA_OUTPUT_FORMAT, etc.)
//	3. Configuration file (.gondola.yml, --config or GONDOLA_CONFIG_FILE)
//	4. Built-in defaults - lowest priority
//
// Environment Variables:
//
//	GONDOLA_CONFIG_FILE: Path to custom configuration file
//	GONDOLA_INPUT_DIR: Directory holding the puzzle inputs
//	GONDOLA_INPUT_PATTERN: File name pattern, e.g. day%d.txt
//	GONDOLA_OUTPUT_FORMAT: text, json, yaml or html
//	And the rest following the GONDOLA_<SECTION>_<OPTION> pattern
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/conneroisu/gondola/internal/config"
	"github.com/conneroisu/gondola/internal/logging"
	"github.com/conneroisu/gondola/internal/puzzle"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gondola",
	Short: "Solve the daily text puzzles from their input files",
	Long: `Gondola solves a set of daily text puzzles. Each day reads a plain text
input file and prints two integer answers.

Quick Start:
  gondola list                    List the days that have a solver
  gondola solve 3                 Solve day 3 from ./input/day3.txt
  gondola solve all -o json       Solve every day, print JSON
  gondola watch 3                 Re-solve day 3 whenever its input changes

Command Aliases (for faster typing):
  solve (s), list (l), watch (w)`,
	SilenceUsage:      true,
	PersistentPreRunE: bindFlags,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .gondola.yml, can also use GONDOLA_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")
}

// initConfig initializes the configuration system.
//
// Configuration file priority (highest to lowest):
//  1. --config flag
//  2. GONDOLA_CONFIG_FILE environment variable
//  3. .gondola.yml in the current directory
//
// Environment variables with the GONDOLA_ prefix override file values,
// e.g. GONDOLA_INPUT_DIR=./puzzles.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("GONDOLA_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gondola")
	}

	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer)

	// A missing file falls back to defaults; a broken one is reported by
	// loadRuntime once the logger exists.
	configReadErr = viper.ReadInConfig()
}

var configReadErr error

// flagBindings maps flag names onto configuration keys.
var flagBindings = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"output":       "output.format",
	"group-digits": "output.group_digits",
}

// bindFlags binds the flags of the running command to viper. Binding
// happens per run so that viper.Reset in tests does not drop them.
func bindFlags(cmd *cobra.Command, _ []string) error {
	for flagName, key := range flagBindings {
		if flag := cmd.Flags().Lookup(flagName); flag != nil {
			if err := viper.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}
	return nil
}

// runtime bundles what every command needs after configuration loads.
type runtime struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *puzzle.Registry
}

func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc)

	ctx := cmd.Context()
	if configReadErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(configReadErr, &notFound) {
			logger.Warn(ctx, configReadErr, "Ignoring unreadable config file")
		}
	} else {
		logger.Debug(ctx, "Using config file", "path", viper.ConfigFileUsed())
	}

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		registry: newRegistry(),
	}, nil
}
