package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/input"
	"github.com/conneroisu/gondola/internal/puzzle"
	"github.com/spf13/cobra"
)

var validateFormat string

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [day...]",
	Short: "Check configuration and puzzle inputs without printing answers",
	Long: `Validate the configuration and the input files of the given days, or
of every registered day when none are named. Each input must exist and be
accepted by its solver.

Examples:
  gondola validate                    # Validate every day
  gondola validate 2 3                # Validate days 2 and 3
  gondola validate --format json      # Output results as JSON`,
	RunE: runValidateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().
		StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

type ValidationResult struct {
	Day    int      `json:"day"`
	Title  string   `json:"title"`
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type ValidationSummary struct {
	Total   int                `json:"total"`
	Valid   int                `json:"valid"`
	Invalid int                `json:"invalid"`
	Results []ValidationResult `json:"results"`
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	if validateFormat != "text" && validateFormat != "json" {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", validateFormat)
	}

	rt, err := loadRuntime(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx := cmd.Context()

	solvers := rt.registry.All()
	if len(args) > 0 {
		solvers = solvers[:0:0]
		for _, arg := range args {
			selected, err := selectSolvers(rt.registry, arg)
			if err != nil {
				return err
			}
			solvers = append(solvers, selected...)
		}
	}

	runner := puzzle.NewRunner(rt.logger)
	summary := ValidationSummary{Results: make([]ValidationResult, 0, len(solvers))}

	for _, solver := range solvers {
		result := ValidationResult{Day: solver.Day(), Title: solver.Title(), Errors: []string{}}

		path, err := rt.cfg.InputPath(solver.Day())
		if err != nil {
			return err
		}
		result.Path = path

		if lines, err := input.ReadLines(ctx, path); err != nil {
			result.Errors = append(result.Errors, perrors.FormatError(err))
		} else if _, err := runner.Run(ctx, solver, lines, puzzle.PartBoth); err != nil {
			result.Errors = append(result.Errors, perrors.FormatError(err))
		}

		result.Valid = len(result.Errors) == 0
		if result.Valid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
		summary.Results = append(summary.Results, result)
	}
	summary.Total = len(summary.Results)

	if validateFormat == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(summary); err != nil {
			return err
		}
	} else {
		printValidationText(cmd.OutOrStdout(), summary)
	}

	if summary.Invalid > 0 {
		return fmt.Errorf("validation failed: %d of %d inputs invalid", summary.Invalid, summary.Total)
	}
	return nil
}

func printValidationText(out io.Writer, summary ValidationSummary) {
	for _, result := range summary.Results {
		status := "ok"
		if !result.Valid {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-4s day %2d  %s\n", status, result.Day, result.Path)
		for _, msg := range result.Errors {
			fmt.Fprintf(out, "       %s\n", msg)
		}
	}
	fmt.Fprintf(out, "%d valid, %d invalid\n", summary.Valid, summary.Invalid)
}
