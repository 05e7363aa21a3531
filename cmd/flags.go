package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/puzzle"
	"github.com/conneroisu/gondola/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// OutputFlags are shared by every command that prints results
type OutputFlags struct {
	Format      string
	GroupDigits bool
}

// addOutputFlags adds --output and --group-digits to a command. Empty
// values defer to the configuration.
func addOutputFlags(cmd *cobra.Command) *OutputFlags {
	flags := &OutputFlags{}
	cmd.Flags().StringVarP(&flags.Format, "output", "o", "", "Output format (text|json|yaml|html)")
	cmd.Flags().BoolVar(&flags.GroupDigits, "group-digits", false, "Group answer digits, e.g. 4,361")

	AddFlagValidation(cmd, "output", ValidateFormat)
	return flags
}

// addSolveFlags adds --input and --part to a command.
func addSolveFlags(cmd *cobra.Command, input, part *string) {
	cmd.Flags().StringVarP(input, "input", "i", "", "Input file (default resolved from input.dir and input.pattern)")
	cmd.Flags().StringVarP(part, "part", "p", "all", "Part to solve (1|2|all)")

	AddFlagValidation(cmd, "part", ValidatePart)
	AddFlagValidation(cmd, "input", ValidateFileExists)
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	// Store original value setter
	originalSet := flag.Value.Set

	// Create wrapper that validates
	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}

// ValidateFormat accepts the report formats
func ValidateFormat(format string) error {
	if format == "" {
		return nil // Empty defers to output.format
	}
	_, err := report.ParseFormat(format)
	return err
}

// ValidatePart accepts 1, 2, a, b and all
func ValidatePart(part string) error {
	_, err := puzzle.ParsePart(part)
	return err
}

// File existence validation helper
func ValidateFileExists(filename string) error {
	if filename == "" {
		return nil // Empty is valid for optional files
	}

	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filename)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	return nil
}

// parseDayArg converts a day argument into a day number.
func parseDayArg(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, perrors.NewValidationError(
			perrors.ErrCodeUnknownDay,
			fmt.Sprintf("%q is not a valid day value", arg),
		)
	}
	return day, nil
}

// selectSolvers resolves a day argument, or "all", against registry.
func selectSolvers(registry *puzzle.Registry, arg string) ([]puzzle.Solver, error) {
	if strings.EqualFold(strings.TrimSpace(arg), "all") {
		return registry.All(), nil
	}

	day, err := parseDayArg(arg)
	if err != nil {
		return nil, err
	}
	solver, ok := registry.Get(day)
	if !ok {
		return nil, perrors.ErrUnknownDay(day)
	}
	return []puzzle.Solver{solver}, nil
}
