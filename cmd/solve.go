package cmd

import (
	"context"
	"fmt"

	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/input"
	"github.com/conneroisu/gondola/internal/puzzle"
	"github.com/conneroisu/gondola/internal/report"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:     "solve <day|all>",
	Aliases: []string{"s"},
	Short:   "Solve one day, or every day",
	Long: `Solve a day's puzzle from its input file and print the answers.

Without --input the file is resolved from input.dir and input.pattern,
./input/day3.txt for day 3 by default. "all" solves every registered day;
a failing day is reported after the answers of the others.

Examples:
  gondola solve 3                      # Both parts of day 3
  gondola solve 3 -p 1                 # Only part 1
  gondola solve 1 -i sample.txt        # Solve a specific file
  gondola solve all -o yaml            # Every day as YAML
  gondola solve all --group-digits     # Answers like 467,835`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

var (
	solveFlags *OutputFlags
	solveInput string
	solvePart  string
)

func init() {
	rootCmd.AddCommand(solveCmd)

	solveFlags = addOutputFlags(solveCmd)
	addSolveFlags(solveCmd, &solveInput, &solvePart)
}

func runSolve(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	part, err := puzzle.ParsePart(solvePart)
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(rt.cfg.ReportOptions())
	if err != nil {
		return err
	}

	solvers, err := selectSolvers(rt.registry, args[0])
	if err != nil {
		return err
	}
	if solveInput != "" && len(solvers) > 1 {
		return fmt.Errorf("--input can only be used when solving a single day")
	}

	runner := puzzle.NewRunner(rt.logger)

	// A single day fails fast; "all" keeps going and reports at the end
	if len(solvers) == 1 {
		results, err := solveDay(ctx, rt, runner, solvers[0], solveInput, part)
		if err != nil {
			return err
		}
		return renderer.Render(ctx, cmd.OutOrStdout(), results)
	}

	collector := perrors.NewErrorCollector()
	var results []puzzle.Result
	for _, solver := range solvers {
		dayResults, err := solveDay(ctx, rt, runner, solver, "", part)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			rt.logger.Error(ctx, err, "Day failed", "day", solver.Day())
			collector.Add(solver.Day(), 0, err)
			continue
		}
		results = append(results, dayResults...)
	}

	if err := renderer.Render(ctx, cmd.OutOrStdout(), results); err != nil {
		return err
	}
	return collector.Err()
}

// solveDay reads the input of solver and runs the requested parts. An empty
// path is resolved from the configuration.
func solveDay(
	ctx context.Context,
	rt *runtime,
	runner *puzzle.Runner,
	solver puzzle.Solver,
	path string,
	part puzzle.Part,
) ([]puzzle.Result, error) {
	if path == "" {
		resolved, err := rt.cfg.InputPath(solver.Day())
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	rt.logger.Debug(ctx, "Reading input", "day", solver.Day(), "path", path)
	lines, err := input.ReadLines(ctx, path)
	if err != nil {
		return nil, perrors.WrapSolve(err, solver.Day(), fmt.Sprintf("reading input for %q", solver.Title()))
	}

	return runner.Run(ctx, solver, lines, part)
}
