package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/conneroisu/gondola/internal/puzzle"
	"github.com/conneroisu/gondola/internal/report"
	"github.com/conneroisu/gondola/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch <day>",
	Aliases: []string{"w"},
	Short:   "Re-solve a day whenever its input file changes",
	Long: `Solve a day once, then solve it again each time its input file is
written. Bursts of writes are grouped using watch.debounce (250ms by default).
Errors are printed and watching continues. Press Ctrl+C to stop.

Examples:
  gondola watch 3                      # Watch ./input/day3.txt
  gondola watch 1 -i sample.txt -p 2   # Watch a sample, part 2 only`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchFlags *OutputFlags
	watchInput string
	watchPart  string
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchFlags = addOutputFlags(watchCmd)
	addSolveFlags(watchCmd, &watchInput, &watchPart)
}

func runWatch(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	part, err := puzzle.ParsePart(watchPart)
	if err != nil {
		return err
	}
	day, err := parseDayArg(args[0])
	if err != nil {
		return err
	}
	solvers, err := selectSolvers(rt.registry, args[0])
	if err != nil {
		return err
	}
	solver := solvers[0]

	renderer, err := report.NewRenderer(rt.cfg.ReportOptions())
	if err != nil {
		return err
	}

	path := watchInput
	if path == "" {
		if path, err = rt.cfg.InputPath(day); err != nil {
			return err
		}
	}

	runner := puzzle.NewRunner(rt.logger)
	out := &lockedWriter{w: cmd.OutOrStdout()}

	solveOnce := func(ctx context.Context) error {
		results, err := solveDay(ctx, rt, runner, solver, path, part)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return err
		}
		return renderer.Render(ctx, out, results)
	}

	fileWatcher, err := watcher.NewFileWatcher(rt.cfg.Watch.Debounce, rt.logger)
	if err != nil {
		return err
	}
	defer fileWatcher.Stop()

	fileWatcher.AddFilter(watcher.NoEditorTempFilter)
	if err := fileWatcher.WatchFile(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	fileWatcher.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		rt.logger.Info(ctx, "Input changed", "path", path, "events", len(events))
		return solveOnce(ctx)
	})

	if err := solveOnce(ctx); err != nil {
		rt.logger.Warn(ctx, err, "Initial solve failed, waiting for changes")
	}

	if err := fileWatcher.Start(ctx); err != nil {
		return err
	}
	rt.logger.Info(ctx, "Watching for changes", "day", day, "path", path)

	<-ctx.Done()
	rt.logger.Info(context.Background(), "Stopping file watcher")
	return nil
}

// lockedWriter serializes writes from the watcher goroutine and the
// command goroutine.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
