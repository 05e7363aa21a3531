package puzzle

import (
	"context"
	"fmt"
	"strings"
	"time"

	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/logging"
)

// Part selects which answers to compute.
type Part int

const (
	PartBoth Part = iota
	PartOne
	PartTwo
)

// String returns the flag spelling of the part
func (p Part) String() string {
	switch p {
	case PartOne:
		return "1"
	case PartTwo:
		return "2"
	default:
		return "all"
	}
}

// ParsePart converts "1", "2", "a", "b" or "all" into a Part.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "a":
		return PartOne, nil
	case "2", "b":
		return PartTwo, nil
	case "", "all", "both":
		return PartBoth, nil
	default:
		return PartBoth, perrors.NewValidationError(
			perrors.ErrCodeInvalidPart,
			fmt.Sprintf("invalid part %q (supported: 1, 2, all)", s),
		)
	}
}

// numbers returns the part numbers p covers in execution order.
func (p Part) numbers() []int {
	switch p {
	case PartOne:
		return []int{1}
	case PartTwo:
		return []int{2}
	default:
		return []int{1, 2}
	}
}

// Result is one computed answer.
type Result struct {
	Day      int           `json:"day" yaml:"day"`
	Title    string        `json:"title" yaml:"title"`
	Part     int           `json:"part" yaml:"part"`
	Answer   int64         `json:"answer" yaml:"answer"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Runner executes solvers and logs their timings.
type Runner struct {
	logger logging.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Runner{logger: logger.WithComponent("runner")}
}

// Run computes the requested parts of s over lines, in order. The first
// failing part aborts the run; ctx is checked before each part.
func (r *Runner) Run(ctx context.Context, s Solver, lines []string, part Part) ([]Result, error) {
	results := make([]Result, 0, 2)

	for _, n := range part.numbers() {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		solve := s.PartA
		if n == 2 {
			solve = s.PartB
		}

		op := logging.StartOperation(r.logger.With("day", s.Day(), "part", n), "solve")
		answer, err := solve(lines)
		if err != nil {
			op.EndWithError(ctx, err)
			return results, perrors.WrapSolve(err, s.Day(), fmt.Sprintf("part %d failed", n))
		}
		duration := op.End(ctx, "answer", answer)

		results = append(results, Result{
			Day:      s.Day(),
			Title:    s.Title(),
			Part:     n,
			Answer:   answer,
			Duration: duration,
		})
	}

	return results, nil
}
