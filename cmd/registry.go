package cmd

import (
	"github.com/conneroisu/gondola/internal/calibration"
	"github.com/conneroisu/gondola/internal/cubegame"
	"github.com/conneroisu/gondola/internal/puzzle"
	"github.com/conneroisu/gondola/internal/schematic"
	"github.com/conneroisu/gondola/internal/scratchcards"
)

// newRegistry returns a registry holding every built-in solver.
func newRegistry() *puzzle.Registry {
	return puzzle.NewRegistry(
		calibration.Solver{},
		cubegame.Solver{},
		schematic.Solver{},
		scratchcards.Solver{},
	)
}
