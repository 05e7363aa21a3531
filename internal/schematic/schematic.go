// Package schematic solves the engine schematic puzzle.
//
// A schematic is a fixed-width grid of characters. Runs of digits are
// numbers, '.' is empty space and every other character is a symbol. A
// number is a part number when a symbol touches it in any of the eight
// directions, and a '*' touching exactly two part numbers is a gear.
//
// Coordinates are zero-based: Line indexes the grid row and columns index
// bytes within the row. Spans are inclusive on both ends.
package schematic

import (
	"fmt"
	"strconv"

	perrors "github.com/conneroisu/gondola/internal/errors"
)

const (
	empty    = '.'
	gearRune = '*'
)

// Grid is an immutable, rectangular schematic.
type Grid struct {
	lines []string
	width int
}

// NewGrid validates lines and wraps them in a Grid. Every line must have
// the same length; ragged input is rejected rather than scanned with
// partially clamped windows.
func NewGrid(lines []string) (*Grid, error) {
	g := &Grid{lines: lines}
	if len(lines) == 0 {
		return g, nil
	}

	g.width = len(lines[0])
	for i, line := range lines[1:] {
		if len(line) != g.width {
			return nil, perrors.NewValidationError(
				perrors.ErrCodeRaggedGrid,
				fmt.Sprintf("line has length %d, expected %d", len(line), g.width),
			).WithLocation("", i+2, 0).
				WithContext("width", g.width).
				WithContext("length", len(line))
		}
	}

	return g, nil
}

// Height returns the number of lines.
func (g *Grid) Height() int { return len(g.lines) }

// Width returns the common line length.
func (g *Grid) Width() int { return g.width }

// Line returns line i.
func (g *Grid) Line(i int) string { return g.lines[i] }

// Span is an inclusive horizontal run of columns on one line.
type Span struct {
	Line  int
	Start int
	End   int
}

// window returns the column range [Start-1, End+1] clamped to [0, width-1].
func (s Span) window(width int) (lo, hi int) {
	lo, hi = s.Start-1, s.End+1
	if lo < 0 {
		lo = 0
	}
	if hi > width-1 {
		hi = width - 1
	}
	return lo, hi
}

// Number is a maximal run of digits together with its location. Two
// numbers with the same value are still distinct when their spans differ.
type Number struct {
	Value int64
	Span
}

// IsAdjacentTo reports whether the position (line, column) touches n.
//
// On the number's own line only the cells directly before and after the
// run qualify; on the lines directly above and below any column in
// [Start-1, End+1] qualifies.
func (n Number) IsAdjacentTo(line, column int) bool {
	switch line - n.Line {
	case 0:
		return column == n.Start-1 || column == n.End+1
	case -1, 1:
		lo := n.Start - 1
		if lo < 0 {
			lo = 0
		}
		return column >= lo && column <= n.End+1
	default:
		return false
	}
}

// SymbolSet is the set of distinct symbol characters of a grid.
type SymbolSet map[byte]struct{}

// Contains reports whether c is in the set.
func (s SymbolSet) Contains(c byte) bool {
	_, ok := s[c]
	return ok
}

// IsSymbol reports whether c is neither a digit nor empty space.
func IsSymbol(c byte) bool {
	return !isDigit(c) && c != empty
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ExtractSymbols collects every symbol character that appears in the grid.
func ExtractSymbols(g *Grid) SymbolSet {
	symbols := make(SymbolSet)
	for _, line := range g.lines {
		for i := 0; i < len(line); i++ {
			if IsSymbol(line[i]) {
				symbols[line[i]] = struct{}{}
			}
		}
	}
	return symbols
}

// ExtractNumbers scans line left to right and returns every maximal digit
// run in column order. A run whose value does not fit in 32 bits is an
// error for the whole line.
func ExtractNumbers(line string, lineIndex int) ([]Number, error) {
	var numbers []Number

	for i := 0; i < len(line); {
		if !isDigit(line[i]) {
			i++
			continue
		}

		start := i
		for i < len(line) && isDigit(line[i]) {
			i++
		}

		text := line[start:i]
		value, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return nil, perrors.ErrInvalidNumber(text, err).
				WithLocation("", lineIndex+1, start+1)
		}

		numbers = append(numbers, Number{
			Value: int64(value),
			Span:  Span{Line: lineIndex, Start: start, End: i - 1},
		})
	}

	return numbers, nil
}

// IsAdjacentToSymbol reports whether any symbol in symbols lies in the
// clamped window around n on its own line or the lines directly above and
// below it.
func (g *Grid) IsAdjacentToSymbol(n Number, symbols SymbolSet) bool {
	if g.width == 0 {
		return false
	}
	lo, hi := n.window(g.width)

	for line := n.Line - 1; line <= n.Line+1; line++ {
		if line < 0 || line >= len(g.lines) {
			continue
		}
		row := g.lines[line]
		for col := lo; col <= hi; col++ {
			if symbols.Contains(row[col]) {
				return true
			}
		}
	}

	return false
}

// FindPartNumbers returns every number touching a symbol, in line order
// and then column order.
func FindPartNumbers(g *Grid) ([]Number, error) {
	symbols := ExtractSymbols(g)

	var parts []Number
	for i, line := range g.lines {
		numbers, err := ExtractNumbers(line, i)
		if err != nil {
			return nil, err
		}
		for _, n := range numbers {
			if g.IsAdjacentToSymbol(n, symbols) {
				parts = append(parts, n)
			}
		}
	}

	return parts, nil
}

// Gear is a '*' touching exactly two part numbers. Parts holds indices into
// the part number slice the gear was found in.
type Gear struct {
	Line   int
	Column int
	Parts  [2]int
}

// Ratio returns the product of the gear's two part numbers.
func (g Gear) Ratio(parts []Number) int64 {
	return parts[g.Parts[0]].Value * parts[g.Parts[1]].Value
}

// FindGears returns every '*' position touching exactly two of parts, in
// line order and then column order.
func FindGears(g *Grid, parts []Number) []Gear {
	var gears []Gear

	for lineIndex, line := range g.lines {
		for col := 0; col < len(line); col++ {
			if line[col] != gearRune {
				continue
			}

			var adjacent []int
			for i, n := range parts {
				// parts are ordered by line, so nothing past line+1 can touch.
				if n.Line > lineIndex+1 {
					break
				}
				if n.IsAdjacentTo(lineIndex, col) {
					adjacent = append(adjacent, i)
					if len(adjacent) > 2 {
						break
					}
				}
			}

			if len(adjacent) == 2 {
				gears = append(gears, Gear{
					Line:   lineIndex,
					Column: col,
					Parts:  [2]int{adjacent[0], adjacent[1]},
				})
			}
		}
	}

	return gears
}

// Schematic is the result of scanning a grid once.
type Schematic struct {
	Grid  *Grid
	Parts []Number
	Gears []Gear
}

// Scan validates lines and finds its part numbers and gears.
func Scan(lines []string) (*Schematic, error) {
	g, err := NewGrid(lines)
	if err != nil {
		return nil, err
	}

	parts, err := FindPartNumbers(g)
	if err != nil {
		return nil, err
	}

	return &Schematic{
		Grid:  g,
		Parts: parts,
		Gears: FindGears(g, parts),
	}, nil
}

// PartSum returns the sum of all part numbers.
func (s *Schematic) PartSum() int64 {
	var sum int64
	for _, n := range s.Parts {
		sum += n.Value
	}
	return sum
}

// GearRatioSum returns the sum of all gear ratios.
func (s *Schematic) GearRatioSum() int64 {
	var sum int64
	for _, gear := range s.Gears {
		sum += gear.Ratio(s.Parts)
	}
	return sum
}

// PartA returns the sum of the part numbers in lines.
func PartA(lines []string) (int64, error) {
	s, err := Scan(lines)
	if err != nil {
		return 0, err
	}
	return s.PartSum(), nil
}

// PartB returns the sum of the gear ratios in lines.
func PartB(lines []string) (int64, error) {
	s, err := Scan(lines)
	if err != nil {
		return 0, err
	}
	return s.GearRatioSum(), nil
}

// Solver adapts the package to the puzzle registry.
type Solver struct{}

// Day implements puzzle.Solver.
func (Solver) Day() int { return 3 }

// Title implements puzzle.Solver.
func (Solver) Title() string { return "Gear Ratios" }

// PartA implements puzzle.Solver.
func (Solver) PartA(lines []string) (int64, error) { return PartA(lines) }

// PartB implements puzzle.Solver.
func (Solver) PartB(lines []string) (int64, error) { return PartB(lines) }
