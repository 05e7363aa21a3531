//go:build property
// +build property

package schematic

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// gridGen produces rectangular grids of 6 lines by 8 columns drawn from
// digits, empty space and two symbols.
func gridGen() gopter.Gen {
	return gen.SliceOfN(6, gen.RegexMatch(`^[.0-9*#]{8}$`))
}

// touchesSymbol is a brute force oracle: it checks the eight neighbours of
// every digit of n.
func touchesSymbol(lines []string, n Number) bool {
	for col := n.Start; col <= n.End; col++ {
		for dl := -1; dl <= 1; dl++ {
			for dc := -1; dc <= 1; dc++ {
				l, c := n.Line+dl, col+dc
				if l < 0 || l >= len(lines) || c < 0 || c >= len(lines[l]) {
					continue
				}
				if IsSymbol(lines[l][c]) {
					return true
				}
			}
		}
	}
	return false
}

// neighbours returns the numbers with at least one digit in the 3x3 block
// centred on (line, col).
func neighbours(numbers []Number, line, col int) []Number {
	var out []Number
	for _, n := range numbers {
		if n.Line < line-1 || n.Line > line+1 {
			continue
		}
		if n.End >= col-1 && n.Start <= col+1 {
			out = append(out, n)
		}
	}
	return out
}

func allNumbers(t *testing.T, lines []string) []Number {
	var out []Number
	for i, line := range lines {
		numbers, err := ExtractNumbers(line, i)
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		out = append(out, numbers...)
	}
	return out
}

func TestPartNumberProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: the filter keeps exactly the numbers the oracle accepts
	properties.Property("part numbers are sound and complete", prop.ForAll(
		func(lines []string) bool {
			g, err := NewGrid(lines)
			if err != nil {
				return false
			}
			parts, err := FindPartNumbers(g)
			if err != nil {
				return false
			}

			var expected []Number
			for _, n := range allNumbers(t, lines) {
				if touchesSymbol(lines, n) {
					expected = append(expected, n)
				}
			}

			if len(parts) != len(expected) {
				return false
			}
			for i := range parts {
				if parts[i] != expected[i] {
					return false
				}
			}
			return true
		},
		gridGen(),
	))

	// Property: grids without symbols have no part numbers and no gears
	properties.Property("no symbols means zero answers", prop.ForAll(
		func(lines []string) bool {
			a, errA := PartA(lines)
			b, errB := PartB(lines)
			return errA == nil && errB == nil && a == 0 && b == 0
		},
		gen.SliceOfN(6, gen.RegexMatch(`^[.0-9]{8}$`)),
	))

	// Property: grids without digits have no part numbers and no gears
	properties.Property("no digits means zero answers", prop.ForAll(
		func(lines []string) bool {
			s, err := Scan(lines)
			return err == nil && len(s.Parts) == 0 && len(s.Gears) == 0
		},
		gen.SliceOfN(6, gen.RegexMatch(`^[.*#$]{8}$`)),
	))

	properties.TestingRun(t)
}

func TestGearProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: every gear owns two distinct numbers that both touch its '*'
	properties.Property("gear parts are distinct and adjacent", prop.ForAll(
		func(lines []string) bool {
			s, err := Scan(lines)
			if err != nil {
				return false
			}
			for _, g := range s.Gears {
				if s.Grid.Line(g.Line)[g.Column] != '*' {
					return false
				}
				a, b := s.Parts[g.Parts[0]], s.Parts[g.Parts[1]]
				if a.Span == b.Span {
					return false
				}
				if !a.IsAdjacentTo(g.Line, g.Column) || !b.IsAdjacentTo(g.Line, g.Column) {
					return false
				}
			}
			return true
		},
		gridGen(),
	))

	// Property: gears match a brute force count over all numbers
	properties.Property("gears agree with brute force", prop.ForAll(
		func(lines []string) bool {
			s, err := Scan(lines)
			if err != nil {
				return false
			}

			numbers := allNumbers(t, lines)
			var expected int64
			count := 0
			for l, line := range lines {
				for c := 0; c < len(line); c++ {
					if line[c] != '*' {
						continue
					}
					adjacent := neighbours(numbers, l, c)
					if len(adjacent) == 2 {
						count++
						expected += adjacent[0].Value * adjacent[1].Value
					}
				}
			}

			return count == len(s.Gears) && expected == s.GearRatioSum()
		},
		gridGen(),
	))

	properties.TestingRun(t)
}

func TestExtractNumbersRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: re-placing extracted runs on a '.' background restores every digit
	properties.Property("extraction is lossless for digit positions", prop.ForAll(
		func(line string) bool {
			numbers, err := ExtractNumbers(line, 0)
			if err != nil {
				return false
			}

			rebuilt := []byte(strings.Repeat(".", len(line)))
			for _, n := range numbers {
				copy(rebuilt[n.Start:n.End+1], line[n.Start:n.End+1])
			}

			for i := 0; i < len(line); i++ {
				want := byte('.')
				if isDigit(line[i]) {
					want = line[i]
				}
				if rebuilt[i] != want {
					return false
				}
			}
			return true
		},
		gen.RegexMatch(`^[.*#$]?([0-9]{1,4}[.*#$]{1,3}){0,4}$`),
	))

	properties.TestingRun(t)
}
