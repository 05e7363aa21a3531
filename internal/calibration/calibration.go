// Package calibration solves the trebuchet calibration puzzle: every line
// hides a two-digit value made of its first and last digit.
package calibration

import "strings"

var spelledDigits = []struct {
	word  string
	digit byte
}{
	{"one", '1'},
	{"two", '2'},
	{"three", '3'},
	{"four", '4'},
	{"five", '5'},
	{"six", '6'},
	{"seven", '7'},
	{"eight", '8'},
	{"nine", '9'},
}

// CalibrationValue combines the first and last digit of line into a two
// digit number. A single digit is used for both places; a line without
// digits is worth 0.
func CalibrationValue(line string) int64 {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			continue
		}
		if first < 0 {
			first = int(c - '0')
		}
		last = int(c - '0')
	}

	if first < 0 {
		return 0
	}
	return int64(first*10 + last)
}

// SpellDigits replaces each spelled digit with its numeral. Every index is
// tested, so words sharing letters all count: "eightwo" becomes "8igh2wo".
// Characters that start no word are copied unchanged.
func SpellDigits(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	for i := 0; i < len(line); i++ {
		c := line[i]
		for _, sd := range spelledDigits {
			if strings.HasPrefix(line[i:], sd.word) {
				c = sd.digit
				break
			}
		}
		b.WriteByte(c)
	}

	return b.String()
}

// PartA sums the calibration values of lines.
func PartA(lines []string) (int64, error) {
	var sum int64
	for _, line := range lines {
		sum += CalibrationValue(line)
	}
	return sum, nil
}

// PartB sums the calibration values of lines after spelling out digits.
func PartB(lines []string) (int64, error) {
	var sum int64
	for _, line := range lines {
		sum += CalibrationValue(SpellDigits(line))
	}
	return sum, nil
}

// Solver adapts the package to the puzzle registry.
type Solver struct{}

func (Solver) Day() int { return 1 }
func (Solver) Title() string { return "Trebuchet?!" }
func (Solver) PartA(lines []string) (int64, error) { return PartA(lines) }
func (Solver) PartB(lines []string) (int64, error) { return PartB(lines) }
