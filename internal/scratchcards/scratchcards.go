// Package scratchcards solves the scratchcards puzzle.
//
// Each line is a card with a list of winning numbers and a list of numbers
// held, separated by '|':
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
package scratchcards

import (
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/conneroisu/gondola/internal/errors"
)

// Card is one parsed scratchcard.
type Card struct {
	ID      int
	Winning []int
	Held    []int
}

// Matches counts the winning numbers that also appear among the held ones.
func (c Card) Matches() int {
	held := make(map[int]struct{}, len(c.Held))
	for _, n := range c.Held {
		held[n] = struct{}{}
	}

	matches := 0
	for _, n := range c.Winning {
		if _, ok := held[n]; ok {
			matches++
		}
	}
	return matches
}

// Score is 1 for the first match and doubles for every further one.
func (c Card) Score() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard parses one line. lineNo is 1-based and only used for error
// locations.
func ParseCard(line string, lineNo int) (Card, error) {
	front, back, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, perrors.ErrMalformedLine(lineNo, fmt.Sprintf("could not split %q at ':'", line))
	}

	var digits strings.Builder
	for i := 0; i < len(front); i++ {
		if front[i] >= '0' && front[i] <= '9' {
			digits.WriteByte(front[i])
		}
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return Card{}, perrors.ErrInvalidNumber(front, err).WithLocation("", lineNo, 0)
	}

	winningText, heldText, ok := strings.Cut(back, "|")
	if !ok {
		return Card{}, perrors.ErrMalformedLine(lineNo, fmt.Sprintf("could not split %q at '|'", line))
	}

	winning, err := parseNumbers(winningText, lineNo)
	if err != nil {
		return Card{}, err
	}
	held, err := parseNumbers(heldText, lineNo)
	if err != nil {
		return Card{}, err
	}

	return Card{ID: id, Winning: winning, Held: held}, nil
}

func parseNumbers(text string, lineNo int) ([]int, error) {
	fields := strings.Fields(text)
	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, perrors.ErrInvalidNumber(f, err).WithLocation("", lineNo, 0)
		}
		numbers = append(numbers, int(n))
	}
	return numbers, nil
}

// ParseCards parses every line, stopping at the first malformed one.
func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCard(line, i+1)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CountCopies plays out the card-winning rule: card i with m matches wins
// one extra copy of each of the next m cards for every copy of card i held.
// Wins never extend past the last card. The returned slice holds the final
// number of copies of each card.
func CountCopies(cards []Card) []int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	return copies
}

// PartA sums the score of every card.
func PartA(lines []string) (int64, error) {
	cards, err := ParseCards(lines)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, c := range cards {
		total += c.Score()
	}
	return total, nil
}

// PartB returns how many cards are held once all won copies are counted.
func PartB(lines []string) (int64, error) {
	cards, err := ParseCards(lines)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, n := range CountCopies(cards) {
		total += n
	}
	return total, nil
}

// Solver adapts the package to the puzzle registry.
type Solver struct{}

func (Solver) Day() int { return 4 }
func (Solver) Title() string { return "Scratchcards" }
func (Solver) PartA(lines []string) (int64, error) { return PartA(lines) }
func (Solver) PartB(lines []string) (int64, error) { return PartB(lines) }
