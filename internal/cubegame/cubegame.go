// Package cubegame solves the cube conundrum puzzle. Each input line
// records one game as a series of draws of red, green and blue cubes:
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
package cubegame

import (
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/conneroisu/gondola/internal/errors"
)

// Limit is the bag content used by part A.
var Limit = Draw{Red: 12, Green: 13, Blue: 14}

// Draw is the number of cubes of each color shown at once. Zero means the
// color was not shown.
type Draw struct {
	Red   int
	Green int
	Blue  int
}

// Power is the product of the three counts. An absent color counts as 1 so
// a draw missing a color does not zero the product.
func (d Draw) Power() int64 {
	return int64(orOne(d.Red)) * int64(orOne(d.Green)) * int64(orOne(d.Blue))
}

// Within reports whether no count of d exceeds the matching count of limit.
func (d Draw) Within(limit Draw) bool {
	return d.Red <= limit.Red && d.Green <= limit.Green && d.Blue <= limit.Blue
}

func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// Game is one parsed input line.
type Game struct {
	ID    int
	Draws []Draw
}

// Possible reports whether every draw fits in limit.
func (g Game) Possible(limit Draw) bool {
	for _, d := range g.Draws {
		if !d.Within(limit) {
			return false
		}
	}
	return true
}

// MinimumSet returns the fewest cubes of each color that make g possible.
func (g Game) MinimumSet() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGame parses one line. lineNo is 1-based and only used for error
// locations.
func ParseGame(line string, lineNo int) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, perrors.ErrMalformedLine(lineNo, "missing ':' after game id").
			WithContext("line_text", line)
	}

	name, idText, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || name != "Game" {
		return Game{}, perrors.ErrMalformedLine(lineNo, fmt.Sprintf("expected \"Game <id>\", got %q", header))
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, perrors.ErrInvalidNumber(idText, err).WithLocation("", lineNo, 0)
	}

	game := Game{ID: id}
	for _, drawText := range strings.Split(body, ";") {
		d, err := parseDraw(drawText, lineNo)
		if err != nil {
			return Game{}, err
		}
		game.Draws = append(game.Draws, d)
	}

	return game, nil
}

// parseDraw parses " 3 blue, 4 red". Repeated colors add up.
func parseDraw(text string, lineNo int) (Draw, error) {
	var d Draw
	for _, item := range strings.Split(text, ",") {
		fields := strings.Fields(item)
		if len(fields) != 2 {
			return Draw{}, perrors.ErrMalformedLine(lineNo, fmt.Sprintf("expected \"<count> <color>\", got %q", strings.TrimSpace(item)))
		}

		count, err := strconv.ParseUint(fields[0], 10, 16)
		if err != nil {
			return Draw{}, perrors.ErrInvalidNumber(fields[0], err).WithLocation("", lineNo, 0)
		}

		switch fields[1] {
		case "red":
			d.Red += int(count)
		case "green":
			d.Green += int(count)
		case "blue":
			d.Blue += int(count)
		default:
			return Draw{}, perrors.ErrMalformedLine(lineNo, fmt.Sprintf("could not find a matching color in %q", strings.TrimSpace(item)))
		}
	}
	return d, nil
}

// ParseGames parses every line, stopping at the first malformed one.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line, i+1)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// PartA sums the ids of games possible with Limit.
func PartA(lines []string) (int64, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, g := range games {
		if g.Possible(Limit) {
			sum += int64(g.ID)
		}
	}
	return sum, nil
}

// PartB sums the power of each game's minimum set.
func PartB(lines []string) (int64, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, g := range games {
		sum += g.MinimumSet().Power()
	}
	return sum, nil
}

// Solver adapts the package to the puzzle registry.
type Solver struct{}

func (Solver) Day() int { return 2 }
func (Solver) Title() string { return "Cube Conundrum" }
func (Solver) PartA(lines []string) (int64, error) { return PartA(lines) }
func (Solver) PartB(lines []string) (int64, error) { return PartB(lines) }
