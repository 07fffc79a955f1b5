// Package day02 solves "Cube Conundrum".
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 2, Title: "Cube Conundrum", Solve: Solve})
}

// Cubes counts red, green and blue cubes.
type Cubes struct {
	Red, Green, Blue int
}

// Within reports whether every colour of c fits inside limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Max returns the per-colour maximum of c and o.
func (c Cubes) Max(o Cubes) Cubes {
	return Cubes{max(c.Red, o.Red), max(c.Green, o.Green), max(c.Blue, o.Blue)}
}

// Power is the product of the three colours.
func (c Cubes) Power() int64 {
	return int64(c.Red) * int64(c.Green) * int64(c.Blue)
}

// Game is one line of the record.
type Game struct {
	ID    int
	Draws []Cubes
}

// Bag is the cube content part 1 checks games against.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Parse reads every game. Colours repeated within one draw add up.
func Parse(input string) ([]Game, error) {
	var games []Game
	for _, line := range puzzle.Lines(input) {
		head, body, ok := strings.Cut(line, ": ")
		if !ok || !strings.HasPrefix(head, "Game ") {
			return nil, fmt.Errorf("%w: %q", ErrBadGame, line)
		}
		id, err := strconv.Atoi(head[len("Game "):])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadGame, line, err)
		}
		g := Game{ID: id}
		for _, draw := range strings.Split(body, "; ") {
			var c Cubes
			for _, item := range strings.Split(draw, ", ") {
				ns, colour, ok := strings.Cut(strings.TrimSpace(item), " ")
				if !ok {
					return nil, fmt.Errorf("%w: %q", ErrBadGame, item)
				}
				n, err := strconv.Atoi(ns)
				if err != nil {
					return nil, fmt.Errorf("%w: %q: %v", ErrBadGame, item, err)
				}
				switch colour {
				case "red":
					c.Red += n
				case "green":
					c.Green += n
				case "blue":
					c.Blue += n
				default:
					return nil, fmt.Errorf("%w: %q", ErrUnknownColour, colour)
				}
			}
			g.Draws = append(g.Draws, c)
		}
		games = append(games, g)
	}

	return games, nil
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: Part1(games), Part2: Part2(games)}, nil
}

// Part1 sums the ids of games whose every draw fits in Bag.
func Part1(games []Game) int64 {
	var sum int64
outer:
	for _, g := range games {
		for _, d := range g.Draws {
			if !d.Within(Bag) {
				continue outer
			}
		}
		sum += int64(g.ID)
	}

	return sum
}

// Part2 sums the power of the smallest bag each game could come from.
func Part2(games []Game) int64 {
	var sum int64
	for _, g := range games {
		var need Cubes
		for _, d := range g.Draws {
			need = need.Max(d)
		}
		sum += need.Power()
	}

	return sum
}
