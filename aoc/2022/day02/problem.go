package aoc2022day02

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/utils"
)

var (
	ErrUnknownToken   = errors.New("unknown token")
	ErrMalformedRound = errors.New("malformed round")
	ErrNoRounds       = errors.New("no rounds found")
)

var opponentShapes = map[string]Shape{"A": Rock, "B": Paper, "C": Scissors}

var playerShapes = map[string]Shape{"X": Rock, "Y": Paper, "Z": Scissors}

var desiredOutcomes = map[string]Outcome{"X": Loss, "Y": Draw, "Z": Win}

type Round struct {
	Opponent Shape
	Player   Shape
}

func (r Round) Outcome() Outcome {
	return r.Player.Against(r.Opponent)
}

func (r Round) Score() int {
	return r.Outcome().Score() + r.Player.Score()
}

func TotalScore(rounds []Round) int {
	total := 0
	for _, round := range rounds {
		total += round.Score()
	}
	return total
}

type Solver struct{}

func NewSolver() *Solver {
	return &Solver{}
}

// Part1 reads the second column as the shape to play.
func (s *Solver) Part1(input string) (int, error) {
	rounds, err := ParseMoves(input)
	if err != nil {
		return 0, err
	}
	return TotalScore(rounds), nil
}

// Part2 reads the second column as the outcome the round has to end with.
func (s *Solver) Part2(input string) (int, error) {
	rounds, err := ParseOutcomes(input)
	if err != nil {
		return 0, err
	}
	return TotalScore(rounds), nil
}

func ParseMoves(input string) ([]Round, error) {
	return parse(input, func(opponent Shape, token string) (Shape, error) {
		player, ok := playerShapes[token]
		if !ok {
			return 0, fmt.Errorf("%w %q for player shape", ErrUnknownToken, token)
		}
		return player, nil
	})
}

func ParseOutcomes(input string) ([]Round, error) {
	return parse(input, func(opponent Shape, token string) (Shape, error) {
		outcome, ok := desiredOutcomes[token]
		if !ok {
			return 0, fmt.Errorf("%w %q for outcome", ErrUnknownToken, token)
		}
		return ShapeFor(opponent, outcome), nil
	})
}

func parse(input string, player func(opponent Shape, token string) (Shape, error)) ([]Round, error) {
	lines := utils.Lines(input)
	if len(lines) == 0 {
		return nil, ErrNoRounds
	}
	rounds := make([]Round, 0, len(lines))

	for i, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("line %d: %w: expected 2 tokens, got %d", i+1, ErrMalformedRound, len(tokens))
		}

		opponent, ok := opponentShapes[tokens[0]]
		if !ok {
			return nil, fmt.Errorf("line %d: %w %q for opponent shape", i+1, ErrUnknownToken, tokens[0])
		}

		shape, err := player(opponent, tokens[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		rounds = append(rounds, Round{Opponent: opponent, Player: shape})
	}

	return rounds, nil
}
