package runner

//go:generate mockgen -source=runner.go -destination=mocks/mocks.go -package=mocks

import (
	"fmt"
	"io"
	"time"

	"github.com/povarna/advent-of-code/internal/models"
	"github.com/rs/zerolog"
)

// Source loads the raw puzzle input
type Source interface {
	Read(path string) (string, error)
}

// Solver computes both answers of a puzzle from its raw input
type Solver interface {
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

type Puzzle struct {
	Year   int
	Day    int
	Title  string
	Input  string
	Solver Solver
}

type Runner struct {
	source Source
	out    io.Writer
	logger *zerolog.Logger
}

func NewRunner(source Source, out io.Writer, logger *zerolog.Logger) *Runner {
	return &Runner{
		source: source,
		out:    out,
		logger: logger,
	}
}

// Run reads the puzzle input once, solves both parts and prints the answers.
func (r *Runner) Run(p Puzzle) ([]models.Answer, error) {
	r.logger.Info().
		Int("year", p.Year).
		Int("day", p.Day).
		Str("title", p.Title).
		Str("input", p.Input).
		Msg("solving puzzle")

	input, err := r.source.Read(p.Input)
	if err != nil {
		return nil, fmt.Errorf("%d day %02d: %w", p.Year, p.Day, err)
	}

	parts := []func(string) (int, error){p.Solver.Part1, p.Solver.Part2}
	answers := make([]models.Answer, 0, len(parts))

	for i, solve := range parts {
		part := i + 1
		start := time.Now()

		value, err := solve(input)
		if err != nil {
			return answers, fmt.Errorf("%d day %02d part %d: %w", p.Year, p.Day, part, err)
		}

		answer := models.Answer{
			Year:     p.Year,
			Day:      p.Day,
			Part:     part,
			Title:    p.Title,
			Value:    value,
			Duration: time.Since(start),
		}
		answers = append(answers, answer)

		r.logger.Debug().
			Int("day", p.Day).
			Int("part", part).
			Dur("duration", answer.Duration).
			Msg("part solved")

		if _, err := fmt.Fprintf(r.out, "AoC %d, Day%02d part%d solution is: %d\n", p.Year, p.Day, part, value); err != nil {
			return answers, fmt.Errorf("write answer: %w", err)
		}
	}

	return answers, nil
}

// RunAll solves the puzzles in order and stops at the first failure.
func (r *Runner) RunAll(puzzles []Puzzle) ([]models.Answer, error) {
	var answers []models.Answer
	for _, p := range puzzles {
		dayAnswers, err := r.Run(p)
		answers = append(answers, dayAnswers...)
		if err != nil {
			return answers, err
		}
	}

	r.logger.Info().Int("puzzles", len(puzzles)).Int("answers", len(answers)).Msg("all puzzles solved")
	return answers, nil
}
