package setup

import (
	"errors"
	"fmt"
	"io"
	"os"

	aoc2022day01 "github.com/povarna/advent-of-code/aoc/2022/day01"
	aoc2022day02 "github.com/povarna/advent-of-code/aoc/2022/day02"
	aoc2022day03 "github.com/povarna/advent-of-code/aoc/2022/day03"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/input"
	"github.com/povarna/advent-of-code/internal/runner"
	"github.com/rs/zerolog"
)

// Settings are read from the environment before any flag is applied
type Settings struct {
	ConfigPath string
	LogLevel   string
}

type Dependencies struct {
	Config  *config.Config
	Runner  *runner.Runner
	Puzzles []runner.Puzzle
	Logger  *zerolog.Logger
}

func LoadSettings() *Settings {
	return &Settings{
		ConfigPath: getEnv("AOC_CONFIG_PATH", config.DefaultPath),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

// ErrUnsupportedYear is returned when no puzzle of the configured year is solved.
var ErrUnsupportedYear = errors.New("no puzzles solved for year")

// Wire builds the puzzle registry and the runner that prints answers to out.
func Wire(cfg *config.Config, stdin io.Reader, out io.Writer, logger *zerolog.Logger) (*Dependencies, error) {
	registry := map[int]func(*config.Config, *zerolog.Logger) ([]runner.Puzzle, error){
		2022: puzzles2022,
	}

	build, ok := registry[cfg.Year]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedYear, cfg.Year)
	}

	puzzles, err := build(cfg, logger)
	if err != nil {
		return nil, err
	}

	source := input.NewFileSource(stdin, logger)

	return &Dependencies{
		Config:  cfg,
		Runner:  runner.NewRunner(source, out, logger),
		Puzzles: puzzles,
		Logger:  logger,
	}, nil
}

func puzzles2022(cfg *config.Config, logger *zerolog.Logger) ([]runner.Puzzle, error) {
	priorities, err := aoc2022day03.NewPriorities(cfg.Rucksack.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("day 03: %w", err)
	}

	return []runner.Puzzle{
		{
			Year:   2022,
			Day:    1,
			Title:  "Calorie Counting",
			Input:  cfg.InputPath(cfg.Calories.Input),
			Solver: aoc2022day01.NewSolver(cfg.Calories.TopN, logger),
		},
		{
			Year:   2022,
			Day:    2,
			Title:  "Rock Paper Scissors",
			Input:  cfg.InputPath(cfg.Strategy.Input),
			Solver: aoc2022day02.NewSolver(),
		},
		{
			Year:   2022,
			Day:    3,
			Title:  "Rucksack Reorganization",
			Input:  cfg.InputPath(cfg.Rucksack.Input),
			Solver: aoc2022day03.NewSolver(priorities, cfg.Rucksack.GroupSize),
		},
	}, nil
}

// Select returns every registered puzzle for day 0, otherwise the requested day.
func (d *Dependencies) Select(day int) ([]runner.Puzzle, error) {
	if day == 0 {
		return d.Puzzles, nil
	}

	for _, p := range d.Puzzles {
		if p.Day == day {
			return []runner.Puzzle{p}, nil
		}
	}
	return nil, fmt.Errorf("day %d of %d is not solved", day, d.Config.Year)
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
