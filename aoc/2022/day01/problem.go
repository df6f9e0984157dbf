package aoc2022day01

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/utils"
	"github.com/rs/zerolog"
)

var ErrNoElves = errors.New("no calorie entries found")

// Elf is the inventory of a single elf, in the order it was written down.
type Elf struct {
	Index    int
	Calories []int
}

func (e Elf) Total() int {
	return utils.Sum(e.Calories)
}

type Solver struct {
	TopN   int
	logger *zerolog.Logger
}

func NewSolver(topN int, logger *zerolog.Logger) *Solver {
	return &Solver{
		TopN:   topN,
		logger: logger,
	}
}

func (s *Solver) Part1(input string) (int, error) {
	elves, err := Parse(input)
	if err != nil {
		return 0, err
	}

	top := TopElves(elves, 1)[0]
	s.logger.Debug().
		Int("elf", top.Index).
		Int("calories", top.Total()).
		Msg("elf carrying the most calories")

	return top.Total(), nil
}

func (s *Solver) Part2(input string) (int, error) {
	elves, err := Parse(input)
	if err != nil {
		return 0, err
	}

	top := TopElves(elves, s.TopN)
	indexes := make([]int, 0, len(top))
	for _, elf := range top {
		indexes = append(indexes, elf.Index)
	}
	s.logger.Debug().Ints("elves", indexes).Msg("elves carrying the most calories")

	return TopCalories(elves, s.TopN), nil
}

// Parse groups the calorie entries by elf. Inventories are separated by one or
// more blank lines.
func Parse(input string) ([]Elf, error) {
	var elves []Elf
	current := Elf{Index: 1}

	flush := func() {
		if len(current.Calories) == 0 {
			return
		}
		elves = append(elves, current)
		current = Elf{Index: current.Index + 1}
	}

	for i, line := range utils.Lines(input) {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		calories, err := utils.ToInt(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid calorie entry: %w", i+1, err)
		}
		current.Calories = append(current.Calories, calories)
	}
	flush()

	if len(elves) == 0 {
		return nil, ErrNoElves
	}

	return elves, nil
}

func MostCalories(elves []Elf) int {
	return TopCalories(elves, 1)
}

// TopElves returns the n elves carrying the most calories, heaviest first.
// Elves with equal totals keep their input order.
func TopElves(elves []Elf, n int) []Elf {
	if n <= 0 {
		return nil
	}

	sorted := slices.Clone(elves)
	slices.SortStableFunc(sorted, func(a, b Elf) int {
		return cmp.Compare(b.Total(), a.Total())
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TopCalories returns the combined calories of the n elves carrying the most.
func TopCalories(elves []Elf, n int) int {
	total := 0
	for _, elf := range TopElves(elves, n) {
		total += elf.Total()
	}
	return total
}
