package aoc2022day03

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/utils"
)

var (
	ErrUnevenRucksack  = errors.New("rucksack cannot be split into two equal compartments")
	ErrNoSharedItem    = errors.New("no shared item type")
	ErrIncompleteGroup = errors.New("rucksacks do not divide into complete groups")
	ErrNoRucksacks     = errors.New("no rucksacks found")
)

type Rucksack struct {
	First  string
	Second string
}

func (r Rucksack) String() string {
	return r.First + r.Second
}

// SharedItem returns the first item of the first compartment that is also
// packed in the second one.
func (r Rucksack) SharedItem() (rune, error) {
	for _, item := range r.First {
		if strings.ContainsRune(r.Second, item) {
			return item, nil
		}
	}
	return 0, ErrNoSharedItem
}

type Group []Rucksack

// Badge returns the first item of the first rucksack that every other
// rucksack of the group also carries.
func (g Group) Badge() (rune, error) {
	if len(g) == 0 {
		return 0, ErrNoSharedItem
	}

	for _, item := range g[0].String() {
		if g.allCarry(item) {
			return item, nil
		}
	}
	return 0, ErrNoSharedItem
}

func (g Group) allCarry(item rune) bool {
	for _, r := range g[1:] {
		if !strings.ContainsRune(r.String(), item) {
			return false
		}
	}
	return true
}

func Parse(input string) ([]Rucksack, error) {
	lines := utils.Lines(input)
	if len(lines) == 0 {
		return nil, ErrNoRucksacks
	}
	rucksacks := make([]Rucksack, 0, len(lines))

	for i, line := range lines {
		items := []rune(strings.TrimSpace(line))
		if len(items) == 0 || len(items)%2 != 0 {
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrUnevenRucksack, line)
		}

		half := len(items) / 2
		rucksacks = append(rucksacks, Rucksack{First: string(items[:half]), Second: string(items[half:])})
	}

	return rucksacks, nil
}

// MakeGroups splits the rucksacks into consecutive groups of the given size.
func MakeGroups(rucksacks []Rucksack, size int) ([]Group, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid group size %d", size)
	}
	if len(rucksacks)%size != 0 {
		return nil, fmt.Errorf("%w: %d rucksacks, group size %d", ErrIncompleteGroup, len(rucksacks), size)
	}

	groups := make([]Group, 0, len(rucksacks)/size)
	for start := 0; start < len(rucksacks); start += size {
		groups = append(groups, Group(rucksacks[start:start+size]))
	}
	return groups, nil
}

type Solver struct {
	Priorities Priorities
	GroupSize  int
}

func NewSolver(priorities Priorities, groupSize int) *Solver {
	return &Solver{
		Priorities: priorities,
		GroupSize:  groupSize,
	}
}

func (s *Solver) Part1(input string) (int, error) {
	rucksacks, err := Parse(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, rucksack := range rucksacks {
		item, err := rucksack.SharedItem()
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}

		priority, err := s.Priorities.Of(item)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		total += priority
	}

	return total, nil
}

func (s *Solver) Part2(input string) (int, error) {
	rucksacks, err := Parse(input)
	if err != nil {
		return 0, err
	}

	groups, err := MakeGroups(rucksacks, s.GroupSize)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, group := range groups {
		badge, err := group.Badge()
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i+1, err)
		}

		priority, err := s.Priorities.Of(badge)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i+1, err)
		}
		total += priority
	}

	return total, nil
}
