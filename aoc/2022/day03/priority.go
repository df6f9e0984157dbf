package aoc2022day03

import (
	"errors"
	"fmt"
)

// DefaultAlphabet orders item types by priority: a-z are 1-26, A-Z are 27-52.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var ErrUnknownItem = errors.New("item type has no priority")

// Priorities maps an item type to its 1-based position in the alphabet.
type Priorities map[rune]int

func NewPriorities(alphabet string) (Priorities, error) {
	if alphabet == "" {
		return nil, errors.New("priority alphabet is empty")
	}

	p := make(Priorities, len(alphabet))
	rank := 0
	for _, item := range alphabet {
		rank++
		if _, seen := p[item]; seen {
			return nil, fmt.Errorf("priority alphabet lists %q twice", item)
		}
		p[item] = rank
	}

	return p, nil
}

func (p Priorities) Of(item rune) (int, error) {
	rank, ok := p[item]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	return rank, nil
}
