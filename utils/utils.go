package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ToInt parses s as a base-10 integer, ignoring surrounding whitespace.
func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to a number: %w", s, err)
	}

	return n, nil
}

// Lines splits the input into lines. Windows line endings are normalized and
// trailing newlines at the end of the file do not produce empty lines.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
