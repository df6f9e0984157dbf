package aoc2022day02

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const example = `A Y
B X
C Z
`

func TestRoundScore(t *testing.T) {
	tests := []struct {
		name  string
		round Round
		want  int
	}{
		{name: "rock vs paper", round: Round{Opponent: Rock, Player: Paper}, want: 8},
		{name: "paper vs rock", round: Round{Opponent: Paper, Player: Rock}, want: 1},
		{name: "scissors vs scissors", round: Round{Opponent: Scissors, Player: Scissors}, want: 6},
		{name: "scissors vs rock", round: Round{Opponent: Scissors, Player: Rock}, want: 7},
		{name: "rock vs scissors", round: Round{Opponent: Rock, Player: Scissors}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.round.Score(); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutcomeTable(t *testing.T) {
	shapes := []Shape{Rock, Paper, Scissors}
	for _, a := range shapes {
		for _, b := range shapes {
			got := a.Against(b)
			switch {
			case a == b && got != Draw:
				t.Errorf("%s vs %s should draw, got %s", a, b, got)
			case a.Beats(b) && got != Win:
				t.Errorf("%s vs %s should win, got %s", a, b, got)
			case b.Beats(a) && got != Loss:
				t.Errorf("%s vs %s should lose, got %s", a, b, got)
			}
		}
	}
}

func TestShapeFor(t *testing.T) {
	shapes := []Shape{Rock, Paper, Scissors}
	for _, opponent := range shapes {
		for _, want := range []Outcome{Loss, Draw, Win} {
			shape := ShapeFor(opponent, want)
			if got := shape.Against(opponent); got != want {
				t.Errorf("ShapeFor(%s, %s) = %s, which gives %s", opponent, want, shape, got)
			}
		}
	}
}

func TestParseMoves(t *testing.T) {
	rounds, err := ParseMoves(example)
	if err != nil {
		t.Fatalf("ParseMoves() failed: %v", err)
	}

	want := []Round{
		{Opponent: Rock, Player: Paper},
		{Opponent: Paper, Player: Rock},
		{Opponent: Scissors, Player: Scissors},
	}
	if diff := cmp.Diff(want, rounds); diff != "" {
		t.Errorf("ParseMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOutcomes(t *testing.T) {
	rounds, err := ParseOutcomes("B X\n")
	if err != nil {
		t.Fatalf("ParseOutcomes() failed: %v", err)
	}

	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}
	if rounds[0].Player != Rock {
		t.Errorf("expected rock to lose against paper, got %s", rounds[0].Player)
	}
	if rounds[0].Score() != 1 {
		t.Errorf("expected score 1, got %d", rounds[0].Score())
	}
}

func TestSolver_Example(t *testing.T) {
	solver := NewSolver()

	part1, err := solver.Part1(example)
	if err != nil {
		t.Fatalf("Part1() failed: %v", err)
	}
	if part1 != 15 {
		t.Errorf("Part1() = %d, want 15", part1)
	}

	part2, err := solver.Part2(example)
	if err != nil {
		t.Fatalf("Part2() failed: %v", err)
	}
	if part2 != 12 {
		t.Errorf("Part2() = %d, want 12", part2)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		parse   func(string) ([]Round, error)
		wantErr error
	}{
		{name: "unknown opponent", input: "D X", parse: ParseMoves, wantErr: ErrUnknownToken},
		{name: "unknown player shape", input: "A W", parse: ParseMoves, wantErr: ErrUnknownToken},
		{name: "unknown outcome", input: "A Q", parse: ParseOutcomes, wantErr: ErrUnknownToken},
		{name: "lowercase token", input: "a x", parse: ParseMoves, wantErr: ErrUnknownToken},
		{name: "missing token", input: "A", parse: ParseMoves, wantErr: ErrMalformedRound},
		{name: "extra token", input: "A X Y", parse: ParseOutcomes, wantErr: ErrMalformedRound},
		{name: "blank line in the middle", input: "A X\n\nB Y", parse: ParseMoves, wantErr: ErrMalformedRound},
		{name: "empty input", input: "", parse: ParseMoves, wantErr: ErrNoRounds},
		{name: "only newlines", input: "\n\n", parse: ParseOutcomes, wantErr: ErrNoRounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSolver_EmptyInput(t *testing.T) {
	solver := NewSolver()

	if _, err := solver.Part1(""); !errors.Is(err, ErrNoRounds) {
		t.Errorf("Part1: expected ErrNoRounds, got %v", err)
	}
	if _, err := solver.Part2("\n"); !errors.Is(err, ErrNoRounds) {
		t.Errorf("Part2: expected ErrNoRounds, got %v", err)
	}
}
