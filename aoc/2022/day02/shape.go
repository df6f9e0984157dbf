package aoc2022day02

type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// Score is the value of picking the shape.
func (s Shape) Score() int {
	return int(s) + 1
}

type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return "unknown"
}

func (o Outcome) Score() int {
	return int(o) * 3
}

// outcomes[opponent][player] is the result of the round for the player.
var outcomes = [3][3]Outcome{
	Rock:     {Rock: Draw, Paper: Win, Scissors: Loss},
	Paper:    {Rock: Loss, Paper: Draw, Scissors: Win},
	Scissors: {Rock: Win, Paper: Loss, Scissors: Draw},
}

// beats[s] is the shape that s defeats.
var beats = [3]Shape{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Beats reports whether s defeats other.
func (s Shape) Beats(other Shape) bool {
	return beats[s] == other
}

// Against returns the outcome of playing s against the opponent's shape.
func (s Shape) Against(opponent Shape) Outcome {
	return outcomes[opponent][s]
}

// ShapeFor returns the shape to play against the opponent to get the outcome.
func ShapeFor(opponent Shape, want Outcome) Shape {
	switch want {
	case Loss:
		return beats[opponent]
	case Win:
		for _, s := range []Shape{Rock, Paper, Scissors} {
			if s.Beats(opponent) {
				return s
			}
		}
	}
	return opponent
}
