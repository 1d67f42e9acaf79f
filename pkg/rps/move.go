// Package rps solves the rock paper scissors strategy guide puzzle.
package rps

// Move is one of the three hand shapes. Only the declared constants are valid.
type Move uint8

const (
	Rock Move = iota
	Paper
	Scissors
)

// Outcome is the result of a round from the responding player's perspective.
// Only the declared constants are valid.
type Outcome uint8

const (
	Lose Outcome = iota
	Draw
	Win
)

// Moves lists every move in canonical order.
var Moves = [...]Move{Rock, Paper, Scissors}

// Outcomes lists every outcome in canonical order.
var Outcomes = [...]Outcome{Lose, Draw, Win}

// beats[m] is the move that m defeats.
var beats = [...]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// beatenBy[m] is the move that defeats m.
var beatenBy = [...]Move{
	Rock:     Paper,
	Paper:    Scissors,
	Scissors: Rock,
}

var moveScores = [...]uint64{
	Rock:     1,
	Paper:    2,
	Scissors: 3,
}

var outcomeScores = [...]uint64{
	Lose: 0,
	Draw: 3,
	Win:  6,
}

var moveNames = [...]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

var outcomeNames = [...]string{
	Lose: "Lose",
	Draw: "Draw",
	Win:  "Win",
}

// Play returns the outcome of a round where the opponent plays a and the
// responder plays b, from b's perspective.
func Play(a, b Move) Outcome {
	switch {
	case a == b:
		return Draw
	case beats[b] == a:
		return Win
	default:
		return Lose
	}
}

// Required returns the move that achieves the desired outcome against a.
// Required(a, Play(a, b)) == b for every a and b.
func Required(a Move, want Outcome) Move {
	return [...]Move{
		Lose: beats[a],
		Draw: a,
		Win:  beatenBy[a],
	}[want]
}

// Score is the base score of a move.
func (m Move) Score() uint64 {
	return moveScores[m]
}

func (m Move) String() string {
	return moveNames[m]
}

// Score is the bonus for an outcome.
func (o Outcome) Score() uint64 {
	return outcomeScores[o]
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

// RoundScore is the responder's score for a round: move score plus outcome bonus.
func RoundScore(a, b Move) uint64 {
	return b.Score() + Play(a, b).Score()
}
