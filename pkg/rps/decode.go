package rps

import (
	"strings"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

var opponentTokens = map[string]Move{
	"A": Rock,
	"B": Paper,
	"C": Scissors,
}

var responseTokens = map[string]Move{
	"X": Rock,
	"Y": Paper,
	"Z": Scissors,
}

var outcomeTokens = map[string]Outcome{
	"X": Lose,
	"Y": Draw,
	"Z": Win,
}

// DecodeOpponent decodes a first-column token (A, B or C).
func DecodeOpponent(token string) (Move, error) {
	m, ok := opponentTokens[token]
	if !ok {
		return 0, puzzle.NewInputError("unknown opponent move", token)
	}
	return m, nil
}

// DecodeResponse decodes a second-column token (X, Y or Z) as a move.
func DecodeResponse(token string) (Move, error) {
	m, ok := responseTokens[token]
	if !ok {
		return 0, puzzle.NewInputError("unknown response move", token)
	}
	return m, nil
}

// DecodeOutcome decodes a second-column token (X, Y or Z) as a desired outcome.
func DecodeOutcome(token string) (Outcome, error) {
	o, ok := outcomeTokens[token]
	if !ok {
		return 0, puzzle.NewInputError("unknown outcome", token)
	}
	return o, nil
}

// splitRound splits a line into its two columns. The columns are separated
// by exactly one space.
func splitRound(line string) (string, string, error) {
	cols := strings.Split(line, " ")
	if len(cols) != 2 {
		return "", "", &puzzle.InputError{
			Reason: "round must have exactly two space-separated tokens",
			Token:  line,
		}
	}
	return cols[0], cols[1], nil
}

// ParseMoves decodes a line as opponent move and response move.
func ParseMoves(line string) (Move, Move, error) {
	first, second, err := splitRound(line)
	if err != nil {
		return 0, 0, err
	}
	a, err := DecodeOpponent(first)
	if err != nil {
		return 0, 0, err
	}
	b, err := DecodeResponse(second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// ParseOutcome decodes a line as opponent move and desired outcome.
func ParseOutcome(line string) (Move, Outcome, error) {
	first, second, err := splitRound(line)
	if err != nil {
		return 0, 0, err
	}
	a, err := DecodeOpponent(first)
	if err != nil {
		return 0, 0, err
	}
	o, err := DecodeOutcome(second)
	if err != nil {
		return 0, 0, err
	}
	return a, o, nil
}
