package board

import "fmt"

// MalformedFENError reports a FEN string the codec could not parse.
type MalformedFENError struct {
	FEN    string
	Reason string
}

func (e *MalformedFENError) Error() string {
	return fmt.Sprintf("malformed FEN %q: %s", e.FEN, e.Reason)
}

// IllegalMoveError reports a requested move that matches no legal move
// in the current position.
type IllegalMoveError struct {
	From   Square
	To     Square
	Reason string
}

func (e *IllegalMoveError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("illegal move: %s to %s", e.From, e.To)
	}
	return fmt.Sprintf("illegal move: %s to %s: %s", e.From, e.To, e.Reason)
}
