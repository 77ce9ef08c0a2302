package engine

import (
	"github.com/hailam/chessapi/internal/board"
)

// Engine owns the search state that survives between Search calls on
// the same instance: the transposition table. An Engine is not safe
// for concurrent use; give each goroutine its own Engine and Position.
type Engine struct {
	tt *TranspositionTable
}

// New creates an engine with an empty transposition table.
func New() *Engine {
	return &Engine{tt: NewTranspositionTable()}
}

// SearchResult is the outcome of a Search call.
type SearchResult struct {
	Move  board.Move // Best move found; NoMove when the game is over
	Score int        // Centipawns from the side to move's perspective
	Nodes int64      // Nodes visited by the main search
	Depth int        // Depth actually searched
	PV    []string   // Expected line in UCI notation, best move first
}

// NoLegalMoveError reports that the side to move has no legal moves,
// so there is nothing to search: the game already ended in checkmate
// or stalemate.
type NoLegalMoveError struct {
	InCheck bool
}

func (e *NoLegalMoveError) Error() string {
	if e.InCheck {
		return "no legal moves: side to move is checkmated"
	}
	return "no legal moves: stalemate"
}

// Perft counts the leaf nodes of the legal move tree at the given
// depth. It is the standard oracle for move generator correctness.
func Perft(pos *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}

	return nodes
}

// DivideLine is the perft subtotal under one root move.
type DivideLine struct {
	Move  board.Move
	Nodes uint64
}

// Divide splits a perft count by root move, the way engines print it
// when hunting a move generation bug.
func Divide(pos *board.Position, depth int) ([]DivideLine, uint64) {
	moves := pos.GenerateLegalMoves()

	lines := make([]DivideLine, 0, moves.Len())
	var total uint64

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		nodes := Perft(pos, depth-1)
		pos.UnmakeMove(m, undo)

		lines = append(lines, DivideLine{Move: m, Nodes: nodes})
		total += nodes
	}

	return lines, total
}
