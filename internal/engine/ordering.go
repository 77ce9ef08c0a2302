package engine

import (
	"sort"

	"github.com/hailam/chessapi/internal/board"
)

// moveScore ranks a move for ordering: captures by MVV-LVA (most
// valuable victim, least valuable attacker), promotions by the value of
// the promoted piece. Quiet moves score zero.
func moveScore(m board.Move) int {
	score := 0

	if m.IsCapture() {
		score += 10*m.Captured.Value() - m.Piece.Value()
	}

	if m.Promo != board.NoPieceType {
		score += board.PieceValue[m.Promo]
	}

	return score
}

// orderMoves sorts the list best-first in place. The sort is stable so
// that equal-score moves keep their generation order and the search
// stays deterministic.
func orderMoves(ml *board.MoveList) {
	moves := ml.Slice()
	sort.SliceStable(moves, func(i, j int) bool {
		return moveScore(moves[i]) > moveScore(moves[j])
	})
}
