// Package engine implements the alpha-beta search engine and the
// static evaluation it is built on.
package engine

import (
	"github.com/hailam/chessapi/internal/board"
)

// Piece-Square Tables for positional evaluation. Values are from
// White's perspective, laid out from rank 8 down to rank 1; Black
// reads them with the row mirrored.

// Pawn PST - encourages central control and advancement
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// Knight PST - encourages central positioning
var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

// Bishop PST - encourages central diagonals
var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

// Rook PST - encourages 7th rank and central files
var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

// Queen PST - slight central preference
var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// King PST - keeps the king castled behind its pawns
var kingPST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// pieceSquare returns the table bonus for p standing on sq. Black
// pieces read the White table through the vertically mirrored square.
func pieceSquare(p board.Piece, sq board.Square) int {
	if p.Color() == board.Black {
		sq = sq.Mirror()
	}
	switch p.Type() {
	case board.Pawn:
		return pawnPST[sq]
	case board.Knight:
		return knightPST[sq]
	case board.Bishop:
		return bishopPST[sq]
	case board.Rook:
		return rookPST[sq]
	case board.Queen:
		return queenPST[sq]
	case board.King:
		return kingPST[sq]
	default:
		return 0
	}
}

// Evaluate returns the static evaluation of pos in centipawns from the
// side to move's perspective.
func Evaluate(pos *board.Position) int {
	material, positional := EvaluateTerms(pos)
	return material + positional
}

// EvaluateTerms splits the static evaluation into its material and
// piece-square components, both from the side to move's perspective.
// Evaluate(pos) is exactly their sum.
func EvaluateTerms(pos *board.Position) (material, positional int) {
	for sq := board.A8; sq <= board.H1; sq++ {
		p := pos.Board[sq]
		if p == board.Empty {
			continue
		}

		value := p.Value()
		psq := pieceSquare(p, sq)
		if p.Color() == board.White {
			material += value
			positional += psq
		} else {
			material -= value
			positional -= psq
		}
	}

	side := int(pos.SideToMove)
	return material * side, positional * side
}
