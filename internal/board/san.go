package board

import (
	"strings"
)

// pieceLetter returns the SAN letter for a piece type ('P' for pawns,
// which SAN itself omits).
func pieceLetter(pt PieceType) byte {
	return " PNBRQK"[pt]
}

// ToSAN converts a move to Standard Algebraic Notation, including full
// disambiguation and check/checkmate suffixes.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	var sb strings.Builder

	if m.Castling {
		if m.To.File() > m.From.File() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	} else {
		pt := m.Piece.Type()

		if pt != Pawn {
			sb.WriteByte(pieceLetter(pt))
			sb.WriteString(disambiguation(pos, m))
		}

		if m.IsCapture() {
			if pt == Pawn {
				// Pawn captures include the file of origin
				sb.WriteByte('a' + byte(m.From.File()))
			}
			sb.WriteByte('x')
		}

		sb.WriteString(m.To.String())

		if m.Promo != NoPieceType {
			sb.WriteByte('=')
			sb.WriteByte(pieceLetter(m.Promo))
		}
	}

	// Apply the move to a copy to detect check and checkmate.
	next := pos.Copy()
	next.MakeMove(m)
	if next.IsCheckmate() {
		sb.WriteByte('#')
	} else if next.InCheck() {
		sb.WriteByte('+')
	}

	return sb.String()
}

// disambiguation returns the origin-square fragment needed when other
// pieces of the same type can reach the same destination: the file if
// that is unique, else the rank, else both.
func disambiguation(pos *Position, m Move) string {
	var candidates []Square

	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		other := legal.Get(i)
		if other.To != m.To || other.From == m.From {
			continue
		}
		if pos.Board[other.From] == m.Piece {
			candidates = append(candidates, other.From)
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + m.From.File()))
	}
	if !sameRank {
		return string(rune('0' + m.From.Rank()))
	}
	return m.From.String()
}

// MovesToSAN converts a move sequence starting from pos to SAN.
func MovesToSAN(pos *Position, moves []Move) []string {
	result := make([]string, len(moves))
	p := pos.Copy()

	for i, m := range moves {
		result[i] = m.ToSAN(p)
		p.MakeMove(m)
	}

	return result
}
