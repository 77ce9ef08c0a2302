package board

// Rook home squares, for castling right bookkeeping.
const (
	whiteKingRookHome  = H1
	whiteQueenRookHome = A1
	blackKingRookHome  = H8
	blackQueenRookHome = A8
)

// rightLostAt maps a square to the castling right that dies when the
// rook on it moves away or is captured.
func rightLostAt(sq Square) CastlingRights {
	switch sq {
	case whiteKingRookHome:
		return WhiteKingSideCastle
	case whiteQueenRookHome:
		return WhiteQueenSideCastle
	case blackKingRookHome:
		return BlackKingSideCastle
	case blackQueenRookHome:
		return BlackQueenSideCastle
	}
	return NoCastling
}

// MakeMove applies a move to the position and returns the undo
// snapshot. The move must come from this position's move generator (or
// FindMove); MakeMove does not re-check legality.
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		Board:          p.Board,
		CastlingRights: p.CastlingRights,
		EPFile:         p.EPFile,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
	}

	us := p.SideToMove
	piece := m.Piece

	// Move the piece, replacing it by its promoted form if needed.
	p.Board[m.From] = Empty
	if m.Promo != NoPieceType {
		p.Board[m.To] = NewPiece(m.Promo, us)
	} else {
		p.Board[m.To] = piece
	}

	// En passant removes the captured pawn from beside the destination,
	// one row back toward the capturer.
	if m.EnPassant {
		p.Board[SquareAt(m.To.Row()-forward(us), m.To.File())] = Empty
	}

	// Castling also relocates the rook.
	if m.Castling {
		rook := NewPiece(Rook, us)
		if m.To.File() == 6 { // king side: h-rook to f-file
			p.Board[m.To+1] = Empty
			p.Board[m.To-1] = rook
		} else { // queen side: a-rook to d-file
			p.Board[m.To-2] = Empty
			p.Board[m.To+1] = rook
		}
	}

	// Castling rights die when the king moves, when a rook leaves its
	// home square, or when a capture lands on a rook home square.
	if piece.Type() == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if piece.Type() == Rook {
		p.CastlingRights &^= rightLostAt(m.From)
	}
	if m.Captured != Empty && m.Captured.Type() == Rook {
		p.CastlingRights &^= rightLostAt(m.To)
	}

	// A double pawn push exposes its file to en passant; every other
	// move clears it.
	p.EPFile = NoEPFile
	if piece.Type() == Pawn && abs(m.To.Row()-m.From.Row()) == 2 {
		p.EPFile = int8(m.From.File())
	}

	// Half-move clock resets on pawn moves and captures.
	if piece.Type() == Pawn || m.Captured != Empty {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = us.Other()

	// Recompute the hash from scratch rather than toggling keys.
	p.Hash = p.ComputeHash()

	return undo
}

// UnmakeMove restores the position to its exact state before MakeMove
// returned the given snapshot.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	p.Board = undo.Board
	p.CastlingRights = undo.CastlingRights
	p.EPFile = undo.EPFile
	p.HalfMoveClock = undo.HalfMoveClock
	p.FullMoveNumber = undo.FullMoveNumber
	p.Hash = undo.Hash
	p.SideToMove = p.SideToMove.Other()
}
