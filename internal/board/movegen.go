package board

// Home squares involved in castling.
const (
	whiteKingHome = E1
	blackKingHome = E8
)

// GenerateLegalMoves generates all legal moves for the position.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	return p.filterLegalMoves(ml)
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves (they may
// leave the mover's king in check).
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	return ml
}

// GenerateCaptures generates all legal capturing moves.
func (p *Position) GenerateCaptures() *MoveList {
	all := NewMoveList()
	p.generateAllMoves(all)

	captures := NewMoveList()
	for i := 0; i < all.Len(); i++ {
		if m := all.Get(i); m.IsCapture() && p.isLegal(m) {
			captures.Add(m)
		}
	}
	return captures
}

// generateAllMoves generates all pseudo-legal moves for the side to
// move, dispatching by piece type per square.
func (p *Position) generateAllMoves(ml *MoveList) {
	us := p.SideToMove

	for sq := A8; sq <= H1; sq++ {
		piece := p.Board[sq]
		if !piece.IsColor(us) {
			continue
		}

		switch piece.Type() {
		case Pawn:
			p.generatePawnMoves(ml, sq, us)
		case Knight:
			p.generateOffsetMoves(ml, sq, piece, knightOffsets)
		case Bishop:
			p.generateSlidingMoves(ml, sq, piece, bishopDirs[:])
		case Rook:
			p.generateSlidingMoves(ml, sq, piece, rookDirs[:])
		case Queen:
			p.generateSlidingMoves(ml, sq, piece, bishopDirs[:])
			p.generateSlidingMoves(ml, sq, piece, rookDirs[:])
		case King:
			p.generateOffsetMoves(ml, sq, piece, kingOffsets)
			p.generateCastlingMoves(ml, us)
		}
	}
}

// generatePawnMoves generates pushes, captures, promotions and en
// passant for the pawn on sq.
func (p *Position) generatePawnMoves(ml *MoveList, sq Square, us Color) {
	row, file := sq.Row(), sq.File()
	fwd := forward(us)
	pawn := p.Board[sq]

	promoRow, startRow := 0, 6
	if us == Black {
		promoRow, startRow = 7, 1
	}

	// Single push, with promotions on reaching the far row
	oneRow := row + fwd
	if onBoard(oneRow, file) && p.Board[SquareAt(oneRow, file)] == Empty {
		to := SquareAt(oneRow, file)
		if oneRow == promoRow {
			p.addPromotions(ml, sq, to, pawn, Empty)
		} else {
			ml.Add(Move{From: sq, To: to, Piece: pawn})
		}

		// Double push from the start row through an empty square
		if row == startRow {
			twoRow := row + 2*fwd
			if p.Board[SquareAt(twoRow, file)] == Empty {
				ml.Add(Move{From: sq, To: SquareAt(twoRow, file), Piece: pawn})
			}
		}
	}

	// Diagonal captures
	for _, df := range [2]int{-1, 1} {
		capRow, capFile := row+fwd, file+df
		if !onBoard(capRow, capFile) {
			continue
		}
		to := SquareAt(capRow, capFile)
		victim := p.Board[to]
		if !victim.IsColor(us.Other()) {
			continue
		}
		if capRow == promoRow {
			p.addPromotions(ml, sq, to, pawn, victim)
		} else {
			ml.Add(Move{From: sq, To: to, Piece: pawn, Captured: victim})
		}
	}

	// En passant: the capturer must stand beside the stored file on the
	// row the enemy double push passed, with the enemy pawn still there.
	if p.EPFile != NoEPFile {
		epRow := 3
		if us == Black {
			epRow = 4
		}
		if row == epRow && abs(file-int(p.EPFile)) == 1 {
			victim := p.Board[SquareAt(row, int(p.EPFile))]
			to := SquareAt(row+fwd, int(p.EPFile))
			if victim == NewPiece(Pawn, us.Other()) && p.Board[to] == Empty {
				ml.Add(Move{From: sq, To: to, Piece: pawn, Captured: victim, EnPassant: true})
			}
		}
	}
}

// addPromotions emits the four promotion moves for one pawn advance.
func (p *Position) addPromotions(ml *MoveList, from, to Square, pawn, victim Piece) {
	for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		ml.Add(Move{From: from, To: to, Piece: pawn, Captured: victim, Promo: promo})
	}
}

// generateOffsetMoves generates moves for a fixed-offset piece (knight
// or king); the destination must be empty or enemy-occupied.
func (p *Position) generateOffsetMoves(ml *MoveList, sq Square, piece Piece, offsets [8][2]int) {
	row, file := sq.Row(), sq.File()
	us := piece.Color()

	for _, off := range offsets {
		r, f := row+off[0], file+off[1]
		if !onBoard(r, f) {
			continue
		}
		to := SquareAt(r, f)
		target := p.Board[to]
		if target == Empty {
			ml.Add(Move{From: sq, To: to, Piece: piece})
		} else if target.IsColor(us.Other()) {
			ml.Add(Move{From: sq, To: to, Piece: piece, Captured: target})
		}
	}
}

// generateSlidingMoves walks each ray until a piece or the board edge
// stops it, emitting a capture for the first enemy piece found.
func (p *Position) generateSlidingMoves(ml *MoveList, sq Square, piece Piece, dirs [][2]int) {
	row, file := sq.Row(), sq.File()
	us := piece.Color()

	for _, dir := range dirs {
		r, f := row+dir[0], file+dir[1]
		for onBoard(r, f) {
			to := SquareAt(r, f)
			target := p.Board[to]
			if target == Empty {
				ml.Add(Move{From: sq, To: to, Piece: piece})
				r += dir[0]
				f += dir[1]
				continue
			}
			if target.IsColor(us.Other()) {
				ml.Add(Move{From: sq, To: to, Piece: piece, Captured: target})
			}
			break
		}
	}
}

// generateCastlingMoves generates castling for the side to move. Each
// side is gated by the right still being held, the squares between king
// and rook being empty, the rook sitting on its home square, and the
// king neither starting from nor passing through an attacked square.
// Whether the king LANDS in check is left to the legality filter.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()
	king := NewPiece(King, us)
	rook := NewPiece(Rook, us)

	kingHome := whiteKingHome
	if us == Black {
		kingHome = blackKingHome
	}
	if p.Board[kingHome] != king {
		return
	}

	// King side: king home -> g-file, rook h-file -> f-file
	if p.CastlingRights.CanCastle(us, true) &&
		p.Board[kingHome+1] == Empty &&
		p.Board[kingHome+2] == Empty &&
		p.Board[kingHome+3] == rook &&
		!p.IsAttacked(kingHome, them) &&
		!p.IsAttacked(kingHome+1, them) {
		ml.Add(Move{From: kingHome, To: kingHome + 2, Piece: king, Castling: true})
	}

	// Queen side: king home -> c-file, rook a-file -> d-file
	if p.CastlingRights.CanCastle(us, false) &&
		p.Board[kingHome-1] == Empty &&
		p.Board[kingHome-2] == Empty &&
		p.Board[kingHome-3] == Empty &&
		p.Board[kingHome-4] == rook &&
		!p.IsAttacked(kingHome, them) &&
		!p.IsAttacked(kingHome-1, them) {
		ml.Add(Move{From: kingHome, To: kingHome - 2, Piece: king, Castling: true})
	}
}

// filterLegalMoves keeps only the moves that do not leave the mover's
// own king attacked. Each candidate is applied to the board, tested,
// and reverted.
func (p *Position) filterLegalMoves(ml *MoveList) *MoveList {
	legal := NewMoveList()
	for i := 0; i < ml.Len(); i++ {
		if m := ml.Get(i); p.isLegal(m) {
			legal.Add(m)
		}
	}
	return legal
}

// isLegal applies the move, tests whether the mover's king is attacked,
// and reverts the board.
func (p *Position) isLegal(m Move) bool {
	us := p.SideToMove
	undo := p.MakeMove(m)
	legal := !p.IsAttacked(p.KingSquare(us), us.Other())
	p.UnmakeMove(m, undo)
	return legal
}

// FindMove matches a from/to/promotion request against the legal moves
// of the position. A promotion request without an explicit piece
// selects the queen. Returns *IllegalMoveError when nothing matches.
func (p *Position) FindMove(from, to Square, promo PieceType) (Move, error) {
	legal := p.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From != from || m.To != to {
			continue
		}
		if m.Promo == promo {
			return m, nil
		}
		if promo == NoPieceType && m.Promo == Queen {
			return m, nil
		}
	}
	return NoMove, &IllegalMoveError{From: from, To: to, Reason: "move is not legal"}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
