package board

// Offset tables shared by attack detection and move generation. Each
// entry is a {row delta, file delta} pair; row deltas are counted from
// the top of the board, so -1 moves toward rank 8.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// onBoard reports whether a row/file pair is a real square.
func onBoard(row, file int) bool {
	return row >= 0 && row < 8 && file >= 0 && file < 8
}

// forward is the row delta a pawn of the given color advances by.
func forward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// IsAttacked returns true if the given square is attacked by any piece
// of the given color. Probes cheap attackers first: pawns, knights and
// the king, then walks sliding rays stopping at the first blocker.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	row, file := sq.Row(), sq.File()

	// Pawns attack diagonally toward their advance direction, so an
	// attacking pawn sits one row behind the target relative to its own
	// forward direction.
	pawnRow := row - forward(by)
	pawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if onBoard(pawnRow, file+df) && p.Board[SquareAt(pawnRow, file+df)] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, by)
	for _, off := range knightOffsets {
		r, f := row+off[0], file+off[1]
		if onBoard(r, f) && p.Board[SquareAt(r, f)] == knight {
			return true
		}
	}

	king := NewPiece(King, by)
	for _, off := range kingOffsets {
		r, f := row+off[0], file+off[1]
		if onBoard(r, f) && p.Board[SquareAt(r, f)] == king {
			return true
		}
	}

	// Sliding rays: only the first occupied square on each ray matters.
	queen := NewPiece(Queen, by)
	bishop := NewPiece(Bishop, by)
	for _, dir := range bishopDirs {
		if first := p.firstOnRay(row, file, dir); first == queen || first == bishop {
			return true
		}
	}

	rook := NewPiece(Rook, by)
	for _, dir := range rookDirs {
		if first := p.firstOnRay(row, file, dir); first == queen || first == rook {
			return true
		}
	}

	return false
}

// firstOnRay walks from (row, file) in the given direction and returns
// the first piece encountered, or Empty if the ray runs off the board.
func (p *Position) firstOnRay(row, file int, dir [2]int) Piece {
	r, f := row+dir[0], file+dir[1]
	for onBoard(r, f) {
		if piece := p.Board[SquareAt(r, f)]; piece != Empty {
			return piece
		}
		r += dir[0]
		f += dir[1]
	}
	return Empty
}
