package board

import "fmt"

// Move describes a single board transition as a pure value. It carries
// no reference to the position it was generated for.
//
// Captured holds the piece removed by the move (Empty for quiet moves).
// For en passant it holds the opposing pawn even though the destination
// square itself was empty.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece
	Promo     PieceType
	EnPassant bool
	Castling  bool
}

// NoMove is the zero move, used as a sentinel (its Piece is Empty).
var NoMove = Move{}

// IsCapture returns true if the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promo != NoPieceType
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From.String() + m.To.String()

	if m.Promo != NoPieceType {
		s += string("  nbrq "[m.Promo])
	}

	return s
}

// MoveList is a fixed-size list of moves to avoid allocations during
// generation and search.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Slice returns the moves as a slice backed by the list's array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// UCIStrings returns every move in the list in UCI notation.
func (ml *MoveList) UCIStrings() []string {
	out := make([]string, ml.count)
	for i := 0; i < ml.count; i++ {
		out[i] = ml.moves[i].String()
	}
	return out
}

// UndoInfo stores the state needed to undo a move: a snapshot of the
// board and of every mutable position field taken before the move was
// applied.
type UndoInfo struct {
	Board          [64]Piece
	CastlingRights CastlingRights
	EPFile         int8
	HalfMoveClock  int
	FullMoveNumber int
	Hash           uint64
}

// ParseUCIMove splits a UCI move string into its components. It does
// not check the move against any position.
func ParseUCIMove(s string) (from, to Square, promo PieceType, err error) {
	if len(s) < 4 || len(s) > 5 {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("invalid move string: %s", s)
	}

	from, err = ParseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, NoPieceType, err
	}

	to, err = ParseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, NoPieceType, err
	}

	if len(s) == 5 {
		promo = PromoFromChar(s[4])
		if promo == NoPieceType {
			return NoSquare, NoSquare, NoPieceType, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	return from, to, promo, nil
}
