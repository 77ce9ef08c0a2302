package board

// Color represents the color of a piece or player.
// The numeric values double as the sign of that color's piece codes.
type Color int8

const (
	White Color = 1
	Black Color = -1
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return -c
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType represents the type of a chess piece (1-6).
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PieceValue is the material value per piece type in centipawns,
// indexed by PieceType.
var PieceValue = [7]int{0, 100, 320, 330, 500, 900, 20000}

// Piece is a signed piece code: magnitude 1-6 encodes the type,
// positive codes are white, negative codes are black, 0 is an empty
// square.
type Piece int8

const (
	Empty       Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = -Piece(Pawn)
	BlackKnight Piece = -Piece(Knight)
	BlackBishop Piece = -Piece(Bishop)
	BlackRook   Piece = -Piece(Rook)
	BlackQueen  Piece = -Piece(Queen)
	BlackKing   Piece = -Piece(King)
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece(pt) * Piece(c)
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

// Color returns the Color of the piece. Only meaningful for non-empty
// pieces.
func (p Piece) Color() Color {
	if p < 0 {
		return Black
	}
	return White
}

// IsColor returns true if the piece is non-empty and belongs to c.
func (p Piece) IsColor(c Color) bool {
	if c == White {
		return p > 0
	}
	return p < 0
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black, space for empty.
func (p Piece) String() string {
	if p == Empty {
		return " "
	}
	chars := "kqrbnp PNBRQK"
	return string(chars[p+6])
}

// PieceFromChar converts a FEN character to a Piece.
// Returns Empty for characters that are not pieces.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return Empty
	}
}

// PromoFromChar converts a promotion letter (either case) to a
// PieceType. Returns NoPieceType for anything that is not a legal
// promotion target.
func PromoFromChar(c byte) PieceType {
	switch c {
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	default:
		return NoPieceType
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}
