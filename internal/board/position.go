package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side still holds the right to
// castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// NoEPFile marks the absence of an en passant file.
const NoEPFile int8 = -1

// Position represents a complete chess position.
//
// The board is a 64-entry mailbox of signed piece codes indexed by
// Square, read in FEN order (index 0 is a8). Only the file of the en
// passant target is stored; the target rank follows from the side to
// move.
type Position struct {
	Board [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EPFile         int8 // 0-7, or NoEPFile
	HalfMoveClock  int  // Moves since last pawn move or capture (for 50-move rule)
	FullMoveNumber int  // Full move counter, starts at 1

	// Zobrist hash of the position, recomputed after every make.
	Hash uint64
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or Empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Board[sq] == Empty
}

// KingSquare returns the square of the given color's king, or NoSquare
// if that king is missing from the board.
func (p *Position) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := A8; sq <= H1; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// EnPassantTarget returns the en passant target square derived from
// the stored file and the side to move, and whether one exists.
func (p *Position) EnPassantTarget() (Square, bool) {
	if p.EPFile == NoEPFile {
		return NoSquare, false
	}
	// A white double push leaves the target on rank 3 with Black to
	// move; a black double push leaves it on rank 6 with White to move.
	row := 2
	if p.SideToMove == Black {
		row = 5
	}
	return SquareAt(row, int(p.EPFile)), true
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	ksq := p.KingSquare(p.SideToMove)
	if ksq == NoSquare {
		return false
	}
	return p.IsAttacked(ksq, p.SideToMove.Other())
}

// HasLegalMoves returns true if the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	ml := p.GeneratePseudoLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		if p.isLegal(ml.Get(i)) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the position is checkmate.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d  ", 8-row)
		for file := 0; file < 8; file++ {
			piece := p.Board[SquareAt(row, file)]
			if piece == Empty {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	if ep, ok := p.EnPassantTarget(); ok {
		fmt.Fprintf(&sb, "En passant: %s\n", ep)
	} else {
		sb.WriteString("En passant: -\n")
	}
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	fmt.Fprintf(&sb, "Hash: %016x\n", p.Hash)
	return sb.String()
}

// Validate checks basic position invariants: exactly one king per side
// and no pawns on the back ranks.
func (p *Position) Validate() error {
	whiteKings, blackKings := 0, 0
	for sq := A8; sq <= H1; sq++ {
		switch p.Board[sq] {
		case WhiteKing:
			whiteKings++
		case BlackKing:
			blackKings++
		case WhitePawn, BlackPawn:
			if row := sq.Row(); row == 0 || row == 7 {
				return fmt.Errorf("pawn on back rank at %s", sq)
			}
		}
	}
	if whiteKings != 1 {
		return fmt.Errorf("white must have exactly one king, found %d", whiteKings)
	}
	if blackKings != 1 {
		return fmt.Errorf("black must have exactly one king, found %d", blackKings)
	}
	return nil
}
