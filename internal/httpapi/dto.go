package httpapi

import (
	"github.com/hailam/chessapi/internal/board"
	"github.com/hailam/chessapi/internal/registry"
)

// Request bodies. Field names follow the JSON casing the frontend sends.

type NewGameRequest struct {
	FEN         string `json:"fen"`
	Mode        string `json:"mode"`
	PlayerColor string `json:"playerColor"`
	EngineDepth int    `json:"engineDepth"`
}

type MoveRequest struct {
	GameID    string `json:"gameId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion"`
}

type EngineMoveRequest struct {
	GameID string `json:"gameId"`
	Depth  int    `json:"depth"`
}

// MoveInfo describes a single played move.
type MoveInfo struct {
	From      string `json:"from"`
	To        string `json:"to"`
	SAN       string `json:"san"`
	Promotion string `json:"promotion,omitempty"`
}

// GameStatus describes the check and game-over state of a position.
type GameStatus struct {
	InCheck     bool   `json:"inCheck"`
	Checkmate   bool   `json:"checkmate"`
	Stalemate   bool   `json:"stalemate"`
	Draw        bool   `json:"draw"`
	Description string `json:"description"`
}

// GameStateResponse is returned by POST /game/new and GET /game/state.
type GameStateResponse struct {
	GameID          string          `json:"gameId"`
	FEN             string          `json:"fen"`
	SideToMove      string          `json:"sideToMove"`
	LegalMoves      []string        `json:"legalMoves"`
	GameStatus      GameStatus      `json:"gameStatus"`
	HalfmoveClock   int             `json:"halfmoveClock"`
	FullmoveNumber  int             `json:"fullmoveNumber"`
	CastlingRights  map[string]bool `json:"castlingRights"`
	EnPassantTarget string          `json:"enPassantTarget,omitempty"`
}

// MoveResponse is returned by POST /game/move.
type MoveResponse struct {
	GameID         string     `json:"gameId"`
	Move           MoveInfo   `json:"move"`
	FEN            string     `json:"fen"`
	SideToMove     string     `json:"sideToMove"`
	LegalMoves     []string   `json:"legalMoves"`
	GameStatus     GameStatus `json:"gameStatus"`
	HalfmoveClock  int        `json:"halfmoveClock"`
	FullmoveNumber int        `json:"fullmoveNumber"`
	CapturedPiece  string     `json:"capturedPiece,omitempty"`
	Check          bool       `json:"check"`
	Checkmate      bool       `json:"checkmate"`
	Stalemate      bool       `json:"stalemate"`
}

// PositionInfo is the position block of an engine move response.
type PositionInfo struct {
	FEN            string     `json:"fen"`
	SideToMove     string     `json:"sideToMove"`
	LegalMoves     []string   `json:"legalMoves"`
	GameStatus     GameStatus `json:"gameStatus"`
	HalfmoveClock  int        `json:"halfmoveClock"`
	FullmoveNumber int        `json:"fullmoveNumber"`
}

// EvaluationInfo reports scores in centipawns. Score is from White's
// perspective, ScoreFromSideToMove from the searched side's.
type EvaluationInfo struct {
	Score               int    `json:"score"`
	ScoreFromSideToMove int    `json:"scoreFromSideToMove"`
	Assessment          string `json:"assessment"`
	Material            int    `json:"material"`
	Positional          int    `json:"positional"`
}

// SearchStats reports how much work the search did.
type SearchStats struct {
	Depth         int   `json:"depth"`
	NodesSearched int64 `json:"nodesSearched"`
	TimeMs        int64 `json:"timeMs"`
	NPS           int64 `json:"nps"`
}

// EngineMoveResponse is returned by POST /engine/move.
type EngineMoveResponse struct {
	BestMove    MoveInfo       `json:"bestMove"`
	Position    PositionInfo   `json:"position"`
	Evaluation  EvaluationInfo `json:"evaluation"`
	SearchStats SearchStats    `json:"searchStats"`
	PV          []string       `json:"pv"`
}

// LegalMovesResponse is returned by GET /position/legal-moves.
type LegalMovesResponse struct {
	FEN        string   `json:"fen"`
	SideToMove string   `json:"sideToMove"`
	MoveCount  int      `json:"moveCount"`
	LegalMoves []string `json:"legalMoves"`
}

// EvaluationDetails breaks the static evaluation into its terms. Pawn
// structure, king safety and mobility are not part of the evaluation
// and always read zero.
type EvaluationDetails struct {
	Material      int `json:"material"`
	PieceSquare   int `json:"pieceSquare"`
	PawnStructure int `json:"pawnStructure"`
	KingSafety    int `json:"kingSafety"`
	Mobility      int `json:"mobility"`
}

// EvaluationResponse is returned by GET /position/eval.
type EvaluationResponse struct {
	FEN                 string            `json:"fen"`
	Score               int               `json:"score"`
	ScoreFromSideToMove int               `json:"scoreFromSideToMove"`
	Assessment          string            `json:"assessment"`
	Material            int               `json:"material"`
	Positional          int               `json:"positional"`
	Details             EvaluationDetails `json:"details"`
}

// colorName returns the wire name for a side.
func colorName(c board.Color) string {
	if c == board.White {
		return "white"
	}
	return "black"
}

// castlingMap renders castling rights as the K/Q/k/q map the API reports.
func castlingMap(cr board.CastlingRights) map[string]bool {
	return map[string]bool{
		"K": cr.CanCastle(board.White, true),
		"Q": cr.CanCastle(board.White, false),
		"k": cr.CanCastle(board.Black, true),
		"q": cr.CanCastle(board.Black, false),
	}
}

// gameStatusFor describes pos given the number of legal moves it has.
func gameStatusFor(pos *board.Position, legalMoves int) GameStatus {
	inCheck := pos.InCheck()
	checkmate := inCheck && legalMoves == 0
	stalemate := !inCheck && legalMoves == 0

	return GameStatus{
		InCheck:     inCheck,
		Checkmate:   checkmate,
		Stalemate:   stalemate,
		Draw:        stalemate,
		Description: statusDescription(inCheck, checkmate, stalemate),
	}
}

func statusDescription(inCheck, checkmate, stalemate bool) string {
	switch {
	case checkmate:
		return "Checkmate!"
	case stalemate:
		return "Stalemate - Draw!"
	case inCheck:
		return "Check!"
	}
	return "Game in progress"
}

// gameStateResponse builds the shared game state payload from a stored
// game and its parsed position.
func gameStateResponse(game *registry.Game, pos *board.Position) GameStateResponse {
	legal := pos.GenerateLegalMoves().UCIStrings()

	resp := GameStateResponse{
		GameID:         game.ID,
		FEN:            game.FEN,
		SideToMove:     colorName(pos.SideToMove),
		LegalMoves:     legal,
		GameStatus:     gameStatusFor(pos, len(legal)),
		HalfmoveClock:  pos.HalfMoveClock,
		FullmoveNumber: pos.FullMoveNumber,
		CastlingRights: castlingMap(pos.CastlingRights),
	}
	if target, ok := pos.EnPassantTarget(); ok {
		resp.EnPassantTarget = target.String()
	}
	return resp
}

// assessment puts a White-perspective centipawn score into words.
func assessment(score int) string {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	side := "White"
	if score < 0 {
		side = "Black"
	}

	switch {
	case abs < 30:
		return "Equal position"
	case abs < 70:
		return side + " is slightly better"
	case abs < 150:
		return side + " has advantage"
	case abs < 300:
		return side + " has decisive advantage"
	}
	return side + " is winning"
}

// whiteScore converts a score relative to stm into White's perspective.
func whiteScore(score int, stm board.Color) int {
	return score * int(stm)
}

// promoLetter returns the lowercase promotion letter, or "" for none.
func promoLetter(pt board.PieceType) string {
	switch pt {
	case board.Knight:
		return "n"
	case board.Bishop:
		return "b"
	case board.Rook:
		return "r"
	case board.Queen:
		return "q"
	}
	return ""
}

// capturedLetter returns the FEN letter of the piece a move captures,
// or "" for a quiet move. For en passant this is the bypassed pawn.
func capturedLetter(m board.Move) string {
	if !m.IsCapture() {
		return ""
	}
	return m.Captured.String()
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
