package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hailam/chessapi/internal/board"
	"github.com/hailam/chessapi/internal/engine"
	"github.com/hailam/chessapi/internal/registry"
)

// newGame handles POST /game/new. The body is optional; omitted fields
// fall back to a standard game against the engine.
func (h *Handler) newGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.validationError(w, r, "invalid JSON body")
		return
	}

	var problems []string
	switch req.Mode {
	case "":
		req.Mode = registry.ModeHumanVsEngine
	case registry.ModeHumanVsEngine, registry.ModeHumanVsHuman:
	default:
		problems = append(problems, "Invalid game mode")
	}
	switch req.PlayerColor {
	case "":
		req.PlayerColor = "white"
	case "white", "black":
	default:
		problems = append(problems, "Player color must be 'white' or 'black'")
	}
	if len(problems) > 0 {
		h.validationError(w, r, strings.Join(problems, ", "))
		return
	}

	if req.FEN == "" {
		req.FEN = board.StartFEN
	}
	pos, err := board.ParseFEN(req.FEN)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	depth := req.EngineDepth
	if depth == 0 {
		depth = h.defaultDepth
	}
	depth = clamp(depth, engine.MinDepth, engine.MaxDepth)

	game := &registry.Game{
		FEN:         pos.ToFEN(),
		Mode:        req.Mode,
		PlayerColor: req.PlayerColor,
		EngineDepth: depth,
	}
	if err := h.store.Create(game); err != nil {
		if errors.Is(err, registry.ErrGameLimit) {
			h.writeError(w, r, http.StatusTooManyRequests, CodeGameLimit,
				fmt.Sprintf("Maximum concurrent games limit (%d) exceeded. Please try again later.", h.store.MaxGames()))
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.log.Info().
		Str("rid", GetRequestID(r.Context())).
		Str("game", game.ID).
		Str("mode", game.Mode).
		Int("depth", depth).
		Msg("created game")

	writeJSONStatus(w, http.StatusCreated, gameStateResponse(game, pos))
}

// gameState handles GET /game/state?gameId=.
func (h *Handler) gameState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		h.validationError(w, r, "Game ID is required")
		return
	}

	game, err := h.store.Get(gameID)
	if err != nil {
		h.gameError(w, r, gameID, err)
		return
	}

	pos, err := board.ParseFEN(game.FEN)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, gameStateResponse(game, pos))
}

// makeMove handles POST /game/move.
func (h *Handler) makeMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.validationError(w, r, "invalid JSON body")
		return
	}

	var problems []string
	if req.GameID == "" {
		problems = append(problems, "Game ID is required")
	}
	from, fromErr := board.ParseSquare(req.From)
	if req.From == "" {
		problems = append(problems, "Source square is required")
	} else if fromErr != nil {
		problems = append(problems, "Invalid source square format")
	}
	to, toErr := board.ParseSquare(req.To)
	if req.To == "" {
		problems = append(problems, "Destination square is required")
	} else if toErr != nil {
		problems = append(problems, "Invalid destination square format")
	}
	promo := board.NoPieceType
	if req.Promotion != "" {
		if len(req.Promotion) != 1 || board.PromoFromChar(req.Promotion[0]) == board.NoPieceType {
			problems = append(problems, "Invalid promotion piece")
		} else {
			promo = board.PromoFromChar(req.Promotion[0])
		}
	}
	if len(problems) > 0 {
		h.validationError(w, r, strings.Join(problems, ", "))
		return
	}

	game, err := h.store.Get(req.GameID)
	if err != nil {
		h.gameError(w, r, req.GameID, err)
		return
	}
	if game.Over {
		h.writeError(w, r, http.StatusConflict, CodeGameOver,
			fmt.Sprintf("Game %s is already over: %s", game.ID, game.Result))
		return
	}

	pos, err := board.ParseFEN(game.FEN)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	move, err := pos.FindMove(from, to, promo)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	san := move.ToSAN(pos)
	pos.MakeMove(move)
	game.RecordMove(move.String(), pos.ToFEN())

	legal := pos.GenerateLegalMoves()
	status := gameStatusFor(pos, legal.Len())
	h.finishIfOver(game, pos, status)

	if err := h.store.Update(game); err != nil {
		h.gameError(w, r, game.ID, err)
		return
	}

	h.log.Info().
		Str("rid", GetRequestID(r.Context())).
		Str("game", game.ID).
		Str("move", move.String()).
		Str("san", san).
		Msg("move played")

	writeJSON(w, MoveResponse{
		GameID: game.ID,
		Move: MoveInfo{
			From:      move.From.String(),
			To:        move.To.String(),
			SAN:       san,
			Promotion: promoLetter(move.Promo),
		},
		FEN:            game.FEN,
		SideToMove:     colorName(pos.SideToMove),
		LegalMoves:     legal.UCIStrings(),
		GameStatus:     status,
		HalfmoveClock:  pos.HalfMoveClock,
		FullmoveNumber: pos.FullMoveNumber,
		CapturedPiece:  capturedLetter(move),
		Check:          status.InCheck,
		Checkmate:      status.Checkmate,
		Stalemate:      status.Stalemate,
	})
}

// finishIfOver records the game result when the position after a move is
// terminal. The side to move in pos is the side that did not just move.
func (h *Handler) finishIfOver(game *registry.Game, pos *board.Position, status GameStatus) {
	switch {
	case status.Checkmate:
		game.Finish(pos.SideToMove.Other().String() + " wins by checkmate")
	case status.Stalemate:
		game.Finish("Draw by stalemate")
	default:
		return
	}

	h.log.Info().Str("game", game.ID).Str("result", game.Result).Msg("game over")
}
