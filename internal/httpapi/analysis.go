package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hailam/chessapi/internal/board"
	"github.com/hailam/chessapi/internal/engine"
)

// engineMove handles POST /engine/move. It searches the game's current
// position, plays the best move found and records it on the game.
func (h *Handler) engineMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EngineMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.validationError(w, r, "invalid JSON body")
		return
	}
	if req.GameID == "" {
		h.validationError(w, r, "Game ID is required")
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

	depth := req.Depth
	if depth == 0 {
		depth = game.EngineDepth
	}
	depth = clamp(depth, engine.MinDepth, engine.MaxDepth)

	searchSide := pos.SideToMove
	eng := engine.New()
	start := time.Now()
	result, err := eng.Search(pos, depth)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	elapsed := time.Since(start)

	material, positional := engine.EvaluateTerms(pos)

	san := result.Move.ToSAN(pos)
	pos.MakeMove(result.Move)
	game.RecordMove(result.Move.String(), pos.ToFEN())

	legal := pos.GenerateLegalMoves()
	status := gameStatusFor(pos, legal.Len())
	h.finishIfOver(game, pos, status)

	if err := h.store.Update(game); err != nil {
		h.gameError(w, r, game.ID, err)
		return
	}

	timeMs := elapsed.Milliseconds()
	var nps int64
	if timeMs > 0 {
		nps = result.Nodes * 1000 / timeMs
	}
	score := whiteScore(result.Score, searchSide)

	h.log.Info().
		Str("rid", GetRequestID(r.Context())).
		Str("game", game.ID).
		Str("move", result.Move.String()).
		Int("depth", result.Depth).
		Int64("nodes", result.Nodes).
		Int64("ms", timeMs).
		Msg("engine move")

	writeJSON(w, EngineMoveResponse{
		BestMove: MoveInfo{
			From:      result.Move.From.String(),
			To:        result.Move.To.String(),
			SAN:       san,
			Promotion: promoLetter(result.Move.Promo),
		},
		Position: PositionInfo{
			FEN:            game.FEN,
			SideToMove:     colorName(pos.SideToMove),
			LegalMoves:     legal.UCIStrings(),
			GameStatus:     status,
			HalfmoveClock:  pos.HalfMoveClock,
			FullmoveNumber: pos.FullMoveNumber,
		},
		Evaluation: EvaluationInfo{
			Score:               score,
			ScoreFromSideToMove: result.Score,
			Assessment:          assessment(score),
			Material:            whiteScore(material, searchSide),
			Positional:          whiteScore(positional, searchSide),
		},
		SearchStats: SearchStats{
			Depth:         result.Depth,
			NodesSearched: result.Nodes,
			TimeMs:        timeMs,
			NPS:           nps,
		},
		PV: result.PV,
	})
}

// legalMoves handles GET /position/legal-moves?fen=.
func (h *Handler) legalMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	fen := r.URL.Query().Get("fen")
	if fen == "" {
		h.validationError(w, r, "fen parameter is required")
		return
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	legal := pos.GenerateLegalMoves()
	writeJSON(w, LegalMovesResponse{
		FEN:        fen,
		SideToMove: colorName(pos.SideToMove),
		MoveCount:  legal.Len(),
		LegalMoves: legal.UCIStrings(),
	})
}

// evaluatePosition handles GET /position/eval?fen=. Scores are reported
// from White's perspective; scoreFromSideToMove keeps the engine's own
// sign convention.
func (h *Handler) evaluatePosition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	fen := r.URL.Query().Get("fen")
	if fen == "" {
		h.validationError(w, r, "fen parameter is required")
		return
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	rel := engine.Evaluate(pos)
	materialRel, positionalRel := engine.EvaluateTerms(pos)

	stm := pos.SideToMove
	score := whiteScore(rel, stm)
	material := whiteScore(materialRel, stm)
	positional := whiteScore(positionalRel, stm)

	writeJSON(w, EvaluationResponse{
		FEN:                 fen,
		Score:               score,
		ScoreFromSideToMove: rel,
		Assessment:          assessment(score),
		Material:            material,
		Positional:          positional,
		Details: EvaluationDetails{
			Material:    material,
			PieceSquare: positional,
		},
	})
}

// validateFEN handles GET /position/validate?fen=. Unlike the other
// position endpoints an unparseable FEN is a normal answer here, not an
// error response.
func (h *Handler) validateFEN(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	fen := r.URL.Query().Get("fen")
	if fen == "" {
		h.validationError(w, r, "fen parameter is required")
		return
	}

	if _, err := board.ParseFEN(fen); err != nil {
		writeJSONStatus(w, http.StatusBadRequest, map[string]any{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, map[string]any{
		"valid": true,
		"fen":   fen,
	})
}
