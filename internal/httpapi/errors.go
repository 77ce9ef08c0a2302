package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/hailam/chessapi/internal/board"
	"github.com/hailam/chessapi/internal/engine"
	"github.com/hailam/chessapi/internal/registry"
)

// Error codes reported in the error envelope.
const (
	CodeInvalidFEN    = "INVALID_FEN"
	CodeInvalidMove   = "INVALID_MOVE"
	CodeValidation    = "VALIDATION_ERROR"
	CodeGameNotFound  = "GAME_NOT_FOUND"
	CodeGameOver      = "GAME_OVER"
	CodeNoLegalMoves  = "NO_LEGAL_MOVES"
	CodeGameLimit     = "GAME_LIMIT_EXCEEDED"
	CodeInternalError = "INTERNAL_ERROR"
)

// ErrorResponse is the envelope returned for every API error.
type ErrorResponse struct {
	Status    int    `json:"status"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	h.writeErrorDetails(w, r, status, code, message, "")
}

func (h *Handler) writeErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message, details string) {
	if status < http.StatusInternalServerError {
		h.log.Warn().
			Str("rid", GetRequestID(r.Context())).
			Str("code", code).
			Str("path", r.URL.Path).
			Msg(message)
	}

	writeJSONStatus(w, status, ErrorResponse{
		Status:    status,
		ErrorCode: code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().Format(time.RFC3339),
		Path:      r.URL.Path,
	})
}

// validationError reports a malformed or incomplete request body.
func (h *Handler) validationError(w http.ResponseWriter, r *http.Request, details string) {
	h.writeErrorDetails(w, r, http.StatusBadRequest, CodeValidation, "Request validation failed", details)
}

// gameError maps store lookup failures onto the envelope.
func (h *Handler) gameError(w http.ResponseWriter, r *http.Request, gameID string, err error) {
	if errors.Is(err, registry.ErrNotFound) {
		h.writeError(w, r, http.StatusNotFound, CodeGameNotFound, "Game not found: "+gameID)
		return
	}
	h.internalError(w, r, err)
}

// domainError maps typed errors from the board and engine packages onto
// the envelope.
func (h *Handler) domainError(w http.ResponseWriter, r *http.Request, err error) {
	var fenErr *board.MalformedFENError
	var moveErr *board.IllegalMoveError
	var searchErr *engine.NoLegalMoveError

	switch {
	case errors.As(err, &fenErr):
		h.writeError(w, r, http.StatusBadRequest, CodeInvalidFEN, "Invalid FEN string: "+fenErr.FEN+" - "+fenErr.Reason)
	case errors.As(err, &moveErr):
		h.writeError(w, r, http.StatusBadRequest, CodeInvalidMove, "Invalid move: "+moveErr.From.String()+" to "+moveErr.To.String())
	case errors.As(err, &searchErr):
		h.writeError(w, r, http.StatusConflict, CodeNoLegalMoves, err.Error())
	default:
		h.internalError(w, r, err)
	}
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().
		Err(err).
		Str("rid", GetRequestID(r.Context())).
		Str("path", r.URL.Path).
		Msg("internal error")

	h.writeError(w, r, http.StatusInternalServerError, CodeInternalError, "Internal server error")
}
