// Package httpapi exposes the chess engine and game store over REST.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/hailam/chessapi/internal/registry"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

// Handler serves the chess API using the game store. One engine instance
// is created per search request; only the store is shared.
type Handler struct {
	store        *registry.Store
	defaultDepth int
	started      time.Time
	log          zerolog.Logger
}

// NewRouter creates the HTTP router for the chess API. defaultDepth is
// the search depth used for games that do not configure their own.
func NewRouter(log zerolog.Logger, store *registry.Store, defaultDepth int) http.Handler {
	h := &Handler{
		store:        store,
		defaultDepth: defaultDepth,
		started:      time.Now(),
		log:          log,
	}

	mux := http.NewServeMux()
	mux.Handle("/game/new", http.HandlerFunc(h.newGame))
	mux.Handle("/game/move", http.HandlerFunc(h.makeMove))
	mux.Handle("/game/state", http.HandlerFunc(h.gameState))
	mux.Handle("/engine/move", http.HandlerFunc(h.engineMove))
	mux.Handle("/position/legal-moves", http.HandlerFunc(h.legalMoves))
	mux.Handle("/position/eval", http.HandlerFunc(h.evaluatePosition))
	mux.Handle("/position/validate", http.HandlerFunc(h.validateFEN))
	mux.Handle("/health", http.HandlerFunc(h.health))
	mux.Handle("/health/detailed", http.HandlerFunc(h.healthDetailed))

	return CORS(RequestID(AccessLog(log, mux)))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":    "UP",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"service":   "chessapi",
		"version":   Version,
	})
}

func (h *Handler) healthDetailed(w http.ResponseWriter, r *http.Request) {
	games, err := h.store.Count()
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	writeJSON(w, map[string]any{
		"status":    "UP",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"service":   "chessapi",
		"version":   Version,
		"memory": map[string]any{
			"alloc":      fmt.Sprintf("%d MB", m.Alloc/1024/1024),
			"totalAlloc": fmt.Sprintf("%d MB", m.TotalAlloc/1024/1024),
			"sys":        fmt.Sprintf("%d MB", m.Sys/1024/1024),
			"numGC":      m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
		"games":      games,
	})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
