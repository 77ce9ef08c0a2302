package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func openTestStore(t *testing.T, ttl time.Duration, maxGames int) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), ttl, maxGames)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func newTestGame() *Game {
	return &Game{
		FEN:         startFEN,
		Mode:        ModeHumanVsEngine,
		PlayerColor: "white",
		EngineDepth: 5,
	}
}

func TestCreateAndGet(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	game := newTestGame()
	if err := s.Create(game); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(game.ID, "game-") || len(game.ID) != len("game-")+8 {
		t.Errorf("Expected ID like game-xxxxxxxx, got %q", game.ID)
	}
	if game.CreatedAt.IsZero() || game.UpdatedAt.IsZero() {
		t.Error("Expected Create to set timestamps")
	}

	got, err := s.Get(game.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != game.ID {
		t.Errorf("Expected ID %q, got %q", game.ID, got.ID)
	}
	if got.FEN != startFEN {
		t.Errorf("Expected FEN %q, got %q", startFEN, got.FEN)
	}
	if got.Mode != ModeHumanVsEngine {
		t.Errorf("Expected mode %q, got %q", ModeHumanVsEngine, got.Mode)
	}
	if got.PlayerColor != "white" {
		t.Errorf("Expected player color white, got %q", got.PlayerColor)
	}
	if got.EngineDepth != 5 {
		t.Errorf("Expected engine depth 5, got %d", got.EngineDepth)
	}
	if len(got.Moves) != 0 {
		t.Errorf("Expected no moves, got %v", got.Moves)
	}
	if got.Over {
		t.Error("Expected a new game to not be over")
	}
	if !got.CreatedAt.Equal(game.CreatedAt) {
		t.Errorf("Expected CreatedAt %v, got %v", game.CreatedAt, got.CreatedAt)
	}
}

func TestGameIDsAreUnique(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		game := newTestGame()
		if err := s.Create(game); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if seen[game.ID] {
			t.Fatalf("Duplicate game ID %q", game.ID)
		}
		seen[game.ID] = true
	}
}

func TestGetUnknownGame(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	if _, err := s.Get("game-00000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for empty ID, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	game := newTestGame()
	if err := s.Create(game); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	created := game.UpdatedAt

	game.RecordMove("e2e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err := s.Update(game); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := s.Get(game.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Moves) != 1 || got.Moves[0] != "e2e4" {
		t.Errorf("Expected moves [e2e4], got %v", got.Moves)
	}
	if got.FEN == startFEN {
		t.Error("Expected FEN to advance after the move")
	}
	if got.UpdatedAt.Before(created) {
		t.Errorf("Expected UpdatedAt to advance, got %v before %v", got.UpdatedAt, created)
	}
}

func TestUpdateMissingGame(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	game := newTestGame()
	if err := s.Create(game); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Delete(game.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := s.Update(game); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	game := newTestGame()
	if err := s.Create(game); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Delete(game.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(game.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op
	if err := s.Delete(game.ID); err != nil {
		t.Errorf("Expected second delete to succeed, got %v", err)
	}
}

func TestCount(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	if n, err := s.Count(); err != nil || n != 0 {
		t.Fatalf("Expected empty store, got n=%d err=%v", n, err)
	}

	games := make([]*Game, 3)
	for i := range games {
		games[i] = newTestGame()
		if err := s.Create(games[i]); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}
	if n, _ := s.Count(); n != 3 {
		t.Errorf("Expected 3 games, got %d", n)
	}

	if err := s.Delete(games[0].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n, _ := s.Count(); n != 2 {
		t.Errorf("Expected 2 games after delete, got %d", n)
	}
}

func TestGameLimit(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 2)

	for i := 0; i < 2; i++ {
		if err := s.Create(newTestGame()); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	err := s.Create(newTestGame())
	if !errors.Is(err, ErrGameLimit) {
		t.Errorf("Expected ErrGameLimit, got %v", err)
	}
}

func TestExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping expiry test in short mode")
	}

	// Badger tracks expiry with one-second granularity, so the TTL and the
	// sleeps are in whole seconds.
	s := openTestStore(t, 1*time.Second, 0)

	game := newTestGame()
	if err := s.Create(game); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := s.Get(game.ID); err != nil {
		t.Fatalf("Get right after create failed: %v", err)
	}

	time.Sleep(2100 * time.Millisecond)

	if _, err := s.Get(game.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after expiry, got %v", err)
	}
}

func TestReadRenewsExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping expiry test in short mode")
	}

	s := openTestStore(t, 2*time.Second, 0)

	game := newTestGame()
	if err := s.Create(game); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Keep reading at intervals shorter than the TTL for longer than the
	// TTL itself. Each read renews the window, so the game must survive.
	for i := 0; i < 3; i++ {
		time.Sleep(900 * time.Millisecond)
		if _, err := s.Get(game.ID); err != nil {
			t.Fatalf("Get after %d renewals failed: %v", i, err)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := openTestStore(t, DefaultTTL, 0)

	game := newTestGame()
	if err := s.Create(game); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Every Get rewrites the entry to renew its TTL, so concurrent reads of
	// one game exercise the transaction retry path.
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 25; j++ {
				if _, err := s.Get(game.ID); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Concurrent Get failed: %v", err)
	}
}

func TestGameHelpers(t *testing.T) {
	game := newTestGame()

	game.RecordMove("e2e4", "fen-after-e4")
	game.RecordMove("e7e5", "fen-after-e5")
	if len(game.Moves) != 2 || game.Moves[0] != "e2e4" || game.Moves[1] != "e7e5" {
		t.Errorf("Expected moves [e2e4 e7e5], got %v", game.Moves)
	}
	if game.FEN != "fen-after-e5" {
		t.Errorf("Expected latest FEN, got %q", game.FEN)
	}

	game.Finish("White wins by checkmate")
	if !game.Over {
		t.Error("Expected game to be over")
	}
	if game.Result != "White wins by checkmate" {
		t.Errorf("Expected result to be recorded, got %q", game.Result)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if got := filepath.Base(dbDir); got != "db" {
		t.Errorf("Expected database dir to end in db, got %q", got)
	}

	// Verify directory exists
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
