package registry

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage key prefix for game records
const gamePrefix = "game:"

// Defaults applied by the server when no overrides are given.
const (
	DefaultTTL      = 30 * time.Minute
	DefaultMaxGames = 1000
)

// Game modes
const (
	ModeHumanVsEngine = "human_vs_engine"
	ModeHumanVsHuman  = "human_vs_human"
)

// ErrNotFound is returned when a game ID does not match a live game.
var ErrNotFound = errors.New("game not found")

// ErrGameLimit is returned by Create when the live game limit is reached.
var ErrGameLimit = errors.New("game limit reached")

// Game is one stored chess game. The FEN is the source of truth for the
// position; side to move, move counters and castling rights are all
// derived from it.
type Game struct {
	ID          string    `json:"id"`
	FEN         string    `json:"fen"`
	Mode        string    `json:"mode"`
	PlayerColor string    `json:"player_color"`
	EngineDepth int       `json:"engine_depth"`
	Moves       []string  `json:"moves"`
	Over        bool      `json:"over"`
	Result      string    `json:"result"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordMove appends a move in coordinate notation and advances the position.
func (g *Game) RecordMove(uci, fen string) {
	g.Moves = append(g.Moves, uci)
	g.FEN = fen
}

// Finish marks the game over with a result description.
func (g *Game) Finish(result string) {
	g.Over = true
	g.Result = result
}

// Store wraps BadgerDB for persistent game storage. Entries carry a TTL and
// every read rewrites the entry with a fresh one, so a game expires only
// after a full ttl of inactivity.
type Store struct {
	db       *badger.DB
	ttl      time.Duration
	maxGames int
}

// Open opens the game store in dir. A zero ttl disables expiry; a zero
// maxGames disables the live game limit.
func Open(dir string, ttl time.Duration, maxGames int) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, ttl: ttl, maxGames: maxGames}, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// MaxGames returns the live game limit, 0 when unlimited.
func (s *Store) MaxGames() int {
	return s.maxGames
}

// Create assigns the game a fresh ID and timestamps and stores it.
func (s *Store) Create(game *Game) error {
	if s.maxGames > 0 {
		n, err := s.Count()
		if err != nil {
			return err
		}
		if n >= s.maxGames {
			return ErrGameLimit
		}
	}

	id, err := newGameID()
	if err != nil {
		return err
	}

	now := time.Now()
	game.ID = id
	game.CreatedAt = now
	game.UpdatedAt = now

	return s.update(func(txn *badger.Txn) error {
		return s.setGame(txn, game)
	})
}

// Get returns the game for id. Reading a game renews its expiry window.
func (s *Store) Get(id string) (*Game, error) {
	game := &Game{}

	err := s.update(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, game); err != nil {
			return err
		}

		if s.ttl == 0 {
			return nil
		}
		return txn.SetEntry(badger.NewEntry(gameKey(id), data).WithTTL(s.ttl))
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}

// Update rewrites an existing game and bumps its UpdatedAt timestamp.
// Returns ErrNotFound if the game expired or was removed.
func (s *Store) Update(game *Game) error {
	game.UpdatedAt = time.Now()

	return s.update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(game.ID)); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return s.setGame(txn, game)
	})
}

// Delete removes a game. Deleting a missing game is not an error.
func (s *Store) Delete(id string) error {
	return s.update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// Count returns the number of live games.
func (s *Store) Count() (int, error) {
	n := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})

	return n, err
}

// update runs fn in a read-write transaction, retrying on commit conflicts.
// Get rewrites entries to renew their TTL, so two requests touching the
// same game can conflict even when neither caller is writing.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	for {
		err := s.db.Update(fn)
		if err != badger.ErrConflict {
			return err
		}
	}
}

func (s *Store) setGame(txn *badger.Txn, game *Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	entry := badger.NewEntry(gameKey(game.ID), data)
	if s.ttl > 0 {
		entry = entry.WithTTL(s.ttl)
	}
	return txn.SetEntry(entry)
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// newGameID returns "game-" followed by 8 random hex characters.
func newGameID() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return "game-" + hex.EncodeToString(b[:]), nil
}
