// chessapi serves a chess engine and game manager over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/chessapi/internal/engine"
	"github.com/hailam/chessapi/internal/httpapi"
	"github.com/hailam/chessapi/internal/registry"
)

func main() {
	var (
		addr         = flag.String("addr", ":8080", "listen address")
		dbDir        = flag.String("db", "", "BadgerDB directory (defaults to the per-user data dir)")
		logLevel     = flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
		logFormat    = flag.String("log-format", "console", "log format (console or json)")
		maxGames     = flag.Int("max-games", registry.DefaultMaxGames, "maximum concurrent games, 0 for unlimited")
		gameTTL      = flag.Duration("game-ttl", registry.DefaultTTL, "inactive games expire after this long, 0 to keep forever")
		defaultDepth = flag.Int("default-depth", 5, "search depth for games that do not set one")
	)
	flag.Parse()

	log := newLogger(*logLevel, *logFormat)

	if *defaultDepth < engine.MinDepth || *defaultDepth > engine.MaxDepth {
		log.Fatal().Int("depth", *defaultDepth).
			Msgf("default depth must be between %d and %d", engine.MinDepth, engine.MaxDepth)
	}

	dir := *dbDir
	if dir == "" {
		var err error
		dir, err = registry.GetDatabaseDir()
		if err != nil {
			log.Fatal().Err(err).Msg("cannot resolve database directory")
		}
	}

	store, err := registry.Open(dir, *gameTTL, *maxGames)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("cannot open game store")
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(log, store, *defaultDepth),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", *addr).Str("db", dir).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("stopped")
}

// newLogger builds the process logger writing to stderr.
func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if format == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(lvl).With().Timestamp().Logger()
}
