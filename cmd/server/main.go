package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"wordchain/internal/app"
	"wordchain/internal/config"
	"wordchain/internal/dict"
	"wordchain/internal/store"
	httpTransport "wordchain/internal/transport/http"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.Logging)

	logger.Info().
		Str("env", cfg.Server.Env).
		Str("port", cfg.Server.Port).
		Msg("starting word-chain game server")

	st, err := store.OpenSQLite(cfg.Storage.Path, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("failed to open room store")
	}
	defer st.Close()

	oracle := dict.NewClient(cfg.Dict.BaseURL, cfg.Dict.LookupTimeout, logger)

	hub := app.NewRoomHub(cfg.Game, oracle, st, logger)
	hub.Restore(context.Background())
	defer hub.Close()

	server := httpTransport.NewServer(cfg, hub, logger)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stdout
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
