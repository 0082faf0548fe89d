package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sudoku-engine/internal/puzzles"
	httpTransport "sudoku-engine/internal/transport/http"
	"sudoku-engine/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the puzzle HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	store, err := puzzles.Open(cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DBPath).Msg("puzzle store unavailable, serving without persistence")
		store = nil
	} else {
		defer store.Close()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if quiet {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	httpTransport.RegisterRoutes(r, httpTransport.NewHandler(store, rng))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
