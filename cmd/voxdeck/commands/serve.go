package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxdeck/voxdeck/pkg/deck"
	"github.com/voxdeck/voxdeck/pkg/server"
)

var deckPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP/WebSocket server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setupLogging(cfg)

		if deckPath != "" {
			cfg.DeckPath = deckPath
		}
		d, err := loadDeck(cfg.DeckPath)
		if err != nil {
			return err
		}
		if cfg.OpenAIAPIKey == "" {
			slog.Warn("OPENAI_API_KEY is not set, sessions will fail to start")
		}

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: server.New(cfg, d).Router(),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			slog.Info("server listening", "addr", cfg.Addr(), "slides", d.Count())
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("serve: %w", err)
		case <-ctx.Done():
		}

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

// loadDeck reads the deck file, or falls back to the built-in deck when
// no path is configured.
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Default(), nil
	}
	return deck.Load(path)
}

func init() {
	serveCmd.Flags().StringVar(&deckPath, "deck", "", "slide deck YAML file (built-in deck if unset)")
	rootCmd.AddCommand(serveCmd)
}
