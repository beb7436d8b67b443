package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxdeck/voxdeck/pkg/config"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "voxdeck",
	Short: "Voice-driven presentation session server",
	Long: `voxdeck — an AI voice presenter for slide decks.

Commands:
  serve     Start the HTTP/WebSocket server
  slides    Print the loaded slide deck
  version   Version information

Examples:
  voxdeck serve
  voxdeck serve --config voxdeck.yaml
  voxdeck slides --deck talk.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
}

// loadConfig resolves the effective configuration from the optional
// config file and the environment.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// setupLogging installs the process-wide slog handler.
func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else {
		switch cfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
