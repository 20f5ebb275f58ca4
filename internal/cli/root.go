package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Shared by every subcommand; set up in the root's PersistentPreRunE
var (
	cfg    *Config
	client *Client
	logger *slog.Logger
)

// NewRootCmd builds the command tree with fresh flag state
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "boggle",
		Short: "Play Boggle in the terminal or against a Boggle server",
		Long: `boggle is a CLI for the Boggle word game.

Use "boggle play" for a local game in the terminal, or the game commands to
drive a session on a running server through its JSON API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			client = NewClient(cfg.ServerURL).WithLogger(logger)
			return nil
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: BOGGLE_SERVER)")
	flags.StringVar(&cfg.GameFile, "game-file", cfg.GameFile, "File remembering the current game id (env: BOGGLE_GAME_FILE)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log requests and game events to stderr")

	rootCmd.AddCommand(newPlayCmd(), newGameCmd(), newHealthCmd())
	return rootCmd
}

// newLogger is silent unless verbose output was asked for
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Execute runs the CLI, cancelling in-flight requests on interrupt
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
