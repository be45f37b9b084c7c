package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level",
	Long: `Start playing the level in this terminal.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Jump
  Enter/Space      - Continue / play again
  Esc              - Close a dialog
  R                - Restart (while a dialog or the goal banner is shown)
  Tab              - Best runs of this session
  Q/Ctrl+C         - Quit

Runs are kept in memory and are gone when the program exits.

Examples:
  platformer play
  platformer play --name ann
  platformer play --config ./my-level.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().String("name", defaultPlayerName(), "Player name shown on the leaderboard")
	_ = viper.BindPFlag("name", playCmd.Flags().Lookup("name"))
}

func defaultPlayerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) {
	// The game owns the terminal, so logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard, "platformer")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	gameCfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: viper.GetInt("fps"),
	}

	game, err := platformer.New(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		// Continue without a leaderboard
		store = nil
	}

	runErr := tui.Run(game, store, cfg, viper.GetString("name"), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
