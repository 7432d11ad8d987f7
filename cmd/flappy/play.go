package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. The variant defaults to classic.

Controls:
  Space/Up/W    - Flap (also starts and restarts)
  Click         - Flap, or pause with the [II] button
  Enter         - Pause while playing, flap otherwise
  P             - Pause/resume
  Esc           - Pause; quit when paused or over
  R             - Restart after game over
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flappy play
  flappy play arcade
  flappy play classic --difficulty hard
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant, err := resolveVariant(args)
	if err != nil {
		return err
	}
	if err := applyGameFlags(variant); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID(variant))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	player := newSound(logger)
	defer player.Close()

	logger.Info("starting", "game", game.ID(), "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger), tui.WithSound(player)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
