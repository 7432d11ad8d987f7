package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. The variant defaults to classic.

Controls:
  Space/Up/W    - Flap (also starts and restarts)
  Click/Touch   - Flap, or pause with the on-screen button
  Enter         - Pause while playing, flap otherwise
  P             - Pause/resume
  R             - Restart after game over
  Esc/Q         - Quit

Examples:
  flappy window
  flappy window arcade --scale 1.5
  flappy window --sound=false`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size relative to the world")
}

func runWindow(_ *cobra.Command, args []string) error {
	variant, err := resolveVariant(args)
	if err != nil {
		return err
	}
	if err := applyGameFlags(variant); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	player := newSound(logger)
	defer player.Close()

	err = window.Run(flappy.New(variant), window.Options{
		Runtime: runtimeConfig(),
		Store:   store,
		Sound:   player,
		Logger:  logger,
		Scale:   flagScale,
	})
	if err != nil {
		return fmt.Errorf("error running window: %w", err)
	}
	return nil
}
