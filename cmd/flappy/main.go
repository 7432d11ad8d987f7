// flappy runs a Flappy Bird game in the terminal, in a desktop window or
// over SSH.
//
// Usage:
//
//	flappy list                - List available variants
//	flappy play [variant]      - Play in the terminal
//	flappy window [variant]    - Play in a desktop window
//	flappy menu                - Pick a variant interactively
//	flappy serve               - Start SSH server for remote play
//	flappy scores [variant]    - Show recorded runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.flappy/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
//	--sound             - Play sound cues (default: true)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagSound    bool

	// Game flags, shared by the commands that start rounds
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird for your terminal, your desktop and SSH",
	Long: `Guide the bird through the gaps between pipes. Every pipe pair you
pass is worth one point; touching a pipe or the ground ends the round.

Two variants are available:
  classic  - per-frame physics, the ceiling stops the bird
  arcade   - per-second physics, the ceiling bounces the bird back

Available commands:
  list     - Show the variants
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View recorded runs

Examples:
  flappy play
  flappy play arcade --difficulty hard
  flappy window classic
  flappy serve --ssh :2222
  flappy scores arcade`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", true, "Play sound cues")

	for _, cmd := range []*cobra.Command{playCmd, windowCmd, menuCmd, serveCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// resolveVariant maps a command argument to a variant. Registry IDs and
// variant names are both accepted; no argument means classic.
func resolveVariant(args []string) (config.Variant, error) {
	if len(args) == 0 {
		return config.VariantClassic, nil
	}
	info, ok := registry.Lookup(args[0])
	if !ok {
		return "", fmt.Errorf("unknown variant %q (run 'flappy list' to see variants)", args[0])
	}
	v, ok := config.ParseVariant(info.Alias)
	if !ok || info.Family != flappy.Family {
		return "", fmt.Errorf("%q is not a flappy variant", args[0])
	}
	return v, nil
}

// gameID returns the registry ID of a variant.
func gameID(v config.Variant) string {
	if info, ok := registry.Lookup(string(v)); ok {
		return info.ID
	}
	return flappy.IDClassic
}

// applyGameFlags validates --config and --difficulty and hands them to the
// game package. The config file is loaded once here so a broken file is
// reported instead of silently replaced by defaults.
func applyGameFlags(variants ...config.Variant) error {
	if flagDifficulty != "" {
		if _, ok := config.ParseDifficultyPreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	for _, v := range variants {
		if _, err := config.LoadFlappy(flagConfig, v); err != nil {
			return err
		}
	}

	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)
	return nil
}
