// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// Sim holds the simulation and knows nothing about displays. Game adapts it
// to the registry so the terminal, window and SSH frontends can run it.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Registry IDs, one per variant.
const (
	IDClassic = "flappy"
	IDArcade  = "flappy_arcade"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParseDifficultyPreset(preset)
	if !ok || preset == "" {
		difficultyPreset = "" // Use config default
		return
	}
	difficultyPreset = p
}

// Game adapts a Sim to the registry interface.
type Game struct {
	variant config.Variant
	cfg     config.FlappyConfig
	loaded  bool
	sim     *Sim
	store   core.HighScoreStore
}

// New creates a new game instance for a variant.
func New(variant config.Variant) *Game {
	return &Game{variant: variant}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == config.VariantArcade {
		return IDArcade
	}
	return IDClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantArcade {
		return "Flappy Bird (Arcade)"
	}
	return "Flappy Bird"
}

// Variant returns the rule profile the game runs.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Reset initializes or restarts the game. The configuration is loaded on
// the first call; later calls reseed and return to START.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadFlappy(configPath, g.variant)
		if err != nil {
			cfg = config.DefaultFlappyConfig(g.variant)
		}
		if difficultyPreset != "" {
			config.ApplyFlappyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.loaded = true
	}

	if g.sim == nil {
		g.sim = NewSim(g.cfg, runtime.Seed)
		g.sim.AttachHighScores(g.store)
		return
	}
	g.sim.Reset(runtime.Seed)
}

// UseConfig replaces the configuration used by the next Reset.
// It bypasses file loading, which keeps tests independent of the disk.
func (g *Game) UseConfig(cfg config.FlappyConfig) {
	g.cfg = cfg
	g.loaded = true
	g.sim = nil
}

// AttachHighScores sets the persisted high score store. The score is read
// once, when the simulation is created.
func (g *Game) AttachHighScores(store core.HighScoreStore) {
	g.store = store
	if g.sim != nil {
		g.sim.AttachHighScores(store)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.sim.Step(in)
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.sim.Snapshot()
	Draw(snap, NewScreenRenderer(dst, snap.World))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Mode: ModeStart.String()}
	}
	mode := g.sim.Mode()
	return core.GameState{
		Mode:      mode.String(),
		Score:     g.sim.Score(),
		HighScore: g.sim.HighScore(),
		GameOver:  mode == ModeGameOver,
		Paused:    mode == ModePaused,
	}
}

// Sim exposes the running simulation, for frontends that draw snapshots
// themselves.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Family groups both variants in listings.
const Family = "flappy"

func init() {
	registry.Register(registry.GameInfo{ID: IDClassic, Family: Family, Alias: string(config.VariantClassic)},
		func() registry.Game { return New(config.VariantClassic) })
	registry.Register(registry.GameInfo{ID: IDArcade, Family: Family, Alias: string(config.VariantArcade)},
		func() registry.Game { return New(config.VariantArcade) })
}
