// Package window runs the game in a desktop window with Ebitengine.
// Ebitengine calls Update at the configured tick rate, so one Update is one
// simulation tick; Draw paints the latest snapshot scaled to the window.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sound"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Sound   *sound.Player
	Logger  *log.Logger

	// Scale is the initial window size relative to the world size.
	Scale float64
}

// Game implements ebiten.Game around a flappy session.
type Game struct {
	game     *flappy.Game
	renderer *Renderer
	sound    *sound.Player
	logger   *log.Logger
	recorder *storage.RoundRecorder

	frame   core.InputFrame
	touches []ebiten.TouchID
	state   core.GameState
}

// NewGame prepares the session: the high score is attached and the game
// reset before the first frame.
func NewGame(game *flappy.Game, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	if opts.Store != nil {
		game.AttachHighScores(storage.NewHighScoreKeeper(opts.Store, game.ID(), logger))
	}
	game.Reset(rt)

	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &Game{
		game:     game,
		renderer: r,
		sound:    opts.Sound,
		logger:   logger,
		recorder: storage.NewRoundRecorder(opts.Store, game.ID(), logger),
		frame:    core.NewInputFrame(),
		state:    game.State(),
	}, nil
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	w, h := g.worldSize()
	var quit bool
	g.touches, quit = pollInput(&g.frame, w, h, g.touches)
	if quit {
		g.logger.Info("window closed", "game", g.game.ID(), "score", g.state.Score)
		return ebiten.Termination
	}

	res := g.game.Step(g.frame)
	g.frame.Clear()

	g.state = res.State
	g.sound.Handle(res.Events)
	g.recorder.Observe(res)
	return nil
}

// Draw paints the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target(screen)
	flappy.Draw(g.game.Sim().Snapshot(), g.renderer)
}

// Layout fixes the logical screen to the world size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.worldSize()
	return int(w), int(h)
}

// State returns the state after the last tick.
func (g *Game) State() core.GameState {
	return g.state
}

func (g *Game) worldSize() (float64, float64) {
	world := g.game.Sim().Config().World
	return world.Width, world.Height
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, opts Options) error {
	g, err := NewGame(game, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := g.worldSize()
	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	g.logger.Info("window opened", "game", game.ID(), "tps", tps, "width", int(w*scale), "height", int(h*scale))
	return ebiten.RunGame(g)
}
