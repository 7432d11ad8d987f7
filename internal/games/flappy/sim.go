package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sim is one flappy session: the bird, the pipes, the score and the mode.
// It has no rendering or timing dependency; the platform calls Step once
// per tick and draws Snapshot.
type Sim struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	pipes      *PipeManager

	bird      Bird
	mode      Mode
	score     int
	highScore int
	store     core.HighScoreStore

	groundOffset float64
	startTicks   int // ticks spent in START, drives the float animation
	playTicks    int // simulated PLAYING ticks, drives time-based difficulty

	events []core.Event
}

// NewSim creates a session in START for the given configuration.
func NewSim(cfg config.FlappyConfig, seed int64) *Sim {
	s := &Sim{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		pipes:      NewPipeManager(seed, cfg.World, cfg.Pipes),
	}
	s.toStart()
	return s
}

// Reset reseeds the session and returns it to START. The high score and
// the attached store are kept.
func (s *Sim) Reset(seed int64) {
	s.pipes.Reset(seed)
	s.toStart()
}

// AttachHighScores reads the persisted high score once and remembers the
// store for later saves. A failed read counts as no high score.
func (s *Sim) AttachHighScores(store core.HighScoreStore) {
	s.store = store
	if store == nil {
		return
	}
	hs, err := store.LoadHighScore()
	if err != nil || hs < 0 {
		hs = 0
	}
	s.highScore = hs
}

// Step applies one tick of input and then advances the world.
// Input handling and advancing are separate phases: whatever the input did,
// the world only moves if the mode afterwards is START or PLAYING.
func (s *Sim) Step(in core.InputFrame) []core.Event {
	s.events = s.events[:0]
	s.handleInput(in)
	s.advance()
	if len(s.events) == 0 {
		return nil
	}
	return append([]core.Event(nil), s.events...)
}

func (s *Sim) handleInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionConfirm) {
		if s.mode == ModePlaying || s.mode == ModePaused {
			s.TogglePause()
		} else {
			s.Flap()
		}
	}
	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	if in.Has(core.ActionFlap) {
		s.Flap()
	}
	for _, p := range in.Presses {
		s.Press(p.X, p.Y)
	}
}

// Flap is the primary input. It starts a round from START, replaces the
// bird's velocity while PLAYING, resumes without an impulse while PAUSED
// and restarts after GAMEOVER.
func (s *Sim) Flap() {
	switch s.mode {
	case ModeStart:
		s.mode = ModePlaying
		s.bird.flap(s.cfg.Physics.FlapImpulse)
		s.emit(core.EventStart)
		s.emit(core.EventFlap)
	case ModePlaying:
		s.bird.flap(s.cfg.Physics.FlapImpulse)
		s.emit(core.EventFlap)
	case ModePaused:
		s.mode = ModePlaying
		s.emit(core.EventResume)
	case ModeGameOver:
		s.Restart()
	}
}

// TogglePause switches between PLAYING and PAUSED. Other modes ignore it.
func (s *Sim) TogglePause() {
	switch s.mode {
	case ModePlaying:
		s.mode = ModePaused
		s.emit(core.EventPause)
	case ModePaused:
		s.mode = ModePlaying
		s.emit(core.EventResume)
	}
}

// Restart returns a finished session to START. Ignored outside GAMEOVER.
func (s *Sim) Restart() {
	if s.mode != ModeGameOver {
		return
	}
	s.pipes.Clear()
	s.toStart()
	s.emit(core.EventRestart)
}

// Press handles a pointer press in normalized coordinates. A press on the
// pause control toggles pause while a round is running; any other press
// acts as a flap.
func (s *Sim) Press(x, y float64) {
	wx, wy := x*s.cfg.World.Width, y*s.cfg.World.Height
	if (s.mode == ModePlaying || s.mode == ModePaused) && s.pauseButton().Contains(wx, wy) {
		s.TogglePause()
		return
	}
	s.Flap()
}

// advance moves the world by one tick for the current mode.
func (s *Sim) advance() {
	switch s.mode {
	case ModeStart:
		s.startTicks++
		t := float64(s.startTicks) * 1000 / float64(s.cfg.Physics.NominalFPS)
		s.bird.hover(s.cfg.Bird, s.cfg.World.Height, t)
	case ModePlaying:
		s.playTicks++

		s.bird.integrate(s.cfg.Physics)
		s.bird.tilt(s.cfg.Bird)

		s.pipes.Tick(s.SpawnInterval())
		s.pipes.Move(s.PipeSpeed())
		if n := s.pipes.Score(s.bird.X); n > 0 {
			s.score += n
			s.emit(core.EventScore)
		}
		s.pipes.Prune()

		s.groundOffset += s.cfg.Ground.ScrollSpeed
		for s.groundOffset >= s.cfg.Ground.PatternWidth {
			s.groundOffset -= s.cfg.Ground.PatternWidth
		}

		s.Collide()
	}
}

// Collide checks the bird against the ceiling, the ground and the pipes and
// reports whether the round ended. Outside PLAYING it does nothing, so
// calling it again after a crash has no side effects.
func (s *Sim) Collide() bool {
	if s.mode != ModePlaying {
		return false
	}

	b := &s.bird
	if b.Y-b.Height/2 <= 0 {
		b.Y = b.Height / 2
		if s.cfg.Physics.CeilingPolicy == config.CeilingBounce {
			b.Velocity = s.cfg.Physics.CeilingBounce
		} else {
			b.Velocity = 0
		}
	}

	groundY := s.cfg.World.GroundY()
	if b.Y+b.Height/2 >= groundY {
		b.Y = groundY - b.Height/2
		b.Velocity = 0
		s.crash()
		return true
	}

	if s.pipes.CheckCollision(b.Hitbox(s.cfg.Bird.HitboxInset)) {
		s.crash()
		return true
	}
	return false
}

func (s *Sim) crash() {
	s.mode = ModeGameOver
	s.emit(core.EventCrash)

	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	s.emit(core.EventNewHighScore)
	if s.store != nil {
		// The store reports its own failures; a lost save is not fatal.
		_ = s.store.SaveHighScore(s.score)
	}
}

func (s *Sim) toStart() {
	s.mode = ModeStart
	s.bird = newBird(s.cfg)
	s.score = 0
	s.groundOffset = 0
	s.startTicks = 0
	s.playTicks = 0
}

func (s *Sim) emit(e core.Event) {
	s.events = append(s.events, e)
}

func (s *Sim) pauseButton() core.Rect {
	pb := s.cfg.HUD.PauseButton
	return core.NewRect(pb.X, pb.Y, pb.Width, pb.Height)
}

// PipeSpeed returns the current pipe speed in pixels per tick.
func (s *Sim) PipeSpeed() float64 {
	return s.difficulty.Speed(s.cfg.Physics.PipeSpeed, s.score, s.playTicks)
}

// SpawnInterval returns the current spawn interval in ticks.
func (s *Sim) SpawnInterval() int {
	ms := s.difficulty.SpawnIntervalMS(s.cfg.Pipes.SpawnIntervalMS, s.score, s.playTicks)
	return config.SpawnIntervalTicks(ms, s.cfg.Physics.NominalFPS)
}

// Mode returns the current mode.
func (s *Sim) Mode() Mode { return s.mode }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// HighScore returns the best score known to the session.
func (s *Sim) HighScore() int { return s.highScore }

// Bird returns a copy of the bird.
func (s *Sim) Bird() Bird { return s.bird }

// Config returns the configuration the session runs with.
func (s *Sim) Config() config.FlappyConfig { return s.cfg }

// Pipes returns a copy of the live pipes, oldest first.
func (s *Sim) Pipes() []Pipe {
	return append([]Pipe(nil), s.pipes.Pipes()...)
}

// GroundOffset returns the ground scroll offset in [0, PatternWidth).
func (s *Sim) GroundOffset() float64 { return s.groundOffset }
