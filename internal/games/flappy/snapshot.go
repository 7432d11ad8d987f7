package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// BirdPose is everything a renderer needs to draw the bird.
type BirdPose struct {
	X, Y          float64 // center
	Width, Height float64
	Rotation      float64 // degrees, positive is nose down
	Velocity      float64
}

// PipeView is a pipe half resolved to the rectangle it occupies.
type PipeView struct {
	Rect   core.Rect
	Bottom bool
	Pair   int
	Scored bool
}

// World is the fixed geometry of the play area.
type World struct {
	Width, Height float64
	GroundY       float64 // y of the ground line
	PatternWidth  float64 // ground texture repeat width
}

// Snapshot is a value copy of everything visible in one tick.
type Snapshot struct {
	Mode         Mode
	Bird         BirdPose
	Pipes        []PipeView // oldest first
	Score        int
	HighScore    int
	GroundOffset float64
	World        World
	PauseButton  core.Rect
}

// Snapshot captures the current session for rendering. The result shares
// nothing with the simulation.
func (s *Sim) Snapshot() Snapshot {
	groundY := s.cfg.World.GroundY()
	live := s.pipes.Pipes()
	pipes := make([]PipeView, len(live))
	for i, p := range live {
		pipes[i] = PipeView{
			Rect:   p.Rect(s.cfg.Pipes.Width, groundY),
			Bottom: p.Bottom,
			Pair:   p.Pair,
			Scored: p.Scored,
		}
	}

	return Snapshot{
		Mode: s.mode,
		Bird: BirdPose{
			X:        s.bird.X,
			Y:        s.bird.Y,
			Width:    s.bird.Width,
			Height:   s.bird.Height,
			Rotation: s.bird.Rotation,
			Velocity: s.bird.Velocity,
		},
		Pipes:        pipes,
		Score:        s.score,
		HighScore:    s.highScore,
		GroundOffset: s.groundOffset,
		World: World{
			Width:        s.cfg.World.Width,
			Height:       s.cfg.World.Height,
			GroundY:      groundY,
			PatternWidth: s.cfg.Ground.PatternWidth,
		},
		PauseButton: s.pauseButton(),
	}
}
