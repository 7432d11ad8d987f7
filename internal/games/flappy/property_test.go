package flappy

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Every spawned pair keeps the fixed gap, and both segments respect the
// minimum height whenever the world is tall enough for it.
func TestProperty_PipePairGeometry(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("pairs keep the gap and minimum segments", prop.ForAll(
		func(seed int64, height int, variantIdx int) bool {
			cfg := config.DefaultFlappyConfig(config.Variants()[variantIdx])
			cfg.World.Height = float64(height)
			pm := NewPipeManager(seed, cfg.World, cfg.Pipes)

			groundY := cfg.World.GroundY()
			roomy := groundY-cfg.Pipes.Gap-2*cfg.Pipes.MinSegment >= 0

			for i := 0; i < 20; i++ {
				pm.Clear()
				pm.Tick(1)
				pipes := pm.Pipes()
				if len(pipes) != 2 {
					return false
				}
				top, bottom := pipes[0], pipes[1]

				if top.X != bottom.X || top.Pair != bottom.Pair {
					return false
				}
				if top.Edge+cfg.Pipes.Gap != bottom.Edge {
					return false
				}
				if roomy {
					if top.Edge < cfg.Pipes.MinSegment || groundY-bottom.Edge < cfg.Pipes.MinSegment {
						return false
					}
				} else if top.Edge < 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(81, 1500),
		gen.IntRange(0, len(config.Variants())-1),
	))

	properties.TestingRun(t)
}

// Outside of a flap, one PLAYING tick adds gravity to the velocity and the
// new velocity to the position.
func TestProperty_GravityIntegration(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("v' = v + g and y' = y + v'", prop.ForAll(
		func(y, v float64) bool {
			cfg := classic()
			s := NewSim(cfg, 1)
			s.mode = ModePlaying
			s.pipes.timer = 1 << 20
			s.bird.Y = y
			s.bird.Velocity = v

			s.Step(core.NewInputFrame())

			wantV := v + cfg.Physics.Gravity
			return s.bird.Velocity == wantV && s.bird.Y == y+wantV
		},
		gen.Float64Range(100, 400),
		gen.Float64Range(-8, 8),
	))

	properties.TestingRun(t)
}

// However the bird flaps, each pair is worth exactly one point.
func TestProperty_OnePointPerPair(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("score never exceeds pairs passed", prop.ForAll(
		func(seed int64, flapEvery int) bool {
			s := NewSim(classic(), seed)
			s.Flap()
			for i := 0; i < 3000 && s.Mode() == ModePlaying; i++ {
				in := core.NewInputFrame()
				if i%flapEvery == 0 {
					in.Set(core.ActionFlap)
				}
				s.Step(in)
			}

			passed := map[int]bool{}
			for _, p := range s.Pipes() {
				if p.Scored {
					passed[p.Pair] = true
				}
			}
			// Pairs pruned from the left were all scored before leaving.
			pruned := 0
			if live := s.Pipes(); len(live) > 0 {
				pruned = live[0].Pair
			}
			return s.Score() == pruned+len(passed) || (len(s.Pipes()) == 0 && s.Score() == 0)
		},
		gen.Int64(),
		gen.IntRange(10, 30),
	))

	properties.TestingRun(t)
}
