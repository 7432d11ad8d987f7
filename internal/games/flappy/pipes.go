package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is one half of a pipe pair. Both halves share X and Pair.
type Pipe struct {
	X      float64 // Left edge, the only field that changes
	Edge   float64 // Y of the gap edge this half bounds
	Bottom bool    // Below the gap (the scoring member) or above it
	Scored bool    // Whether the bird has passed this pair
	Pair   int     // Spawn index shared by both halves
}

// Rect returns the rectangle the pipe occupies: from the top of the world
// down to the gap edge, or from the gap edge down to the ground line.
func (p Pipe) Rect(width, groundY float64) core.Rect {
	if p.Bottom {
		return core.NewRect(p.X, p.Edge, width, math.Max(0, groundY-p.Edge))
	}
	return core.NewRect(p.X, 0, width, math.Max(0, p.Edge))
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes    []Pipe
	rng      *rand.Rand
	cfg      config.FlappyPipes
	world    config.FlappyWorld
	nextPair int
	timer    int // ticks until the next spawn; 0 spawns on the next tick
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, world config.FlappyWorld, cfg config.FlappyPipes) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
		world: world,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))
	pm.Clear()
}

// Clear removes all pipes and rearms the spawn timer without touching the
// RNG, so consecutive rounds draw fresh gaps from one seeded stream.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
	pm.nextPair = 0
	pm.timer = 0
}

// Tick counts one PLAYING tick toward the next spawn and spawns a pair when
// due. interval is the current spawn interval in ticks.
func (pm *PipeManager) Tick(interval int) bool {
	spawned := false
	if pm.timer <= 0 {
		pm.spawnPair()
		pm.timer = interval
		spawned = true
	}
	pm.timer--
	return spawned
}

// GapTop returns the height of the top segment for the next pair.
// The top segment and the segment above the ground are both at least
// MinSegment tall when the world allows it; otherwise the gap is centered
// in the space above the ground.
func (pm *PipeManager) GapTop() float64 {
	groundY := pm.world.GroundY()
	span := math.Floor(groundY - pm.cfg.Gap - 2*pm.cfg.MinSegment)
	if span < 0 {
		return math.Max(0, (groundY-pm.cfg.Gap)/2)
	}
	return pm.cfg.MinSegment + float64(pm.rng.Intn(int(span)+1))
}

// spawnPair appends a top then bottom pipe at the right of the world.
func (pm *PipeManager) spawnPair() {
	top := pm.GapTop()
	x := pm.world.Width + pm.cfg.SpawnOffset

	pm.pipes = append(pm.pipes,
		Pipe{X: x, Edge: top, Pair: pm.nextPair},
		Pipe{X: x, Edge: top + pm.cfg.Gap, Bottom: true, Pair: pm.nextPair},
	)
	pm.nextPair++
}

// Move shifts every pipe left by speed.
func (pm *PipeManager) Move(speed float64) {
	for i := range pm.pipes {
		pm.pipes[i].X -= speed
	}
}

// Score credits every pair whose bottom half has fully passed birdX.
// Each pair is credited once; both halves are marked together.
func (pm *PipeManager) Score(birdX float64) int {
	passed := 0
	for i := range pm.pipes {
		p := pm.pipes[i]
		if !p.Bottom || p.Scored || p.X+pm.cfg.Width >= birdX {
			continue
		}
		pm.markScored(p.Pair)
		passed++
	}
	return passed
}

func (pm *PipeManager) markScored(pair int) {
	for i := range pm.pipes {
		if pm.pipes[i].Pair == pair {
			pm.pipes[i].Scored = true
		}
	}
}

// Prune drops pipes that are fully past the left margin.
func (pm *PipeManager) Prune() {
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+pm.cfg.Width >= -pm.cfg.DespawnMargin {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid
}

// CheckCollision tests if the given rectangle overlaps any pipe.
func (pm *PipeManager) CheckCollision(r core.Rect) bool {
	groundY := pm.world.GroundY()
	for _, p := range pm.pipes {
		if r.Intersects(p.Rect(pm.cfg.Width, groundY)) {
			return true
		}
	}
	return false
}

// Pipes returns the live pipes, oldest first. The slice is owned by the
// manager and only valid until the next mutation.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
