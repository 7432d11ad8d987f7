package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestPipes(seed int64) *PipeManager {
	cfg := classic()
	return NewPipeManager(seed, cfg.World, cfg.Pipes)
}

func TestPipeManagerSpawnCadence(t *testing.T) {
	pm := newTestPipes(1)

	spawnedAt := []int{}
	for tick := 1; tick <= 301; tick++ {
		if pm.Tick(150) {
			spawnedAt = append(spawnedAt, tick)
		}
	}

	expected := []int{1, 151, 301}
	if len(spawnedAt) != len(expected) {
		t.Fatalf("spawned at %v, expected %v", spawnedAt, expected)
	}
	for i := range expected {
		if spawnedAt[i] != expected[i] {
			t.Errorf("spawn %d at tick %d, expected %d", i, spawnedAt[i], expected[i])
		}
	}
	if got := len(pm.Pipes()); got != 6 {
		t.Errorf("pipes = %d, expected 6", got)
	}
}

func TestPipeManagerPairLayout(t *testing.T) {
	cfg := classic()
	pm := newTestPipes(42)
	pm.Tick(150)

	pipes := pm.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("expected one pair, got %d pipes", len(pipes))
	}
	top, bottom := pipes[0], pipes[1]

	if top.Bottom || !bottom.Bottom {
		t.Errorf("pair should be appended top then bottom: %+v", pipes)
	}
	if top.X != bottom.X || top.X != cfg.World.Width+cfg.Pipes.SpawnOffset {
		t.Errorf("pair x = %v/%v, expected %v", top.X, bottom.X, cfg.World.Width)
	}
	if top.Pair != bottom.Pair {
		t.Errorf("halves should share a pair index: %d vs %d", top.Pair, bottom.Pair)
	}
	if bottom.Edge-top.Edge != cfg.Pipes.Gap {
		t.Errorf("gap = %v, expected %v", bottom.Edge-top.Edge, cfg.Pipes.Gap)
	}

	groundY := cfg.World.GroundY()
	topRect := top.Rect(cfg.Pipes.Width, groundY)
	bottomRect := bottom.Rect(cfg.Pipes.Width, groundY)
	if topRect.Y != 0 || topRect.H != top.Edge {
		t.Errorf("top rect = %+v", topRect)
	}
	if bottomRect.Y != bottom.Edge || bottomRect.Bottom() != groundY {
		t.Errorf("bottom rect = %+v, expected to reach ground %v", bottomRect, groundY)
	}
}

func TestPipeManagerDegenerateWorld(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		expected float64
	}{
		{"barely too short", 80 + 175 + 99, (274 - 175) / 2.0},
		{"shorter than gap", 80 + 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := classic()
			cfg.World.Height = tc.height
			pm := NewPipeManager(5, cfg.World, cfg.Pipes)

			if got := pm.GapTop(); got != tc.expected {
				t.Errorf("GapTop = %v, expected fallback %v", got, tc.expected)
			}
		})
	}
}

func TestPipeManagerScoresEachPairOnce(t *testing.T) {
	cfg := classic()
	birdX := cfg.World.Width / 3
	maxSpeed := cfg.Physics.PipeSpeed * (1 + cfg.Difficulty.Scaling.SpeedMultiplier)

	orders := map[string]func(x float64) []Pipe{
		"top first": func(x float64) []Pipe {
			return []Pipe{{X: x, Edge: 100}, {X: x, Edge: 275, Bottom: true}}
		},
		"bottom first": func(x float64) []Pipe {
			return []Pipe{{X: x, Edge: 275, Bottom: true}, {X: x, Edge: 100}}
		},
	}

	for name, build := range orders {
		for _, speed := range []float64{cfg.Physics.PipeSpeed, maxSpeed, 0.5, 90} {
			pm := newTestPipes(1)
			pm.pipes = build(cfg.World.Width)

			total := 0
			for i := 0; i < 2000 && len(pm.Pipes()) > 0; i++ {
				pm.Move(speed)
				total += pm.Score(birdX)
				pm.Prune()
			}

			if total != 1 {
				t.Errorf("%s at speed %v: scored %d, expected 1", name, speed, total)
			}
		}
	}
}

func TestPipeManagerPrune(t *testing.T) {
	cfg := classic()
	pm := newTestPipes(1)
	w := cfg.Pipes.Width
	m := cfg.Pipes.DespawnMargin

	pm.pipes = []Pipe{
		{X: -m - w - 1, Pair: 0},        // gone
		{X: -m - w, Pair: 1},            // right edge exactly at the margin, kept
		{X: 100, Pair: 2, Bottom: true}, // on screen
	}
	pm.Prune()

	if got := len(pm.Pipes()); got != 2 {
		t.Fatalf("pipes after prune = %d, expected 2", got)
	}
	if pm.Pipes()[0].Pair != 1 {
		t.Errorf("prune should keep order, first pair = %d", pm.Pipes()[0].Pair)
	}
}

func TestPipeManagerResetIsReproducible(t *testing.T) {
	pm := newTestPipes(99)
	var first []float64
	for i := 0; i < 5; i++ {
		first = append(first, pm.GapTop())
	}

	pm.Reset(99)
	for i := 0; i < 5; i++ {
		if got := pm.GapTop(); got != first[i] {
			t.Errorf("draw %d after reset = %v, expected %v", i, got, first[i])
		}
	}
}

func TestPipeManagerCheckCollision(t *testing.T) {
	cfg := classic()
	pm := newTestPipes(1)
	pm.pipes = []Pipe{
		{X: 100, Edge: 200},
		{X: 100, Edge: 375, Bottom: true},
	}

	tests := []struct {
		name string
		rect core.Rect
		hit  bool
	}{
		{"inside gap", core.NewRect(110, 250, 30, 30), false},
		{"touching top edge", core.NewRect(110, 200, 30, 30), false},
		{"into top pipe", core.NewRect(110, 190, 30, 30), true},
		{"into bottom pipe", core.NewRect(110, 360, 30, 30), true},
		{"left of pipe", core.NewRect(40, 100, 60, 30), false},
		{"below the ground line", core.NewRect(110, cfg.World.GroundY()+1, 30, 30), false},
	}

	for _, tc := range tests {
		if got := pm.CheckCollision(tc.rect); got != tc.hit {
			t.Errorf("%s: CheckCollision = %v, expected %v", tc.name, got, tc.hit)
		}
	}
}

func TestSpawnIntervalRespectsConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig(config.VariantArcade)
	pm := NewPipeManager(1, cfg.World, cfg.Pipes)
	pm.Tick(120)
	if got := pm.Pipes()[0].X; got != cfg.World.Width+cfg.Pipes.SpawnOffset {
		t.Errorf("arcade spawn x = %v, expected %v", got, cfg.World.Width+cfg.Pipes.SpawnOffset)
	}
}
