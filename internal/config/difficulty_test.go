package config

import "testing"

func scoreProgression(enabled bool) DifficultyConfig {
	return DifficultyConfig{
		Enabled:     enabled,
		Progression: ProgressionConfig{Type: "score", MaxAt: 50},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.6, IntervalReductionMS: 800},
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(false))

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	for _, score := range []int{0, 10, 100} {
		if got := d.Speed(5, score, 0); got != 5 {
			t.Errorf("Speed at score %d = %v, expected 5", score, got)
		}
		if got := d.SpawnIntervalMS(2500, score, 0); got != 2500 {
			t.Errorf("SpawnIntervalMS at score %d = %d, expected 2500", score, got)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(true))

	tests := []struct {
		score      int
		level      float64
		speed      float64
		intervalMS int
	}{
		{0, 0, 5, 2500},
		{25, 0.5, 6.5, 2100},
		{50, 1, 8, 1700},
		{500, 1, 8, 1700}, // clamped at max
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := d.Speed(5, tc.score, 0); !approx(got, tc.speed) {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.speed)
		}
		if got := d.SpawnIntervalMS(2500, tc.score, 0); got != tc.intervalMS {
			t.Errorf("SpawnIntervalMS(%d) = %d, expected %d", tc.score, got, tc.intervalMS)
		}
	}
}

func TestDifficultySpawnIntervalFloor(t *testing.T) {
	cfg := scoreProgression(true)
	cfg.Scaling.IntervalReductionMS = 5000
	d := NewDifficultyManager(cfg)

	if got := d.SpawnIntervalMS(2000, 50, 0); got != MinSpawnIntervalMS {
		t.Errorf("SpawnIntervalMS = %d, expected floor %d", got, MinSpawnIntervalMS)
	}
	// A base already under the floor is not raised.
	if got := d.SpawnIntervalMS(500, 50, 0); got != 500 {
		t.Errorf("SpawnIntervalMS(500) = %d, expected 500", got)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	d := NewDifficultyManager(scoreProgression(true))
	d.SetInitialLevel(0.5)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := d.Level(50, 0); got != 1 {
		t.Errorf("Level(50) = %v, expected 1", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})

	if got := d.Level(0, 300); got != 0.5 {
		t.Errorf("Level at 300 ticks = %v, expected 0.5", got)
	}

	d.SetEnabled(false)
	if got := d.Level(0, 300); got != 0 {
		t.Errorf("disabled Level = %v, expected 0", got)
	}
}
