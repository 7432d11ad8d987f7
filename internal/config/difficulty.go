package config

// Progression types.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// MinSpawnIntervalMS is the shortest spawn interval difficulty can produce.
const MinSpawnIntervalMS = 800

// DifficultyManager turns the running score or the elapsed PLAYING ticks
// into a level in [0, 1] and scales pipe speed and spawn rate by it.
// Gap size is never scaled.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// SetInitialLevel moves the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.start = unit(level)
}

// SetEnabled switches progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	t := d.cfg.Progression.Type
	return t == ProgressScore || t == ProgressTime
}

// Level returns the difficulty for a score and a PLAYING tick count. It
// rises linearly from the initial level to 1 at Progression.MaxAt.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	at := score
	if d.cfg.Progression.Type == ProgressTime {
		at = ticks
	}
	span := max(d.cfg.Progression.MaxAt, 1)

	progress := unit(float64(at) / float64(span))
	return d.start + progress*(1-d.start)
}

// Speed scales baseSpeed up to baseSpeed*(1+SpeedMultiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnIntervalMS shortens baseMS by up to IntervalReductionMS, never below
// MinSpawnIntervalMS. A base already at or under the floor is returned as is.
func (d *DifficultyManager) SpawnIntervalMS(baseMS int, score int, ticks int) int {
	if baseMS <= MinSpawnIntervalMS {
		return baseMS
	}
	cut := int(d.Level(score, ticks) * float64(d.cfg.Scaling.IntervalReductionMS))
	return max(baseMS-cut, MinSpawnIntervalMS)
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
