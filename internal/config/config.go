// Package config provides YAML-based game configuration loading and
// difficulty management for the flappy variants.
package config

// Variant names a flappy rule profile.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantArcade  Variant = "arcade"
)

// Variants lists every known variant in display order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantArcade}
}

// ParseVariant converts a user-supplied name into a Variant.
func ParseVariant(name string) (Variant, bool) {
	switch Variant(name) {
	case VariantClassic, "":
		return VariantClassic, true
	case VariantArcade:
		return VariantArcade, true
	default:
		return "", false
	}
}

// Ceiling policies.
const (
	CeilingClamp  = "clamp"  // stop at the top edge, velocity zeroed
	CeilingBounce = "bounce" // stop at the top edge, pushed back down
)

// FlappyConfig contains all configuration for one flappy variant.
// Distances are in world pixels, speeds in pixels per nominal frame.
type FlappyConfig struct {
	Variant    Variant          `yaml:"variant"`
	World      FlappyWorld      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Bird       FlappyBird       `yaml:"bird"`
	Ground     FlappyGround     `yaml:"ground"`
	HUD        FlappyHUD        `yaml:"hud"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyWorld defines the play area.
type FlappyWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y coordinate of the ground line.
func (w FlappyWorld) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	NominalFPS    int     `yaml:"nominal_fps"`
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // 0 = unbounded
	PipeSpeed     float64 `yaml:"pipe_speed"`
	CeilingPolicy string  `yaml:"ceiling_policy"`
	CeilingBounce float64 `yaml:"ceiling_bounce"`
}

// FlappyPipes defines pipe geometry and spawn timing.
type FlappyPipes struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`
	MinSegment      float64 `yaml:"min_segment"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	SpawnOffset     float64 `yaml:"spawn_offset"`
	DespawnMargin   float64 `yaml:"despawn_margin"`
}

// FlappyBird defines the bird body, idle float and tilt.
type FlappyBird struct {
	XFraction      float64 `yaml:"x_fraction"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	HitboxInset    float64 `yaml:"hitbox_inset"`
	FloatAmplitude float64 `yaml:"float_amplitude"`
	FloatPeriodMS  float64 `yaml:"float_period_ms"`
	RiseAngle      float64 `yaml:"rise_angle"`
	FallStep       float64 `yaml:"fall_step"`
	MaxAngle       float64 `yaml:"max_angle"`
}

// FlappyGround defines the scrolling ground pattern.
type FlappyGround struct {
	ScrollSpeed  float64 `yaml:"scroll_speed"`
	PatternWidth float64 `yaml:"pattern_width"`
}

// FlappyHUD places the on-screen pause control.
type FlappyHUD struct {
	PauseButton ButtonRect `yaml:"pause_button"`
}

// ButtonRect is a rectangle in world pixels.
type ButtonRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnIntervalTicks converts a spawn interval in milliseconds into
// simulation ticks at the nominal frame rate, never less than one.
func SpawnIntervalTicks(ms int, nominalFPS int) int {
	ticks := (ms*nominalFPS + 500) / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Multiplier added to speed at max difficulty
	IntervalReductionMS int     `yaml:"interval_reduction_ms"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means fixed.
func ParseDifficultyPreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
