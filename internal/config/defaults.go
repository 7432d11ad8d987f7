package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultFlappyConfig returns the hardcoded configuration for a variant.
// Unknown variants get the classic profile.
func DefaultFlappyConfig(variant Variant) FlappyConfig {
	if variant == VariantArcade {
		return defaultArcadeConfig()
	}
	return defaultClassicConfig()
}

func defaultClassicConfig() FlappyConfig {
	return FlappyConfig{
		Variant: VariantClassic,
		World: FlappyWorld{
			Width:        800,
			Height:       600,
			GroundHeight: 80,
		},
		Physics: FlappyPhysics{
			NominalFPS:    60,
			Gravity:       0.25,
			FlapImpulse:   -4.5,
			MaxFallSpeed:  0,
			PipeSpeed:     5,
			CeilingPolicy: CeilingClamp,
		},
		Pipes: FlappyPipes{
			Width:           60,
			Gap:             175,
			MinSegment:      50,
			SpawnIntervalMS: 2500,
			SpawnOffset:     0,
			DespawnMargin:   50,
		},
		Bird: FlappyBird{
			XFraction:      1.0 / 3.0,
			Width:          40,
			Height:         30,
			HitboxInset:    5,
			FloatAmplitude: 10,
			FloatPeriodMS:  300,
			RiseAngle:      25,
			FallStep:       2,
			MaxAngle:       70,
		},
		Ground: FlappyGround{
			ScrollSpeed:  2,
			PatternWidth: 30,
		},
		HUD: FlappyHUD{
			PauseButton: ButtonRect{X: 10, Y: 10, Width: 40, Height: 40},
		},
		Difficulty: defaultDifficulty(),
	}
}

func defaultArcadeConfig() FlappyConfig {
	cfg := defaultClassicConfig()
	cfg.Variant = VariantArcade
	cfg.Physics.Gravity = 800.0 / 3600.0
	cfg.Physics.FlapImpulse = -5
	cfg.Physics.PipeSpeed = 200.0 / 60.0
	cfg.Physics.CeilingPolicy = CeilingBounce
	cfg.Physics.CeilingBounce = 100.0 / 60.0
	cfg.Pipes.MinSegment = 80
	cfg.Pipes.SpawnIntervalMS = 2000
	cfg.Pipes.SpawnOffset = 70
	cfg.Pipes.DespawnMargin = 70
	cfg.Bird.HitboxInset = 0
	cfg.Bird.FloatAmplitude = 7.5
	cfg.Bird.FloatPeriodMS = 159.15
	cfg.Bird.RiseAngle = 20
	return cfg
}

func defaultDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 50,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier:     0.6,
			IntervalReductionMS: 800,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant Variant) []byte {
	switch variant {
	case VariantClassic:
		return defaultClassicYAML
	case VariantArcade:
		return defaultArcadeYAML
	default:
		return nil
	}
}
