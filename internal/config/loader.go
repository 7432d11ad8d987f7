package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the configuration for a variant.
// Search order: customPath -> ~/.flappy/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hardcoded default.
//
// Files are decoded over the hardcoded defaults, so a file only needs the
// keys it changes. A custom path that cannot be read, parsed or validated is
// an error; the other locations are skipped silently when unusable.
func LoadFlappy(customPath string, variant Variant) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, variant)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return FlappyConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := string(variant) + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, variant); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", filename), variant); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(variant); data != nil {
		if cfg, err := decode(data, variant); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}
	return DefaultFlappyConfig(variant), nil // Fallback to hardcoded if embed fails
}

func tryFile(path string, variant Variant) (FlappyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, false
	}
	cfg, err := decode(data, variant)
	if err != nil || Validate(cfg) != nil {
		return FlappyConfig{}, false
	}
	return cfg, true
}

func decode(data []byte, variant Variant) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if cfg.Variant == "" {
		cfg.Variant = variant
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// Validate reports every value the simulation cannot run with.
func Validate(cfg FlappyConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.World.Width > 0, "world.width must be positive, got %v", cfg.World.Width)
	check(cfg.World.Height > 0, "world.height must be positive, got %v", cfg.World.Height)
	check(cfg.World.GroundHeight >= 0 && cfg.World.GroundHeight < cfg.World.Height,
		"world.ground_height must be in [0, height), got %v", cfg.World.GroundHeight)
	check(cfg.Physics.NominalFPS > 0, "physics.nominal_fps must be positive, got %d", cfg.Physics.NominalFPS)
	check(cfg.Physics.MaxFallSpeed >= 0, "physics.max_fall_speed must not be negative, got %v", cfg.Physics.MaxFallSpeed)
	check(cfg.Physics.PipeSpeed >= 0, "physics.pipe_speed must not be negative, got %v", cfg.Physics.PipeSpeed)
	check(cfg.Physics.CeilingPolicy == CeilingClamp || cfg.Physics.CeilingPolicy == CeilingBounce,
		"physics.ceiling_policy must be %q or %q, got %q", CeilingClamp, CeilingBounce, cfg.Physics.CeilingPolicy)
	check(cfg.Pipes.Width > 0, "pipes.width must be positive, got %v", cfg.Pipes.Width)
	check(cfg.Pipes.Gap > 0, "pipes.gap must be positive, got %v", cfg.Pipes.Gap)
	check(cfg.Pipes.MinSegment >= 0, "pipes.min_segment must not be negative, got %v", cfg.Pipes.MinSegment)
	check(cfg.Pipes.SpawnIntervalMS > 0, "pipes.spawn_interval_ms must be positive, got %d", cfg.Pipes.SpawnIntervalMS)
	check(cfg.Bird.Width > 0 && cfg.Bird.Height > 0, "bird size must be positive, got %vx%v", cfg.Bird.Width, cfg.Bird.Height)
	check(cfg.Bird.HitboxInset >= 0, "bird.hitbox_inset must not be negative, got %v", cfg.Bird.HitboxInset)
	check(cfg.Bird.XFraction > 0 && cfg.Bird.XFraction < 1, "bird.x_fraction must be in (0, 1), got %v", cfg.Bird.XFraction)
	check(cfg.Bird.FloatPeriodMS > 0, "bird.float_period_ms must be positive, got %v", cfg.Bird.FloatPeriodMS)
	check(cfg.Ground.PatternWidth > 0, "ground.pattern_width must be positive, got %v", cfg.Ground.PatternWidth)

	switch cfg.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressNone, "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q",
			cfg.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
