package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. An empty string keeps the
// config's own preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// TimeScaleForPreset returns the factor a preset applies to the configured
// time scale. Slower time gives the player more moves per fireball step.
func TimeScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.6
	case DifficultyHard:
		return 1.4
	default:
		return 1.0
	}
}

// PlayerStepForPreset returns the factor a preset applies to the player step.
func PlayerStepForPreset(preset DifficultyPreset) float64 {
	if preset == DifficultyHard {
		return 0.68
	}
	return 1.0
}

// ApplyPreset scales the loaded runner settings by a difficulty preset. An
// empty preset falls back to the config's own. The "normal" preset keeps the
// file values as they are. Call it once per loaded config.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset
	cfg.Runner.TimeScale *= TimeScaleForPreset(preset)
	cfg.Runner.PlayerStep *= PlayerStepForPreset(preset)
}
