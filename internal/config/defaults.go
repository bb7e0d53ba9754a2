package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

var defaultGlyphs = map[string]string{
	"empty":    " ",
	"wall":     "█",
	"lava":     "▒",
	"player":   "@",
	"coin":     "o",
	"fireball": "*",
	"rain":     "v",
}

var defaultColors = map[string]string{
	"empty":    "default",
	"wall":     "gray",
	"lava":     "bright_red",
	"player":   "cyan",
	"coin":     "bright_yellow",
	"fireball": "orange",
	"rain":     "red",
}

// DefaultPlatformerConfig returns the hardcoded default configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Runner: RunnerConfig{
			PlayerStep:   0.5,
			MaxFrameStep: 0.05,
			TimeScale:    1.0,
		},
		Display: DisplayConfig{
			CellWidth: 2,
			Glyphs:    copyMap(defaultGlyphs),
			Colors:    copyMap(defaultColors),
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
