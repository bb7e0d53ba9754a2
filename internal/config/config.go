// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PlatformerConfig contains all configuration for the platformer runner.
type PlatformerConfig struct {
	Runner     RunnerConfig     `yaml:"runner"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerConfig defines how wall-clock ticks turn into simulated time and how
// far the player moves per key press.
type RunnerConfig struct {
	PlayerStep   float64 `yaml:"player_step"`    // Cells moved per key press
	MaxFrameStep float64 `yaml:"max_frame_step"` // Cap on simulated time per tick
	TimeScale    float64 `yaml:"time_scale"`     // Simulated seconds per wall second
}

// DisplayConfig maps level elements to glyphs and colors.
// Keys: empty, wall, lava, player, coin, fireball, rain.
type DisplayConfig struct {
	CellWidth int               `yaml:"cell_width"` // Terminal columns per grid cell
	Glyphs    map[string]string `yaml:"glyphs"`
	Colors    map[string]string `yaml:"colors"`
}

// DifficultyConfig selects a difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Glyph returns the rune configured for key, falling back to the default
// display config.
func (d DisplayConfig) Glyph(key string) rune {
	if s, ok := d.Glyphs[key]; ok && s != "" {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	if s, ok := defaultGlyphs[key]; ok {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return '?'
}

// Color returns the color configured for key, falling back to the default
// display config.
func (d DisplayConfig) Color(key string) core.Color {
	if name, ok := d.Colors[key]; ok {
		if c, ok := core.ParseColor(name); ok {
			return c
		}
	}
	if c, ok := core.ParseColor(defaultColors[key]); ok {
		return c
	}
	return core.ColorDefault
}

// Normalize replaces missing or out-of-range values with defaults.
func (c *PlatformerConfig) Normalize() {
	def := DefaultPlatformerConfig()

	if c.Runner.PlayerStep <= 0 {
		c.Runner.PlayerStep = def.Runner.PlayerStep
	}
	if c.Runner.MaxFrameStep <= 0 {
		c.Runner.MaxFrameStep = def.Runner.MaxFrameStep
	}
	if c.Runner.TimeScale <= 0 {
		c.Runner.TimeScale = def.Runner.TimeScale
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 3 {
		c.Display.CellWidth = def.Display.CellWidth
	}
}
