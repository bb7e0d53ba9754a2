package levels

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

//go:embed builtin/levels.yaml
var builtinYAML []byte

// Builtin returns the levels shipped with the game.
func Builtin() ([]Level, error) {
	parsed, err := formats.ParseYAML(builtinYAML, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: built-in pack: %w", err)
	}

	levels := make([]Level, len(parsed))
	for i, p := range parsed {
		levels[i] = Level{ID: p.ID, Name: p.Name, Plan: p.Plan}
	}
	return levels, nil
}
