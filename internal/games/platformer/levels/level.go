// Package levels loads level plans from pack files and turns them into
// playable levels. This package depends on core but core does not depend on
// levels.
package levels

import (
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Level is a named level plan.
type Level struct {
	ID       string
	Name     string
	Plan     []string
	FilePath string // Empty for built-in and stored levels
}

// Build parses the plan into a fresh playable level.
func (l Level) Build(p *core.Parser) *core.Level {
	return p.Parse(l.Plan)
}

// Stats summarizes a level plan.
type Stats struct {
	Width     int
	Height    int
	Coins     int
	Fireballs int
	HasPlayer bool
}

// Stats parses the plan with the standard dictionary and counts its contents.
func (l Level) Stats() Stats {
	lvl := core.NewParser(core.StandardDictionary()).Parse(l.Plan)
	s := Stats{
		Width:     lvl.Width(),
		Height:    lvl.Height(),
		HasPlayer: lvl.Player() != nil,
	}
	for _, a := range lvl.Actors() {
		switch a.Kind() {
		case core.KindCoin:
			s.Coins++
		case core.KindFireball:
			s.Fireballs++
		}
	}
	return s
}
