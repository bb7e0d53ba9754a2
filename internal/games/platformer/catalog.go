package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Library serves the stored levels to the level picker.
type Library struct {
	store *storage.Store
	cfg   config.PlatformerConfig
}

// NewLibrary creates a catalog over store. Every game it creates uses cfg.
func NewLibrary(store *storage.Store, cfg config.PlatformerConfig) *Library {
	return &Library{store: store, cfg: cfg}
}

// Items lists the stored levels with a short summary each.
func (l *Library) Items() ([]tui.LevelItem, error) {
	records, err := l.store.ListLevels()
	if err != nil {
		return nil, err
	}

	items := make([]tui.LevelItem, len(records))
	for i, rec := range records {
		lvl := FromRecord(rec)
		s := lvl.Stats()
		items[i] = tui.LevelItem{
			ID:     rec.ID,
			Title:  rec.Name,
			Detail: tui.LevelDetail(s.Width, s.Height, s.Coins),
		}
	}
	return items, nil
}

// NewGame creates a runner for a stored level.
func (l *Library) NewGame(id string) (tui.Game, error) {
	lvl, err := l.Level(id)
	if err != nil {
		return nil, err
	}
	return New(lvl, l.cfg), nil
}

// Level loads a stored level.
func (l *Library) Level(id string) (levels.Level, error) {
	rec, err := l.store.Level(id)
	if err != nil {
		return levels.Level{}, fmt.Errorf("platformer: %w", err)
	}
	return FromRecord(*rec), nil
}

// FromRecord converts a stored level.
func FromRecord(rec storage.LevelRecord) levels.Level {
	return levels.Level{ID: rec.ID, Name: rec.Name, Plan: rec.Plan}
}

// Seeds converts levels for storage.SeedBuiltins.
func Seeds(lvls []levels.Level) []storage.Seed {
	seeds := make([]storage.Seed, len(lvls))
	for i, lvl := range lvls {
		seeds[i] = storage.Seed{ID: lvl.ID, Name: lvl.Name, Plan: lvl.Plan}
	}
	return seeds
}

var _ tui.Catalog = (*Library)(nil)
