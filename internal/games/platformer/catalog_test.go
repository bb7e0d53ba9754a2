package platformer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	sim "github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func openLibrary(t *testing.T) (*Library, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "levels.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewLibrary(store, config.DefaultPlatformerConfig()), store
}

func TestLibrarySeededWithBuiltins(t *testing.T) {
	lib, store := openLibrary(t)

	builtin, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	n, err := store.SeedBuiltins(Seeds(builtin))
	if err != nil {
		t.Fatalf("SeedBuiltins() failed: %v", err)
	}
	if n != len(builtin) {
		t.Errorf("SeedBuiltins() = %d, expected %d", n, len(builtin))
	}

	items, err := lib.Items()
	if err != nil {
		t.Fatalf("Items() failed: %v", err)
	}
	if len(items) != len(builtin) {
		t.Fatalf("Items() returned %d items, expected %d", len(items), len(builtin))
	}
	for _, item := range items {
		if item.Detail == "" {
			t.Errorf("item %q has no detail", item.ID)
		}
	}
}

func TestLibraryNewGame(t *testing.T) {
	lib, store := openLibrary(t)
	if _, err := store.SaveLevel("mini", "Mini", []string{"  ", "@o", "xx"}); err != nil {
		t.Fatalf("SaveLevel() failed: %v", err)
	}

	game, err := lib.NewGame("mini")
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	if game.ID() != "mini" || game.Title() != "Mini" {
		t.Errorf("game = %s/%s, expected mini/Mini", game.ID(), game.Title())
	}

	if _, err := lib.NewGame("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("NewGame(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestFromRecordStats(t *testing.T) {
	rec := storage.LevelRecord{ID: "r", Name: "R", Plan: []string{"@ o", "xxx"}}

	s := FromRecord(rec).Stats()
	expected := levels.Stats{Width: 3, Height: 2, Coins: 1, HasPlayer: true}
	if s != expected {
		t.Errorf("FromRecord().Stats() = %+v, expected %+v", s, expected)
	}
	if FromRecord(rec).Build(sim.NewParser(sim.StandardDictionary())).Player() == nil {
		t.Error("FromRecord().Build() has no player")
	}
}
