package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/logging"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns the stderr logger for non-interactive commands.
func newLogger(prefix string) *log.Logger {
	logger, err := logging.New(os.Stderr, prefix, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	return logger
}

// openLibrary opens the level library and seeds it with the built-in levels
// when it is empty.
func openLibrary(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}

	builtin, err := levels.Builtin()
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	n, err := store.SeedBuiltins(platformer.Seeds(builtin))
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	if n > 0 {
		logger.Info("seeded level library", "levels", n, "db", flagDBPath)
	}
	return store
}

// loadConfig reads the platformer config and applies a difficulty preset.
func loadConfig(path, difficulty string) config.PlatformerConfig {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg
}

// screenshotDir returns where ctrl+s screenshots go.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "screenshots")
}
