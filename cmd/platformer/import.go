package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var importCmd = &cobra.Command{
	Use:   "import <file|dir>",
	Short: "Import level packs into the library",
	Long: `Reads YAML or JSON level packs and stores their levels in the library.
A directory is scanned recursively. Levels with an existing ID are replaced;
identical levels are left untouched.

YAML packs:
  levels:
    - id: my-level
      name: My Level
      plan:
        - "      "
        - " @  o "
        - "xxxxxx"

JSON packs are an array of plans, each an array of rows. Their levels get
IDs derived from the file name (pack-01, pack-02, ...).`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runImport(_ *cobra.Command, args []string) {
	logger := newLogger("platformer")
	store := openLibrary(logger)
	defer store.Close()

	lvls, err := levels.Load(args[0])
	if err != nil {
		fail("%v", err)
	}
	if len(lvls) == 0 {
		fail("no levels found in %s", args[0])
	}

	imported, unchanged := 0, 0
	for _, lvl := range lvls {
		changed, err := store.SaveLevel(lvl.ID, lvl.Name, lvl.Plan)
		if err != nil {
			fail("%v", err)
		}
		if !changed {
			unchanged++
			logger.Debug("level unchanged", "id", lvl.ID)
			continue
		}
		imported++
		if s := lvl.Stats(); !s.HasPlayer || s.Coins == 0 {
			logger.Warn("level cannot be won", "id", lvl.ID, "player", s.HasPlayer, "coins", s.Coins)
		}
		logger.Info("imported level", "id", lvl.ID, "file", lvl.FilePath)
	}

	fmt.Printf("Imported %d level(s), %d unchanged.\n", imported, unchanged)
}

var removeCmd = &cobra.Command{
	Use:   "remove <level>",
	Short: "Remove a level from the library",
	Args:  cobra.ExactArgs(1),
	Run:   runRemove,
}

func runRemove(_ *cobra.Command, args []string) {
	logger := newLogger("platformer")
	store := openLibrary(logger)
	defer store.Close()

	if err := store.DeleteLevel(args[0]); err != nil {
		fail("%v", err)
	}
	logger.Info("removed level", "id", args[0])
}
