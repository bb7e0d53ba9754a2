package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels in the library",
	Long:  `Shows every level stored in the level library with its size and contents.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger := newLogger("platformer")
	store := openLibrary(logger)
	defer store.Close()

	records, err := store.ListLevels()
	if err != nil {
		fail("%v", err)
	}
	if len(records) == 0 {
		fmt.Println("No levels in the library.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, r := range records {
		maxIDLen = max(maxIDLen, len(r.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %-9s  %s\n", maxIDLen, "ID", "Size", "Coins", "Fireballs", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %-9s  %s\n", maxIDLen, "--", "----", "-----", "---------", "----")
	for _, r := range records {
		s := platformer.FromRecord(r).Stats()
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Printf("  %-*s  %-7s  %-5d  %-9d  %s\n", maxIDLen, r.ID, size, s.Coins, s.Fireballs, r.Name)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level plan and its legend",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func runShow(_ *cobra.Command, args []string) {
	logger := newLogger("platformer")
	store := openLibrary(logger)
	defer store.Close()

	lib := platformer.NewLibrary(store, loadConfig("", ""))
	lvl, err := lib.Level(args[0])
	if err != nil {
		fail("%v", err)
	}

	s := lvl.Stats()
	fmt.Printf("%s (%s)  %dx%d\n\n", lvl.Name, lvl.ID, s.Width, s.Height)

	border := "+" + strings.Repeat("-", s.Width) + "+"
	fmt.Println(border)
	for _, row := range lvl.Plan {
		fmt.Printf("|%-*s|\n", s.Width, row)
	}
	fmt.Println(border)

	fmt.Println()
	fmt.Println("Legend:")
	fmt.Println("  x  wall")
	fmt.Println("  !  lava")
	for _, e := range core.StandardDictionary().Entries() {
		fmt.Printf("  %c  %s\n", e.Symbol, e.Name)
	}
	fmt.Printf("\nCoins: %d  Fireballs: %d  Player: %v\n", s.Coins, s.Fireballs, s.HasPlayer)
}
