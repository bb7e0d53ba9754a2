// platformer is a terminal platformer: collect every coin in a level while
// avoiding lava and fireballs.
//
// Usage:
//
//	platformer levels              - List levels in the library
//	platformer import <file|dir>   - Import YAML/JSON level packs
//	platformer remove <level>      - Remove a level from the library
//	platformer show <level>        - Print a level plan and its legend
//	platformer play [level]        - Play a level (picker when omitted)
//	platformer serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set level library path (default: ~/.platformer/levels.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - collect the coins, dodge the lava",
	Long: `Platformer is a terminal game: steer the player through a level of
walls and lava, collect every coin and avoid the fireballs.

Levels live in a local library seeded with the built-in levels. Import
your own from YAML or JSON level packs.

Examples:
  platformer levels
  platformer play 01-warmup
  platformer play --plan ./my-levels.yaml --watch
  platformer import ./packs
  platformer serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/levels.db", "Path to level library database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
