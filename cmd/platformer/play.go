package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/logging"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlan       string
	flagWatch      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Play a level from the library, or from a level pack file with --plan.
Without a level ID a picker is shown.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart (after the level ends)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower fireballs
  normal - Default speed
  hard   - Faster fireballs and shorter steps

Examples:
  platformer play
  platformer play 02-lava-pit --difficulty hard
  platformer play --plan ./pack.yaml my-level --watch
  platformer play 01-warmup --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPlan, "plan", "", "Play a level pack file or directory instead of the library")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when the --plan file changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, args []string) {
	if flagWatch && flagPlan == "" {
		fail("--watch needs --plan")
	}

	cfg := loadConfig(flagConfig, flagDifficulty)
	logger, closer := playLogger()
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	var lvl levels.Level
	if flagPlan != "" {
		lvl = levelFromPlan(flagPlan, args)
	} else {
		var ok bool
		lvl, runtime, ok = levelFromLibrary(args, runtime, cfg)
		if !ok {
			return
		}
	}

	game := platformer.New(lvl, cfg)
	opts := tui.Options{
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
	}

	if flagWatch {
		watcher := watchPlan(flagPlan, game, logger, &opts)
		defer watcher.Close()
	}

	if err := tui.Run(game, runtime, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playLogger keeps logs off the terminal the game draws on.
func playLogger() (*log.Logger, io.Closer) {
	if flagLogFile == "" {
		return logging.Discard(), io.NopCloser(nil)
	}
	logger, closer, err := logging.OpenFile(flagLogFile, "platformer", flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	return logger, closer
}

// levelFromPlan picks a level from a pack file: the one named in args, or
// the first one.
func levelFromPlan(path string, args []string) levels.Level {
	lvls, err := levels.Load(path)
	if err != nil {
		fail("%v", err)
	}
	if len(lvls) == 0 {
		fail("no levels found in %s", path)
	}
	if len(args) == 0 {
		return lvls[0]
	}
	lvl, ok := findLevel(lvls, args[0])
	if !ok {
		fail("level %q not found in %s", args[0], path)
	}
	return lvl
}

func findLevel(lvls []levels.Level, id string) (levels.Level, bool) {
	for _, lvl := range lvls {
		if lvl.ID == id {
			return lvl, true
		}
	}
	return levels.Level{}, false
}

// levelFromLibrary loads the level named in args, or lets the player pick
// one. Returns false when the picker was closed.
func levelFromLibrary(args []string, runtime core.RuntimeConfig, cfg config.PlatformerConfig) (levels.Level, core.RuntimeConfig, bool) {
	store := openLibrary(logging.Discard())
	defer store.Close()
	lib := platformer.NewLibrary(store, cfg)

	id := ""
	if len(args) > 0 {
		id = args[0]
	} else {
		items, err := lib.Items()
		if err != nil {
			fail("%v", err)
		}
		result, err := tui.RunMenu(items, runtime)
		if err != nil {
			fail("%v", err)
		}
		if result.Quit {
			return levels.Level{}, runtime, false
		}
		id = result.LevelID
		runtime = result.Config
	}

	lvl, err := lib.Level(id)
	if err != nil {
		fail("%v\nRun 'platformer levels' to see available levels.", err)
	}
	return lvl, runtime, true
}

// watchPlan reloads the played level whenever the plan file changes.
func watchPlan(path string, game *platformer.Game, logger *log.Logger, opts *tui.Options) *levels.Watcher {
	info, err := os.Stat(path)
	if err != nil {
		fail("%v", err)
	}
	watcher, err := levels.Watch(path, info.IsDir())
	if err != nil {
		fail("%v", err)
	}

	go func() {
		for err := range watcher.Errors {
			logger.Warn("watcher error", "error", err)
		}
	}()

	opts.Changes = watcher.Events
	opts.Reload = func(string) error {
		lvls, err := levels.Load(path)
		if err != nil {
			return err
		}
		lvl, ok := findLevel(lvls, game.ID())
		if !ok {
			return fmt.Errorf("level %q no longer in %s", game.ID(), path)
		}
		game.Load(lvl)
		return nil
	}
	return watcher
}
