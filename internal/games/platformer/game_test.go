package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	sim "github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

func newTestGame(plan ...string) *Game {
	g := New(levels.Level{ID: "test", Name: "Test", Plan: plan}, config.DefaultPlatformerConfig())
	g.Reset(core.DefaultConfig())
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// runUntilOver steps with no input until the game ends or limit is hit.
func runUntilOver(g *Game, limit int) core.GameState {
	state := g.State()
	for i := 0; i < limit && !state.GameOver; i++ {
		state = g.Step(core.NewInputFrame()).State
	}
	return state
}

func TestGameIdentity(t *testing.T) {
	g := New(levels.Level{ID: "lvl", Plan: []string{"@"}}, config.DefaultPlatformerConfig())
	if g.ID() != "lvl" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "lvl")
	}
	if g.Title() != "lvl" {
		t.Errorf("Title() = %q, expected ID when name is empty", g.Title())
	}
}

func TestFrameStep(t *testing.T) {
	tests := []struct {
		name      string
		tickRate  int
		timeScale float64
		expected  float64
	}{
		{"capped", 10, 1.0, 0.05},
		{"fast ticks", 100, 1.0, 0.01},
		{"scaled", 100, 2.0, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultPlatformerConfig()
			cfg.Runner.TimeScale = tt.timeScale
			g := New(levels.Level{Plan: []string{"@"}}, cfg)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tt.tickRate})

			if got := g.FrameStep(); got != tt.expected {
				t.Errorf("FrameStep() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCollectingLastCoinWins(t *testing.T) {
	g := newTestGame(
		"  ",
		"@o",
		"xx",
	)

	state := g.Step(press(core.ActionRight)).State
	if g.World().Status() != sim.StatusWon {
		t.Fatalf("Status() = %q, expected won", g.World().Status())
	}
	if state.GameOver {
		t.Error("game should hold the final frame before ending")
	}
	if state.Score != 1 {
		t.Errorf("Score = %d, expected 1", state.Score)
	}

	state = runUntilOver(g, 200)
	if !state.GameOver {
		t.Fatal("game never ended")
	}
	if state.Outcome != core.OutcomeWon {
		t.Errorf("Outcome = %q, expected won", state.Outcome)
	}
}

func TestSteppingIntoLavaLoses(t *testing.T) {
	g := newTestGame(
		"   ",
		"@! ",
		"xxx",
	)

	g.Step(press(core.ActionRight))
	if g.World().Status() != sim.StatusLost {
		t.Fatalf("Status() = %q, expected lost", g.World().Status())
	}
	if got := g.World().Player().Pos(); !got.Equal(sim.V(0.5, 0.5)) {
		t.Errorf("player at %v, expected it to move into the lava", got)
	}

	state := runUntilOver(g, 200)
	if state.Outcome != core.OutcomeLost {
		t.Errorf("Outcome = %q, expected lost", state.Outcome)
	}
}

func TestWallBlocksMove(t *testing.T) {
	g := newTestGame(
		"   ",
		"@x ",
		"xxx",
	)
	start := g.World().Player().Pos()

	for _, a := range []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft} {
		g.Step(press(a))
		if got := g.World().Player().Pos(); !got.Equal(start) {
			t.Errorf("after %v player at %v, expected %v", a, got, start)
		}
	}

	g.Step(press(core.ActionUp))
	g.Step(press(core.ActionUp))
	if got := g.World().Player().Pos(); !got.Equal(sim.V(0, 0)) {
		t.Errorf("player at %v, expected the top edge to stop it at (0, 0)", got)
	}
	if g.World().Status() != sim.StatusNone {
		t.Errorf("Status() = %q, expected none", g.World().Status())
	}
}

func TestPlayerSlidesAlongWall(t *testing.T) {
	g := newTestGame(
		"    ",
		"    ",
		"@x  ",
		"xxxx",
	)

	g.Step(press(core.ActionRight, core.ActionUp))
	if got := g.World().Player().Pos(); !got.Equal(sim.V(0, 1)) {
		t.Errorf("player at %v, expected (0, 1)", got)
	}
}

func TestFireballHitLoses(t *testing.T) {
	g := newTestGame(
		"    ",
		"@  =",
		"xxxx",
	)

	state := runUntilOver(g, 1000)
	if !state.GameOver {
		t.Fatal("game never ended")
	}
	if state.Outcome != core.OutcomeLost {
		t.Errorf("Outcome = %q, expected lost", state.Outcome)
	}
}

func TestNoInputAfterOutcome(t *testing.T) {
	g := newTestGame(
		"    ",
		"@!  ",
		"xxxx",
	)
	g.Step(press(core.ActionRight))
	pos := g.World().Player().Pos()

	g.Step(press(core.ActionRight))
	if got := g.World().Player().Pos(); !got.Equal(pos) {
		t.Errorf("player moved to %v after losing", got)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame("    ", "@  =", "xxxx")

	state := g.Step(press(core.ActionPause)).State
	if !state.Paused {
		t.Fatal("expected paused state")
	}
	fb := g.World().Actors()[1].Pos()
	for range 10 {
		g.Step(press(core.ActionRight))
	}
	if g.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v while paused, expected 0", g.Elapsed())
	}
	if got := g.World().Actors()[1].Pos(); !got.Equal(fb) {
		t.Errorf("fireball moved while paused: %v -> %v", fb, got)
	}

	if state = g.Step(press(core.ActionPause)).State; state.Paused {
		t.Error("expected pause to toggle off")
	}
}

func TestResetRestoresLevel(t *testing.T) {
	g := newTestGame("  ", "@o", "xx")
	g.Step(press(core.ActionRight))
	runUntilOver(g, 200)

	g.Reset(core.DefaultConfig())
	state := g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("State() after Reset = %+v, expected a fresh game", state)
	}
	if g.CoinsLeft() != 1 {
		t.Errorf("CoinsLeft() = %d, expected 1", g.CoinsLeft())
	}
	if g.World().Status() != sim.StatusNone {
		t.Errorf("Status() = %q after Reset", g.World().Status())
	}
}

func TestLoadReplacesLevel(t *testing.T) {
	g := newTestGame("  ", "@o", "xx")
	g.Load(levels.Level{ID: "test", Name: "Bigger", Plan: []string{"   ", "@oo", "xxx"}})

	if g.CoinsLeft() != 2 {
		t.Errorf("CoinsLeft() = %d, expected 2", g.CoinsLeft())
	}
	if g.Title() != "Bigger" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Bigger")
	}
}

func TestLevelWithoutPlayer(t *testing.T) {
	g := newTestGame("  o", "xxx")

	for range 5 {
		g.Step(press(core.ActionRight))
	}
	if g.State().GameOver {
		t.Error("a level without a player should never end")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame("  ", "@o", "xx")
	screen := core.NewScreen(20, 6)
	g.Render(screen)

	display := config.DefaultPlatformerConfig().Display
	tests := []struct {
		name string
		x, y int
		key  string
	}{
		{"player top", 0, 1, "player"},
		{"player bottom", 1, 2, "player"},
		{"coin", 2, 2, "coin"},
		{"wall", 0, 3, "wall"},
		{"empty", 2, 1, "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := screen.GetCell(tt.x, tt.y)
			if cell.Rune != display.Glyph(tt.key) {
				t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, cell.Rune, display.Glyph(tt.key))
			}
			if cell.Color != display.Color(tt.key) {
				t.Errorf("color at (%d, %d) = %v, expected %v", tt.x, tt.y, cell.Color, display.Color(tt.key))
			}
		})
	}

	if hud := screen.String(); !strings.Contains(strings.SplitN(hud, "\n", 2)[0], "Test") {
		t.Errorf("HUD row %q should contain the level name", strings.SplitN(hud, "\n", 2)[0])
	}
}

func TestRenderGameOverMessage(t *testing.T) {
	g := newTestGame("  ", "@o", "xx")
	g.Step(press(core.ActionRight))
	runUntilOver(g, 200)

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "LEVEL COMPLETE") {
		t.Error("expected win message on screen")
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	plan := []string{
		"                              ",
		"                           @  ",
		"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	}
	lvl := sim.NewParser(sim.StandardDictionary()).Parse(plan)

	tests := []struct {
		name         string
		viewW, viewH int
		expected     Camera
	}{
		{"clamped right", 10, 3, Camera{X: 20, Y: 0}},
		{"wider than level", 40, 3, Camera{X: 0, Y: 0}},
		{"centered", 6, 3, Camera{X: 24, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cameraFor(lvl, tt.viewW, tt.viewH); got != tt.expected {
				t.Errorf("cameraFor() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestActorKey(t *testing.T) {
	tests := []struct {
		actor    sim.Actor
		expected string
	}{
		{sim.NewPlayer(sim.V(0, 0)), "player"},
		{sim.NewCoin(sim.V(0, 0)), "coin"},
		{sim.NewHorizontalFireball(sim.V(0, 0)), "fireball"},
		{sim.NewFireRain(sim.V(0, 0)), "rain"},
	}
	for _, tt := range tests {
		if got := actorKey(tt.actor); got != tt.expected {
			t.Errorf("actorKey(%s) = %q, expected %q", tt.actor.Kind(), got, tt.expected)
		}
	}
}

func TestRenderClipsActorsToView(t *testing.T) {
	// 40 columns, camera scrolled down to row 7 with a coin on row 6.
	wide := func(c rune, col int) string {
		row := []rune(strings.Repeat(" ", 40))
		if col >= 0 {
			row[col] = c
		}
		return string(row)
	}
	plan := []string{
		wide(' ', -1), wide(' ', -1), wide(' ', -1),
		wide(' ', -1), wide(' ', -1), wide(' ', -1),
		wide('o', 39),
		wide(' ', -1),
		wide('@', 0),
		strings.Repeat("x", 40),
	}
	g := newTestGame(plan...)
	screen := core.NewScreen(80, 4)
	g.Render(screen)

	viewW, viewH := g.viewSize(screen)
	if cam := cameraFor(g.World(), viewW, viewH); cam.Y != 7 {
		t.Fatalf("camera Y = %d, expected 7", cam.Y)
	}

	hud := []rune(g.hudText())
	for x := len(hud); x < screen.Width(); x++ {
		if r := screen.Get(x, 0); r != ' ' {
			t.Errorf("HUD row has %q at column %d, expected blank", r, x)
		}
	}
}
