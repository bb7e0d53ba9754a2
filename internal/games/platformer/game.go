// Package platformer runs one level of the platformer: it turns key presses
// into player moves, advances the simulation by a bounded time slice per
// tick and draws the visible part of the level.
package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	sim "github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Game implements the platformer runner for a single level.
type Game struct {
	def      levels.Level
	parser   *sim.Parser
	world    *sim.Level
	cfg      config.PlatformerConfig
	runtime  core.RuntimeConfig
	coins    int     // Coins in the plan
	elapsed  float64 // Simulated time since the level started
	gameOver bool
	paused   bool
}

// New creates a runner for lvl with the level already built. Reset rebuilds
// it with the runtime config of the platform.
func New(lvl levels.Level, cfg config.PlatformerConfig) *Game {
	cfg.Normalize()
	g := &Game{
		def:    lvl,
		parser: sim.NewParser(sim.StandardDictionary()),
		cfg:    cfg,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the level ID.
func (g *Game) ID() string {
	return g.def.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	if g.def.Name != "" {
		return g.def.Name
	}
	return g.def.ID
}

// Definition returns the level being played.
func (g *Game) Definition() levels.Level {
	return g.def
}

// World returns the running simulation.
func (g *Game) World() *sim.Level {
	return g.world
}

// Reset rebuilds the level from its plan.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.world = g.def.Build(g.parser)
	g.coins = countKind(g.world, sim.KindCoin)
	g.elapsed = 0
	g.gameOver = false
	g.paused = false
}

// Load swaps in a new definition of the level and restarts it.
func (g *Game) Load(lvl levels.Level) {
	g.def = lvl
	g.Reset(g.runtime)
}

// FrameStep returns the simulated time covered by one tick.
func (g *Game) FrameStep() float64 {
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	dt := g.cfg.Runner.TimeScale / float64(tickRate)
	return math.Min(dt, g.cfg.Runner.MaxFrameStep)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.FrameStep()
	g.elapsed += dt

	if g.world.Status() == sim.StatusNone {
		g.movePlayer(in)
	}
	g.world.Step(dt)
	g.checkActorTouch()
	g.world.Tick(dt)

	if g.world.IsFinished() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// movePlayer applies the held direction, one axis at a time so the player
// can slide along a wall.
func (g *Game) movePlayer(in core.InputFrame) {
	player := g.world.Player()
	if player == nil {
		return
	}

	step := g.cfg.Runner.PlayerStep
	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx -= step
	}
	if in.Has(core.ActionRight) {
		dx += step
	}
	if in.Has(core.ActionUp) {
		dy -= step
	}
	if in.Has(core.ActionDown) {
		dy += step
	}

	if dx != 0 {
		g.tryMove(player, sim.V(dx, 0))
	}
	if dy != 0 {
		g.tryMove(player, sim.V(0, dy))
	}
}

// tryMove moves the player by delta unless a wall is in the way. Stepping
// into lava moves the player and loses the level.
func (g *Game) tryMove(player *sim.Player, delta sim.Vector) {
	target := player.Pos().Plus(delta)
	switch obstacle := g.world.ObstacleAt(target, player.Size()); obstacle {
	case sim.ObstacleWall:
		return
	case sim.ObstacleNone:
		player.MoveTo(target)
	default:
		player.MoveTo(target)
		g.world.PlayerTouched(sim.TouchFromObstacle(obstacle), nil)
	}
}

// checkActorTouch reports the actor overlapping the player, if any.
func (g *Game) checkActorTouch() {
	player := g.world.Player()
	if player == nil {
		return
	}
	other, err := g.world.ActorAt(player)
	if err != nil || other == nil {
		return
	}
	g.world.PlayerTouched(sim.TouchFromKind(other.Kind()), other)
}

// CoinsLeft returns how many coins are still in the level.
func (g *Game) CoinsLeft() int {
	return countKind(g.world, sim.KindCoin)
}

func countKind(l *sim.Level, kind sim.Kind) int {
	n := 0
	for _, a := range l.Actors() {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Score:    g.coins - g.CoinsLeft(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.gameOver {
		switch g.world.Status() {
		case sim.StatusWon:
			state.Outcome = core.OutcomeWon
		case sim.StatusLost:
			state.Outcome = core.OutcomeLost
		}
	}
	return state
}

// Elapsed returns the simulated time since the level started.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// hudText returns the status line drawn above the playfield.
func (g *Game) hudText() string {
	status := "playing"
	switch {
	case g.paused:
		status = "paused"
	case g.world.Status() != sim.StatusNone:
		status = string(g.world.Status())
	}
	return fmt.Sprintf(" %s  coins %d/%d  time %.1f  [%s] ",
		g.Title(), g.coins-g.CoinsLeft(), g.coins, g.elapsed, status)
}
