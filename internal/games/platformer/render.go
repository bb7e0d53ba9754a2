package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	sim "github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Camera is the top-left grid cell of the visible area.
type Camera struct {
	X, Y int
}

// cameraFor centers the view on the player, clamped to the level edges.
func cameraFor(l *sim.Level, viewW, viewH int) Camera {
	p := l.Player()
	if p == nil {
		return Camera{}
	}
	center := p.Pos().Plus(p.Size().Times(0.5))

	x := int(math.Floor(center.X())) - viewW/2
	y := int(math.Floor(center.Y())) - viewH/2
	return Camera{
		X: core.Clamp(x, 0, max(0, l.Width()-viewW)),
		Y: core.Clamp(y, 0, max(0, l.Height()-viewH)),
	}
}

// viewSize returns how many grid cells fit on screen.
func (g *Game) viewSize(dst *core.Screen) (int, int) {
	return dst.Width() / g.cfg.Display.CellWidth, max(0, dst.Height()-hudRows)
}

// Render draws the level, its actors and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	viewW, viewH := g.viewSize(dst)
	cam := cameraFor(g.world, viewW, viewH)

	grid := g.world.Grid()
	for vy := 0; vy < viewH; vy++ {
		gy := cam.Y + vy
		if gy >= len(grid) {
			break
		}
		row := grid[gy]
		for vx := 0; vx < viewW; vx++ {
			gx := cam.X + vx
			key := "empty"
			if gx < len(row) && row[gx] != sim.ObstacleNone {
				key = string(row[gx])
			}
			g.drawCell(dst, cam, gx, gy, key)
		}
	}

	for _, a := range g.world.Actors() {
		g.drawActor(dst, cam, viewW, viewH, a)
	}

	dst.DrawTextColor(0, 0, g.hudText(), core.ColorWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		title := "LEVEL COMPLETE"
		if g.world.Status() == sim.StatusLost {
			title = "YOU LOST"
		}
		g.drawCenteredMessage(dst, title, "Press R to restart  |  Q to quit")
	}
}

// drawCell paints one grid cell in the glyph and color configured for key.
func (g *Game) drawCell(dst *core.Screen, cam Camera, gx, gy int, key string) {
	glyph := g.cfg.Display.Glyph(key)
	color := g.cfg.Display.Color(key)
	sx := (gx - cam.X) * g.cfg.Display.CellWidth
	sy := gy - cam.Y + hudRows
	for i := 0; i < g.cfg.Display.CellWidth; i++ {
		dst.SetCell(sx+i, sy, core.Cell{Rune: glyph, Color: color})
	}
}

// drawActor paints every visible cell the actor's box overlaps. Cells outside
// the view are skipped so they never reach the HUD row.
func (g *Game) drawActor(dst *core.Screen, cam Camera, viewW, viewH int, a sim.Actor) {
	key := actorKey(a)
	b := a.Bounds()
	left := max(int(math.Floor(b.Left)), cam.X)
	right := min(int(math.Ceil(b.Right)), cam.X+viewW)
	top := max(int(math.Floor(b.Top)), cam.Y)
	bottom := min(int(math.Ceil(b.Bottom)), cam.Y+viewH)

	for gy := top; gy < bottom; gy++ {
		for gx := left; gx < right; gx++ {
			g.drawCell(dst, cam, gx, gy, key)
		}
	}
}

// actorKey names the display entry for an actor.
func actorKey(a sim.Actor) string {
	if f, ok := a.(*sim.Fireball); ok && f.Policy() == sim.Respawn {
		return "rain"
	}
	return string(a.Kind())
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	r := core.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawText(r.X+(boxW-len(title))/2, r.Y+1, title)
	dst.DrawText(r.X+(boxW-len(subtitle))/2, r.Y+3, subtitle)
}
