package core

// Player is the character steered by the runner.
type Player struct {
	Body
}

// NewPlayer creates a player standing on the grid cell at anchor. The body is
// taller than one cell, so it is lifted by half a cell to keep its feet on
// the anchor row.
func NewPlayer(anchor Vector) *Player {
	return &Player{Body: Body{
		pos:   anchor.Plus(V(0, -0.5)),
		size:  V(0.8, 1.5),
		speed: V(0, 0),
	}}
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// MoveTo places the player at pos. The player never moves on its own.
func (p *Player) MoveTo(pos Vector) {
	p.pos = pos
}
