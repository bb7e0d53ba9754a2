package core

import (
	"fmt"
	"math"
)

// Obstacle tags a grid cell or the result of a collision query.
// ObstacleNone means the space is clear.
type Obstacle string

const (
	ObstacleNone Obstacle = ""
	ObstacleWall Obstacle = "wall"
	ObstacleLava Obstacle = "lava"
)

// Status is the outcome of a level. StatusNone means it is still in play.
type Status string

const (
	StatusNone Status = ""
	StatusWon  Status = "won"
	StatusLost Status = "lost"
)

// Touch names what the player ran into during a frame.
type Touch string

const (
	TouchWall     Touch = "wall"
	TouchLava     Touch = "lava"
	TouchFireball Touch = "fireball"
	TouchCoin     Touch = "coin"
)

// TouchFromObstacle converts a grid obstacle to a touch.
func TouchFromObstacle(o Obstacle) Touch { return Touch(o) }

// TouchFromKind converts an actor kind to a touch.
func TouchFromKind(k Kind) Touch { return Touch(k) }

// initialFinishDelay is how long the final frame is held after the level
// ends, in simulated time units.
const initialFinishDelay = 1

// Level owns the obstacle grid and the live actors of one level.
type Level struct {
	grid        [][]Obstacle
	actors      []Actor
	player      int // index into actors, -1 when there is no player
	width       int
	height      int
	status      Status
	finishDelay float64
}

// NewLevel creates a level from a grid indexed [row][col] and its actors.
// Rows may be ragged; missing cells read as clear.
func NewLevel(grid [][]Obstacle, actors []Actor) *Level {
	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}

	l := &Level{
		grid:        grid,
		actors:      append([]Actor(nil), actors...),
		width:       width,
		height:      len(grid),
		finishDelay: initialFinishDelay,
	}
	l.resolvePlayer()
	return l
}

// resolvePlayer points the player link at the first player actor.
func (l *Level) resolvePlayer() {
	l.player = -1
	for i, a := range l.actors {
		if a.Kind() == KindPlayer {
			l.player = i
			return
		}
	}
}

// Grid returns the obstacle grid. Callers must not modify it.
func (l *Level) Grid() [][]Obstacle { return l.grid }

// Width returns the length of the longest row.
func (l *Level) Width() int { return l.width }

// Height returns the number of rows.
func (l *Level) Height() int { return l.height }

// Status returns the level outcome so far.
func (l *Level) Status() Status { return l.status }

// FinishDelay returns the remaining hold time after the level ended.
func (l *Level) FinishDelay() float64 { return l.finishDelay }

// Actors returns a snapshot of the live actors in insertion order.
func (l *Level) Actors() []Actor {
	return append([]Actor(nil), l.actors...)
}

// Player returns the level's player, or nil if the plan had none.
func (l *Level) Player() *Player {
	if l.player < 0 {
		return nil
	}
	p, _ := l.actors[l.player].(*Player)
	return p
}

// IsFinished reports whether the level has ended and its finish delay ran out.
func (l *Level) IsFinished() bool {
	return l.status != StatusNone && l.finishDelay < 0
}

// Tick counts down the finish delay once the level has an outcome.
func (l *Level) Tick(dt float64) {
	if l.status != StatusNone {
		l.finishDelay -= dt
	}
}

// Step lets every actor act once. Actors are taken from a snapshot made at the
// start of the frame; actors removed meanwhile are skipped.
func (l *Level) Step(dt float64) {
	for _, a := range l.Actors() {
		if l.indexOf(a) < 0 {
			continue
		}
		a.Act(dt, l)
	}
}

// ActorAt returns the first actor that intersects a, or nil.
func (l *Level) ActorAt(a Actor) (Actor, error) {
	if isNilActor(a) {
		return nil, fmt.Errorf("actor at: %w: actor is nil", ErrInvalidArgument)
	}
	for _, other := range l.actors {
		if hit, _ := other.IsIntersect(a); hit {
			return other, nil
		}
	}
	return nil, nil
}

// ObstacleAt reports what a body of the given size would hit at pos.
// Leaving the level through the sides or the top hits a wall, falling out
// through the bottom hits lava. The side and top checks take precedence.
func (l *Level) ObstacleAt(pos, size Vector) Obstacle {
	left := int(math.Floor(pos.X()))
	right := int(math.Ceil(pos.X() + size.X()))
	top := int(math.Floor(pos.Y()))
	bottom := int(math.Ceil(pos.Y() + size.Y()))

	if left < 0 || right > l.width || top < 0 {
		return ObstacleWall
	}
	if bottom > l.height {
		return ObstacleLava
	}

	for y := top; y < bottom; y++ {
		row := l.grid[y]
		for x := left; x < right && x < len(row); x++ {
			if o := row[x]; o != ObstacleNone {
				return o
			}
		}
	}
	return ObstacleNone
}

// RemoveActor removes a from the level. Removing an absent actor is a no-op.
func (l *Level) RemoveActor(a Actor) {
	i := l.indexOf(a)
	if i < 0 {
		return
	}
	l.actors = append(l.actors[:i], l.actors[i+1:]...)
	l.resolvePlayer()
}

// NoMoreActors reports whether no live actor has the given kind.
func (l *Level) NoMoreActors(kind Kind) bool {
	for _, a := range l.actors {
		if a.Kind() == kind {
			return false
		}
	}
	return true
}

// PlayerTouched records that the player ran into something. Lava and
// fireballs lose the level; collecting the last coin wins it. Once the level
// has an outcome further touches are ignored.
func (l *Level) PlayerTouched(t Touch, touched Actor) {
	if l.status != StatusNone {
		return
	}

	switch t {
	case TouchLava, TouchFireball:
		l.status = StatusLost
	case TouchCoin:
		if isNilActor(touched) {
			return
		}
		l.RemoveActor(touched)
		if l.NoMoreActors(KindCoin) {
			l.status = StatusWon
		}
	}
}

// indexOf finds a by identity.
func (l *Level) indexOf(a Actor) int {
	if isNilActor(a) {
		return -1
	}
	b := a.body()
	for i, other := range l.actors {
		if other.body() == b {
			return i
		}
	}
	return -1
}
