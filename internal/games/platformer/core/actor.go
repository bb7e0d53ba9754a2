package core

import "fmt"

// Kind tags the variant of an actor.
type Kind string

const (
	KindActor    Kind = "actor"
	KindPlayer   Kind = "player"
	KindCoin     Kind = "coin"
	KindFireball Kind = "fireball"
)

// Bounds is the axis-aligned rectangle occupied by an actor.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// World is the view of the level that actors may query while acting.
type World interface {
	// ObstacleAt reports the obstacle a body of the given size would hit at pos.
	ObstacleAt(pos, size Vector) Obstacle
}

// Actor is a positioned, sized entity that takes part in collisions.
// The set of implementations is closed: every actor embeds Body.
type Actor interface {
	Kind() Kind
	Pos() Vector
	Size() Vector
	Speed() Vector
	Bounds() Bounds

	// Act advances the actor by dt units of time. It may only change the
	// actor itself; interactions with the level go through Level.PlayerTouched.
	Act(dt float64, w World)

	// IsIntersect reports whether the actor overlaps other.
	IsIntersect(other Actor) (bool, error)

	body() *Body
}

// Body is the plain actor: a rectangle with a speed and no behavior.
// The variants embed it and override Kind and Act.
type Body struct {
	pos   Vector
	size  Vector
	speed Vector
}

// NewBody creates a body with an explicit position, size, and speed.
func NewBody(pos, size, speed Vector) *Body {
	return &Body{pos: pos, size: size, speed: speed}
}

// DefaultBody creates a unit body at the origin that does not move.
func DefaultBody() *Body {
	return NewBody(V(0, 0), V(1, 1), V(0, 0))
}

func (b *Body) body() *Body { return b }

// Kind returns KindActor.
func (b *Body) Kind() Kind { return KindActor }

// Pos returns the top-left corner.
func (b *Body) Pos() Vector { return b.pos }

// Size returns width and height.
func (b *Body) Size() Vector { return b.size }

// Speed returns the displacement per unit of time.
func (b *Body) Speed() Vector { return b.speed }

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 { return b.pos.X() }

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 { return b.pos.Y() }

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 { return b.pos.X() + b.size.X() }

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.pos.Y() + b.size.Y() }

// Bounds returns all four edges.
func (b *Body) Bounds() Bounds {
	return Bounds{Left: b.Left(), Top: b.Top(), Right: b.Right(), Bottom: b.Bottom()}
}

// Act does nothing for a plain body.
func (b *Body) Act(float64, World) {}

// IsIntersect reports whether the two rectangles overlap. Rectangles that only
// share an edge do not intersect, and an actor never intersects itself.
func (b *Body) IsIntersect(other Actor) (bool, error) {
	if isNilActor(other) {
		return false, fmt.Errorf("is intersect: %w: actor is nil", ErrInvalidArgument)
	}
	o := other.body()
	if o == b {
		return false, nil
	}
	return b.Right() > o.Left() &&
		b.Left() < o.Right() &&
		b.Top() < o.Bottom() &&
		b.Bottom() > o.Top(), nil
}

// isNilActor catches both untyped nil and typed nil pointers.
func isNilActor(a Actor) bool {
	switch v := a.(type) {
	case nil:
		return true
	case *Body:
		return v == nil
	case *Player:
		return v == nil
	case *Coin:
		return v == nil
	case *Fireball:
		return v == nil
	}
	return false
}
