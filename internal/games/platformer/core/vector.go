// Package core contains the platformer simulation: vectors, actors, the level
// with its obstacle grid, and the parser that turns text plans into levels.
// It has no terminal or storage dependencies so it can be driven and tested
// in isolation.
package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is an immutable 2D point or displacement in grid units.
// Every operation returns a new Vector.
type Vector struct {
	mgl64.Vec2
}

// V creates a vector from its components.
func V(x, y float64) Vector {
	return Vector{mgl64.Vec2{x, y}}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{v.Vec2.Add(other.Vec2)}
}

// Times returns v scaled by k.
func (v Vector) Times(k float64) Vector {
	return Vector{v.Vec2.Mul(k)}
}

// Equal reports whether both components match exactly.
func (v Vector) Equal(other Vector) bool {
	return v.Vec2 == other.Vec2
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X(), v.Y())
}
