package core

import "math"

const (
	coinSpringSpeed = 8
	coinSpringDist  = 0.07
)

// Coin bobs vertically around a fixed anchor until the player collects it.
type Coin struct {
	Body
	base        Vector
	spring      float64
	springSpeed float64
	springDist  float64
}

// NewCoin creates a coin centered in the grid cell at anchor.
func NewCoin(anchor Vector) *Coin {
	pos := anchor.Plus(V(0.2, 0.1))
	return &Coin{
		Body:        Body{pos: pos, size: V(0.6, 0.6), speed: V(0, 0)},
		base:        pos,
		spring:      2 * math.Pi,
		springSpeed: coinSpringSpeed,
		springDist:  coinSpringDist,
	}
}

// Kind returns KindCoin.
func (c *Coin) Kind() Kind { return KindCoin }

// Base returns the anchor the coin oscillates around.
func (c *Coin) Base() Vector { return c.base }

// Spring returns the current oscillation phase.
func (c *Coin) Spring() float64 { return c.spring }

// UpdateSpring advances the oscillation phase by dt.
func (c *Coin) UpdateSpring(dt float64) {
	c.spring += c.springSpeed * dt
}

// SpringVector returns the current vertical offset from the anchor.
func (c *Coin) SpringVector() Vector {
	return V(0, math.Sin(c.spring)*c.springDist)
}

// NextPosition advances the phase and moves the coin to the new offset.
func (c *Coin) NextPosition(dt float64) Vector {
	c.UpdateSpring(dt)
	c.pos = c.base.Plus(c.SpringVector())
	return c.pos
}

// Act bobs the coin. Coins ignore obstacles.
func (c *Coin) Act(dt float64, _ World) {
	c.pos = c.NextPosition(dt)
}
