package core

// ReboundPolicy decides what a fireball does when its next step is blocked.
type ReboundPolicy int

const (
	// Bounce reverses the fireball's speed.
	Bounce ReboundPolicy = iota
	// Respawn returns the fireball to where it was created.
	Respawn
)

// String returns the policy name.
func (p ReboundPolicy) String() string {
	switch p {
	case Bounce:
		return "bounce"
	case Respawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// Fireball is a one-cell hazard moving at a constant speed.
type Fireball struct {
	Body
	spawn  Vector
	policy ReboundPolicy
}

// NewFireball creates a fireball at pos moving with speed.
func NewFireball(pos, speed Vector, policy ReboundPolicy) *Fireball {
	return &Fireball{
		Body:   Body{pos: pos, size: V(1, 1), speed: speed},
		spawn:  pos,
		policy: policy,
	}
}

// NewHorizontalFireball creates a fireball bouncing left and right.
func NewHorizontalFireball(anchor Vector) *Fireball {
	return NewFireball(anchor, V(2, 0), Bounce)
}

// NewVerticalFireball creates a fireball bouncing up and down.
func NewVerticalFireball(anchor Vector) *Fireball {
	return NewFireball(anchor, V(0, 2), Bounce)
}

// NewFireRain creates a falling fireball that restarts from its spawn point
// whenever it lands.
func NewFireRain(anchor Vector) *Fireball {
	return NewFireball(anchor, V(0, 3), Respawn)
}

// Kind returns KindFireball.
func (f *Fireball) Kind() Kind { return KindFireball }

// Policy returns how the fireball reacts to obstacles.
func (f *Fireball) Policy() ReboundPolicy { return f.policy }

// Spawn returns the position the fireball was created at.
func (f *Fireball) Spawn() Vector { return f.spawn }

// NextPosition returns where the fireball would be after dt.
func (f *Fireball) NextPosition(dt float64) Vector {
	return f.pos.Plus(f.speed.Times(dt))
}

// HandleObstacle applies the rebound policy.
func (f *Fireball) HandleObstacle() {
	switch f.policy {
	case Respawn:
		f.pos = f.spawn
	default:
		f.speed = f.speed.Times(-1)
	}
}

// Act moves the fireball unless the next position is obstructed, in which
// case it rebounds and stays where it is for this frame.
func (f *Fireball) Act(dt float64, w World) {
	next := f.NextPosition(dt)
	if w != nil && w.ObstacleAt(next, f.size) != ObstacleNone {
		f.HandleObstacle()
		return
	}
	f.pos = next
}
