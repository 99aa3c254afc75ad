package boids

// Rules contains the parameters of a boid.
// Negative or zero weights are legal and invert or disable the matching behavior.
type Rules struct {
	Speed            float32 // distance travelled per tick along the steering vector
	Scale            float32 // display size, unused by the simulation
	Radius           float32 // half-width of the neighbor box and wall margin
	Separation       float32 // weight of separation from the closest neighbor
	Alignment        float32 // weight of alignment with neighbors
	Cohesion         float32 // weight of attraction to the neighbors' center
	WallSeparation   float32 // weight of repulsion from the world edges
	MouseInteraction float32 // weight of attraction to the pointer
}

// A Boid is a single flocking agent.
type Boid struct {
	Pos   Vec2    // position in world units
	Dir   float32 // heading in radians
	Rules Rules
}

// X returns the x coordinate truncated to an integer.
func (b Boid) X() uint16 {
	return trunc16(b.Pos.X)
}

// Y returns the y coordinate truncated to an integer.
func (b Boid) Y() uint16 {
	return trunc16(b.Pos.Y)
}

// Rotation returns the heading in radians.
func (b Boid) Rotation() float32 {
	return b.Dir
}

// FindNear returns the boids inside the square of half-width Radius centered on b.
// A boid with exactly the same position and heading as b is taken to be b itself
// and is never returned.
func (b Boid) FindNear(boids []Boid) []Boid {
	var near []Boid
	r := b.Rules.Radius
	for _, o := range boids {
		closeX := o.Pos.X < b.Pos.X+r && o.Pos.X > b.Pos.X-r
		closeY := o.Pos.Y < b.Pos.Y+r && o.Pos.Y > b.Pos.Y-r
		self := o.Dir == b.Dir && o.Pos == b.Pos
		if closeX && closeY && !self {
			near = append(near, o)
		}
	}
	return near
}

// Separation returns the push away from neighbors, with an inverse square falloff.
// Each neighbor replaces the previous candidate instead of adding to it,
// so only the last neighbor of near has an effect.
func (b Boid) Separation(near []Boid) Vec2 {
	var v Vec2
	for _, o := range near {
		d := b.Pos.Sub(o.Pos)
		v = d.Normalize()
		if l := d.Len(); l != 0 {
			v = v.Mul(1 / l)
		}
	}
	return v.Mul(b.Rules.Separation)
}

// Alignment returns the average heading of neighbors.
func (b Boid) Alignment(near []Boid) Vec2 {
	var v Vec2
	if len(near) != 0 {
		for _, o := range near {
			v.AddEq(FromRotation(o.Dir).Mul(b.Rules.Speed))
		}
		v.DivEq(float32(len(near)))
	}
	return v.Normalize().Mul(b.Rules.Alignment)
}

// Cohesion returns the direction to the center of neighbors.
func (b Boid) Cohesion(near []Boid) Vec2 {
	var v Vec2
	if len(near) != 0 {
		for _, o := range near {
			v.AddEq(o.Pos)
		}
		v.DivEq(float32(len(near)))
		v.SubEq(b.Pos)
	}
	return v.Normalize().Mul(b.Rules.Cohesion)
}

// SeparateFromWalls returns the push away from the edges of a width×height world.
// It grows linearly with the depth inside the Radius wide margin along each axis.
func (b Boid) SeparateFromWalls(width, height float32) Vec2 {
	var v Vec2
	r := b.Rules.Radius
	if b.Pos.X < r {
		v.X = r - b.Pos.X
	} else if b.Pos.X+r > width {
		v.X = width - b.Pos.X - r
	}
	if b.Pos.Y < r {
		v.Y = r - b.Pos.Y
	} else if b.Pos.Y+r > height {
		v.Y = height - b.Pos.Y - r
	}

	// a zero radius disables the push instead of dividing by zero
	inv := ScalarDiv(1, V(r, r))
	return Vec2{X: v.X * inv.X, Y: v.Y * inv.Y}.Mul(b.Rules.WallSeparation)
}

// MouseInteraction returns the pull toward the pointer at (mx, my)
// when it is within twice Radius along both axes.
// The origin means that there is no pointer.
func (b Boid) MouseInteraction(mx, my float32) Vec2 {
	if mx == 0 && my == 0 {
		return Vec2{}
	}
	v := V(mx, my).Sub(b.Pos)
	r := 2 * b.Rules.Radius
	if v.X < r && v.X > -r && v.Y < r && v.Y > -r {
		return v.Mul(b.Rules.MouseInteraction)
	}
	return Vec2{}
}

// Flock moves b by one tick.
// The steering vector is computed from boids, which must be the state of
// the flock before the tick, and b heads straight along it afterwards.
func (b *Boid) Flock(boids []Boid, width, height, mx, my float32) {
	near := b.FindNear(boids)

	v := FromRotation(b.Dir).
		Add(b.Separation(near)).
		Add(b.Alignment(near)).
		Add(b.Cohesion(near)).
		Add(b.SeparateFromWalls(width, height)).
		Add(b.MouseInteraction(mx, my))

	b.Pos.AddEq(v.Mul(b.Rules.Speed))
	b.Dir = v.Rotation()

	b.teleport(width, height)
}

// teleport moves a boid that left the world to the opposite side.
// Leaving past the far edge lands at 1, not 0.
func (b *Boid) teleport(width, height float32) {
	if b.Pos.X >= width {
		b.Pos.X = 1
	} else if b.Pos.X < 0 {
		b.Pos.X = width
	}
	if b.Pos.Y >= height {
		b.Pos.Y = 1
	} else if b.Pos.Y < 0 {
		b.Pos.Y = height
	}
}
