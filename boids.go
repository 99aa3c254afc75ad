// Package boids runs real-time flocking simulations.
//
// A growing number of boids move in a bounded 2D world.
// Each boid steers according to simple local rules
// (separation, alignment, cohesion, wall avoidance and pointer attraction)
// and wraps around when it leaves the world.
package boids

// A Universe contains all the state of a simulation.
type Universe struct {
	width  uint16
	height uint16
	boids  []Boid
}

// NewUniverse returns an empty width×height universe.
func NewUniverse(width, height uint16) *Universe {
	return &Universe{width: width, height: height}
}

// Resize changes the bounds of the world.
// Boids outside the new bounds are moved back on their next tick.
func (u *Universe) Resize(width, height uint16) {
	u.width = width
	u.height = height
}

// Width returns the width of the world.
func (u *Universe) Width() uint16 { return u.width }

// Height returns the height of the world.
func (u *Universe) Height() uint16 { return u.height }

// Len returns the number of boids.
func (u *Universe) Len() int { return len(u.boids) }

// CreateBoid adds a boid at (x, y) heading in direction dir (radians).
func (u *Universe) CreateBoid(x, y uint16, dir float32, rules Rules) {
	u.boids = append(u.boids, Boid{
		Pos:   V(float32(x), float32(y)),
		Dir:   dir,
		Rules: rules,
	})
}

// Boid returns a copy of the i-th boid in creation order.
// It panics if i is out of range.
func (u *Universe) Boid(i int) Boid {
	return u.boids[i]
}

// Tick runs a single simulation step with the pointer at (mx, my).
// Every boid steers from the same copy of the flock taken before the step.
func (u *Universe) Tick(mx, my uint16) {
	snapshot := make([]Boid, len(u.boids))
	copy(snapshot, u.boids)
	w, h := float32(u.width), float32(u.height)
	for i := range u.boids {
		u.boids[i].Flock(snapshot, w, h, float32(mx), float32(my))
	}
}
