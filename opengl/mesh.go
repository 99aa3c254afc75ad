package opengl

import (
	"math"
	"time"

	boids "github.com/nSimonFR/wasm-boids"
)

// floatsPerVertex is the number of float32 per vertex in the state buffer:
// two for the position, four for the RGBA color.
const floatsPerVertex = 6

// shape is the outline of a boid of scale 1 heading along +x.
var shape = [3][2]float32{{-20, 10}, {20, 0}, {-20, -10}}

// white is the default boid color.
var white = [4]float32{1, 1, 1, 1}

// appendBoid appends the three vertices of b to buf.
// The boid is drawn at its integer position.
func appendBoid(buf []float32, b boids.Boid, color [4]float32) []float32 {
	sin, cos := math.Sincos(float64(b.Rotation()))
	s := b.Rules.Scale
	x0, y0 := float32(b.X()), float32(b.Y())
	for _, p := range shape {
		x, y := p[0]*s, p[1]*s
		buf = append(buf,
			x0+x*float32(cos)-y*float32(sin),
			y0+x*float32(sin)+y*float32(cos),
			color[0], color[1], color[2], color[3],
		)
	}
	return buf
}

// mesh returns the vertices of all boids of u.
// color may be nil, in which case boids are white.
func mesh(buf []float32, u *boids.Universe, color func(i int) [4]float32) []float32 {
	buf = buf[:0]
	for i := 0; i < u.Len(); i++ {
		c := white
		if color != nil {
			c = color(i)
		}
		buf = appendBoid(buf, u.Boid(i), c)
	}
	return buf
}

// A pointer tracks the cursor in world units.
type pointer struct {
	x, y   float64
	inside bool
	moved  time.Time
}

// move records a cursor move at time t.
func (p *pointer) move(x, y float64, t time.Time) {
	p.x, p.y = x, y
	p.inside = true
	p.moved = t
}

// pos returns the pointer position to feed to a tick at time t.
// It returns the origin, which means no pointer, when the cursor is outside
// the window or has been idle for longer than timeout (if timeout > 0).
func (p *pointer) pos(t time.Time, timeout time.Duration) (uint16, uint16) {
	if !p.inside || (timeout > 0 && t.Sub(p.moved) > timeout) {
		return 0, 0
	}
	return clamp16(p.x), clamp16(p.y)
}

// clamp16 converts f to an uint16, saturating out of range values.
func clamp16(f float64) uint16 {
	switch {
	case f <= 0 || math.IsNaN(f):
		return 0
	case f >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(f)
}
