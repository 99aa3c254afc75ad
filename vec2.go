package boids

import (
	"fmt"
	"math"
)

// A Vec2 is a simple 2D vector.
type Vec2 struct {
	X float32
	Y float32
}

// V returns the vector (x, y).
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromRotation returns the unit vector pointing in direction θ (radians).
func FromRotation(θ float32) Vec2 {
	sin, cos := math.Sincos(float64(θ))
	return Vec2{X: float32(cos), Y: float32(sin)}
}

// Len returns the euclidean norm of v.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns the unit vector pointing in the same direction as v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	if d := v.Len(); d != 0 {
		return v.Div(d)
	}
	return v
}

// Rotation returns the direction of v in radians, between -π and π.
func (v Vec2) Rotation() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// Add returns v + u.
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub returns v - u.
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{X: v.X - u.X, Y: v.Y - u.Y}
}

// Mul returns v scaled by k.
func (v Vec2) Mul(k float32) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Div returns v divided by k.
func (v Vec2) Div(k float32) Vec2 {
	return Vec2{X: v.X / k, Y: v.Y / k}
}

// AddEq adds u to v in place.
func (v *Vec2) AddEq(u Vec2) {
	v.X += u.X
	v.Y += u.Y
}

// SubEq subtracts u from v in place.
func (v *Vec2) SubEq(u Vec2) {
	v.X -= u.X
	v.Y -= u.Y
}

// DivEq divides v by k in place.
func (v *Vec2) DivEq(k float32) {
	v.X /= k
	v.Y /= k
}

// ScalarDiv returns k/v computed per component.
// A zero component of v yields a zero component, not an infinity.
func ScalarDiv(k float32, v Vec2) Vec2 {
	var u Vec2
	if v.X != 0 {
		u.X = k / v.X
	}
	if v.Y != 0 {
		u.Y = k / v.Y
	}
	return u
}

// String formats v as "x-y" with both components truncated to integers.
func (v Vec2) String() string {
	return fmt.Sprintf("%d-%d", trunc16(v.X), trunc16(v.Y))
}

// trunc16 truncates f to an uint16, saturating out of range values.
func trunc16(f float32) uint16 {
	switch {
	case math.IsNaN(float64(f)) || f <= 0:
		return 0
	case f >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(f)
}
