package main

import (
	"github.com/PerformLine/go-stockutil/colorutil"
)

// A ColorHSV is a color in the HSV space.
// H is in degrees, S and V are between 0 and 1.
type ColorHSV struct {
	H, S, V float64
}

// classColor returns the tint of boids of size class c.
// Bigger classes are warmer and less saturated.
func classColor(c int) ColorHSV {
	return ColorHSV{
		H: 240 - 16*float64(c),
		S: 1 - float64(c)/30,
		V: 1,
	}
}

// GL returns c as normalized RGBA components.
func (c ColorHSV) GL() [4]float32 {
	r, g, b := colorutil.HsvToRgb(c.H, c.S, c.V)
	return [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// palette returns the color of the i-th boid.
func palette(conf *Config) func(i int) [4]float32 {
	if !conf.Varied {
		return nil
	}
	colors := make(map[int][4]float32)
	return func(i int) [4]float32 {
		c := sizeClass(i)
		if v, ok := colors[c]; ok {
			return v
		}
		colors[c] = classColor(c).GL()
		return colors[c]
	}
}
