package main

import (
	boids "github.com/nSimonFR/wasm-boids"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// A Summary describes the whole flock at one step.
// This structure is mapped to a compound datatype in HDF5 so member names are important.
type Summary struct {
	CenterX   float64 // centroid of positions
	CenterY   float64
	MinX      float64 // bounding box of positions
	MinY      float64
	MaxX      float64
	MaxY      float64
	Neighbors float64 // mean number of boids in the neighbor box of each boid
}

// summarize computes the summary of the current state of u.
func summarize(u *boids.Universe) Summary {
	n := u.Len()
	if n == 0 {
		return Summary{}
	}

	flock := make([]boids.Boid, n)
	points := make(orb.MultiPoint, n)
	for i := range flock {
		flock[i] = u.Boid(i)
		points[i] = orb.Point{float64(flock[i].Pos.X), float64(flock[i].Pos.Y)}
	}

	var near int
	for _, b := range flock {
		near += len(b.FindNear(flock))
	}

	center, _ := planar.CentroidArea(points)
	bound := points.Bound()
	return Summary{
		CenterX:   center.X(),
		CenterY:   center.Y(),
		MinX:      bound.Min.X(),
		MinY:      bound.Min.Y(),
		MaxX:      bound.Max.X(),
		MaxY:      bound.Max.Y(),
		Neighbors: float64(near) / float64(n),
	}
}
