package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	boids "github.com/nSimonFR/wasm-boids"
	"github.com/nSimonFR/wasm-boids/hdf5"
)

// rules returns the parameters of the i-th boid.
func rules(conf *Config, i int) boids.Rules {
	r := boids.Rules{
		Speed:            float32(conf.Speed),
		Scale:            float32(conf.Scale),
		Radius:           float32(conf.Radius),
		Separation:       float32(conf.Separation),
		Alignment:        float32(conf.Alignment),
		Cohesion:         float32(conf.Cohesion),
		WallSeparation:   float32(conf.WallSeparation),
		MouseInteraction: float32(conf.MouseInteraction),
	}
	if conf.Varied {
		// smaller boids are faster
		scale := (2 + float64(sizeClass(i))/2) / 10
		r.Scale = float32(scale)
		r.Speed = float32(conf.Speed / math.Sqrt(scale))
	}
	return r
}

// sizeClass returns the size class of the i-th boid:
// one boid in a hundred is huge, one in ten is big, the others alternate.
func sizeClass(i int) int {
	switch {
	case i%100 == 0:
		return 15
	case i%10 == 0:
		return 8
	case i%2 == 0:
		return 6
	default:
		return 3
	}
}

// setup creates a universe and populates it according to conf.
func setup(conf *Config, rng *rand.Rand) (*boids.Universe, error) {
	u := boids.NewUniverse(uint16(conf.Width), uint16(conf.Height))
	switch conf.SchoolType {
	case "random":
		setupRandom(u, conf, rng)
	case "lattice":
		setupLattice(u, conf, rng)
	case "perlin":
		setupPerlin(u, conf, rng)
	case "data":
		if err := setupData(u, conf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("bad school type %q", conf.SchoolType)
	}
	return u, nil
}

// setupRandom places boids uniformly in the world
// with headings drawn among whole degrees.
func setupRandom(u *boids.Universe, conf *Config, rng *rand.Rand) {
	for i := 0; i < conf.SwarmSize; i++ {
		x := uint16(rng.Intn(conf.Width))
		y := uint16(rng.Intn(conf.Height))
		dir := float32(rng.Intn(360)) * (math.Pi / 180)
		u.CreateBoid(x, y, dir, rules(conf, i))
	}
}

// setupLattice places boids on a hexagonal lattice covering the world.
// The distribution of headings is normal (σ = 0.1 rad).
// The swarm size is defined by the geometry, up to conf.SwarmSize.
func setupLattice(u *boids.Universe, conf *Config, rng *rand.Rand) {
	const σ = 0.1
	dx := conf.LatticeSpacing
	dy := dx * math.Sqrt(3) / 2
	odd := false
	for y := dy / 2; y < float64(conf.Height); y += dy {
		x0 := dx / 2
		if odd {
			x0 += dx / 2
		}
		for x := x0; x < float64(conf.Width); x += dx {
			if u.Len() == conf.SwarmSize {
				return
			}
			dir := float32(σ * rng.NormFloat64())
			u.CreateBoid(uint16(x), uint16(y), dir, rules(conf, u.Len()))
		}
		odd = !odd
	}
}

// setupPerlin places boids uniformly in the world,
// heading along a Perlin noise flow field so that neighbors start aligned.
func setupPerlin(u *boids.Universe, conf *Config, rng *rand.Rand) {
	noise := perlin.NewPerlin(2, 2, 3, rng.Int63())
	for i := 0; i < conf.SwarmSize; i++ {
		x := rng.Intn(conf.Width)
		y := rng.Intn(conf.Height)
		n := noise.Noise2D(float64(x)/conf.NoiseScale, float64(y)/conf.NoiseScale)
		u.CreateBoid(uint16(x), uint16(y), float32(2*math.Pi*n), rules(conf, i))
	}
}

// setupData places boids as in the first step of a previous recording.
func setupData(u *boids.Universe, conf *Config) error {
	loader, _, err := hdf5.NewLoader(conf.SchoolDataPath, "boids")
	if err != nil {
		return err
	}
	defer loader.Close()

	frames, err := loader.Load()
	if err != nil {
		return err
	}
	populate(u, conf, frames)
	return nil
}

// populate creates one boid per frame, up to conf.SwarmSize.
func populate(u *boids.Universe, conf *Config, frames []hdf5.Frame) {
	for i, f := range frames {
		if i == conf.SwarmSize {
			break
		}
		u.CreateBoid(clamp(f.X, conf.Width), clamp(f.Y, conf.Height), f.Rot, rules(conf, i))
	}
}

// clamp truncates f to an integer coordinate inside [0, max].
func clamp(f float32, max int) uint16 {
	switch {
	case math.IsNaN(float64(f)) || f <= 0:
		return 0
	case f >= float32(max):
		return uint16(max)
	}
	return uint16(f)
}
