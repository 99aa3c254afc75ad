package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nSimonFR/wasm-boids/hdf5"
)

func testConf() *Config {
	c := *DefaultConf
	c.Width = 400
	c.Height = 300
	c.SwarmSize = 50
	return &c
}

func TestSizeClass(t *testing.T) {
	tests := []struct {
		i, want int
	}{
		{0, 15}, {100, 15}, {10, 8}, {90, 8}, {2, 6}, {4, 6}, {1, 3}, {13, 3},
	}
	for _, tt := range tests {
		if got := sizeClass(tt.i); got != tt.want {
			t.Errorf("sizeClass(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
}

func TestRules(t *testing.T) {
	conf := testConf()
	conf.Varied = false
	r := rules(conf, 7)
	if r.Speed != float32(conf.Speed) || r.Scale != float32(conf.Scale) || r.Radius != float32(conf.Radius) {
		t.Errorf("rules = %+v, want config values", r)
	}

	conf.Varied = true
	r = rules(conf, 0) // class 15: scale 0.95
	if math.Abs(float64(r.Scale)-0.95) > 1e-6 {
		t.Errorf("Scale = %f, want 0.95", r.Scale)
	}
	if want := conf.Speed / math.Sqrt(0.95); math.Abs(float64(r.Speed)-want) > 1e-5 {
		t.Errorf("Speed = %f, want %f", r.Speed, want)
	}
	if small := rules(conf, 1); small.Speed <= r.Speed {
		t.Errorf("small boid speed %f should exceed big boid speed %f", small.Speed, r.Speed)
	}
}

func TestSetupRandom(t *testing.T) {
	conf := testConf()
	u, err := setup(conf, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if u.Len() != conf.SwarmSize {
		t.Fatalf("Len() = %d, want %d", u.Len(), conf.SwarmSize)
	}
	if u.Width() != 400 || u.Height() != 300 {
		t.Errorf("bounds = %dx%d, want 400x300", u.Width(), u.Height())
	}
	for i := 0; i < u.Len(); i++ {
		b := u.Boid(i)
		if b.X() >= 400 || b.Y() >= 300 {
			t.Errorf("boid %d at %d-%d is outside the world", i, b.X(), b.Y())
		}
		if b.Dir < 0 || b.Dir >= 2*math.Pi {
			t.Errorf("boid %d heading %f out of [0, 2π)", i, b.Dir)
		}
	}
}

func TestSetupDeterministic(t *testing.T) {
	conf := testConf()
	a, _ := setup(conf, rand.New(rand.NewSource(42)))
	b, _ := setup(conf, rand.New(rand.NewSource(42)))
	for i := 0; i < a.Len(); i++ {
		if a.Boid(i) != b.Boid(i) {
			t.Fatalf("boid %d differs between runs with the same seed", i)
		}
	}
}

func TestSetupLattice(t *testing.T) {
	conf := testConf()
	conf.SchoolType = "lattice"
	conf.LatticeSpacing = 100
	conf.SwarmSize = 1000
	u, err := setup(conf, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	// rows at y ≈ 43, 130, 216; 4 boids on even rows, 3 on odd rows
	if u.Len() != 11 {
		t.Errorf("Len() = %d, want 11", u.Len())
	}
	if b := u.Boid(0); b.X() != 50 || b.Y() != 43 {
		t.Errorf("first boid at %d-%d, want 50-43", b.X(), b.Y())
	}

	conf.SwarmSize = 5
	u, _ = setup(conf, rand.New(rand.NewSource(1)))
	if u.Len() != 5 {
		t.Errorf("Len() = %d, want lattice capped at 5", u.Len())
	}
}

func TestSetupPerlin(t *testing.T) {
	conf := testConf()
	conf.SchoolType = "perlin"
	u, err := setup(conf, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if u.Len() != conf.SwarmSize {
		t.Errorf("Len() = %d, want %d", u.Len(), conf.SwarmSize)
	}
	for i := 0; i < u.Len(); i++ {
		if d := u.Boid(i).Dir; math.IsNaN(float64(d)) || math.Abs(float64(d)) > 4*math.Pi {
			t.Errorf("boid %d heading %f", i, d)
		}
	}
}

func TestSetupBadSchool(t *testing.T) {
	conf := testConf()
	conf.SchoolType = "spiral"
	if _, err := setup(conf, rand.New(rand.NewSource(1))); err == nil {
		t.Error("setup() with a bad school type should fail")
	}
}

func TestPopulate(t *testing.T) {
	conf := testConf()
	conf.SwarmSize = 2
	u, _ := setup(&Config{Width: 400, Height: 300, SchoolType: "random"}, rand.New(rand.NewSource(1)))
	populate(u, conf, []hdf5.Frame{
		{X: 10.5, Y: 20.5, Rot: 1},
		{X: 900, Y: -4, Rot: 2},
		{X: 1, Y: 1, Rot: 3},
	})
	if u.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", u.Len())
	}
	if b := u.Boid(0); b.X() != 10 || b.Y() != 20 || b.Dir != 1 {
		t.Errorf("boid 0 = %d-%d heading %f", b.X(), b.Y(), b.Dir)
	}
	if b := u.Boid(1); b.X() != 400 || b.Y() != 0 || b.Dir != 2 {
		t.Errorf("boid 1 = %d-%d heading %f, want clamped to 400-0", b.X(), b.Y(), b.Dir)
	}
}
