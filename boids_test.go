package boids

import (
	"math"
	"testing"
)

func TestNewUniverse(t *testing.T) {
	u := NewUniverse(800, 600)
	if u.Width() != 800 || u.Height() != 600 {
		t.Errorf("bounds = %dx%d, want 800x600", u.Width(), u.Height())
	}
	if u.Len() != 0 {
		t.Errorf("Len() = %d, want 0", u.Len())
	}
}

func TestTickForward(t *testing.T) {
	u := NewUniverse(800, 600)
	u.CreateBoid(400, 300, 0, Rules{Speed: 1})
	u.Tick(0, 0)

	b := u.Boid(0)
	if !approx(b.Pos.X, 401) || !approx(b.Pos.Y, 300) {
		t.Errorf("position = (%f, %f), want (401, 300)", b.Pos.X, b.Pos.Y)
	}
	if b.X() != 401 || b.Y() != 300 {
		t.Errorf("X(), Y() = %d, %d, want 401, 300", b.X(), b.Y())
	}
	if b.Rotation() != 0 {
		t.Errorf("rotation = %f, want 0", b.Rotation())
	}
}

func TestCreateBoidOrder(t *testing.T) {
	u := NewUniverse(800, 600)
	const n = 5
	for i := 0; i < n; i++ {
		u.CreateBoid(uint16(10*i), uint16(i), float32(i)/10, Rules{Speed: float32(i)})
	}
	if u.Len() != n {
		t.Fatalf("Len() = %d, want %d", u.Len(), n)
	}
	for i := 0; i < n; i++ {
		b := u.Boid(i)
		if b.X() != uint16(10*i) || b.Y() != uint16(i) || b.Rules.Speed != float32(i) {
			t.Errorf("Boid(%d) = %+v, want boid created in position %d", i, b, i)
		}
	}
}

func TestBoidOutOfRange(t *testing.T) {
	u := NewUniverse(800, 600)
	for i := 0; i < 3; i++ {
		u.CreateBoid(1, 1, 0, Rules{})
	}
	defer func() {
		if recover() == nil {
			t.Error("Boid(3) did not panic with 3 boids")
		}
	}()
	u.Boid(3)
}

func TestBoidReturnsCopy(t *testing.T) {
	u := NewUniverse(800, 600)
	u.CreateBoid(10, 10, 0, Rules{})
	b := u.Boid(0)
	b.Pos = V(500, 500)
	if u.Boid(0).Pos != V(10, 10) {
		t.Error("modifying the returned boid changed the universe")
	}
}

func TestTickSnapshot(t *testing.T) {
	rules := Rules{Speed: 5, Radius: 50, Cohesion: 1, Alignment: 1, Separation: 2}
	u := NewUniverse(800, 600)
	u.CreateBoid(100, 100, 0, rules)
	u.CreateBoid(120, 110, math.Pi/2, rules)
	u.CreateBoid(90, 130, -1, rules)

	before := make([]Boid, u.Len())
	for i := range before {
		before[i] = u.Boid(i)
	}

	// expected result when every boid sees the flock as it was before the tick
	want := make([]Boid, len(before))
	copy(want, before)
	for i := range want {
		want[i].Flock(before, 800, 600, 0, 0)
	}

	u.Tick(0, 0)
	for i := range want {
		if got := u.Boid(i); got != want[i] {
			t.Errorf("Boid(%d) = %+v, want %+v", i, got, want[i])
		}
	}

	// the first boid moved, so sequential in place updates would differ
	seq := make([]Boid, len(before))
	copy(seq, before)
	for i := range seq {
		seq[i].Flock(seq, 800, 600, 0, 0)
	}
	if seq[1] == want[1] {
		t.Fatal("test setup does not distinguish snapshot from in place updates")
	}
}

func TestResizeKeepsBoids(t *testing.T) {
	u := NewUniverse(800, 600)
	u.CreateBoid(700, 500, 0, Rules{Speed: 1})
	u.Resize(400, 300)
	if u.Width() != 400 || u.Height() != 300 {
		t.Errorf("bounds = %dx%d, want 400x300", u.Width(), u.Height())
	}
	if b := u.Boid(0); b.X() != 700 || b.Y() != 500 {
		t.Errorf("Resize moved boid to %d-%d", b.X(), b.Y())
	}

	u.Tick(0, 0)
	if b := u.Boid(0); b.Pos.X != 1 || b.Pos.Y != 1 {
		t.Errorf("boid at (%f, %f) after tick, want (1, 1)", b.Pos.X, b.Pos.Y)
	}
}

func TestTickPointer(t *testing.T) {
	u := NewUniverse(800, 600)
	u.CreateBoid(100, 100, 0, Rules{Speed: 1, Radius: 10, MouseInteraction: 1})
	u.Tick(100, 110)
	b := u.Boid(0)
	if !approx(b.Pos.X, 101) || !approx(b.Pos.Y, 110) {
		t.Errorf("position = (%f, %f), want (101, 110)", b.Pos.X, b.Pos.Y)
	}
}
