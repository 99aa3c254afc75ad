// Command boids runs real-time flocking simulations.
//
// # Usage
//
// The boids command takes one optional argument:
//
//	boids [config_file]
//
// It is the path to a TOML config file.
// If no config file is specified, an interactive simulation
// with default parameters will run in an OpenGL window.
//
// # Interactive mode
//
// Boids are drawn as triangles in a resizable window; the world
// follows the size of the window. Moving the cursor over the window
// attracts nearby boids for a second after each move.
// The simulation can be paused/resumed with space.
// While in pause, pressing right arrow will perform a single step.
// Pressing Esc or closing the window will quit.
//
// # Batch mode
//
// When the config file sets an output path, the simulation runs
// for the given number of steps without a window and every step is
// recorded in an HDF5 file: a "boids" dataset with the position and
// heading of each boid, and a "summary" dataset with the flock centroid,
// bounding box and mean number of neighbors.
// A recording can seed a later simulation with SchoolType = "data".
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	boids "github.com/nSimonFR/wasm-boids"
	"github.com/nSimonFR/wasm-boids/hdf5"
	"github.com/nSimonFR/wasm-boids/opengl"
)

const usage = `Usage: boids [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive simulation
with default parameters will run in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()
}

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		c := *DefaultConf
		conf = &c
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// setup simulation
	u, err := setup(conf, rng)
	if err != nil {
		Fatal(err)
	}

	// run interactively or not depending on config
	if conf.Output == "" {
		bg, _ := conf.BackgroundColor()
		err = opengl.Run(u, &opengl.Config{
			Width:          conf.Width,
			Height:         conf.Height,
			Step:           u.Tick,
			Color:          palette(conf),
			Background:     bg,
			PointerTimeout: conf.PointerTimeout,
		})
	} else {
		err = hdf5.Run(u, &hdf5.Config{
			Output:   conf.Output,
			Steps:    conf.Steps,
			Step:     func() { u.Tick(0, 0) },
			Meta:     conf,
			Progress: os.Stdout,
			Datasets: datasets(u.Len()),
		})
	}
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// datasets returns the datasets recorded in batch mode for a flock of the given size.
func datasets(size int) []*hdf5.Dataset {
	return []*hdf5.Dataset{
		{
			Name: "boids",
			Val:  hdf5.Frame{},
			Dims: []int{size},
			Data: func(u *boids.Universe) interface{} {
				f := hdf5.Frames(u)
				return &f
			},
		},
		{
			Name: "summary",
			Val:  Summary{},
			Data: func(u *boids.Universe) interface{} {
				s := summarize(u)
				return &s
			},
		},
	}
}
