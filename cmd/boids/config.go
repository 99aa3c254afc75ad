package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
)

// Config holds the various parameters required for running a simulation.
type Config struct {
	// Output is either a filename (path) for the HDF5 output file,
	// or the empty string for an interactive OpenGL simulation.
	Output string

	Steps int   // number of ticks (hdf5 only)
	Seed  int64 // seed of the PRNG, 0 for a time based seed

	// World parameters
	Width  int // unit: world unit (pixel in interactive mode)
	Height int // unit: world unit

	// School parameters
	SwarmSize      int     // number of boids
	SchoolType     string  // possible values: random, lattice, perlin, data
	SchoolDataPath string  // must be HDF5 file containing a "boids" dataset
	LatticeSpacing float64 // unit: world unit
	NoiseScale     float64 // unit: world unit

	// Boids parameters
	Speed            float64 // unit: world unit/tick
	Scale            float64 // unit: 1
	Varied           bool    // use size classes (scale and speed vary per boid)
	Radius           float64 // unit: world unit
	Separation       float64 // unit: 1
	Alignment        float64 // unit: 1
	Cohesion         float64 // unit: 1
	WallSeparation   float64 // unit: 1
	MouseInteraction float64 // unit: 1

	// Display parameters (interactive only)
	Background     string        // color name, see golang.org/x/image/colornames
	PointerTimeout time.Duration // the pointer is dropped when idle for this long
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Output:           "",
	Steps:            1000,
	Seed:             0,
	Width:            1024,
	Height:           768,
	SwarmSize:        1000,
	SchoolType:       "random",
	LatticeSpacing:   40,
	NoiseScale:       400,
	Speed:            2,
	Scale:            0.35,
	Varied:           true,
	Radius:           100,
	Separation:       3,
	Alignment:        0.1,
	Cohesion:         0.005,
	WallSeparation:   0.2,
	MouseInteraction: 0.001,
	Background:       "black",
	PointerTimeout:   time.Second,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := *DefaultConf
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &conf, nil
}

// Validate checks that the parameters describe a simulation that can run.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Width > math.MaxUint16:
		return fmt.Errorf("bad width %d (must be between 1 and %d)", c.Width, math.MaxUint16)
	case c.Height < 1 || c.Height > math.MaxUint16:
		return fmt.Errorf("bad height %d (must be between 1 and %d)", c.Height, math.MaxUint16)
	case c.SwarmSize < 0:
		return fmt.Errorf("bad swarm size %d", c.SwarmSize)
	case c.Output != "" && c.Steps < 1:
		return fmt.Errorf("bad number of steps %d", c.Steps)
	case c.Output != "" && c.SwarmSize < 1:
		return fmt.Errorf("bad swarm size %d (recording needs at least one boid)", c.SwarmSize)
	}

	switch c.SchoolType {
	case "random", "perlin":
	case "lattice":
		if c.LatticeSpacing <= 0 {
			return fmt.Errorf("bad lattice spacing %g", c.LatticeSpacing)
		}
	case "data":
		if c.SchoolDataPath == "" {
			return fmt.Errorf("school type %q requires SchoolDataPath", c.SchoolType)
		}
	default:
		return fmt.Errorf("bad school type %q", c.SchoolType)
	}

	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the named background color.
func (c *Config) BackgroundColor() (color.RGBA, error) {
	bg, ok := colornames.Map[c.Background]
	if !ok {
		return color.RGBA{}, fmt.Errorf("bad background color %q", c.Background)
	}
	return bg, nil
}
