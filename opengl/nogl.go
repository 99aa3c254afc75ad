//go:build nogl
// +build nogl

package opengl

import (
	"fmt"
	"image/color"
	"os"
	"time"

	boids "github.com/nSimonFR/wasm-boids"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	Width  int
	Height int
	Step   func(mx, my uint16)
	Color  func(i int) [4]float32

	ForcePause     bool
	Background     color.RGBA
	PointerTimeout time.Duration
}

// Run returns an error explaining that OpenGL support is disabled.
func Run(u *boids.Universe, conf *Config) error {
	return fmt.Errorf("%s was built without OpenGL support\n"+
		"You must specify an output file ('Output' key in the config file).", os.Args[0])
}
