//go:build !nogl
// +build !nogl

package opengl

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	boids "github.com/nSimonFR/wasm-boids"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	Width  int                    // initial window width, in world units
	Height int                    // initial window height, in world units
	Step   func(mx, my uint16)    // go to next step with the pointer at (mx, my)
	Color  func(i int) [4]float32 // RGBA color of the i-th boid, nil for white

	ForcePause     bool          // step manually only?
	Background     color.RGBA    // clear color
	PointerTimeout time.Duration // idle time after which the pointer is dropped
}

// Run runs an interactive simulation in an OpenGL window.
// The universe follows the size of the window.
func Run(u *boids.Universe, conf *Config) error {
	// init GLFW and OpenGL
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	const title = "Boids"
	w, err := glfw.CreateWindow(conf.Width, conf.Height, title, nil, nil)
	if err != nil {
		return err
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return err
	}

	// set background color and enable alpha blending
	bg := conf.Background
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	w.SwapBuffers()

	d, err := newDisplay(u.Len())
	if err != nil {
		return err
	}

	var ptr pointer
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ptr.move(x, y, time.Now())
	})
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		ptr.inside = entered
	})

	var quit, step bool
	pause := conf.ForcePause
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			quit = true
		}
		if key == glfw.KeySpace && action == glfw.Press && !conf.ForcePause {
			pause = !pause
		}
		if key == glfw.KeyRight && (action == glfw.Press || action == glfw.Repeat) {
			if pause {
				pause = false
				step = true
			}
		}
	})

	for !(quit || w.ShouldClose()) {
		// follow the window size
		ww, wh := w.GetSize()
		if ww > 0 && wh > 0 && (clamp16(float64(ww)) != u.Width() || clamp16(float64(wh)) != u.Height()) {
			u.Resize(clamp16(float64(ww)), clamp16(float64(wh)))
		}
		fw, fh := w.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))

		mx, my := ptr.pos(time.Now(), conf.PointerTimeout)
		if step {
			pause = true
			step = false
			conf.Step(mx, my)
		}
		if !pause {
			conf.Step(mx, my)
		}
		d.draw(u, conf.Color)
		w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// display contains all the OpenGL objects required to display the simulation.
type display struct {
	vao   uint32    // vertex array object
	vbo   uint32    // vertex buffer (boid triangles)
	prog  uint32    // shader program
	world int32     // location of the world size uniform
	buf   []float32 // vertex data
}

// draw updates the OpenGL buffer and draws the boids on screen.
func (d *display) draw(u *boids.Universe, color func(i int) [4]float32) {
	d.buf = mesh(d.buf, u, color)

	gl.Clear(gl.COLOR_BUFFER_BIT)
	if len(d.buf) == 0 {
		return
	}

	gl.UseProgram(d.prog)
	gl.Uniform2f(d.world, float32(u.Width()), float32(u.Height()))

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(d.buf), gl.Ptr(d.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(d.buf)/floatsPerVertex))
}

// newDisplay compiles shaders and initializes a display.
func newDisplay(swarmSize int) (*display, error) {
	d := &display{buf: make([]float32, 0, 3*floatsPerVertex*swarmSize)}

	var err error
	d.prog, err = makeProg([]shader{
		{"Vertex", boidVert, gl.CreateShader(gl.VERTEX_SHADER)},
		{"Fragment", boidFrag, gl.CreateShader(gl.FRAGMENT_SHADER)},
	})
	if err != nil {
		return nil, err
	}

	// uniform location cannot be specified in the shaders in OpenGL 3.3 core
	d.world = gl.GetUniformLocation(d.prog, gl.Str("world\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	// attribute locations are specified in the shaders with layout(location=n)
	const stride = 4 * floatsPerVertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(4*2))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return d, nil
}

// A shader wraps an OpenGL shader.
type shader struct {
	name   string
	src    string
	shader uint32
}

// makeProg builds OpenGL programs.
func makeProg(shaders []shader) (uint32, error) {
	var fail bool
	for _, s := range shaders {
		str, free := gl.Strs(s.src + "\x00")
		gl.ShaderSource(s.shader, 1, str, nil)
		free()
		gl.CompileShader(s.shader)
		var status int32
		gl.GetShaderiv(s.shader, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			var n int32
			gl.GetShaderiv(s.shader, gl.INFO_LOG_LENGTH, &n)
			log := make([]uint8, n+1)
			gl.GetShaderInfoLog(s.shader, n, &n, &log[0])
			fmt.Printf("### %s shader compilation error ###\n\n%s\n\n", s.name, gl.GoStr(&log[0]))
			fail = true
			gl.DeleteShader(s.shader)
		}
	}
	if fail {
		return 0, fmt.Errorf("boids: GLSL errors")
	}
	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s.shader)
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		return 0, fmt.Errorf("boids: GLSL program failed to link")
	}
	for _, s := range shaders {
		gl.DeleteShader(s.shader)
	}

	return prog, nil
}
