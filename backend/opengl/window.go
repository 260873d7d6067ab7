package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/grid"
)

// WindowOptions configures Run.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	// Margin places the grid this many pixels from the top-left corner.
	Margin float32
	// Hidden creates the window without showing it, for offscreen rendering.
	Hidden bool
	Logger *slog.Logger
}

// Window is a GLFW window with a GL 4.1 context and a Backend bound to it.
// GLFW must be initialized and the calling goroutine locked to its thread.
type Window struct {
	*glfw.Window
	Backend *Backend
	Input   *InputAdapter
}

// OpenWindow creates the window, makes its context current and initializes GL.
func OpenWindow(opts WindowOptions) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		w.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	fw, fh := w.GetFramebufferSize()
	b, err := NewBackend(fw, fh)
	if err != nil {
		w.Destroy()
		return nil, err
	}
	return &Window{Window: w, Backend: b, Input: NewInputAdapter(w)}, nil
}

// Close releases the GL objects and destroys the window.
func (w *Window) Close() {
	w.Backend.Delete()
	w.Destroy()
}

// Clipboard returns the window's clipboard provider.
func (w *Window) Clipboard() grid.ClipboardProvider {
	return WindowClipboard{Window: w.Window}
}

// Frame clears the framebuffer with the grid's background and renders one
// frame of g at origin.
func (w *Window) Frame(g *grid.Grid, origin grid.Vec2) error {
	fw, fh := w.Backend.Size()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	r, gr, b, _ := grid.UnpackRGBA(g.Palette().Background)
	gl.ClearColor(float32(r)/255, float32(gr)/255, float32(b)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	return g.RenderFrame(w.Backend, origin)
}

// Run opens a window and drives g until the window is closed: input is
// dispatched each frame, deferred resize work runs once events drain, and
// framebuffer resizes reach the grid as container resizes.
func Run(g *grid.Grid, opts WindowOptions) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	w, err := OpenWindow(opts)
	if err != nil {
		return err
	}
	defer w.Close()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g.SetClipboard(w.Clipboard())
	origin := grid.Vec2{X: opts.Margin, Y: opts.Margin}
	resize := func(width, height int) {
		w.Backend.Resize(width, height)
		g.OnContainerResize(float32(width)-2*opts.Margin, float32(height)-2*opts.Margin)
	}
	w.Input.OnFramebufferResize(resize)
	resize(w.Backend.Size())

	for !w.ShouldClose() {
		in := w.Input.Update()
		g.HandleInput(in, origin)
		g.Idle()

		if err := w.Frame(g, origin); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		w.SwapBuffers()
	}

	logger.Debug("window closed", "grid", g.String())
	return nil
}
