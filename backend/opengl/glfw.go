package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/grid"
)

// InputAdapter collects GLFW window events into a grid.InputState.
type InputAdapter struct {
	window   *glfw.Window
	input    *grid.InputState
	onResize func(width, height int)
}

// NewInputAdapter installs the window callbacks.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{
		window: window,
		input:  grid.NewInputState(),
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	return a
}

// OnFramebufferResize registers fn to receive framebuffer sizes in pixels.
func (a *InputAdapter) OnFramebufferResize(fn func(width, height int)) {
	a.onResize = fn
}

// Update starts a frame: it clears last frame's events, polls GLFW and
// samples the cursor and modifiers. Positions are in framebuffer pixels.
func (a *InputAdapter) Update() *grid.InputState {
	a.input.Reset()
	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	sx, sy := a.contentScale()
	a.input.SetMousePos(float32(x)*sx, float32(y)*sy)

	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = a.pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	return a.input
}

// Input returns the state filled by the last Update.
func (a *InputAdapter) Input() *grid.InputState {
	return a.input
}

func (a *InputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// contentScale is the framebuffer to window coordinate ratio (2 on Retina).
func (a *InputAdapter) contentScale() (float32, float32) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func (a *InputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToGridKey(key)
	if k == grid.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *InputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButtonToGrid(button)
	if b < 0 {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *InputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.AddMouseWheel(float32(xoff), float32(yoff))
}

func (a *InputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	sx, sy := a.contentScale()
	a.input.SetMousePos(float32(xpos)*sx, float32(ypos)*sy)
}

func (a *InputAdapter) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if a.onResize != nil {
		a.onResize(width, height)
	}
}

func glfwKeyToGridKey(key glfw.Key) grid.Key {
	switch key {
	case glfw.KeyPageUp:
		return grid.KeyPageUp
	case glfw.KeyPageDown:
		return grid.KeyPageDown
	case glfw.KeyHome:
		return grid.KeyHome
	case glfw.KeyEnd:
		return grid.KeyEnd
	case glfw.KeyC:
		return grid.KeyC
	case glfw.KeyEscape:
		return grid.KeyEscape
	default:
		return grid.KeyNone
	}
}

func glfwMouseButtonToGrid(button glfw.MouseButton) grid.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return grid.MouseButtonLeft
	case glfw.MouseButtonRight:
		return grid.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return grid.MouseButtonMiddle
	default:
		return -1
	}
}

var _ grid.ClipboardProvider = WindowClipboard{}

// WindowClipboard is a grid.ClipboardProvider backed by the GLFW window.
type WindowClipboard struct {
	Window *glfw.Window
}

// SetText replaces the clipboard contents.
func (c WindowClipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}
