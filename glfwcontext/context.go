package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glscene/graphics"
)

var _ graphics.Context = (*Context)(nil)

type keyHandler struct {
	press, release func()
}

// Context is a GLFW window with an OpenGL 4.1 core context.
type Context struct {
	window *glfw.Window

	// A map to store functions to be called on key presses and releases.
	keyCallbacks map[glfw.Key]keyHandler
	input        graphics.Input
	resize       func(width, height int)

	cursorSeen       bool
	cursorX, cursorY float64
}

// New creates and initializes a new GLFW window and returns a Context object.
func New(width, height int, title string, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]keyHandler),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)

	return c, nil
}

// RegisterKeyCallback registers functions called when key goes down and up.
// Either may be nil.
func (c *Context) RegisterKeyCallback(key glfw.Key, press, release func()) {
	c.keyCallbacks[key] = keyHandler{press: press, release: release}
}

// SetInput forwards mouse buttons and relative cursor movement to in.
func (c *Context) SetInput(in graphics.Input) {
	c.input = in
}

// OnResize registers f to be called with the new framebuffer size.
func (c *Context) OnResize(f func(width, height int)) {
	c.resize = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Handle the default Escape key behavior
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	h, ok := c.keyCallbacks[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		if h.press != nil {
			h.press()
		}
	case glfw.Release:
		if h.release != nil {
			h.release()
		}
	}
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if c.input == nil {
		return
	}
	switch action {
	case glfw.Press:
		c.input.MouseButton(true)
	case glfw.Release:
		c.input.MouseButton(false)
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	if c.cursorSeen && c.input != nil {
		c.input.MouseMoved(x-c.cursorX, y-c.cursorY)
	}
	c.cursorX, c.cursorY, c.cursorSeen = x, y, true
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.resize != nil {
		c.resize(width, height)
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

func (c *Context) Timer() (uint64, uint64) {
	return glfw.GetTimerValue(), glfw.GetTimerFrequency()
}

// SetVsync sets the swap interval of the current context.
func (c *Context) SetVsync(on bool) {
	interval := 0
	if on {
		interval = 1
	}
	glfw.SwapInterval(interval)
	log.Printf("Vsync: %v", on)
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
