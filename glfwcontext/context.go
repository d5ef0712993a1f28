package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/golava/graphics"
)

// Config describes the window New creates.
type Config struct {
	Width      int
	Height     int
	Title      string
	Visible    bool
	Fullscreen bool
	VSync      bool
}

// Context is a GLFW window with a current OpenGL 4.1 core context.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func(mods glfw.ModifierKey)
	// windowed position and size, restored when leaving fullscreen
	savedX, savedY int
	savedW, savedH int
}

// New creates the window and makes its context current on the calling thread.
func New(cfg Config) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	if cfg.Visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	var monitor *glfw.Monitor
	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen && cfg.Visible {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func(mods glfw.ModifierKey)),
		savedW:       cfg.Width,
		savedH:       cfg.Height,
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed or held.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func(mods glfw.ModifierKey)) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if callback, ok := c.keyCallbacks[key]; ok {
		callback(mods)
	}
}

// ToggleFullscreen switches between a windowed mode and fullscreen on the
// primary monitor.
func (c *Context) ToggleFullscreen() {
	if c.window.GetMonitor() != nil {
		c.window.SetMonitor(nil, c.savedX, c.savedY, c.savedW, c.savedH, glfw.DontCare)
		return
	}
	c.savedX, c.savedY = c.window.GetPos()
	c.savedW, c.savedH = c.window.GetSize()
	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	c.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window.
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

// LayoutSize is the framebuffer size in logical units. On platforms where
// GLFW window coordinates are already physical pixels this divides out the
// content scale.
func (c *Context) LayoutSize() (float64, float64) {
	w, h := c.window.GetFramebufferSize()
	d := c.PixelDensity()
	return float64(w) / d, float64(h) / d
}

// PixelDensity is the monitor content scale the window sits on.
func (c *Context) PixelDensity() float64 {
	sx, _ := c.window.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return float64(sx)
}

func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
