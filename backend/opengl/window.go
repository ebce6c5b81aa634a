package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// Window is a GLFW window with a current OpenGL context.
// GLFW is initialized by NewWindow and terminated by Destroy.
type Window struct {
	window *glfw.Window
	device *Device
}

var _ triangle.Window = (*Window)(nil)

// NewWindow initializes GLFW, opens a resizable window with a core profile
// context of the configured version and loads the OpenGL functions.
// Must be called from the main OS thread.
func NewWindow(cfg triangle.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	w := &Window{window: window, device: NewDevice()}

	// The framebuffer may be larger than the window on high-DPI displays.
	fbWidth, fbHeight := window.GetFramebufferSize()
	w.device.Viewport(fbWidth, fbHeight)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

// Device returns the Device bound to this window's context.
func (w *Window) Device() *Device {
	return w.device
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

// KeyPressed reports whether key is currently held down.
func (w *Window) KeyPressed(key triangle.Key) bool {
	glfwKey, ok := keyToGLFWKey(key)
	if !ok {
		return false
	}
	return w.window.GetKey(glfwKey) == glfw.Press
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Destroy closes the window and terminates GLFW.
// GPU objects must be released before calling it.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.device.Viewport(width, height)
}

// keyToGLFWKey maps program keys to GLFW keys.
func keyToGLFWKey(key triangle.Key) (glfw.Key, bool) {
	switch key {
	case triangle.KeyEscape:
		return glfw.KeyEscape, true
	default:
		return glfw.KeyUnknown, false
	}
}
