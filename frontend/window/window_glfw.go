package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *emuWindow
	window  *glfw.Window
	running bool

	// pointerDown tracks the left mouse button so cursor movement is only
	// forwarded as touch movement while a press is active.
	pointerDown bool
}

// newPlatformWindow creates the GLFW window and routes its input callbacks
// into the parent's pointer and keyboard flows.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *emuWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, glfw.DontCare, glfw.DontCare)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	// Keyboard state feeds the pollable button devices (free-camera
	// bindings among them).
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.keyboard.KeyDown(uint32(key))
		case glfw.Release:
			w.keyboard.KeyUp(uint32(key))
		}
	})

	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			// Release events may never arrive for keys held across a focus
			// loss; drop them all rather than leave stuck buttons.
			w.keyboard.ReleaseAll()
		}
	})

	// The left mouse button emulates the touch pointer.
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			xpos, ypos := win.GetCursorPos()
			gw.pointerDown = true
			w.TouchPressed(int(xpos), int(ypos))
		case glfw.Release:
			gw.pointerDown = false
			w.TouchReleased()
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if gw.pointerDown {
			w.TouchMoved(int(xpos), int(ypos))
		}
	})

	// Use framebuffer size for pixel-accurate layout rebuilds; on high-DPI
	// displays the framebuffer size differs from the window size and the
	// layout works in framebuffer pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.UpdateLayout(width, height, height > width)
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.UpdateLayout(fbWidth, fbHeight, fbHeight > fbWidth)

	return nil
}

// platformGetSurfaceDescriptor creates a platform-appropriate
// wgpu.SurfaceDescriptor from the GLFW window. Returns nil when no platform
// window is attached.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *emuWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	gw := w.internalWindow.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformProcessMessages polls GLFW for pending events without blocking and
// reports whether the window is still running.
func platformProcessMessages(w *emuWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	glfw.PollEvents()
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW
// library. Returns an error if no platform window has been initialized.
func platformCloseWindow(w *emuWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}
