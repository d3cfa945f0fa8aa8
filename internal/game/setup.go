package game

import (
	"solarnav/internal/config"
	"solarnav/internal/nav"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	windowGap    = 40
	windowOrigin = 60
)

// SetupWindows opens one window per ship, side by side, each titled after
// its ship. glfw.Init must have been called on the main thread.
func SetupWindows() ([nav.ShipCount]*glfw.Window, error) {
	var windows [nav.ShipCount]*glfw.Window

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, h := config.GetWindowSize()
	for id := nav.Mothership; id < nav.ShipCount; id++ {
		window, err := glfw.CreateWindow(w, h, id.String(), nil, nil)
		if err != nil {
			destroyWindows(windows)
			return windows, err
		}
		window.SetPos(windowGap+int(id)*(w+windowGap), windowOrigin)
		window.MakeContextCurrent()

		// Function pointers are loaded once, from the first context.
		if id == nav.Mothership {
			if err := gl.Init(); err != nil {
				window.Destroy()
				return windows, err
			}
		}

		// The tick timer paces frames; do not also wait for vblank per window.
		glfw.SwapInterval(0)
		windows[id] = window
	}
	return windows, nil
}

func destroyWindows(windows [nav.ShipCount]*glfw.Window) {
	for _, w := range windows {
		if w != nil {
			w.Destroy()
		}
	}
}
