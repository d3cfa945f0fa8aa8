package game

import (
	"fmt"
	"log/slog"
	"time"

	"solarnav/internal/config"
	"solarnav/internal/frame"
	"solarnav/internal/graphics/renderables/hud"
	"solarnav/internal/graphics/renderables/ship"
	"solarnav/internal/graphics/renderables/solar"
	renderer "solarnav/internal/graphics/renderer"
	"solarnav/internal/input"
	"solarnav/internal/nav"
	"solarnav/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowTickTopN = 5

// Window is the part of a ship window the loop polls. *glfw.Window
// satisfies it.
type Window interface {
	ShouldClose() bool
}

// App owns the two ship windows and runs the tick loop.
type App struct {
	windows    [nav.ShipCount]Window
	renderers  []*renderer.Renderer
	controller *frame.Controller
	input      *input.Manager
	timer      *TickTimer
	log        *slog.Logger

	pollEvents func()
}

// New builds a renderer per window, wires both windows' keyboards into one
// input manager and creates the frame controller.
func New(windows [nav.ShipCount]*glfw.Window, log *slog.Logger, metrics frame.Metrics) (*App, error) {
	im := input.NewManager()
	var (
		renderers [nav.ShipCount]frame.Renderer
		owned     []*renderer.Renderer
		polled    [nav.ShipCount]Window
	)
	for id := nav.Mothership; id < nav.ShipCount; id++ {
		r, err := renderer.NewRenderer(windows[id], id, renderer.Parts{
			Ship:  ship.NewShip(),
			Solar: solar.NewSolar(),
			HUD:   hud.NewHUD(),
		})
		if err != nil {
			for _, o := range owned {
				o.Dispose()
			}
			return nil, fmt.Errorf("renderer for %v: %w", id, err)
		}
		owned = append(owned, r)
		renderers[id] = r
		polled[id] = windows[id]
		im.SetCallbacks(windows[id])
	}

	a := newApp(polled, renderers, im, log, metrics)
	a.renderers = owned
	a.pollEvents = glfw.PollEvents
	return a, nil
}

func newApp(windows [nav.ShipCount]Window, renderers [nav.ShipCount]frame.Renderer, im *input.Manager, log *slog.Logger, metrics frame.Metrics) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{
		windows: windows,
		controller: frame.NewController(renderers, frame.Options{
			Logger:  log,
			Metrics: metrics,
		}),
		input:      im,
		timer:      NewTickTimer(),
		log:        log,
		pollEvents: func() {},
	}
}

// Controller exposes the frame controller driven by the loop.
func (a *App) Controller() *frame.Controller { return a.controller }

// Run ticks until quit is requested or a window is closed.
func (a *App) Run() {
	a.log.Info("navigator started", "tick", config.GetTickInterval())
	for a.step() {
		a.timer.Wait()
	}
	a.log.Info("navigator stopped")
}

// step handles pending input and runs one tick. It returns false once the
// controller has stopped.
func (a *App) step() bool {
	a.pollEvents()

	for id, w := range a.windows {
		if w != nil && w.ShouldClose() && !a.controller.Quitting() {
			a.log.Info("window closed", "ship", nav.ShipID(id))
			a.controller.Apply(nav.Quit())
		}
	}
	a.input.Dispatch(a.controller)

	start := time.Now()
	if !a.controller.Tick() {
		return false
	}
	if took := time.Since(start); took > config.GetTickInterval() {
		a.log.Warn("slow tick", "took", took, "top", profiling.TopN(slowTickTopN))
	}
	return true
}

// Close releases every renderer's GPU resources. Call it on the main thread
// before glfw.Terminate.
func (a *App) Close() {
	for i := len(a.renderers) - 1; i >= 0; i-- {
		a.renderers[i].Dispose()
	}
	a.renderers = nil
}
