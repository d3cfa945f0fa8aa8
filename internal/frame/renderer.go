package frame

import (
	"time"

	"solarnav/internal/nav"
	"solarnav/internal/orbit"
	"solarnav/internal/pose"
)

// Renderer draws one window. Each ship owns its own Renderer.
type Renderer interface {
	BeginFrame()
	// DrawShip draws the other ship's model at world (camera->world) as seen
	// through view (world->camera).
	DrawShip(view, world pose.Pose)
	// DrawSolarSystem draws every body and returns the modelview of each one.
	DrawSolarSystem(view pose.Pose, sys *orbit.System) orbit.Capture
	DrawStatus(st nav.Status, paused bool)
	Present()
}

// Metrics receives controller events. observability.Collector implements it.
type Metrics interface {
	ObserveTick(d time.Duration)
	ObserveFrame(window string)
	ObserveModeSwitch(mode string)
	ObservePoseError(ship string, err error)
}

type nopMetrics struct{}

func (nopMetrics) ObserveTick(time.Duration)      {}
func (nopMetrics) ObserveFrame(string)            {}
func (nopMetrics) ObserveModeSwitch(string)       {}
func (nopMetrics) ObservePoseError(string, error) {}
