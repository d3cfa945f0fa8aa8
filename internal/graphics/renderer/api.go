package renderer

import (
	"solarnav/internal/graphics"
	"solarnav/internal/nav"
	"solarnav/internal/orbit"
	"solarnav/internal/pose"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables of one window.
type RenderContext struct {
	Camera *graphics.Camera
	Window nav.ShipID

	// View is this window's world->camera transform for the frame.
	View pose.Pose
	Proj mgl32.Mat4

	// ShipWorld is the other ship's camera->world pose.
	ShipWorld pose.Pose

	System *orbit.System
	Status nav.Status
	Paused bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// CaptureRenderable is a Renderable that reports the body modelviews it drew.
type CaptureRenderable interface {
	Renderable
	Capture() orbit.Capture
}
