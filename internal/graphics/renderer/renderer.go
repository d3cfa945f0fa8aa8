package renderer

import (
	"solarnav/internal/graphics"
	"solarnav/internal/nav"
	"solarnav/internal/orbit"
	"solarnav/internal/pose"
	"solarnav/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Surface is the window a Renderer draws into. *glfw.Window satisfies it.
type Surface interface {
	MakeContextCurrent()
	SwapBuffers()
	GetFramebufferSize() (width, height int)
}

// Parts are the renderables of one window, created by the caller.
type Parts struct {
	Ship  Renderable
	Solar CaptureRenderable
	HUD   Renderable
}

// Renderer draws one ship's window. It implements frame.Renderer.
type Renderer struct {
	surface Surface
	camera  *graphics.Camera
	parts   Parts

	renderables []Renderable
	ctx         RenderContext

	width, height int
}

// NewRenderer makes the surface's context current, configures GL and
// initializes every part in that context.
func NewRenderer(surface Surface, id nav.ShipID, parts Parts) (*Renderer, error) {
	surface.MakeContextCurrent()

	gl.Enable(gl.DEPTH_TEST)
	// Orbit rings are flat disks seen from both sides.
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	w, h := surface.GetFramebufferSize()
	r := &Renderer{
		surface:     surface,
		camera:      graphics.NewCamera(w, h),
		parts:       parts,
		renderables: []Renderable{parts.Ship, parts.Solar, parts.HUD},
	}
	r.ctx = RenderContext{Camera: r.camera, Window: id}

	for i, p := range r.renderables {
		if err := p.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				r.renderables[j].Dispose()
			}
			return nil, err
		}
	}
	r.resize(w, h)
	return r, nil
}

func (r *Renderer) resize(w, h int) {
	if w == r.width && h == r.height {
		return
	}
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
	r.camera.SetViewport(w, h)
	for _, p := range r.renderables {
		p.SetViewport(w, h)
	}
}

func (r *Renderer) BeginFrame() {
	r.surface.MakeContextCurrent()
	r.resize(r.surface.GetFramebufferSize())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.ctx.Proj = r.camera.GetProjectionMatrix()
}

func (r *Renderer) DrawShip(view, world pose.Pose) {
	defer profiling.Track("renderer.DrawShip")()
	r.ctx.View = view
	r.ctx.ShipWorld = world
	r.parts.Ship.Render(r.ctx)
}

func (r *Renderer) DrawSolarSystem(view pose.Pose, sys *orbit.System) orbit.Capture {
	defer profiling.Track("renderer.DrawSolarSystem")()
	r.ctx.View = view
	r.ctx.System = sys
	r.parts.Solar.Render(r.ctx)
	return r.parts.Solar.Capture()
}

func (r *Renderer) DrawStatus(st nav.Status, paused bool) {
	defer profiling.Track("renderer.DrawStatus")()
	r.ctx.Status = st
	r.ctx.Paused = paused
	r.parts.HUD.Render(r.ctx)
}

func (r *Renderer) Present() {
	r.surface.SwapBuffers()
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	r.surface.MakeContextCurrent()
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
