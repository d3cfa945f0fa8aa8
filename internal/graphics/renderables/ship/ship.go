package ship

import (
	"solarnav/internal/graphics"
	"solarnav/internal/graphics/mesh"
	renderer "solarnav/internal/graphics/renderer"
	"solarnav/internal/pose"
	"solarnav/internal/profiling"
)

const slices = 100

// Ship draws the other ship's model where its own window last put it.
type Ship struct {
	shader *graphics.Shader
	model  *graphics.GPUMesh
}

func NewShip() *Ship {
	return &Ship{}
}

func (s *Ship) Init() error {
	var err error
	s.shader, err = graphics.NewLitShader()
	if err != nil {
		return err
	}
	s.model = graphics.UploadMesh(mesh.Ship(slices))
	return nil
}

func (s *Ship) Render(ctx renderer.RenderContext) {
	defer profiling.Track("ship.Render")()

	mv := ctx.View.Mul4(ctx.ShipWorld)
	if !pose.Finite(mv) {
		return
	}
	s.shader.Use()
	s.shader.SetMatrix4("projection", ctx.Proj)
	s.shader.SetModelView(pose.Float32(mv))
	s.shader.SetVector4("color", graphics.Vec4(graphics.ShipColor(ctx.Window.Other()), 1))
	s.shader.SetBool("unlit", false)
	s.model.Draw()
}

func (s *Ship) Dispose() {
	s.model.Delete()
	s.shader.Delete()
}

func (s *Ship) SetViewport(width, height int) {}
