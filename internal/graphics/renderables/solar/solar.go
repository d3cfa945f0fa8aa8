package solar

import (
	"solarnav/internal/graphics"
	"solarnav/internal/graphics/mesh"
	renderer "solarnav/internal/graphics/renderer"
	"solarnav/internal/nav"
	"solarnav/internal/orbit"
	"solarnav/internal/pose"
	"solarnav/internal/profiling"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Solar draws the Sun, the planets, the Moon and the orbit guides, and
// records each body's modelview as it goes.
type Solar struct {
	shader *graphics.Shader

	body        *graphics.GPUMesh
	guides      *graphics.GPUMesh
	moonGuide   *graphics.GPUMesh
	saturnRings *graphics.GPUMesh

	capture orbit.Capture
}

func NewSolar() *Solar {
	return &Solar{}
}

func (s *Solar) Init() error {
	var err error
	s.shader, err = graphics.NewLitShader()
	if err != nil {
		return err
	}
	s.body = graphics.UploadMesh(mesh.Body())
	s.guides = graphics.UploadMesh(mesh.OrbitGuides())
	s.moonGuide = graphics.UploadMesh(mesh.MoonGuide())
	s.saturnRings = graphics.UploadMesh(mesh.SaturnRings())
	return nil
}

func (s *Solar) Render(ctx renderer.RenderContext) {
	defer profiling.Track("solar.Render")()
	if ctx.System == nil {
		return
	}

	s.shader.Use()
	s.shader.SetMatrix4("projection", ctx.Proj)

	target := orbit.BodyID(-1)
	if ctx.Status.Mode == nav.OrbitLock {
		target = ctx.Status.Ships[ctx.Window].Target
	}

	s.draw(s.guides, ctx.View, graphics.GuideColor, false)

	s.capture = ctx.System.Traverse(ctx.View, func(b orbit.Body, mv pose.Pose) {
		c := graphics.BodyColor(b.ID)
		if b.ID == target {
			c = graphics.Highlight(c)
		}
		s.draw(s.body, scaled(mv, b.Radius), c, b.ID == orbit.Sun)

		switch b.ID {
		case orbit.Earth:
			s.draw(s.moonGuide, mv, graphics.GuideColor, false)
		case orbit.Saturn:
			s.draw(s.saturnRings, mv, c, false)
		}
	})

	moon := ctx.View.Mul4(ctx.System.Moon())
	s.draw(s.body, scaled(moon, orbit.MoonRadius), graphics.MoonColor, false)
}

// Capture returns the body modelviews recorded by the last Render.
func (s *Solar) Capture() orbit.Capture {
	return s.capture
}

func (s *Solar) draw(m *graphics.GPUMesh, mv pose.Pose, c colorful.Color, unlit bool) {
	s.shader.SetModelView(pose.Float32(mv))
	s.shader.SetVector4("color", graphics.Vec4(c, 1))
	s.shader.SetBool("unlit", unlit)
	m.Draw()
}

func scaled(mv pose.Pose, r float64) pose.Pose {
	return mv.Mul4(mgl64.Scale3D(r, r, r))
}

func (s *Solar) Dispose() {
	s.body.Delete()
	s.guides.Delete()
	s.moonGuide.Delete()
	s.saturnRings.Delete()
	s.shader.Delete()
}

func (s *Solar) SetViewport(width, height int) {}
