package hud

import (
	"solarnav/internal/graphics"
	renderer "solarnav/internal/graphics/renderer"
	"solarnav/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPx    = 20
	textScale = 0.8
	margin    = 10
)

// HUD draws the ship name, mode and orbit-lock readout in the top-left corner.
type HUD struct {
	atlas   *graphics.Atlas
	shader  *graphics.Shader
	texture uint32
	vao     uint32
	vbo     uint32

	projection mgl32.Mat4
	scratch    []float32
}

func NewHUD() *HUD {
	return &HUD{projection: mgl32.Ident4()}
}

func (h *HUD) Init() error {
	atlas, err := graphics.BuildDefaultAtlas(fontPx)
	if err != nil {
		return err
	}
	shader, err := graphics.NewShader(graphics.TextVertShader, graphics.TextFragShader)
	if err != nil {
		return err
	}
	h.atlas = atlas
	h.shader = shader
	h.texture = graphics.UploadRGBA(atlas.Image)

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindVertexArray(0)
	return nil
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("hud.Render")()

	h.scratch = h.scratch[:0]
	y := float32(margin) + h.atlas.LineHeight*textScale
	for _, line := range Lines(ctx.Window, ctx.Status, ctx.Paused) {
		h.scratch = append(h.scratch, h.atlas.Quads(line, margin, y, textScale)...)
		y += h.atlas.LineHeight * textScale
	}
	if len(h.scratch) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	h.shader.Use()
	h.shader.SetMatrix4("projection", h.projection)
	h.shader.SetVector3("textColor", graphics.Vec3(graphics.ModeColor(ctx.Status.Mode)))
	h.shader.SetInt("text", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(h.scratch)*4, gl.Ptr(h.scratch), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(h.scratch)/4))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (h *HUD) Dispose() {
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.texture != 0 {
		gl.DeleteTextures(1, &h.texture)
	}
	if h.shader != nil {
		h.shader.Delete()
	}
}

// SetViewport maps pixel coordinates with a top-left origin.
func (h *HUD) SetViewport(width, height int) {
	h.projection = mgl32.Ortho2D(0, float32(width), float32(height), 0)
}
