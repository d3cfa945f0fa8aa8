package graphics

import (
	"solarnav/internal/graphics/mesh"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GPUMesh is an uploaded mesh.Mesh: one VAO with position and normal
// attributes and an index buffer.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// UploadMesh copies m to the GPU of the current context.
func UploadMesh(m mesh.Mesh) *GPUMesh {
	g := &GPUMesh{count: int32(len(m.Indices))}
	verts := m.Floats()

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, mesh.VertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, mesh.VertexStride, 3*4)

	gl.BindVertexArray(0)
	return g
}

// Draw issues one indexed draw call.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, 0)
}

// Delete releases the buffers.
func (g *GPUMesh) Delete() {
	if g == nil {
		return
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	*g = GPUMesh{}
}
