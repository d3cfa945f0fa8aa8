package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a position and a unit normal. Layout matches the lit shader:
// location 0 = position, location 1 = normal.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = 6 * 4

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Append adds o to m with every position transformed by xf.
func (m *Mesh) Append(o Mesh, xf mgl32.Mat4) {
	base := uint32(len(m.Vertices))
	normalXf := xf.Mat3().Inv().Transpose()
	for _, v := range o.Vertices {
		n := normalXf.Mul3x1(v.Normal)
		if n.Len() > 0 {
			n = n.Normalize()
		}
		m.Vertices = append(m.Vertices, Vertex{
			Pos:    mgl32.TransformCoordinate(v.Pos, xf),
			Normal: n,
		})
	}
	for _, i := range o.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Floats flattens the vertices for upload.
func (m Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		out = append(out, v.Pos[0], v.Pos[1], v.Pos[2], v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}

// Sphere is a UV sphere centred on the origin.
func Sphere(radius float32, slices, stacks int) Mesh {
	var m Mesh
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.Vertices = append(m.Vertices, Vertex{Pos: n.Mul(radius), Normal: n})
		}
	}
	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			b := a + row
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// Disk is a flat annulus in the XY plane facing +Z. Rings are drawn without
// face culling, so one side is enough.
func Disk(inner, outer float32, slices int) Mesh {
	var m Mesh
	up := mgl32.Vec3{0, 0, 1}
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
		m.Vertices = append(m.Vertices,
			Vertex{Pos: mgl32.Vec3{inner * c, inner * s, 0}, Normal: up},
			Vertex{Pos: mgl32.Vec3{outer * c, outer * s, 0}, Normal: up},
		)
	}
	for j := uint32(0); j < uint32(slices); j++ {
		a := 2 * j
		m.Indices = append(m.Indices, a, a+1, a+2, a+2, a+1, a+3)
	}
	return m
}

// Cylinder is an open cone frustum along +Z from radius base at z=0 to radius
// top at z=height.
func Cylinder(base, top, height float32, slices int) Mesh {
	var m Mesh
	slope := (base - top) / height
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
		n := mgl32.Vec3{c, s, slope}.Normalize()
		m.Vertices = append(m.Vertices,
			Vertex{Pos: mgl32.Vec3{base * c, base * s, 0}, Normal: n},
			Vertex{Pos: mgl32.Vec3{top * c, top * s, height}, Normal: n},
		)
	}
	for j := uint32(0); j < uint32(slices); j++ {
		a := 2 * j
		m.Indices = append(m.Indices, a, a+2, a+1, a+1, a+2, a+3)
	}
	return m
}

var cubeFaces = [6]struct {
	normal, u, v mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
}

// Cube is an axis-aligned cube of the given edge length centred on the origin.
func Cube(size float32) Mesh {
	var m Mesh
	h := size / 2
	for _, f := range cubeFaces {
		base := uint32(len(m.Vertices))
		centre := f.normal.Mul(h)
		for _, k := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := centre.Add(f.u.Mul(k[0] * h)).Add(f.v.Mul(k[1] * h))
			m.Vertices = append(m.Vertices, Vertex{Pos: p, Normal: f.normal})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
