package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ringSlices   = 100
	bodySlices   = 10
	bodyStacks   = 10
	guideWidth   = 0.04
	plutoRadius  = 9.5
	plutoTiltDeg = 10
)

var (
	flat     = mgl32.HomogRotate3DX(mgl32.DegToRad(90))
	diagonal = mgl32.Vec3{1, 1, 1}.Normalize()
)

// Body is the sphere used for every celestial body, scaled by the renderer.
func Body() Mesh {
	return Sphere(1, bodySlices, bodyStacks)
}

// OrbitGuides are the thin rings at radii 1 through 8 in the ecliptic plus
// Pluto's tilted ring, all in Sun coordinates.
func OrbitGuides() Mesh {
	var m Mesh
	for r := float32(1); r <= 8; r++ {
		m.Append(Disk(r-guideWidth, r, ringSlices), flat)
	}
	tilt := mgl32.HomogRotate3D(mgl32.DegToRad(plutoTiltDeg), diagonal)
	m.Append(Disk(plutoRadius-guideWidth, plutoRadius, ringSlices), tilt.Mul4(flat))
	return m
}

// MoonGuide is the Moon's orbit ring in Earth's frame.
func MoonGuide() Mesh {
	var m Mesh
	m.Append(Disk(0.514, 0.55, ringSlices), flat)
	return m
}

// SaturnRings are Saturn's rings in Saturn's frame.
func SaturnRings() Mesh {
	var m Mesh
	tilt := mgl32.HomogRotate3D(mgl32.DegToRad(30), mgl32.Vec3{1, 1, 0}.Normalize())
	m.Append(Disk(0.5, 0.8, ringSlices), flat.Mul4(tilt))
	return m
}

// Ship is the ship model in its own camera frame: nose toward -Z so it points
// where its window looks, scaled down to a tenth.
func Ship(slices int) Mesh {
	var m Mesh
	root := mgl32.HomogRotate3DY(mgl32.DegToRad(180)).
		Mul4(mgl32.Scale3D(0.1, 0.1, 0.1)).
		Mul4(mgl32.Translate3D(0, 0, -1.5))

	m.Append(Cylinder(0.7, 0.3, 1, slices), root.Mul4(mgl32.Scale3D(1, 1, 4)))

	roll := float32(0)
	for _, step := range []float32{-10, 30, -180, -30} {
		roll += step
		addWing(&m, root.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(roll))))
	}

	m.Append(Cylinder(0.3, 0, 0.4, slices), root.Mul4(mgl32.Translate3D(0, 0, 4)))
	return m
}

func addWing(m *Mesh, xf mgl32.Mat4) {
	m.Append(Cube(1), xf.Mul4(mgl32.Scale3D(2.5, 0.1, 1)).Mul4(mgl32.Translate3D(0.5, 0, 0.5)))
	cannon := xf.Mul4(mgl32.Translate3D(2.5, 0, 0))
	m.Append(Cylinder(0.1, 0.1, 1.2, bodySlices), cannon)
	m.Append(Cylinder(0.05, 0.05, 2.4, bodySlices), cannon)
}
