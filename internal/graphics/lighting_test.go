package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalMatrix(t *testing.T) {
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(30))
	if got := NormalMatrix(rot.Mul4(mgl32.Translate3D(1, 2, 3))); !got.ApproxEqualThreshold(rot.Mat3(), 1e-6) {
		t.Fatalf("rigid normal matrix = %v, want %v", got, rot.Mat3())
	}

	// Non-uniform scale keeps normals perpendicular to the surface.
	scale := mgl32.Scale3D(2.5, 0.1, 1)
	n := NormalMatrix(scale).Mul3x1(mgl32.Vec3{1, 1, 0}.Normalize())
	tangent := scale.Mat3().Mul3x1(mgl32.Vec3{1, -1, 0})
	if d := n.Dot(tangent); d > 1e-5 || d < -1e-5 {
		t.Fatalf("normal not perpendicular after scale: dot %v", d)
	}

	if got := NormalMatrix(mgl32.Mat4{}); got != (mgl32.Mat3{}) {
		t.Fatalf("singular input gave %v", got)
	}
}
