package pose

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a 4x4 homogeneous transform in OpenGL column-major layout.
// Whether it maps camera->world or world->camera depends on the call site.
type Pose = mgl64.Mat4

var (
	// ErrSingular is returned when a pose has a zero determinant and cannot be inverted.
	ErrSingular = errors.New("pose: singular matrix")
	// ErrDegenerate is returned when a look-at triple does not define a view.
	ErrDegenerate = errors.New("pose: degenerate look-at")
)

// Identity returns the identity pose.
func Identity() Pose {
	return mgl64.Ident4()
}

// Translate returns a translation pose.
func Translate(x, y, z float64) Pose {
	return mgl64.Translate3D(x, y, z)
}

// RotateX returns a rotation of deg degrees about the X axis.
func RotateX(deg float64) Pose {
	return mgl64.HomogRotate3DX(mgl64.DegToRad(deg))
}

// RotateY returns a rotation of deg degrees about the Y axis.
func RotateY(deg float64) Pose {
	return mgl64.HomogRotate3DY(mgl64.DegToRad(deg))
}

// RotateZ returns a rotation of deg degrees about the Z axis.
func RotateZ(deg float64) Pose {
	return mgl64.HomogRotate3DZ(mgl64.DegToRad(deg))
}

// Rotate returns a rotation of deg degrees about an arbitrary axis. The axis
// does not need to be normalized.
func Rotate(deg float64, axis mgl64.Vec3) Pose {
	return mgl64.HomogRotate3D(mgl64.DegToRad(deg), axis.Normalize())
}

// LookAt builds a world->camera view transform from an eye point, a target
// point and an up direction.
func LookAt(eye, center, up mgl64.Vec3) (Pose, error) {
	f := center.Sub(eye)
	if f.Len() == 0 {
		return Pose{}, ErrDegenerate
	}
	if f.Normalize().Cross(up).Len() < 1e-9 {
		return Pose{}, ErrDegenerate
	}
	return mgl64.LookAtV(eye, center, up), nil
}

// Position returns the translation column of p. For a camera->world pose this
// is the camera position in world space.
func Position(p Pose) mgl64.Vec3 {
	return mgl64.Vec3{p[12], p[13], p[14]}
}

// Float32 narrows p for upload to the GPU.
func Float32(p Pose) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range p {
		out[i] = float32(v)
	}
	return out
}

// Finite reports whether every element of p is a finite number.
func Finite(p Pose) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
