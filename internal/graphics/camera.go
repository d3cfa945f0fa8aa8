package graphics

import (
	"solarnav/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the projection of one window. The view comes from the
// navigator every frame.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera reads the field of view and clip planes from config.
func NewCamera(width, height int) *Camera {
	near, far := config.GetClipPlanes()
	c := &Camera{
		FOV:       float32(config.GetFOV()),
		NearPlane: float32(near),
		FarPlane:  float32(far),
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height (minimised window)
// keeps the previous one.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		if c.AspectRatio == 0 {
			c.AspectRatio = 1
		}
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
