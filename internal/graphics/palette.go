package graphics

import (
	"solarnav/internal/nav"
	"solarnav/internal/orbit"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

var bodyColors = [orbit.BodyCount]colorful.Color{
	orbit.Sun:     {R: 0.8, G: 0.3, B: 0},
	orbit.Mercury: {R: 0.5, G: 0.5, B: 0.5},
	orbit.Venus:   {R: 0.8, G: 0.7, B: 0},
	orbit.Earth:   {R: 0, G: 0, B: 1},
	orbit.Mars:    {R: 1, G: 0, B: 0},
	orbit.Jupiter: {R: 0.7, G: 0.3, B: 0.5},
	orbit.Saturn:  {R: 0.3, G: 0.7, B: 0.5},
	orbit.Uranus:  {R: 0.3, G: 1, B: 1},
	orbit.Neptune: {R: 0.3, G: 0.7, B: 1},
	orbit.Pluto:   {R: 0.5, G: 0.5, B: 0.5},
}

var (
	MoonColor  = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	GuideColor = colorful.Color{R: 1, G: 1, B: 1}
	white      = colorful.Color{R: 1, G: 1, B: 1}
)

// BodyColor returns the base colour of a body.
func BodyColor(id orbit.BodyID) colorful.Color {
	if !id.Valid() {
		return white
	}
	return bodyColors[id]
}

// Highlight mixes c toward white; used for the orbit-lock target.
func Highlight(c colorful.Color) colorful.Color {
	return c.BlendRgb(white, 0.35).Clamped()
}

// ShipColor gives each ship its own hue.
func ShipColor(id nav.ShipID) colorful.Color {
	if id == nav.Scoutship {
		return colorful.Hcl(140, 0.6, 0.8).Clamped()
	}
	return colorful.Hcl(250, 0.5, 0.75).Clamped()
}

// ModeColor is the HUD text colour for a navigation mode.
func ModeColor(m nav.Mode) colorful.Color {
	switch m {
	case nav.Relative:
		return colorful.Hsv(40, 0.8, 1)
	case nav.OrbitLock:
		return colorful.Hsv(190, 0.7, 1)
	default:
		return colorful.Hsv(0, 0, 0.95)
	}
}

// Vec3 converts a colour for a shader uniform.
func Vec3(c colorful.Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// Vec4 converts a colour with alpha for a shader uniform.
func Vec4(c colorful.Color, alpha float32) mgl32.Vec4 {
	return Vec3(c).Vec4(alpha)
}
