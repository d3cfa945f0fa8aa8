package orbit

import (
	"math"

	"solarnav/internal/pose"

	"github.com/go-gl/mathgl/mgl64"
)

// System holds the animated state of every body. Both windows read the same
// System, so they always show the same simulated instant.
type System struct {
	bodies [BodyCount]Body
	paused bool
}

// NewSystem returns a system with every body at angle zero.
func NewSystem() *System {
	return &System{bodies: defaultBodies}
}

// Tick advances every body by its angular speed, wrapping into [0, 360).
// It is a no-op while paused.
func (s *System) Tick() {
	if s.paused {
		return
	}
	for i := range s.bodies {
		s.bodies[i].Angle = wrapDegrees(s.bodies[i].Angle + s.bodies[i].Speed)
	}
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func (s *System) Pause()       { s.paused = true }
func (s *System) Resume()      { s.paused = false }
func (s *System) Paused() bool { return s.paused }

// Body returns a copy of the body state.
func (s *System) Body(id BodyID) Body {
	return s.bodies[id]
}

// setAngle overrides the current angle of a body, wrapped into [0, 360).
func (s *System) setAngle(id BodyID, deg float64) {
	s.bodies[id].Angle = wrapDegrees(deg)
}

// Transform returns the world (model) transform of a body: spin about the
// Sun, move out to the orbit radius, then spin about the body's own axis.
func (s *System) Transform(id BodyID) pose.Pose {
	b := s.bodies[id]
	spin := pose.RotateY(b.Angle)
	switch id {
	case Sun:
		return spin
	case Pluto:
		tilt := pose.Rotate(plutoTilt, mgl64.Vec3{1, 1, 1})
		return tilt.Mul4(spin).Mul4(pose.Translate(plutoDistance, 0, 0)).Mul4(spin)
	default:
		return spin.Mul4(pose.Translate(b.Distance(), 0, 0)).Mul4(spin)
	}
}

// Moon returns the world transform of Earth's moon. It rides on Earth's
// frame and is never an orbit-lock target.
func (s *System) Moon() pose.Pose {
	earth := s.bodies[Earth]
	return s.Transform(Earth).Mul4(pose.RotateY(earth.Angle)).Mul4(pose.Translate(moonDistance, 0, 0))
}

// Traverse walks the bodies in draw order. draw receives every body with its
// modelview (view * model) just before it is drawn; the returned Capture
// records those modelviews for orbit-lock targeting on the next frame.
func (s *System) Traverse(view pose.Pose, draw func(b Body, modelView pose.Pose)) Capture {
	var c Capture
	for id := Sun; id < BodyCount; id++ {
		mv := view.Mul4(s.Transform(id))
		c.Record(id, mv)
		if draw != nil {
			draw(s.bodies[id], mv)
		}
	}
	return c
}
