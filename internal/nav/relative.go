package nav

import "solarnav/internal/pose"

// Motion is a first-person flight control.
type Motion int

const (
	Yaw Motion = iota
	Pitch
	Roll
	Thrust
	MotionCount
)

func (m Motion) String() string {
	switch m {
	case Yaw:
		return "yaw"
	case Pitch:
		return "pitch"
	case Roll:
		return "roll"
	case Thrust:
		return "thrust"
	default:
		return "unknown"
	}
}

const (
	defaultTurnAngle = 2.0 // degrees
	defaultThrust    = 0.1
	defaultTurnStep  = 0.1
	thrustStep       = 0.03
	minTurnAngle     = 0.2
	minThrust        = 0.06
)

// RelativeState holds the flight speeds and the single pending edit.
type RelativeState struct {
	Turn     [3]float64 // yaw, pitch, roll in degrees per key press
	Thrust   float64
	TurnStep float64

	pending *relativeEdit
}

type relativeEdit struct {
	motion Motion
	dir    int
}

func defaultRelativeState() RelativeState {
	return RelativeState{
		Turn:     [3]float64{defaultTurnAngle, defaultTurnAngle, defaultTurnAngle},
		Thrust:   defaultThrust,
		TurnStep: defaultTurnStep,
	}
}

// Pending reports whether an edit is waiting for the active ship's next frame.
func (r RelativeState) Pending() bool { return r.pending != nil }

func (r *RelativeState) scale(dir int) {
	if dir > 0 {
		for i := range r.Turn {
			r.Turn[i] += r.TurnStep
		}
		r.Thrust += thrustStep
		return
	}
	for i := range r.Turn {
		if r.Turn[i] > minTurnAngle {
			r.Turn[i] -= r.TurnStep
		}
	}
	if r.Thrust > minThrust {
		r.Thrust -= thrustStep
	}
}

// delta returns the camera-space transform for one edit.
func (r RelativeState) delta(e relativeEdit) pose.Pose {
	s := sign(e.dir)
	switch e.motion {
	case Yaw:
		return pose.RotateY(s * r.Turn[Yaw])
	case Pitch:
		return pose.RotateX(s * r.Turn[Pitch])
	case Roll:
		return pose.RotateZ(s * r.Turn[Roll])
	case Thrust:
		return pose.Translate(0, 0, s*r.Thrust)
	default:
		return pose.Identity()
	}
}

func (c *Context) move(m Motion, dir int) bool {
	if c.mode != Relative || m < 0 || m >= MotionCount {
		return false
	}
	c.relative.pending = &relativeEdit{motion: m, dir: dir}
	return true
}

// relativeCamera applies a pending edit on the active ship's own frame and
// otherwise reloads the ship's cached pose untouched.
func (c *Context) relativeCamera(ship *Ship) pose.Pose {
	if c.relative.pending == nil || ship.ID != c.active {
		return ship.RelativePose
	}
	d := c.relative.delta(*c.relative.pending)
	c.relative.pending = nil
	ship.RelativePose = d.Mul4(ship.RelativePose)
	return ship.RelativePose
}
