package nav

import (
	"solarnav/internal/pose"

	"github.com/go-gl/mathgl/mgl64"
)

// AbsoluteAxis indexes one coordinate of the eye/look-at/up triple.
type AbsoluteAxis int

const (
	EyeX AbsoluteAxis = iota
	EyeY
	EyeZ
	LookAtX
	LookAtY
	LookAtZ
	UpX
	UpY
	UpZ
	AxisCount
)

const (
	defaultAxisStep = 0.1
	minAxisStep     = 0.1
	axisStepDelta   = 0.05
)

var absoluteDefaults = [ShipCount][AxisCount]float64{
	Mothership: {0, 10, 20, 0, 2, -1, 0, 1, 0},
	Scoutship:  {0, 8, 16, 0, 2.3, -1, 0, 1, 0},
}

// AbsoluteState is one ship's look-at triple. Default is restored into
// Current whenever the window settles after a mode switch.
type AbsoluteState struct {
	Current [AxisCount]float64
	Default [AxisCount]float64
}

func newAbsoluteState(id ShipID) AbsoluteState {
	return AbsoluteState{Current: absoluteDefaults[id], Default: absoluteDefaults[id]}
}

func (a AbsoluteState) view() pose.Pose {
	v, err := lookAt(a.Current)
	if err != nil {
		return pose.Identity()
	}
	return v
}

func lookAt(c [AxisCount]float64) (pose.Pose, error) {
	return pose.LookAt(
		mgl64.Vec3{c[EyeX], c[EyeY], c[EyeZ]},
		mgl64.Vec3{c[LookAtX], c[LookAtY], c[LookAtZ]},
		mgl64.Vec3{c[UpX], c[UpY], c[UpZ]},
	)
}

// AbsoluteSteps are the per-axis increments, shared by both ships.
type AbsoluteSteps [AxisCount]float64

func defaultAbsoluteSteps() AbsoluteSteps {
	var s AbsoluteSteps
	for i := range s {
		s[i] = defaultAxisStep
	}
	return s
}

func (s *AbsoluteSteps) scale(dir int) {
	for i := range s {
		s[i] += sign(dir) * axisStepDelta
		if s[i] < minAxisStep {
			s[i] = minAxisStep
		}
	}
}

func (c *Context) adjustAxis(axis AbsoluteAxis, dir int) bool {
	if c.mode != Absolute || axis < 0 || axis >= AxisCount {
		return false
	}
	ship := c.ships[c.active]
	ship.Absolute.Current[axis] += sign(dir) * c.steps[axis]
	return true
}

// absoluteCamera recomputes the look-at view from the live triple. A
// degenerate triple keeps the last good view.
func (c *Context) absoluteCamera(ship *Ship) (pose.Pose, error) {
	v, err := lookAt(ship.Absolute.Current)
	if err != nil {
		return ship.absolutePose, err
	}
	ship.absolutePose = v
	return v, nil
}

// loadDefaults restores the absolute defaults and seeds the per-mode caches
// with the resulting view.
func (c *Context) loadDefaults(ship *Ship) pose.Pose {
	ship.Absolute.Current = ship.Absolute.Default
	v, err := lookAt(ship.Absolute.Default)
	if err != nil {
		v = ship.absolutePose
	}
	ship.absolutePose = v
	ship.RelativePose = v
	ship.OrbitPose = v
	ship.Settle.consume()
	return v
}
