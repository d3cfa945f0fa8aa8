package nav

import (
	"errors"
	"fmt"

	"solarnav/internal/orbit"
	"solarnav/internal/pose"
)

const (
	defaultTarget   = orbit.Earth
	defaultStandoff = -1.3
	maxStandoff     = -1.0
	defaultSpeed    = 0.1
	minSpeed        = 0.1
	speedStep       = 0.1

	// Framing offsets applied in the target's frame.
	lockDrop  = -0.3
	lockPitch = 10.0 // degrees
)

// ErrNoCapture means the target body has not been rendered in this window yet.
var ErrNoCapture = errors.New("nav: target body not captured")

// OrbitState is one ship's orbit-lock parameters. Target, Standoff and Speed
// persist across re-entries into OrbitLock. Speed is kept per ship: `=` and `-`
// scale only the active ship's speed, and selecting a target resets only that
// ship's Standoff and Speed.
type OrbitState struct {
	Target   orbit.BodyID
	Standoff float64
	Speed    float64
}

func defaultOrbitState() OrbitState {
	return OrbitState{Target: defaultTarget, Standoff: defaultStandoff, Speed: defaultSpeed}
}

func (o *OrbitState) clamp() {
	if o.Standoff > maxStandoff {
		o.Standoff = maxStandoff
	}
	if o.Speed < minSpeed {
		o.Speed = minSpeed
	}
}

func (c *Context) approach(dir int) bool {
	if c.mode != OrbitLock {
		return false
	}
	o := &c.ships[c.active].Orbit
	o.Standoff += sign(dir) * o.Speed
	o.clamp()
	return true
}

func (c *Context) selectTarget(b orbit.BodyID) bool {
	if c.mode != OrbitLock || b <= orbit.Sun || !b.Valid() {
		return false
	}
	o := &c.ships[c.active].Orbit
	*o = defaultOrbitState()
	o.Target = b
	return true
}

func (c *Context) scaleSpeed(dir int) {
	o := &c.ships[c.active].Orbit
	o.Speed += sign(dir) * speedStep
	o.clamp()
}

// orbitCamera keeps ship locked onto its target when it is the active ship or
// is tracking; otherwise the cached orbit pose is reloaded.
func (c *Context) orbitCamera(ship *Ship) (pose.Pose, error) {
	if ship.ID != c.active && !ship.Tracking {
		return ship.OrbitPose, nil
	}
	v, err := lockOn(ship)
	if err != nil {
		return ship.OrbitPose, err
	}
	ship.OrbitPose = v
	return v, nil
}

// lockOn composes the orbit view from the ship's last world pose and the
// target's last captured modelview, both taken from the same window render.
func lockOn(ship *Ship) (pose.Pose, error) {
	target, ok := ship.Capture.Transform(ship.Orbit.Target)
	if !ok {
		return pose.Pose{}, fmt.Errorf("%v lock on %v: %w", ship.ID, ship.Orbit.Target, ErrNoCapture)
	}
	lastView, err := pose.Invert(ship.LastPose)
	if err != nil {
		return pose.Pose{}, fmt.Errorf("%v last pose: %w", ship.ID, err)
	}
	targetInv, err := pose.Invert(target)
	if err != nil {
		return pose.Pose{}, fmt.Errorf("%v target %v: %w", ship.ID, ship.Orbit.Target, err)
	}
	offset := pose.Translate(0, lockDrop, ship.Orbit.Standoff).Mul4(pose.RotateX(lockPitch))
	return offset.Mul4(targetInv).Mul4(lastView), nil
}
