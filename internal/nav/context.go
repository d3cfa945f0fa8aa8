package nav

import (
	"fmt"

	"solarnav/internal/orbit"
	"solarnav/internal/pose"
)

// Context is the navigation state shared by both windows: the mode is global,
// camera positions are per ship. It is owned by the frame controller and only
// touched from the render/input thread.
type Context struct {
	mode   Mode
	active ShipID
	ships  [ShipCount]*Ship

	steps    AbsoluteSteps
	relative RelativeState
}

// NewContext starts in Absolute mode with the Mothership active and both
// windows due to load their defaults.
func NewContext() *Context {
	c := &Context{
		mode:     Absolute,
		active:   Mothership,
		steps:    defaultAbsoluteSteps(),
		relative: defaultRelativeState(),
	}
	for id := Mothership; id < ShipCount; id++ {
		c.ships[id] = newShip(id)
	}
	return c
}

func (c *Context) Mode() Mode           { return c.mode }
func (c *Context) Active() ShipID       { return c.active }
func (c *Context) Ship(id ShipID) *Ship { return c.ships[id] }

// Steps returns the shared absolute-mode step sizes.
func (c *Context) Steps() AbsoluteSteps { return c.steps }

// Relative returns the flight speeds and pending-edit state.
func (c *Context) Relative() RelativeState { return c.relative }

// Apply runs one input command. It returns false when the command does not
// apply in the current state; such commands are ignored, not errors.
// Pause, resume and quit belong to the frame controller and are never handled
// here.
func (c *Context) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdSelectShip:
		return c.selectShip(cmd.Ship)
	case CmdToggleShip:
		return c.selectShip(c.active.Other())
	case CmdSwitchMode:
		return c.switchMode(cmd.Mode)
	case CmdAbsoluteAxis:
		return c.adjustAxis(cmd.Axis, cmd.Dir)
	case CmdRelativeMotion:
		return c.move(cmd.Motion, cmd.Dir)
	case CmdApproach:
		return c.approach(cmd.Dir)
	case CmdSelectTarget:
		return c.selectTarget(cmd.Body)
	case CmdScaleSteps:
		c.scaleSteps(cmd.Dir)
		return true
	default:
		return false
	}
}

func (c *Context) selectShip(id ShipID) bool {
	if !id.Valid() || id == c.active {
		return false
	}
	if c.mode == OrbitLock {
		c.ships[c.active].Tracking = true
	}
	c.active = id
	return true
}

func (c *Context) switchMode(m Mode) bool {
	if m < 0 || m >= ModeCount || m == c.mode {
		return false
	}
	c.mode = m
	c.relative.pending = nil
	for _, s := range c.ships {
		s.Tracking = false
		s.Settle = NeedsDefaultLoad(settleFrames)
	}
	return true
}

func (c *Context) scaleSteps(dir int) {
	switch c.mode {
	case Absolute:
		c.steps.scale(dir)
	case Relative:
		c.relative.scale(dir)
	case OrbitLock:
		c.scaleSpeed(dir)
	}
}

// Camera returns the world->camera transform for id's window this frame.
// A non-nil error means the mode's computation failed and the returned pose
// is the ship's previous cached one; the frame must still be drawn.
func (c *Context) Camera(id ShipID) (pose.Pose, error) {
	ship := c.ships[id]
	if !ship.Settle.Live() {
		return c.loadDefaults(ship), nil
	}
	switch c.mode {
	case Relative:
		return c.relativeCamera(ship), nil
	case OrbitLock:
		return c.orbitCamera(ship)
	default:
		return c.absoluteCamera(ship)
	}
}

// Commit records the end of id's frame: the body capture reported by the
// renderer and the camera's world pose. A singular camera keeps the previous
// LastPose.
func (c *Context) Commit(id ShipID, camera pose.Pose, capture orbit.Capture) error {
	ship := c.ships[id]
	ship.Capture = capture
	world, err := pose.Invert(camera)
	if err != nil {
		return fmt.Errorf("commit %v: %w", id, err)
	}
	ship.LastPose = world
	return nil
}
