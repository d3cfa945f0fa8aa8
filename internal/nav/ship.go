package nav

import (
	"solarnav/internal/orbit"
	"solarnav/internal/pose"
)

// ShipID identifies one of the two ships. Each ship owns one window.
type ShipID int

const (
	Mothership ShipID = iota
	Scoutship
	ShipCount
)

func (id ShipID) String() string {
	switch id {
	case Mothership:
		return "Falco"
	case Scoutship:
		return "Peppy"
	default:
		return "Unknown"
	}
}

// Other returns the ship that is not id.
func (id ShipID) Other() ShipID {
	if id == Mothership {
		return Scoutship
	}
	return Mothership
}

// Valid reports whether id names one of the two ships.
func (id ShipID) Valid() bool {
	return id == Mothership || id == Scoutship
}

// settleFrames is how many renders of each window load the absolute defaults
// after a mode switch before the mode's own logic takes over.
const settleFrames = 2

// Settle tracks whether a window still has to load the absolute defaults.
// The zero value is Live.
type Settle struct {
	remaining int
}

// NeedsDefaultLoad returns a settle state that loads defaults for n frames.
func NeedsDefaultLoad(n int) Settle { return Settle{remaining: n} }

// Live reports whether the window has finished settling.
func (s Settle) Live() bool { return s.remaining <= 0 }

// Remaining returns the number of default-load frames left.
func (s Settle) Remaining() int { return s.remaining }

func (s *Settle) consume() {
	if s.remaining > 0 {
		s.remaining--
	}
}

// Ship holds everything the navigator knows about one ship.
type Ship struct {
	ID ShipID

	// LastPose is the camera->world transform captured at the end of the
	// ship's last frame. The other window draws the ship model with it.
	LastPose pose.Pose

	// RelativePose and OrbitPose are world->camera transforms cached per mode.
	RelativePose pose.Pose
	OrbitPose    pose.Pose

	// absolutePose is the last good look-at view, reused when the current
	// triple is degenerate.
	absolutePose pose.Pose

	Absolute AbsoluteState
	Orbit    OrbitState

	// Tracking keeps a non-active ship's orbit lock live. Set when control
	// leaves the ship while in OrbitLock, cleared on every mode switch.
	Tracking bool

	Settle Settle

	// Capture holds the body modelviews reported by this ship's window.
	Capture orbit.Capture
}

func newShip(id ShipID) *Ship {
	abs := newAbsoluteState(id)
	view := abs.view()
	last, err := pose.Invert(view)
	if err != nil {
		last = pose.Identity()
	}
	return &Ship{
		ID:           id,
		LastPose:     last,
		RelativePose: view,
		OrbitPose:    view,
		absolutePose: view,
		Absolute:     abs,
		Orbit:        defaultOrbitState(),
		Settle:       NeedsDefaultLoad(settleFrames),
	}
}
