package orbit

import "solarnav/internal/pose"

// Capture holds the per-body modelview transforms reported by the last
// completed render of one window.
type Capture struct {
	poses [BodyCount]pose.Pose
	valid [BodyCount]bool
}

// Record stores the modelview of a body.
func (c *Capture) Record(id BodyID, mv pose.Pose) {
	if !id.Valid() {
		return
	}
	c.poses[id] = mv
	c.valid[id] = true
}

// Transform returns the captured modelview of a body and whether one was
// recorded.
func (c *Capture) Transform(id BodyID) (pose.Pose, bool) {
	if !id.Valid() || !c.valid[id] {
		return pose.Pose{}, false
	}
	return c.poses[id], true
}
