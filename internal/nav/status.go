package nav

import "solarnav/internal/orbit"

// ShipStatus is a read-only view of one ship for display.
type ShipStatus struct {
	ID       ShipID
	Target   orbit.BodyID
	Standoff float64
	Speed    float64
	Tracking bool
	Settling bool
}

// Status is a snapshot of the navigator for the HUD.
type Status struct {
	Mode   Mode
	Active ShipID
	Ships  [ShipCount]ShipStatus
}

func (c *Context) Status() Status {
	st := Status{Mode: c.mode, Active: c.active}
	for id, s := range c.ships {
		st.Ships[id] = ShipStatus{
			ID:       s.ID,
			Target:   s.Orbit.Target,
			Standoff: s.Orbit.Standoff,
			Speed:    s.Orbit.Speed,
			Tracking: s.Tracking,
			Settling: !s.Settle.Live(),
		}
	}
	return st
}
