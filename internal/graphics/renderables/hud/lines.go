package hud

import (
	"fmt"

	"solarnav/internal/nav"
)

// Lines returns the status text for one window, top to bottom.
func Lines(window nav.ShipID, st nav.Status, paused bool) []string {
	name := window.String()
	if window == st.Active {
		name += " *"
	}
	lines := []string{name, "Mode: " + st.Mode.String()}

	if st.Mode == nav.OrbitLock && window.Valid() {
		s := st.Ships[window]
		target := "Target: " + s.Target.String()
		if s.Tracking {
			target += " (tracking)"
		}
		lines = append(lines,
			target,
			fmt.Sprintf("Standoff: %.2f", s.Standoff),
			fmt.Sprintf("Speed: %.2f", s.Speed),
		)
	}
	if paused {
		lines = append(lines, "orbits paused")
	}
	return lines
}
