package nav

import "solarnav/internal/orbit"

// Mode is the process-wide navigation mode.
type Mode int

const (
	Absolute Mode = iota
	Relative
	OrbitLock
	ModeCount
)

func (m Mode) String() string {
	switch m {
	case Absolute:
		return "Absolute"
	case Relative:
		return "Relative"
	case OrbitLock:
		return "Orbit-Lock"
	default:
		return "Unknown"
	}
}

// CommandKind says what a Command does.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdSelectShip
	CmdToggleShip
	CmdSwitchMode
	CmdAbsoluteAxis
	CmdRelativeMotion
	CmdApproach
	CmdSelectTarget
	CmdScaleSteps
	CmdPause
	CmdResume
	CmdQuit
)

var commandKindNames = [...]string{
	CmdNone:           "none",
	CmdSelectShip:     "select-ship",
	CmdToggleShip:     "toggle-ship",
	CmdSwitchMode:     "switch-mode",
	CmdAbsoluteAxis:   "absolute-axis",
	CmdRelativeMotion: "relative-motion",
	CmdApproach:       "approach",
	CmdSelectTarget:   "select-target",
	CmdScaleSteps:     "scale-steps",
	CmdPause:          "pause",
	CmdResume:         "resume",
	CmdQuit:           "quit",
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandKindNames) {
		return "unknown"
	}
	return commandKindNames[k]
}

// Command is a decoded input event. Only the fields relevant to Kind are set;
// Dir is +1 or -1.
type Command struct {
	Kind   CommandKind
	Ship   ShipID
	Mode   Mode
	Axis   AbsoluteAxis
	Motion Motion
	Body   orbit.BodyID
	Dir    int
}

func SelectShip(id ShipID) Command { return Command{Kind: CmdSelectShip, Ship: id} }
func ToggleShip() Command          { return Command{Kind: CmdToggleShip} }
func SwitchMode(m Mode) Command    { return Command{Kind: CmdSwitchMode, Mode: m} }

func AdjustAxis(a AbsoluteAxis, dir int) Command {
	return Command{Kind: CmdAbsoluteAxis, Axis: a, Dir: dir}
}

func Move(m Motion, dir int) Command {
	return Command{Kind: CmdRelativeMotion, Motion: m, Dir: dir}
}

// Approach moves the active ship toward (dir > 0) or away from its target.
func Approach(dir int) Command { return Command{Kind: CmdApproach, Dir: dir} }

func SelectTarget(b orbit.BodyID) Command { return Command{Kind: CmdSelectTarget, Body: b} }
func ScaleSteps(dir int) Command          { return Command{Kind: CmdScaleSteps, Dir: dir} }

func Pause() Command  { return Command{Kind: CmdPause} }
func Resume() Command { return Command{Kind: CmdResume} }
func Quit() Command   { return Command{Kind: CmdQuit} }

func sign(dir int) float64 {
	if dir < 0 {
		return -1
	}
	return 1
}
