package input

import (
	"sync"

	"solarnav/internal/nav"
	"solarnav/internal/orbit"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Binding is what one physical key means. PerMode entries win over Global in
// their mode; a CmdNone entry falls back to Global.
type Binding struct {
	Global  nav.Command
	PerMode [nav.ModeCount]nav.Command
}

// Resolve returns the command the binding issues in mode m. The result has
// Kind CmdNone when the key does nothing in m.
func (b Binding) Resolve(m nav.Mode) nav.Command {
	if m >= 0 && m < nav.ModeCount && b.PerMode[m].Kind != nav.CmdNone {
		return b.PerMode[m]
	}
	return b.Global
}

// Sink receives resolved commands. frame.Controller satisfies it.
type Sink interface {
	Mode() nav.Mode
	Apply(cmd nav.Command)
}

// Manager maps typed characters and special keys to bindings and queues
// every press until the next Dispatch.
type Manager struct {
	mu sync.Mutex

	runes map[rune]Binding
	keys  map[glfw.Key]Binding

	queue []Binding
}

// NewManager creates a Manager with the default key map.
func NewManager() *Manager {
	im := &Manager{
		runes: make(map[rune]Binding),
		keys:  make(map[glfw.Key]Binding),
	}

	im.BindKey(glfw.KeyEscape, Binding{Global: nav.Quit()})
	im.BindKey(glfw.KeyTab, Binding{Global: nav.ToggleShip()})

	im.bindGlobal('<', nav.SelectShip(nav.Scoutship))
	im.bindGlobal('>', nav.SelectShip(nav.Mothership))
	im.bindGlobal('l', nav.SwitchMode(nav.Absolute))
	im.bindGlobal('r', nav.SwitchMode(nav.Relative))
	im.bindGlobal('g', nav.SwitchMode(nav.OrbitLock))
	im.bindGlobal('=', nav.ScaleSteps(+1))
	im.bindGlobal('-', nav.ScaleSteps(-1))
	im.bindGlobal('p', nav.Pause())
	im.bindGlobal('P', nav.Resume())

	// Absolute: lowercase raises an axis, uppercase lowers it.
	for i, r := range "xyzabcdef" {
		axis := nav.EyeX + nav.AbsoluteAxis(i)
		im.bindMode(r, nav.Absolute, nav.AdjustAxis(axis, +1))
		im.bindMode(r-'a'+'A', nav.Absolute, nav.AdjustAxis(axis, -1))
	}

	im.bindMode('q', nav.Relative, nav.Move(nav.Yaw, +1))
	im.bindMode('e', nav.Relative, nav.Move(nav.Yaw, -1))
	im.bindMode('x', nav.Relative, nav.Move(nav.Pitch, +1))
	im.bindMode('c', nav.Relative, nav.Move(nav.Pitch, -1))
	im.bindMode('a', nav.Relative, nav.Move(nav.Roll, +1))
	im.bindMode('d', nav.Relative, nav.Move(nav.Roll, -1))
	im.bindMode('w', nav.Relative, nav.Move(nav.Thrust, +1))
	im.bindMode('s', nav.Relative, nav.Move(nav.Thrust, -1))

	im.bindMode('w', nav.OrbitLock, nav.Approach(+1))
	im.bindMode('s', nav.OrbitLock, nav.Approach(-1))
	for b := orbit.Mercury; b <= orbit.Pluto; b++ {
		im.bindMode(rune('0'+int(b)), nav.OrbitLock, nav.SelectTarget(b))
	}

	return im
}

// BindRune replaces the binding of a typed character.
func (im *Manager) BindRune(r rune, b Binding) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.runes[r] = b
}

// BindKey replaces the binding of a non-printable key.
func (im *Manager) BindKey(key glfw.Key, b Binding) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keys[key] = b
}

// unbindRune removes a character binding.
func (im *Manager) unbindRune(r rune) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.runes, r)
}

func (im *Manager) bindGlobal(r rune, cmd nav.Command) {
	b := im.runes[r]
	b.Global = cmd
	im.runes[r] = b
}

func (im *Manager) bindMode(r rune, m nav.Mode, cmd nav.Command) {
	b := im.runes[r]
	b.PerMode[m] = cmd
	im.runes[r] = b
}

// HandleChar queues the binding of a typed character, if any.
func (im *Manager) HandleChar(r rune) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if b, ok := im.runes[r]; ok {
		im.queue = append(im.queue, b)
	}
}

// HandleKeyEvent queues the binding of a special key on press and repeat.
func (im *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	if b, ok := im.keys[key]; ok {
		im.queue = append(im.queue, b)
	}
}

// Pending returns the number of queued presses.
func (im *Manager) Pending() int {
	im.mu.Lock()
	defer im.mu.Unlock()
	return len(im.queue)
}

// Dispatch resolves queued presses in arrival order against the sink's
// current mode and applies them. A mode key earlier in the queue changes how
// later presses resolve. It returns the number of commands applied.
func (im *Manager) Dispatch(s Sink) int {
	im.mu.Lock()
	queue := im.queue
	im.queue = nil
	im.mu.Unlock()

	n := 0
	for _, b := range queue {
		cmd := b.Resolve(s.Mode())
		if cmd.Kind == nav.CmdNone {
			continue
		}
		s.Apply(cmd)
		n++
	}
	return n
}

// SetCallbacks routes a window's keyboard input into the manager. Both ship
// windows share one manager.
func (im *Manager) SetCallbacks(window *glfw.Window) {
	window.SetCharCallback(func(w *glfw.Window, char rune) {
		im.HandleChar(char)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}
