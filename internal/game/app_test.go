package game

import (
	"testing"

	"solarnav/internal/frame"
	"solarnav/internal/input"
	"solarnav/internal/nav"
	"solarnav/internal/orbit"
	"solarnav/internal/pose"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type fakeWindow struct{ closing bool }

func (w *fakeWindow) ShouldClose() bool { return w.closing }

type countingRenderer struct{ frames int }

func (r *countingRenderer) BeginFrame()                    {}
func (r *countingRenderer) DrawShip(view, world pose.Pose) {}
func (r *countingRenderer) DrawSolarSystem(view pose.Pose, sys *orbit.System) orbit.Capture {
	return sys.Traverse(view, nil)
}
func (r *countingRenderer) DrawStatus(nav.Status, bool) {}
func (r *countingRenderer) Present()                    { r.frames++ }

type harness struct {
	app       *App
	windows   [nav.ShipCount]*fakeWindow
	renderers [nav.ShipCount]*countingRenderer
	input     *input.Manager
	polls     int
}

func newHarness() *harness {
	h := &harness{input: input.NewManager()}
	var (
		ws [nav.ShipCount]Window
		rs [nav.ShipCount]frame.Renderer
	)
	for id := range h.windows {
		h.windows[id] = &fakeWindow{}
		h.renderers[id] = &countingRenderer{}
		ws[id] = h.windows[id]
		rs[id] = h.renderers[id]
	}
	h.app = newApp(ws, rs, h.input, nil, nil)
	h.app.pollEvents = func() { h.polls++ }
	return h
}

func TestStepTicksBothWindows(t *testing.T) {
	h := newHarness()
	if !h.app.step() {
		t.Fatalf("step stopped on first tick")
	}
	if h.polls != 1 {
		t.Errorf("polled %d times, want 1", h.polls)
	}
	for id, r := range h.renderers {
		if r.frames != 1 {
			t.Errorf("window %v presented %d frames, want 1", nav.ShipID(id), r.frames)
		}
	}
}

func TestStepDispatchesInputBeforeTick(t *testing.T) {
	h := newHarness()
	h.input.HandleChar('g')
	h.input.HandleChar('6')

	h.app.step()

	c := h.app.Controller()
	if c.Mode() != nav.OrbitLock {
		t.Fatalf("mode = %v, want %v", c.Mode(), nav.OrbitLock)
	}
	if got := c.Nav().Ship(nav.Mothership).Orbit.Target; got != orbit.Saturn {
		t.Fatalf("target = %v, want %v", got, orbit.Saturn)
	}
}

func TestStepStopsWhenWindowCloses(t *testing.T) {
	h := newHarness()
	h.app.step()

	h.windows[nav.Scoutship].closing = true
	if h.app.step() {
		t.Fatalf("step kept running after a window closed")
	}
	for id, r := range h.renderers {
		if r.frames != 1 {
			t.Errorf("window %v presented %d frames after close, want 1", nav.ShipID(id), r.frames)
		}
	}
}

func TestStepStopsOnQuitKey(t *testing.T) {
	h := newHarness()
	h.input.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if h.app.step() {
		t.Fatalf("step kept running after Esc")
	}
}

func TestCloseWithoutRenderers(t *testing.T) {
	h := newHarness()
	h.app.Close()
	h.app.Close()
}
