package frame

import (
	"log/slog"
	"time"

	"solarnav/internal/nav"
	"solarnav/internal/orbit"
	"solarnav/internal/profiling"
)

// Controller drives one tick of the whole program: advance the orbits once,
// then render the Falco window followed by the Peppy window.
type Controller struct {
	nav       *nav.Context
	sys       *orbit.System
	renderers [nav.ShipCount]Renderer

	log     *slog.Logger
	metrics Metrics

	quit bool
}

// Options configure a Controller. Zero values fall back to defaults.
type Options struct {
	Logger  *slog.Logger
	Metrics Metrics
	System  *orbit.System
	Nav     *nav.Context
}

// NewController builds a controller over one renderer per ship.
func NewController(renderers [nav.ShipCount]Renderer, opts Options) *Controller {
	c := &Controller{
		nav:       opts.Nav,
		sys:       opts.System,
		renderers: renderers,
		log:       opts.Logger,
		metrics:   opts.Metrics,
	}
	if c.nav == nil {
		c.nav = nav.NewContext()
	}
	if c.sys == nil {
		c.sys = orbit.NewSystem()
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	if c.metrics == nil {
		c.metrics = nopMetrics{}
	}
	return c
}

func (c *Controller) Nav() *nav.Context     { return c.nav }
func (c *Controller) System() *orbit.System { return c.sys }

// Mode returns the current navigation mode.
func (c *Controller) Mode() nav.Mode { return c.nav.Mode() }

// Quitting reports whether a quit has been requested.
func (c *Controller) Quitting() bool { return c.quit }

// Apply handles one decoded input command. Pause, resume and quit act on the
// controller; everything else goes to the navigator.
func (c *Controller) Apply(cmd nav.Command) {
	switch cmd.Kind {
	case nav.CmdNone:
		return
	case nav.CmdPause:
		c.sys.Pause()
		c.log.Info("orbits paused")
	case nav.CmdResume:
		c.sys.Resume()
		c.log.Info("orbits resumed")
	case nav.CmdQuit:
		c.quit = true
		c.log.Info("quit requested")
	default:
		if !c.nav.Apply(cmd) {
			c.log.Debug("command ignored", "command", cmd.Kind, "mode", c.nav.Mode())
			return
		}
		switch cmd.Kind {
		case nav.CmdSwitchMode:
			c.metrics.ObserveModeSwitch(c.nav.Mode().String())
			c.log.Info("mode switched", "mode", c.nav.Mode())
		case nav.CmdSelectShip, nav.CmdToggleShip:
			c.log.Info("active ship", "ship", c.nav.Active())
		case nav.CmdSelectTarget:
			ship := c.nav.Ship(c.nav.Active())
			c.log.Info("orbit target", "ship", ship.ID, "target", ship.Orbit.Target)
		}
	}
}

// Tick runs one tick. It returns false, without drawing, once quit was
// requested; the caller then tears down.
func (c *Controller) Tick() bool {
	if c.quit {
		return false
	}
	profiling.ResetTick()
	start := time.Now()
	stop := profiling.Track("frame.Tick")

	c.sys.Tick()
	for id := nav.Mothership; id < nav.ShipCount; id++ {
		c.RenderWindow(id)
	}

	stop()
	c.metrics.ObserveTick(time.Since(start))
	return true
}

// RenderWindow draws one ship's window. The other ship's pose is snapshotted
// before this window's camera is computed so a ship is always drawn where its
// own window last put it.
func (c *Controller) RenderWindow(id nav.ShipID) {
	defer profiling.Track("frame.RenderWindow")()

	other := c.nav.Ship(id.Other()).LastPose

	camera, err := c.nav.Camera(id)
	if err != nil {
		c.poseError(id, "camera", err)
	}

	r := c.renderers[id]
	r.BeginFrame()
	r.DrawShip(camera, other)
	capture := r.DrawSolarSystem(camera, c.sys)

	if err := c.nav.Commit(id, camera, capture); err != nil {
		c.poseError(id, "commit", err)
	}

	r.DrawStatus(c.nav.Status(), c.sys.Paused())
	r.Present()
	c.metrics.ObserveFrame(id.String())
}

func (c *Controller) poseError(id nav.ShipID, stage string, err error) {
	c.log.Debug("keeping previous pose", "ship", id, "stage", stage, "err", err)
	c.metrics.ObservePoseError(id.String(), err)
}
