package observability

import (
	"errors"
	"fmt"
	"time"

	"solarnav/internal/nav"
	"solarnav/internal/pose"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	ticksName        = "solarnav_ticks_total"
	framesName       = "solarnav_frames_total"
	modeSwitchesName = "solarnav_mode_switches_total"
	poseErrorsName   = "solarnav_pose_errors_total"
	tickDurationName = "solarnav_tick_duration_seconds"
)

// Collector bundles the navigator's Prometheus metrics. It satisfies
// frame.Metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks        prometheus.Counter
	Frames       *prometheus.CounterVec
	ModeSwitches *prometheus.CounterVec
	PoseErrors   *prometheus.CounterVec
	TickDuration prometheus.Histogram
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: ticksName,
		Help: "Ticks run by the frame controller.",
	}), ticksName)
	if err != nil {
		return nil, err
	}
	frames, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: framesName,
		Help: "Frames presented, labeled by window.",
	}, []string{"window"}), framesName)
	if err != nil {
		return nil, err
	}
	switches, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: modeSwitchesName,
		Help: "Navigation mode switches, labeled by the mode entered.",
	}, []string{"mode"}), modeSwitchesName)
	if err != nil {
		return nil, err
	}
	poseErrors, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: poseErrorsName,
		Help: "Frames that kept a previous pose, labeled by ship and cause.",
	}, []string{"ship", "cause"}), poseErrorsName)
	if err != nil {
		return nil, err
	}
	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    tickDurationName,
		Help:    "Wall time of one tick (orbit update plus both windows) in seconds.",
		Buckets: []float64{0.001, 0.002, 0.005, 0.01, 0.016, 0.033, 0.05, 0.1, 0.25},
	}), tickDurationName)
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:     gatherer,
		Ticks:        ticks,
		Frames:       frames,
		ModeSwitches: switches,
		PoseErrors:   poseErrors,
		TickDuration: duration,
	}, nil
}

func (c *Collector) ObserveTick(d time.Duration) {
	if c == nil {
		return
	}
	c.Ticks.Inc()
	c.TickDuration.Observe(d.Seconds())
}

func (c *Collector) ObserveFrame(window string) {
	if c == nil {
		return
	}
	c.Frames.WithLabelValues(window).Inc()
}

func (c *Collector) ObserveModeSwitch(mode string) {
	if c == nil {
		return
	}
	c.ModeSwitches.WithLabelValues(mode).Inc()
}

func (c *Collector) ObservePoseError(ship string, err error) {
	if c == nil {
		return
	}
	c.PoseErrors.WithLabelValues(ship, Cause(err)).Inc()
}

// Cause maps a pose error onto a short label value.
func Cause(err error) string {
	switch {
	case errors.Is(err, pose.ErrSingular):
		return "singular"
	case errors.Is(err, pose.ErrDegenerate):
		return "degenerate"
	case errors.Is(err, nav.ErrNoCapture):
		return "no_capture"
	default:
		return "other"
	}
}

// Summary is a point-in-time digest of the collected metrics, logged on
// shutdown.
type Summary struct {
	Ticks      uint64
	Frames     map[string]uint64
	PoseErrors uint64
	MeanTick   time.Duration
}

// Summary gathers the registry and folds the navigator's metrics.
func (c *Collector) Summary() (Summary, error) {
	s := Summary{Frames: map[string]uint64{}}
	mfs, err := c.gatherer.Gather()
	if err != nil {
		return s, fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		switch mf.GetName() {
		case ticksName:
			s.Ticks = sumCounters(mf)
		case poseErrorsName:
			s.PoseErrors = sumCounters(mf)
		case framesName:
			for _, m := range mf.GetMetric() {
				s.Frames[labelValue(m, "window")] += uint64(m.GetCounter().GetValue())
			}
		case tickDurationName:
			for _, m := range mf.GetMetric() {
				h := m.GetHistogram()
				if n := h.GetSampleCount(); n > 0 {
					s.MeanTick = time.Duration(h.GetSampleSum() / float64(n) * float64(time.Second))
				}
			}
		}
	}
	return s, nil
}

func sumCounters(mf *dto.MetricFamily) uint64 {
	var total float64
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	return uint64(total)
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
