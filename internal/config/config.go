package config

import (
	"sync"
	"time"
)

// Settings holds process-wide runtime configuration. cmd/solarnav sets it
// from flags before any window opens.
type Settings struct {
	mu sync.RWMutex

	tickInterval time.Duration
	windowWidth  int
	windowHeight int
	fovDegrees   float64
	near, far    float64
	logLevel     string
	logFile      string
}

const (
	DefaultTickInterval = time.Second / 30
	DefaultWindowSize   = 512
	DefaultFOV          = 70.0
	DefaultNear         = 0.1
	DefaultFar          = 2000.0

	minTickInterval = 5 * time.Millisecond
	maxTickInterval = time.Second
	minWindowSize   = 64
	maxWindowSize   = 4096
	minFOV          = 10.0
	maxFOV          = 150.0
)

var global = defaults()

func defaults() *Settings {
	return &Settings{
		tickInterval: DefaultTickInterval,
		windowWidth:  DefaultWindowSize,
		windowHeight: DefaultWindowSize,
		fovDegrees:   DefaultFOV,
		near:         DefaultNear,
		far:          DefaultFar,
		logLevel:     "info",
	}
}

// Reset restores every setting to its default.
func Reset() {
	d := defaults()
	global.mu.Lock()
	defer global.mu.Unlock()
	global.tickInterval = d.tickInterval
	global.windowWidth, global.windowHeight = d.windowWidth, d.windowHeight
	global.fovDegrees = d.fovDegrees
	global.near, global.far = d.near, d.far
	global.logLevel, global.logFile = d.logLevel, d.logFile
}

// GetTickInterval returns the time between two ticks.
func GetTickInterval() time.Duration {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.tickInterval
}

// SetTickInterval sets the tick period, clamped to [5ms, 1s].
func SetTickInterval(d time.Duration) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if d < minTickInterval {
		d = minTickInterval
	}
	if d > maxTickInterval {
		d = maxTickInterval
	}
	global.tickInterval = d
}

// GetWindowSize returns the size of each of the two windows.
func GetWindowSize() (width, height int) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.windowWidth, global.windowHeight
}

// SetWindowSize sets the window size; each side is clamped to [64, 4096].
func SetWindowSize(width, height int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.windowWidth = clampInt(width, minWindowSize, maxWindowSize)
	global.windowHeight = clampInt(height, minWindowSize, maxWindowSize)
}

// GetFOV returns the vertical field of view in degrees.
func GetFOV() float64 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fovDegrees
}

func SetFOV(deg float64) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if deg < minFOV {
		deg = minFOV
	}
	if deg > maxFOV {
		deg = maxFOV
	}
	global.fovDegrees = deg
}

// GetClipPlanes returns the near and far clip distances.
func GetClipPlanes() (near, far float64) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.near, global.far
}

// SetClipPlanes ignores non-positive or inverted ranges.
func SetClipPlanes(near, far float64) {
	if near <= 0 || far <= near {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.near, global.far = near, far
}

func GetLogLevel() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logLevel
}

func SetLogLevel(level string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logLevel = level
}

// GetLogFile returns the rotated log file path; empty logs to stderr only.
func GetLogFile() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logFile
}

func SetLogFile(path string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logFile = path
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
