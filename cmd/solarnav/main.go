package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"solarnav/internal/config"
	"solarnav/internal/game"
	"solarnav/internal/logging"
	"solarnav/internal/observability"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	tick := flag.Duration("tick", config.DefaultTickInterval, "interval between ticks")
	size := flag.Int("size", config.DefaultWindowSize, "width and height of each ship window, in pixels")
	fov := flag.Float64("fov", config.DefaultFOV, "vertical field of view, in degrees")
	near := flag.Float64("near", config.DefaultNear, "near clip plane")
	far := flag.Float64("far", config.DefaultFar, "far clip plane")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFile := flag.String("log-file", "", "also write logs to this file, rotated")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	flag.Parse()

	config.SetTickInterval(*tick)
	config.SetWindowSize(*size, *size)
	config.SetFOV(*fov)
	config.SetClipPlanes(*near, *far)
	config.SetLogLevel(*logLevel)
	config.SetLogFile(*logFile)

	lg, logCloser, err := logging.New(logging.Config{
		Level:  config.GetLogLevel(),
		Format: *logFormat,
		File:   config.GetLogFile(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "solarnav: %v\n", err)
		os.Exit(2)
	}

	metrics, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		lg.Error("metrics", "err", err)
		os.Exit(1)
	}

	// Runs on normal exit and on SIGINT/SIGTERM. GL teardown stays in run,
	// on the main thread.
	closer.Bind(func() {
		if s, err := metrics.Summary(); err != nil {
			lg.Warn("metrics summary", "err", err)
		} else {
			lg.Info("session summary",
				"ticks", s.Ticks,
				"frames", s.Frames,
				"pose_errors", s.PoseErrors,
				"mean_tick", s.MeanTick)
		}
		if err := logCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "solarnav: close log: %v\n", err)
		}
	})
	defer closer.Close()

	if err := run(lg, metrics); err != nil {
		lg.Error("solarnav failed", "err", err)
		closer.Exit(1)
	}
}

func run(lg *slog.Logger, metrics *observability.Collector) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	windows, err := game.SetupWindows()
	if err != nil {
		return fmt.Errorf("open windows: %w", err)
	}

	app, err := game.New(windows, lg, metrics)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run()
	return nil
}
