package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/eglo"
	"github.com/1broseidon/eglo/internal/config"
	"github.com/1broseidon/eglo/internal/gles"
)

type frameSession interface {
	PollEvent() (eglo.Event, bool)
	Present() error
}

type clearer interface {
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
}

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file (default ~/.config/eglo/config.yaml)")
	glesVersion := fs.Int("gles", 0, "OpenGL ES major version, 1 or 2 (overrides config)")
	frames := fs.Int("frames", -1, "Stop after N frames, 0 = until interrupted (overrides config)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: eglo run [--config PATH] [--gles N] [--frames N] [--log-level L]")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *glesVersion != 0 {
		cfg.GLESVersion = *glesVersion
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := newLogger(os.Stderr, cfg.SlogLevel())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prepareXAuthority(logger)
	s, err := eglo.Open(
		eglo.WithGLESVersion(cfg.GLESVersion),
		eglo.WithDisplay(cfg.Display),
		eglo.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eglo: %v\n", err)
		return 1
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("eglo: close", "error", err)
		}
	}()

	gl, err := gles.Load(cfg.GLESVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eglo: %v\n", err)
		return 1
	}
	width, height := s.Size()
	gl.Viewport(0, 0, width, height)

	start := time.Now()
	n, err := renderLoop(ctx, s, gl, cfg, logger)
	logger.Info("eglo: render loop finished", "frames", n, "elapsed", time.Since(start).Round(time.Millisecond))
	if err != nil {
		fmt.Fprintf(os.Stderr, "eglo: %v\n", err)
		return 1
	}
	return 0
}

// renderLoop drains input, clears, and presents until the frame budget is
// spent, a key is pressed (when configured), ctx ends, or Present fails.
func renderLoop(ctx context.Context, s frameSession, gl clearer, cfg *config.Config, logger *slog.Logger) (int, error) {
	frames := 0
	c := cfg.ClearColor
	for {
		if cfg.Frames > 0 && frames >= cfg.Frames {
			return frames, nil
		}
		if ctx.Err() != nil {
			return frames, nil
		}

		for {
			ev, ok := s.PollEvent()
			if !ok {
				break
			}
			logger.Debug("eglo: event", "event", ev.String())
			if ev.Type == eglo.KeyDown && cfg.GetQuitOnKey() {
				return frames, nil
			}
		}

		gl.ClearColor(c[0], c[1], c[2], c[3])
		gl.Clear(gles.ColorBufferBit)
		if err := s.Present(); err != nil {
			return frames, err
		}
		frames++

		if cfg.FrameInterval > 0 {
			select {
			case <-ctx.Done():
				return frames, nil
			case <-time.After(cfg.FrameInterval):
			}
		}
	}
}
