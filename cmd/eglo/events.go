package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/eglo"
)

const eventsPollInterval = 5 * time.Millisecond

func runEvents(args []string) int {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	count := fs.Int("count", 0, "Exit after N events, 0 = until interrupted")
	glesVersion := fs.Int("gles", 2, "OpenGL ES major version, 1 or 2")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: eglo events [--count N] [--gles N]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open the window and print each translated event on its own line.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 || *count < 0 {
		fs.Usage()
		return 2
	}

	prepareXAuthority(slog.Default())
	width, height := eglo.MustInit(*glesVersion)
	defer eglo.Quit()
	fmt.Fprintf(os.Stderr, "window %dx%d, waiting for events\n", width, height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := printEvents(ctx, eglo.PollEvent, eglo.Present, os.Stdout, *count, eventsPollInterval); err != nil {
		fmt.Fprintf(os.Stderr, "eglo: %v\n", err)
		return 1
	}
	return 0
}

// printEvents writes one line per event until count events were seen (0 for
// no limit) or ctx ends. present runs once per idle poll so the window keeps
// its frame and the screensaver stays off.
func printEvents(ctx context.Context, poll func() (eglo.Event, bool), present func() error, w io.Writer, count int, interval time.Duration) error {
	seen := 0
	for {
		if ctx.Err() != nil {
			return nil
		}
		ev, ok := poll()
		if ok {
			if _, err := fmt.Fprintln(w, ev.String()); err != nil {
				return err
			}
			seen++
			if count > 0 && seen >= count {
				return nil
			}
			continue
		}

		if err := present(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}
