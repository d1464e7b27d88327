// Package eglo is a minimal X11/EGL platform layer: it opens one fixed-size
// window, binds an OpenGL ES context to it, and turns X input into a small
// set of events.
//
// A program either owns a Session explicitly:
//
//	s, err := eglo.Open(eglo.WithGLESVersion(2))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//	for running {
//		for ev, ok := s.PollEvent(); ok; ev, ok = s.PollEvent() {
//			handle(ev)
//		}
//		draw()
//		s.Present()
//	}
//
// or uses the process-wide default session through Init, PollEvent, Present
// and Quit.
//
// EGL binds the current context to an OS thread. Open locks the calling
// goroutine to its thread; open, draw, present and close from that
// goroutine.
package eglo

import (
	"github.com/1broseidon/eglo/internal/displayenv"
	"github.com/1broseidon/eglo/internal/input"
	"github.com/1broseidon/eglo/internal/render"
)

const (
	// DefaultWidth and DefaultHeight are the fixed window geometry.
	DefaultWidth  = 481
	DefaultHeight = 272

	// Title is the window name shown by window managers.
	Title = "EGLO"

	// DefaultDisplay is set as DISPLAY when the environment has none.
	DefaultDisplay = displayenv.DefaultDisplay

	// Version identifies this build of the layer.
	Version = "eglo 0.1.0"
)

// Event is a translated input event.
type Event = input.Event

// EventType identifies the kind of an Event.
type EventType = input.Type

const (
	MouseMotion = input.MouseMotion
	MouseDown   = input.MouseDown
	MouseUp     = input.MouseUp
	KeyDown     = input.KeyDown
	KeyUp       = input.KeyUp
)

// InitError reports why a session could not be opened.
type InitError = render.InitError

// Reason classifies an InitError.
type Reason = render.Reason

const (
	ReasonConnectionUnavailable = render.ReasonConnectionUnavailable
	ReasonWindowFailed          = render.ReasonWindowFailed
	ReasonBindingUnavailable    = render.ReasonBindingUnavailable
	ReasonInitFailed            = render.ReasonInitFailed
	ReasonBadConfigCount        = render.ReasonBadConfigCount
	ReasonSurfaceFailed         = render.ReasonSurfaceFailed
	ReasonContextFailed         = render.ReasonContextFailed
)
