package render

import (
	"errors"
	"fmt"

	"github.com/1broseidon/eglo/internal/egl"
)

// ErrClosed is returned when a closed Context is used.
var ErrClosed = errors.New("render: context closed")

// Reason classifies why a session could not be established.
type Reason int

const (
	ReasonConnectionUnavailable Reason = iota + 1
	ReasonWindowFailed
	ReasonBindingUnavailable
	ReasonInitFailed
	ReasonBadConfigCount
	ReasonSurfaceFailed
	ReasonContextFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonConnectionUnavailable:
		return "connection-unavailable"
	case ReasonWindowFailed:
		return "window-failed"
	case ReasonBindingUnavailable:
		return "binding-unavailable"
	case ReasonInitFailed:
		return "init-failed"
	case ReasonBadConfigCount:
		return "bad-config-count"
	case ReasonSurfaceFailed:
		return "surface-failed"
	case ReasonContextFailed:
		return "context-failed"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// InitError reports a failed construction. Nothing acquired before the
// failure survives it.
type InitError struct {
	Reason Reason
	// Code is the EGL error code, or 0 when the step has none.
	Code int32
	// Count is the number of configs returned for ReasonBadConfigCount.
	Count int32
	Err   error
}

func (e *InitError) Error() string {
	msg := e.message()
	if e.Code != 0 {
		msg += " (eglError: " + egl.ErrorString(e.Code) + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InitError) Unwrap() error {
	return e.Err
}

func (e *InitError) message() string {
	switch e.Reason {
	case ReasonConnectionUnavailable:
		return "cannot connect to X server"
	case ReasonWindowFailed:
		return "cannot create window"
	case ReasonBindingUnavailable:
		return "got no EGL display"
	case ReasonInitFailed:
		return "unable to initialize EGL"
	case ReasonBadConfigCount:
		return fmt.Sprintf("didn't get exactly one config, but %d", e.Count)
	case ReasonSurfaceFailed:
		return "unable to create EGL surface"
	case ReasonContextFailed:
		return "unable to create EGL context"
	default:
		return e.Reason.String()
	}
}
