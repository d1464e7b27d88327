package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

const (
	eventMask = xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskKeyPress |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskButton1Motion

	copyFromParent = 0
	maxDimension   = 0xffff
)

// eventSource is the part of *xgb.Conn used for polling.
type eventSource interface {
	PollForEvent() (xgb.Event, xgb.Error)
}

// Window is a single top-level X window with fixed geometry.
type Window struct {
	conn   *Connection
	events eventSource
	id     xproto.Window
	width  int
	height int
	log    *slog.Logger

	destroyed bool
}

// NewWindow creates, decorates and maps a window of exactly width x height
// at the origin of the root window.
func NewWindow(conn *Connection, width, height int, title string, logger *slog.Logger) (*Window, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}
	if logger == nil {
		logger = slog.Default()
	}

	X := conn.XUtil.Conn()
	wid, err := xproto.NewWindowId(X)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	attrMask, attrValues := windowAttribs()
	err = xproto.CreateWindowChecked(X, copyFromParent, wid, conn.Root,
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, copyFromParent,
		attrMask, attrValues,
	).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	fail := func(step string, err error) (*Window, error) {
		xproto.DestroyWindow(X, wid)
		return nil, fmt.Errorf("failed to %s: %w", step, err)
	}

	// The hint atoms may be missing without a window manager; that is fine.
	if err := ewmh.WmStateSet(conn.XUtil, wid, []string{"_NET_WM_STATE_FULLSCREEN"}); err != nil {
		logger.Debug("x11: fullscreen hint not applied", "window", wid, "error", err)
	}

	if err := icccm.WmHintsSet(conn.XUtil, wid, &icccm.Hints{
		Flags: icccm.HintInput,
		Input: 1,
	}); err != nil {
		return fail("set WM_HINTS", err)
	}

	if err := xproto.MapWindowChecked(X, wid).Check(); err != nil {
		return fail("map window", err)
	}

	if err := icccm.WmNameSet(conn.XUtil, wid, title); err != nil {
		return fail("set WM_NAME", err)
	}
	if err := ewmh.WmNameSet(conn.XUtil, wid, title); err != nil {
		logger.Debug("x11: _NET_WM_NAME not applied", "window", wid, "error", err)
	}

	geomMask, geomValues := geometry(width, height)
	err = xproto.ConfigureWindowChecked(X, wid, geomMask, geomValues).Check()
	if err != nil {
		return fail("apply geometry", err)
	}

	return &Window{
		conn:   conn,
		events: X,
		id:     wid,
		width:  width,
		height: height,
		log:    logger,
	}, nil
}

// windowAttribs returns the CreateWindow value mask and list. Values follow
// mask bit order: override-redirect (off), then the event mask.
func windowAttribs() (uint32, []uint32) {
	return xproto.CwOverrideRedirect | xproto.CwEventMask, []uint32{0, eventMask}
}

// geometry returns the ConfigureWindow value mask and list placing the
// window at the origin with the given size.
func geometry(width, height int) (uint16, []uint32) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	return mask, []uint32{0, 0, uint32(width), uint32(height)}
}

// ID returns the X window id.
func (w *Window) ID() xproto.Window {
	return w.id
}

// Size returns the geometry fixed at creation.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// NativeDisplay returns the EGL native display for this window. It is always
// EGL_DEFAULT_DISPLAY: xgb speaks the wire protocol itself and has no Xlib
// Display, so libEGL opens its own client connection to the same $DISPLAY.
func (w *Window) NativeDisplay() uintptr {
	return 0
}

// NativeWindow returns the window id as an EGL native window handle.
func (w *Window) NativeWindow() uintptr {
	return uintptr(w.id)
}

// ResetIdle tells the server the display is in use, resetting the
// screensaver timer.
func (w *Window) ResetIdle() {
	xproto.ForceScreenSaver(w.conn.XUtil.Conn(), xproto.ScreenSaverReset)
}

// Destroy destroys the window. The connection is not closed: it stays open
// until the process exits.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true
	if err := xproto.DestroyWindowChecked(w.conn.XUtil.Conn(), w.id).Check(); err != nil {
		return fmt.Errorf("failed to destroy window %d: %w", w.id, err)
	}
	return nil
}
