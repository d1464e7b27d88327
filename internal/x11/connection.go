package x11

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// ErrConnectionUnavailable wraps every failure to reach the X server.
var ErrConnectionUnavailable = errors.New("x11: connection unavailable")

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil   *xgbutil.XUtil
	Root    xproto.Window
	Display string
}

// Open establishes a connection to the X server named by display. An empty
// name falls back to $DISPLAY.
func Open(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("%w: display %q: %w", ErrConnectionUnavailable, display, err)
	}

	return &Connection{
		XUtil:   xu,
		Root:    xu.RootWin(),
		Display: display,
	}, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// OpenWindow connects to display and creates a window on it. The connection
// is closed again if the window cannot be created; otherwise it lives on
// past Window.Destroy until the process exits.
func OpenWindow(display string, width, height int, title string, logger *slog.Logger) (*Window, error) {
	conn, err := Open(display)
	if err != nil {
		return nil, err
	}
	win, err := NewWindow(conn, width, height, title, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return win, nil
}
