package eglo

import (
	"fmt"
	"log/slog"
	"os"
)

// current is the process-wide default session. Access is not synchronized.
var current *Session

// Init opens the default session, closing any previous one first, and
// returns the window size.
func Init(glesVersion int) (width, height int, err error) {
	if err := Quit(); err != nil {
		slog.Warn("eglo: closing previous session", "error", err)
	}

	s, err := Open(WithGLESVersion(glesVersion))
	if err != nil {
		return 0, 0, err
	}
	current = s
	width, height = s.Size()
	return width, height, nil
}

// MustInit is Init that prints the failure to stderr and exits with status 1.
func MustInit(glesVersion int) (width, height int) {
	width, height, err := Init(glesVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eglo: %v\n", err)
		os.Exit(1)
	}
	return width, height
}

// PollEvent polls the default session. Without one it reports no event.
func PollEvent() (Event, bool) {
	return current.PollEvent()
}

// Present presents the default session's frame. Without one it does nothing.
func Present() error {
	return current.Present()
}

// Quit closes the default session. Without one it does nothing.
func Quit() error {
	if current == nil {
		return nil
	}
	err := current.Close()
	current = nil
	return err
}
