package eglo

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/1broseidon/eglo/internal/displayenv"
	"github.com/1broseidon/eglo/internal/egl"
	"github.com/1broseidon/eglo/internal/render"
	"github.com/1broseidon/eglo/internal/x11"
)

var (
	ensureDisplayFn = displayenv.Ensure
	openWindowFn    = openX11Window
	loadEGLFn       = loadEGL
)

func openX11Window(display string, width, height int, title string, logger *slog.Logger) (render.Window, error) {
	return x11.OpenWindow(display, width, height, title, logger)
}

func loadEGL() (egl.API, error) {
	return egl.Load()
}

type options struct {
	glesVersion int
	display     string
	logger      *slog.Logger
}

// Option configures Open.
type Option func(*options)

// WithGLESVersion selects the OpenGL ES major version. 2 requests an ES2
// config; any other value requests an ES1 config. The default is 2.
func WithGLESVersion(version int) Option {
	return func(o *options) {
		o.glesVersion = version
	}
}

// WithDisplay sets the display used when DISPLAY is unset. An explicit
// DISPLAY in the environment always wins.
func WithDisplay(display string) Option {
	return func(o *options) {
		o.display = display
	}
}

// WithLogger sets the logger for diagnostics. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Session is one window with its rendering context. The zero value and a
// nil *Session are closed sessions.
type Session struct {
	ctx *render.Context
	log *slog.Logger
}

// Open creates the window and its context and makes the context current. On
// failure it returns an *InitError and holds no resources.
func Open(opts ...Option) (*Session, error) {
	o := options{
		glesVersion: 2,
		display:     DefaultDisplay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	display, err := ensureDisplayFn(o.display)
	if err != nil {
		return nil, &InitError{Reason: ReasonConnectionUnavailable, Err: err}
	}

	runtime.LockOSThread()
	ctx, err := open(o)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}

	w, h := ctx.Size()
	o.logger.Debug("eglo: session open", "version", Version, "display", display, "width", w, "height", h, "gles", o.glesVersion)
	return &Session{ctx: ctx, log: o.logger}, nil
}

func open(o options) (*render.Context, error) {
	// Empty name: X and EGL both resolve the display through $DISPLAY.
	win, err := openWindowFn("", DefaultWidth, DefaultHeight, Title, o.logger)
	if err != nil {
		reason := ReasonWindowFailed
		if errors.Is(err, x11.ErrConnectionUnavailable) {
			reason = ReasonConnectionUnavailable
		}
		return nil, &InitError{Reason: reason, Err: err}
	}

	api, err := loadEGLFn()
	if err != nil {
		if derr := win.Destroy(); derr != nil {
			o.logger.Warn("eglo: destroy window after failed EGL load", "error", derr)
		}
		return nil, &InitError{Reason: ReasonBindingUnavailable, Err: err}
	}

	return render.Open(win, api, o.glesVersion, o.logger)
}

// PollEvent returns the next input event without blocking. It reports false
// when nothing is queued, when the queued event is not one Eglo translates,
// or when the session is closed.
func (s *Session) PollEvent() (Event, bool) {
	if s == nil || s.ctx == nil {
		return Event{}, false
	}
	return s.ctx.PollEvent()
}

// Present shows the rendered frame and resets the screensaver timer. It is a
// no-op on a closed session.
func (s *Session) Present() error {
	if s == nil || s.ctx == nil {
		return nil
	}
	return s.ctx.Present()
}

// Size returns the window geometry, or zeros for a closed session.
func (s *Session) Size() (width, height int) {
	if s == nil || s.ctx == nil {
		return 0, 0
	}
	return s.ctx.Size()
}

// Active reports whether the session still holds its window and context.
func (s *Session) Active() bool {
	return s != nil && s.ctx != nil
}

// Close releases the context, surface, EGL display and window, in that
// order. It is safe to call more than once.
func (s *Session) Close() error {
	if s == nil || s.ctx == nil {
		return nil
	}
	err := s.ctx.Close()
	s.ctx = nil
	runtime.UnlockOSThread()
	return err
}
