package render

import (
	"errors"
	"slices"
	"testing"

	"github.com/1broseidon/eglo/internal/egl"
	"github.com/1broseidon/eglo/internal/egl/egltest"
	"github.com/1broseidon/eglo/internal/input"
)

type fakeWindow struct {
	rec        *egltest.Recorder
	events     []input.Event
	idleResets int
	destroyed  int
	destroyErr error
}

func (w *fakeWindow) Size() (int, int)       { return 481, 272 }
func (w *fakeWindow) NativeDisplay() uintptr { return egl.DefaultDisplay }
func (w *fakeWindow) NativeWindow() uintptr  { return 0x400001 }

func (w *fakeWindow) Poll() (input.Event, bool) {
	if len(w.events) == 0 {
		return input.Event{}, false
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev, true
}

func (w *fakeWindow) ResetIdle() {
	w.rec.Record("ResetIdle")
	w.idleResets++
}

func (w *fakeWindow) Destroy() error {
	w.rec.Record("DestroyWindow")
	w.destroyed++
	return w.destroyErr
}

func newFakes() (*egltest.Recorder, *egltest.API, *fakeWindow) {
	rec := &egltest.Recorder{}
	return rec, egltest.New(rec), &fakeWindow{rec: rec}
}

func TestOpenAcquiresInOrder(t *testing.T) {
	rec, api, win := newFakes()

	c, err := Open(win, api, 2, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	want := []string{"GetDisplay", "Initialize", "ChooseConfig", "CreateWindowSurface", "CreateContext", "MakeCurrent"}
	if !slices.Equal(rec.Calls, want) {
		t.Fatalf("calls = %v, want %v", rec.Calls, want)
	}
	if api.SurfaceWindow != win.NativeWindow() {
		t.Fatalf("surface bound to %#x, want %#x", api.SurfaceWindow, win.NativeWindow())
	}
	if w, h := c.Size(); w != 481 || h != 272 {
		t.Fatalf("Size() = %d,%d", w, h)
	}
	if c.Version() != 2 {
		t.Fatalf("Version() = %d", c.Version())
	}
}

func TestConfigRequestUsesRenderableBit(t *testing.T) {
	tests := []struct {
		version int
		bit     int32
	}{
		{2, egl.OpenGLES2Bit},
		{1, egl.OpenGLESBit},
		{3, egl.OpenGLESBit},
		{0, egl.OpenGLESBit},
	}
	for _, tt := range tests {
		_, api, win := newFakes()
		if _, err := Open(win, api, tt.version, nil); err != nil {
			t.Fatalf("version %d: Open: %v", tt.version, err)
		}
		want := []int32{egl.RenderableType, tt.bit, egl.None}
		if !slices.Equal(api.ConfigAttribs, want) {
			t.Fatalf("version %d: config attribs = %#x, want %#x", tt.version, api.ConfigAttribs, want)
		}
		wantCtx := []int32{egl.ContextClientVersion, int32(tt.version), egl.None}
		if !slices.Equal(api.ContextAttribs, wantCtx) {
			t.Fatalf("version %d: context attribs = %#x, want %#x", tt.version, api.ContextAttribs, wantCtx)
		}
	}
}

func TestCloseReleasesInReverseOrder(t *testing.T) {
	rec, api, win := newFakes()
	c, err := Open(win, api, 2, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec.Calls = nil

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := []string{"ReleaseCurrent", "DestroyContext", "DestroySurface", "Terminate", "DestroyWindow"}
	if !slices.Equal(rec.Calls, want) {
		t.Fatalf("calls = %v, want %v", rec.Calls, want)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if win.destroyed != 1 {
		t.Fatalf("window destroyed %d times", win.destroyed)
	}
	if len(rec.Calls) != len(want) {
		t.Fatalf("second Close issued calls: %v", rec.Calls[len(want):])
	}
}

func TestCloseReportsWindowError(t *testing.T) {
	_, api, win := newFakes()
	win.destroyErr = errors.New("BadWindow")
	c, err := Open(win, api, 2, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.Close(); !errors.Is(err, win.destroyErr) {
		t.Fatalf("Close error = %v, want %v", err, win.destroyErr)
	}
}

func TestOpenFailureRollsBack(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*egltest.API)
		reason Reason
		calls  []string
	}{
		{
			name:   "no display",
			setup:  func(a *egltest.API) { a.FailGetDisplay = true },
			reason: ReasonBindingUnavailable,
			calls:  []string{"GetDisplay", "DestroyWindow"},
		},
		{
			name:   "initialize",
			setup:  func(a *egltest.API) { a.FailInitialize = true },
			reason: ReasonInitFailed,
			calls:  []string{"GetDisplay", "Initialize", "DestroyWindow"},
		},
		{
			name:   "choose config",
			setup:  func(a *egltest.API) { a.FailChooseConfig = true },
			reason: ReasonBadConfigCount,
			calls:  []string{"GetDisplay", "Initialize", "ChooseConfig", "Terminate", "DestroyWindow"},
		},
		{
			name:   "zero configs",
			setup:  func(a *egltest.API) { a.ConfigCount = 0 },
			reason: ReasonBadConfigCount,
			calls:  []string{"GetDisplay", "Initialize", "ChooseConfig", "Terminate", "DestroyWindow"},
		},
		{
			name:   "two configs",
			setup:  func(a *egltest.API) { a.ConfigCount = 2 },
			reason: ReasonBadConfigCount,
			calls:  []string{"GetDisplay", "Initialize", "ChooseConfig", "Terminate", "DestroyWindow"},
		},
		{
			name:   "surface",
			setup:  func(a *egltest.API) { a.FailSurface = true },
			reason: ReasonSurfaceFailed,
			calls:  []string{"GetDisplay", "Initialize", "ChooseConfig", "CreateWindowSurface", "Terminate", "DestroyWindow"},
		},
		{
			name:   "context",
			setup:  func(a *egltest.API) { a.FailContext = true },
			reason: ReasonContextFailed,
			calls:  []string{"GetDisplay", "Initialize", "ChooseConfig", "CreateWindowSurface", "CreateContext", "DestroySurface", "Terminate", "DestroyWindow"},
		},
		{
			name:   "make current",
			setup:  func(a *egltest.API) { a.FailMakeCurrent = true },
			reason: ReasonContextFailed,
			calls:  []string{"GetDisplay", "Initialize", "ChooseConfig", "CreateWindowSurface", "CreateContext", "MakeCurrent", "DestroyContext", "DestroySurface", "Terminate", "DestroyWindow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, api, win := newFakes()
			tt.setup(api)

			c, err := Open(win, api, 2, nil)
			if c != nil {
				t.Fatal("expected nil context on failure")
			}
			var ie *InitError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *InitError, got %T: %v", err, err)
			}
			if ie.Reason != tt.reason {
				t.Fatalf("reason = %s, want %s", ie.Reason, tt.reason)
			}
			if !slices.Equal(rec.Calls, tt.calls) {
				t.Fatalf("calls = %v, want %v", rec.Calls, tt.calls)
			}
		})
	}
}

func TestBadConfigCountError(t *testing.T) {
	_, api, win := newFakes()
	api.ConfigCount = 3

	_, err := Open(win, api, 1, nil)
	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InitError, got %v", err)
	}
	if ie.Count != 3 {
		t.Fatalf("Count = %d, want 3", ie.Count)
	}
	if got, want := err.Error(), "didn't get exactly one config, but 3"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestInitErrorCarriesEGLCode(t *testing.T) {
	_, api, win := newFakes()
	api.FailSurface = true
	api.ErrorCode = egl.BadNativeWindow

	_, err := Open(win, api, 2, nil)
	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InitError, got %v", err)
	}
	if ie.Code != egl.BadNativeWindow {
		t.Fatalf("Code = %#x", ie.Code)
	}
	if got, want := err.Error(), "unable to create EGL surface (eglError: EGL_BAD_NATIVE_WINDOW)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestPresentSwapsThenResetsIdle(t *testing.T) {
	rec, api, win := newFakes()
	c, err := Open(win, api, 2, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec.Calls = nil

	for i := 0; i < 3; i++ {
		if err := c.Present(); err != nil {
			t.Fatalf("Present: %v", err)
		}
	}
	want := []string{"SwapBuffers", "ResetIdle", "SwapBuffers", "ResetIdle", "SwapBuffers", "ResetIdle"}
	if !slices.Equal(rec.Calls, want) {
		t.Fatalf("calls = %v, want %v", rec.Calls, want)
	}
}

func TestPresentSwapFailureStillResetsIdle(t *testing.T) {
	_, api, win := newFakes()
	c, err := Open(win, api, 2, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	api.FailSwap = true

	if err := c.Present(); err == nil {
		t.Fatal("expected swap error")
	}
	if win.idleResets != 1 {
		t.Fatalf("idle resets = %d, want 1", win.idleResets)
	}
}

func TestClosedContextIsInert(t *testing.T) {
	_, api, win := newFakes()
	win.events = []input.Event{{Type: input.KeyDown}}
	c, err := Open(win, api, 2, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := c.Present(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Present after Close = %v, want ErrClosed", err)
	}
	if _, ok := c.PollEvent(); ok {
		t.Fatal("PollEvent after Close produced an event")
	}
	if api.Swaps != 0 {
		t.Fatalf("swaps after Close = %d", api.Swaps)
	}
}

func TestPollEventDelegatesToWindow(t *testing.T) {
	_, api, win := newFakes()
	win.events = []input.Event{{Type: input.MouseMotion, X: 5, Y: 6}}
	c, err := Open(win, api, 2, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	ev, ok := c.PollEvent()
	if !ok || ev != (input.Event{Type: input.MouseMotion, X: 5, Y: 6}) {
		t.Fatalf("PollEvent() = %+v, %v", ev, ok)
	}
	if _, ok := c.PollEvent(); ok {
		t.Fatal("expected empty queue")
	}
}

func TestReasonString(t *testing.T) {
	if ReasonBadConfigCount.String() != "bad-config-count" {
		t.Fatalf("got %q", ReasonBadConfigCount.String())
	}
	if Reason(99).String() != "Reason(99)" {
		t.Fatalf("got %q", Reason(99).String())
	}
}
