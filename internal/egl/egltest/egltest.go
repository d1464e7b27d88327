// Package egltest provides a recording fake of egl.API.
package egltest

import (
	"fmt"
	"slices"

	"github.com/1broseidon/eglo/internal/egl"
)

// Handles returned by the fake.
const (
	Display egl.Display = 0xd15
	Config  egl.Config  = 0xc0f
	Surface egl.Surface = 0x5f0
	Context egl.Context = 0xc7c
)

// Recorder collects calls, in order, across several fakes.
type Recorder struct {
	Calls []string
}

// Record appends a call name.
func (r *Recorder) Record(format string, args ...any) {
	if r == nil {
		return
	}
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

// Index returns the position of call, or -1.
func (r *Recorder) Index(call string) int {
	return slices.Index(r.Calls, call)
}

// API is a scriptable egl.API.
type API struct {
	Rec *Recorder

	ConfigCount int32
	ErrorCode   int32

	FailGetDisplay   bool
	FailInitialize   bool
	FailChooseConfig bool
	FailSurface      bool
	FailContext      bool
	FailMakeCurrent  bool
	FailSwap         bool

	ConfigAttribs  []int32
	ContextAttribs []int32
	SurfaceWindow  uintptr
	Swaps          int
}

var _ egl.API = (*API)(nil)

// New returns a fake that succeeds at every step with one matching config.
func New(rec *Recorder) *API {
	return &API{Rec: rec, ConfigCount: 1, ErrorCode: egl.BadAlloc}
}

func (a *API) GetDisplay(native uintptr) egl.Display {
	a.Rec.Record("GetDisplay")
	if a.FailGetDisplay {
		return egl.NoDisplay
	}
	return Display
}

func (a *API) Initialize(d egl.Display) (int32, int32, bool) {
	a.Rec.Record("Initialize")
	if a.FailInitialize {
		return 0, 0, false
	}
	return 1, 4, true
}

func (a *API) ChooseConfig(d egl.Display, attribs []int32) (egl.Config, int32, bool) {
	a.Rec.Record("ChooseConfig")
	a.ConfigAttribs = slices.Clone(attribs)
	if a.FailChooseConfig {
		return egl.NoConfig, 0, false
	}
	if a.ConfigCount == 0 {
		return egl.NoConfig, 0, true
	}
	return Config, a.ConfigCount, true
}

func (a *API) CreateWindowSurface(d egl.Display, cfg egl.Config, win uintptr, attribs []int32) egl.Surface {
	a.Rec.Record("CreateWindowSurface")
	a.SurfaceWindow = win
	if a.FailSurface {
		return egl.NoSurface
	}
	return Surface
}

func (a *API) CreateContext(d egl.Display, cfg egl.Config, share egl.Context, attribs []int32) egl.Context {
	a.Rec.Record("CreateContext")
	a.ContextAttribs = slices.Clone(attribs)
	if a.FailContext || share != egl.NoContext {
		return egl.NoContext
	}
	return Context
}

func (a *API) MakeCurrent(d egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	if ctx == egl.NoContext {
		a.Rec.Record("ReleaseCurrent")
		return true
	}
	a.Rec.Record("MakeCurrent")
	return !a.FailMakeCurrent
}

func (a *API) SwapBuffers(d egl.Display, s egl.Surface) bool {
	a.Rec.Record("SwapBuffers")
	a.Swaps++
	return !a.FailSwap
}

func (a *API) DestroyContext(d egl.Display, ctx egl.Context) bool {
	a.Rec.Record("DestroyContext")
	return true
}

func (a *API) DestroySurface(d egl.Display, s egl.Surface) bool {
	a.Rec.Record("DestroySurface")
	return true
}

func (a *API) Terminate(d egl.Display) bool {
	a.Rec.Record("Terminate")
	return true
}

func (a *API) GetError() int32 {
	return a.ErrorCode
}
