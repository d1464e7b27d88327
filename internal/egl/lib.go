package egl

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/1broseidon/eglo/internal/dynlib"
)

var libNames = []string{"libEGL.so.1", "libEGL.so"}

// Lib implements API on top of the system libEGL.
type Lib struct {
	getDisplay          func(native uintptr) uintptr
	initialize          func(d uintptr, major, minor *int32) uint32
	chooseConfig        func(d uintptr, attribs *int32, cfgs *uintptr, size int32, count *int32) uint32
	createWindowSurface func(d, cfg, win uintptr, attribs *int32) uintptr
	createContext       func(d, cfg, share uintptr, attribs *int32) uintptr
	makeCurrent         func(d, draw, read, ctx uintptr) uint32
	swapBuffers         func(d, s uintptr) uint32
	destroyContext      func(d, ctx uintptr) uint32
	destroySurface      func(d, s uintptr) uint32
	terminate           func(d uintptr) uint32
	getError            func() int32
}

var _ API = (*Lib)(nil)

var loadOnce = sync.OnceValues(load)

// Load opens libEGL once per process and returns the bound entry points.
func Load() (*Lib, error) {
	return loadOnce()
}

func load() (*Lib, error) {
	handle, err := dynlib.Open(libNames...)
	if err != nil {
		return nil, fmt.Errorf("egl: %w", err)
	}

	l := &Lib{}
	err = dynlib.Bind(handle, []dynlib.Symbol{
		{Name: "eglGetDisplay", Fn: &l.getDisplay},
		{Name: "eglInitialize", Fn: &l.initialize},
		{Name: "eglChooseConfig", Fn: &l.chooseConfig},
		{Name: "eglCreateWindowSurface", Fn: &l.createWindowSurface},
		{Name: "eglCreateContext", Fn: &l.createContext},
		{Name: "eglMakeCurrent", Fn: &l.makeCurrent},
		{Name: "eglSwapBuffers", Fn: &l.swapBuffers},
		{Name: "eglDestroyContext", Fn: &l.destroyContext},
		{Name: "eglDestroySurface", Fn: &l.destroySurface},
		{Name: "eglTerminate", Fn: &l.terminate},
		{Name: "eglGetError", Fn: &l.getError},
	})
	if err != nil {
		return nil, fmt.Errorf("egl: %w", err)
	}
	return l, nil
}

func attribPtr(attribs []int32) *int32 {
	if len(attribs) == 0 {
		return nil
	}
	return unsafe.SliceData(attribs)
}

func (l *Lib) GetDisplay(native uintptr) Display {
	return Display(l.getDisplay(native))
}

func (l *Lib) Initialize(d Display) (major, minor int32, ok bool) {
	ok = l.initialize(uintptr(d), &major, &minor) != 0
	return major, minor, ok
}

func (l *Lib) ChooseConfig(d Display, attribs []int32) (Config, int32, bool) {
	var cfg uintptr
	var count int32
	if l.chooseConfig(uintptr(d), attribPtr(attribs), &cfg, 1, &count) == 0 {
		return NoConfig, 0, false
	}
	return Config(cfg), count, true
}

func (l *Lib) CreateWindowSurface(d Display, cfg Config, win uintptr, attribs []int32) Surface {
	return Surface(l.createWindowSurface(uintptr(d), uintptr(cfg), win, attribPtr(attribs)))
}

func (l *Lib) CreateContext(d Display, cfg Config, share Context, attribs []int32) Context {
	return Context(l.createContext(uintptr(d), uintptr(cfg), uintptr(share), attribPtr(attribs)))
}

func (l *Lib) MakeCurrent(d Display, draw, read Surface, ctx Context) bool {
	return l.makeCurrent(uintptr(d), uintptr(draw), uintptr(read), uintptr(ctx)) != 0
}

func (l *Lib) SwapBuffers(d Display, s Surface) bool {
	return l.swapBuffers(uintptr(d), uintptr(s)) != 0
}

func (l *Lib) DestroyContext(d Display, ctx Context) bool {
	return l.destroyContext(uintptr(d), uintptr(ctx)) != 0
}

func (l *Lib) DestroySurface(d Display, s Surface) bool {
	return l.destroySurface(uintptr(d), uintptr(s)) != 0
}

func (l *Lib) Terminate(d Display) bool {
	return l.terminate(uintptr(d)) != 0
}

func (l *Lib) GetError() int32 {
	return l.getError()
}
