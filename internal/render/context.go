// Package render binds an OpenGL ES context to a native window through EGL
// and owns both for the lifetime of a session.
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/1broseidon/eglo/internal/egl"
	"github.com/1broseidon/eglo/internal/input"
)

// Window is the native window a Context draws into. The Context owns it and
// destroys it last.
type Window interface {
	Size() (width, height int)
	NativeDisplay() uintptr
	NativeWindow() uintptr
	Poll() (input.Event, bool)
	ResetIdle()
	Destroy() error
}

// Context is an EGL display, surface and context bound to one Window.
type Context struct {
	win     Window
	api     egl.API
	version int
	log     *slog.Logger

	disp        egl.Display
	initialized bool
	cfg         egl.Config
	surf        egl.Surface
	ctx         egl.Context
	current     bool
	closed      bool
}

// RenderableBit returns the EGL_RENDERABLE_TYPE bit for an OpenGL ES major
// version: ES2 for 2, the ES1 bit for anything else.
func RenderableBit(version int) int32 {
	if version == 2 {
		return egl.OpenGLES2Bit
	}
	return egl.OpenGLESBit
}

// ConfigAttribs is the attribute list passed to eglChooseConfig.
func ConfigAttribs(version int) []int32 {
	return []int32{
		egl.RenderableType, RenderableBit(version),
		egl.None,
	}
}

// ContextAttribs is the attribute list passed to eglCreateContext.
func ContextAttribs(version int) []int32 {
	return []int32{
		egl.ContextClientVersion, int32(version),
		egl.None,
	}
}

// Open builds a rendering context on win and makes it current on the calling
// thread. It takes ownership of win: on failure everything, win included, is
// released before the *InitError is returned.
func Open(win Window, api egl.API, version int, logger *slog.Logger) (*Context, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Context{
		win:     win,
		api:     api,
		version: version,
		log:     logger,
	}
	if err := c.init(); err != nil {
		if rerr := c.release(); rerr != nil {
			logger.Warn("render: release after failed init", "error", rerr)
		}
		return nil, err
	}
	return c, nil
}

func (c *Context) init() error {
	c.disp = c.api.GetDisplay(c.win.NativeDisplay())
	if c.disp == egl.NoDisplay {
		return &InitError{Reason: ReasonBindingUnavailable}
	}

	major, minor, ok := c.api.Initialize(c.disp)
	if !ok {
		return &InitError{Reason: ReasonInitFailed, Code: c.api.GetError()}
	}
	c.initialized = true

	cfg, count, ok := c.api.ChooseConfig(c.disp, ConfigAttribs(c.version))
	if !ok {
		return &InitError{
			Reason: ReasonBadConfigCount,
			Code:   c.api.GetError(),
			Err:    errors.New("eglChooseConfig failed"),
		}
	}
	if count != 1 {
		return &InitError{Reason: ReasonBadConfigCount, Count: count}
	}
	c.cfg = cfg

	c.surf = c.api.CreateWindowSurface(c.disp, c.cfg, c.win.NativeWindow(), nil)
	if c.surf == egl.NoSurface {
		return &InitError{Reason: ReasonSurfaceFailed, Code: c.api.GetError()}
	}

	c.ctx = c.api.CreateContext(c.disp, c.cfg, egl.NoContext, ContextAttribs(c.version))
	if c.ctx == egl.NoContext {
		return &InitError{Reason: ReasonContextFailed, Code: c.api.GetError()}
	}

	if !c.api.MakeCurrent(c.disp, c.surf, c.surf, c.ctx) {
		return &InitError{
			Reason: ReasonContextFailed,
			Code:   c.api.GetError(),
			Err:    errors.New("eglMakeCurrent failed"),
		}
	}
	c.current = true

	c.log.Debug("render: context ready",
		"egl", fmt.Sprintf("%d.%d", major, minor),
		"gles", c.version,
		"window", c.win.NativeWindow(),
	)
	return nil
}

// Present swaps the back buffer to the window and then resets the display
// idle timer. The idle reset happens even when the swap fails.
func (c *Context) Present() error {
	if c.closed {
		return ErrClosed
	}
	var err error
	if !c.api.SwapBuffers(c.disp, c.surf) {
		err = fmt.Errorf("eglSwapBuffers failed (eglError: %s)", egl.ErrorString(c.api.GetError()))
	}
	c.win.ResetIdle()
	return err
}

// PollEvent returns the next translated window event without blocking.
func (c *Context) PollEvent() (input.Event, bool) {
	if c.closed {
		return input.Event{}, false
	}
	return c.win.Poll()
}

// Size returns the window geometry.
func (c *Context) Size() (width, height int) {
	return c.win.Size()
}

// Version returns the OpenGL ES major version the context was created for.
func (c *Context) Version() int {
	return c.version
}

// Close tears down context, surface and display, then destroys the window.
// Calling it again is a no-op.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	return c.release()
}

// release frees whatever init acquired, in reverse order.
func (c *Context) release() error {
	c.closed = true
	var errs []error

	if c.current {
		c.api.MakeCurrent(c.disp, egl.NoSurface, egl.NoSurface, egl.NoContext)
		c.current = false
	}
	if c.ctx != egl.NoContext {
		if !c.api.DestroyContext(c.disp, c.ctx) {
			errs = append(errs, fmt.Errorf("eglDestroyContext failed (eglError: %s)", egl.ErrorString(c.api.GetError())))
		}
		c.ctx = egl.NoContext
	}
	if c.surf != egl.NoSurface {
		if !c.api.DestroySurface(c.disp, c.surf) {
			errs = append(errs, fmt.Errorf("eglDestroySurface failed (eglError: %s)", egl.ErrorString(c.api.GetError())))
		}
		c.surf = egl.NoSurface
	}
	if c.initialized {
		if !c.api.Terminate(c.disp) {
			errs = append(errs, fmt.Errorf("eglTerminate failed (eglError: %s)", egl.ErrorString(c.api.GetError())))
		}
		c.initialized = false
	}
	c.disp = egl.NoDisplay

	if c.win != nil {
		if err := c.win.Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
