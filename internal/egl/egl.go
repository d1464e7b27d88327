// Package egl exposes the handful of EGL 1.4 entry points needed to bind an
// OpenGL ES context to an X11 window. The real implementation loads libEGL
// at runtime; tests substitute the API interface.
package egl

import "fmt"

type (
	Display uintptr
	Config  uintptr
	Surface uintptr
	Context uintptr
)

const (
	NoDisplay Display = 0
	NoConfig  Config  = 0
	NoSurface Surface = 0
	NoContext Context = 0

	// DefaultDisplay is EGL_DEFAULT_DISPLAY.
	DefaultDisplay uintptr = 0
)

const (
	Success              = 0x3000
	NotInitialized       = 0x3001
	BadAccess            = 0x3002
	BadAlloc             = 0x3003
	BadAttribute         = 0x3004
	BadConfig            = 0x3005
	BadContext           = 0x3006
	BadCurrentSurface    = 0x3007
	BadDisplay           = 0x3008
	BadMatch             = 0x3009
	BadNativePixmap      = 0x300A
	BadNativeWindow      = 0x300B
	BadParameter         = 0x300C
	BadSurface           = 0x300D
	ContextLost          = 0x300E
	None                 = 0x3038
	RenderableType       = 0x3040
	ContextClientVersion = 0x3098

	OpenGLESBit  = 0x0001
	OpenGLES2Bit = 0x0004
)

// API is the subset of EGL used by the render package. Handles are opaque.
type API interface {
	GetDisplay(native uintptr) Display
	Initialize(d Display) (major, minor int32, ok bool)
	ChooseConfig(d Display, attribs []int32) (cfg Config, count int32, ok bool)
	CreateWindowSurface(d Display, cfg Config, win uintptr, attribs []int32) Surface
	CreateContext(d Display, cfg Config, share Context, attribs []int32) Context
	MakeCurrent(d Display, draw, read Surface, ctx Context) bool
	SwapBuffers(d Display, s Surface) bool
	DestroyContext(d Display, ctx Context) bool
	DestroySurface(d Display, s Surface) bool
	Terminate(d Display) bool
	GetError() int32
}

// ErrorString names an EGL error code.
func ErrorString(code int32) string {
	switch code {
	case Success:
		return "EGL_SUCCESS"
	case NotInitialized:
		return "EGL_NOT_INITIALIZED"
	case BadAccess:
		return "EGL_BAD_ACCESS"
	case BadAlloc:
		return "EGL_BAD_ALLOC"
	case BadAttribute:
		return "EGL_BAD_ATTRIBUTE"
	case BadConfig:
		return "EGL_BAD_CONFIG"
	case BadContext:
		return "EGL_BAD_CONTEXT"
	case BadCurrentSurface:
		return "EGL_BAD_CURRENT_SURFACE"
	case BadDisplay:
		return "EGL_BAD_DISPLAY"
	case BadMatch:
		return "EGL_BAD_MATCH"
	case BadNativePixmap:
		return "EGL_BAD_NATIVE_PIXMAP"
	case BadNativeWindow:
		return "EGL_BAD_NATIVE_WINDOW"
	case BadParameter:
		return "EGL_BAD_PARAMETER"
	case BadSurface:
		return "EGL_BAD_SURFACE"
	case ContextLost:
		return "EGL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("0x%08x", uint32(code))
	}
}
