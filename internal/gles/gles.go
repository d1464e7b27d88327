// Package gles loads the few OpenGL ES entry points the demo draws with.
package gles

import (
	"fmt"

	"github.com/1broseidon/eglo/internal/dynlib"
)

const ColorBufferBit = 0x00004000

// LibraryNames lists the shared libraries tried for an ES major version.
func LibraryNames(version int) []string {
	if version == 2 {
		return []string{"libGLESv2.so.2", "libGLESv2.so"}
	}
	return []string{"libGLESv1_CM.so.1", "libGLESv1_CM.so"}
}

// Functions are OpenGL ES calls bound to the current context.
type Functions struct {
	viewport   func(x, y, width, height int32)
	clearColor func(r, g, b, a float32)
	clear      func(mask uint32)
}

// Load binds the functions for the given ES major version. A context of that
// version must be current before any of them is called.
func Load(version int) (*Functions, error) {
	handle, err := dynlib.Open(LibraryNames(version)...)
	if err != nil {
		return nil, fmt.Errorf("gles: %w", err)
	}
	f := &Functions{}
	err = dynlib.Bind(handle, []dynlib.Symbol{
		{Name: "glViewport", Fn: &f.viewport},
		{Name: "glClearColor", Fn: &f.clearColor},
		{Name: "glClear", Fn: &f.clear},
	})
	if err != nil {
		return nil, fmt.Errorf("gles: %w", err)
	}
	return f, nil
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) ClearColor(r, g, b, a float32) {
	f.clearColor(r, g, b, a)
}

func (f *Functions) Clear(mask uint32) {
	f.clear(mask)
}
