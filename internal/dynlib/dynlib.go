// Package dynlib loads shared libraries at runtime and binds their symbols
// to Go function variables, so the graphics stack can be reached without
// cgo or build-time headers.
package dynlib

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
)

// Symbol pairs an exported C name with a pointer to a Go func variable.
type Symbol struct {
	Name string
	Fn   any
}

// Open loads the first library in names that can be opened.
func Open(names ...string) (uintptr, error) {
	if len(names) == 0 {
		return 0, errors.New("dynlib: no library names given")
	}

	var errs []error
	for _, name := range names {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return handle, nil
		}
		errs = append(errs, err)
	}
	return 0, fmt.Errorf("dynlib: cannot load any of %v: %w", names, errors.Join(errs...))
}

// Bind resolves every symbol in handle. It stops at the first missing one.
func Bind(handle uintptr, syms []Symbol) error {
	for _, s := range syms {
		ptr, err := purego.Dlsym(handle, s.Name)
		if err != nil {
			return fmt.Errorf("dynlib: missing symbol %s: %w", s.Name, err)
		}
		purego.RegisterFunc(s.Fn, ptr)
	}
	return nil
}
