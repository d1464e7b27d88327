// Package displayenv makes sure the process has an X display target before
// anything connects to one.
package displayenv

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDisplay is the local display used when nothing else is configured.
const DefaultDisplay = ":0"

var (
	lookupEnvFn   = os.LookupEnv
	setenvFn      = os.Setenv
	userHomeDirFn = os.UserHomeDir
	statFn        = os.Stat
)

// Ensure sets DISPLAY to fallback (or DefaultDisplay) when DISPLAY is not
// set at all. A DISPLAY that is present, even empty, is left untouched. It
// returns the effective DISPLAY.
func Ensure(fallback string) (string, error) {
	if display, ok := lookupEnvFn("DISPLAY"); ok {
		return display, nil
	}

	display := strings.TrimSpace(fallback)
	if display == "" {
		display = DefaultDisplay
	}
	if err := setenvFn("DISPLAY", display); err != nil {
		return "", err
	}
	return display, nil
}

// EnsureXAuthority sets XAUTHORITY to ~/.Xauthority when XAUTHORITY is unset
// or blank and that file exists. It returns the effective value, which may be
// empty.
func EnsureXAuthority() (string, error) {
	if current := strings.TrimSpace(envLookup("XAUTHORITY")); current != "" {
		return current, nil
	}
	candidate := defaultXAuthority()
	if candidate == "" {
		return "", nil
	}
	if err := setenvFn("XAUTHORITY", candidate); err != nil {
		return "", err
	}
	return candidate, nil
}

func defaultXAuthority() string {
	home := strings.TrimSpace(envLookup("HOME"))
	if home == "" {
		detected, err := userHomeDirFn()
		if err != nil {
			return ""
		}
		home = detected
	}
	candidate := filepath.Join(home, ".Xauthority")
	if info, err := statFn(candidate); err != nil || info.IsDir() {
		return ""
	}
	return candidate
}

func envLookup(key string) string {
	v, _ := lookupEnvFn(key)
	return v
}
