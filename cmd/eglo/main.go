package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/1broseidon/eglo/internal/config"
	"github.com/1broseidon/eglo/internal/displayenv"
	"golang.org/x/term"
)

func init() {
	// EGL contexts are current per OS thread; keep main on one.
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runRun(os.Args[2:]))
	case "events":
		os.Exit(runEvents(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: eglo <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open the window and render until interrupted")
	fmt.Fprintln(w, "  events              Print translated input events")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'eglo <command> --help' for command-specific options.")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// newLogger writes human-readable text to terminals and JSON otherwise.
func newLogger(f *os.File, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(f, opts))
	}
	return slog.New(slog.NewJSONHandler(f, opts))
}

// prepareXAuthority points XAUTHORITY at ~/.Xauthority for sessions started
// outside a desktop login, such as over ssh.
func prepareXAuthority(logger *slog.Logger) {
	path, err := displayenv.EnsureXAuthority()
	if err != nil {
		logger.Warn("eglo: set XAUTHORITY", "error", err)
		return
	}
	if path != "" {
		logger.Debug("eglo: using X authority", "path", path)
	}
}
