package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/eglo/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  eglo config print [--config PATH]")
	fmt.Fprintln(w, "  eglo config validate [--config PATH]")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "print":
		return runConfigPrint(args[1:], os.Stdout)
	case "validate":
		return runConfigValidate(args[1:], os.Stdout)
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func parseConfigFlags(name string, args []string) (string, int, bool) {
	fs := flag.NewFlagSet("config "+name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file (default ~/.config/eglo/config.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return "", 0, false
		}
		return "", 2, false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "config %s takes no arguments\n", name)
		return "", 2, false
	}
	return *path, 0, true
}

func runConfigPrint(args []string, out io.Writer) int {
	path, code, ok := parseConfigFlags("print", args)
	if !ok {
		return code
	}
	cfg, err := loadConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if _, err := out.Write(data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runConfigValidate(args []string, out io.Writer) int {
	path, code, ok := parseConfigFlags("validate", args)
	if !ok {
		return code
	}
	if _, err := loadConfig(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(out, "config ok")
	return 0
}
