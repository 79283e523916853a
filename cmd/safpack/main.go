package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/aferrand/safpack/internal/cli"
	"github.com/aferrand/safpack/pkg/safpack"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(safpack.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(safpack.ExitCodeForError(err))
	}
}
