package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vinifborgess/auto-doc-pbi/internal/cli"
	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(pbidoc.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(pbidoc.ExitCodeForError(err))
	}
}
