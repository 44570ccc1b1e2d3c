package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/xbmc/sync-addon-metadata-translations/internal/cli"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(samt.ExitPanic)
		}
	}()

	if os.Getenv("SAMT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(samt.ExitCodeForError(err))
	}
}
