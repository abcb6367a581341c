package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/bytecrawl/internal/cli"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

func main() {
	// A crash must not leave the terminal in raw mode without a trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(bytecrawl.ExitPanic)
		}
	}()

	if os.Getenv("BYTECRAWL_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(bytecrawl.ExitCodeForError(err))
	}
}
