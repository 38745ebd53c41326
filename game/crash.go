package game

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// ErrPanic wraps a panic recovered from a game goroutine
var ErrPanic = errors.New("game goroutine panicked")

// HandleCrash restores the terminal and prints the stack trace, then exits
func HandleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before writing to it
	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mAIR-HOCKEY CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// guard converts a panic in fn into an ErrPanic error carrying the stack
func guard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v\n%s", ErrPanic, r, debug.Stack())
			}
		}()
		return fn()
	}
}
