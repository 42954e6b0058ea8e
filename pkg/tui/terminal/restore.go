// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the raw-mode session.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

const (
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J\x1b[H"
)

// RestoreOnPanic should be deferred right after Acquire succeeds. On panic it
// shows the cursor, clears the screen, leaves raw mode, prints the panic value
// and stack trace, then exits with code 1.
func RestoreOnPanic(t Restorer) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(t, os.Stdout, os.Stderr, r, debug.Stack())
	os.Exit(1)
}

// restoreAfterPanic does the best-effort cleanup for RestoreOnPanic.
func restoreAfterPanic(t Restorer, out, errOut io.Writer, r any, stack []byte) {
	_, _ = io.WriteString(out, showCursor+clearScreen)
	_ = t.Restore()
	fmt.Fprintf(errOut, "\npanic: %v\n\n%s\n", r, stack)
}
