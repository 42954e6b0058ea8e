// ABOUTME: WatchResize stub for platforms without SIGWINCH.
// ABOUTME: Returns a channel that never fires.

//go:build !unix

package terminal

import "os"

// WatchResize returns a channel that never receives.
func WatchResize() (ch <-chan os.Signal, stop func()) {
	return make(chan os.Signal), func() {}
}
