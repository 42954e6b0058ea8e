// ABOUTME: Unix-specific SIGWINCH subscription for window-resize notifications.
// ABOUTME: Notifications are buffered by one so the loop can poll them between reads.

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// WatchResize subscribes to SIGWINCH. The returned channel receives at most
// one pending notification; stop unsubscribes.
func WatchResize() (ch <-chan os.Signal, stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	return sigCh, func() { signal.Stop(sigCh) }
}
