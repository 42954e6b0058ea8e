// ABOUTME: Defines the Terminal interface the editor loop drives: bounded reads, writes, size, restore.
// ABOUTME: Implemented by the raw-mode Session on a real TTY and by VirtualTerminal in tests.

package terminal

// Terminal abstracts a raw-mode terminal session.
//
// Read returns (0, nil) when the read timeout elapses with no input; callers
// treat that as an idle tick. io.EOF means the input side is gone.
type Terminal interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	// Size returns the cached dimensions, querying them on first use.
	Size() (rows, cols int, err error)
	// Refresh re-queries the dimensions and updates the cache.
	Refresh() (rows, cols int, err error)
	Restore() error
}

// Restorer is the subset of Terminal needed to leave raw mode.
type Restorer interface {
	Restore() error
}
