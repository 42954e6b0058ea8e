// ABOUTME: Session stub for platforms without termios; Acquire always fails as not interactive.
// ABOUTME: Keeps the package buildable so callers get a typed error instead of a build failure.

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package terminal

import (
	"io"
	"os"
)

// DefaultReadTimeout is the raw-mode read timeout in tenths of a second.
const DefaultReadTimeout = 1

// Session is unavailable on this platform.
type Session struct{}

// Option configures a Session.
type Option func(*Session)

// WithReadTimeout is accepted for API compatibility.
func WithReadTimeout(int) Option { return func(*Session) {} }

// Acquire always fails on this platform.
func Acquire(_, _ *os.File, _ ...Option) (*Session, error) {
	return nil, &Error{Kind: KindNotInteractive, Op: "tcgetattr", Err: ErrNotInteractive}
}

func (s *Session) Restore() error                    { return nil }
func (s *Session) Raw() bool                         { return false }
func (s *Session) Read([]byte) (int, error)          { return 0, io.EOF }
func (s *Session) Write(p []byte) (int, error)       { return 0, ErrNotInteractive }
func (s *Session) Size() (rows, cols int, err error) { return 0, 0, ErrNotInteractive }
func (s *Session) Refresh() (int, int, error)        { return 0, 0, ErrNotInteractive }
