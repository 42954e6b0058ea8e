// ABOUTME: Session puts a TTY into raw mode and guarantees the original attributes come back.
// ABOUTME: Reads are bounded by VTIME; size comes from the window-size ioctl or a cursor probe.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultReadTimeout is the raw-mode read timeout in tenths of a second.
const DefaultReadTimeout = 1

// Session is a raw-mode terminal session. The zero value is not usable;
// create one with Acquire. A nil *Session is safe to Restore.
type Session struct {
	mu sync.Mutex

	// The files are retained so their finalizers do not close the fds.
	inFile  *os.File
	outFile *os.File
	in      int
	out     int

	orig    unix.Termios
	raw     bool
	timeout uint8

	rows int
	cols int
}

// Option configures a Session.
type Option func(*Session)

// WithReadTimeout sets the read timeout in tenths of a second (1..255).
// Out-of-range values are clamped.
func WithReadTimeout(tenths int) Option {
	return func(s *Session) {
		s.timeout = uint8(max(1, min(tenths, 255)))
	}
}

// Acquire captures the attributes of in and switches it to raw mode.
// Output goes to out. On failure the terminal is left untouched.
func Acquire(in, out *os.File, opts ...Option) (*Session, error) {
	s := &Session{
		inFile:  in,
		outFile: out,
		timeout: DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Fd puts the descriptor in blocking mode, which VMIN/VTIME rely on.
	inFd := in.Fd()
	if !isatty.IsTerminal(inFd) && !isatty.IsCygwinTerminal(inFd) {
		return nil, &Error{Kind: KindNotInteractive, Op: "tcgetattr", Err: ErrNotInteractive}
	}
	s.in = int(inFd)
	s.out = int(out.Fd())

	orig, err := unix.IoctlGetTermios(s.in, ioctlGetTermios)
	if err != nil {
		return nil, &Error{Kind: KindAttrRead, Op: "tcgetattr", Err: err}
	}
	s.orig = *orig

	raw := *orig
	makeRaw(&raw, s.timeout)
	if err := unix.IoctlSetTermios(s.in, ioctlSetTermiosFlush, &raw); err != nil {
		return nil, &Error{Kind: KindAttrWrite, Op: "tcsetattr", Err: err}
	}
	s.raw = true
	return s, nil
}

// makeRaw disables echo, canonical mode, signals, flow control and output
// post-processing, and makes reads return after timeout tenths of a second.
func makeRaw(t *unix.Termios, timeout uint8) {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = timeout
}

// Restore reapplies the attributes captured by Acquire. Calling it more than
// once, or on a nil Session, is a no-op.
func (s *Session) Restore() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.raw {
		return nil
	}
	if err := unix.IoctlSetTermios(s.in, ioctlSetTermiosFlush, &s.orig); err != nil {
		return &Error{Kind: KindAttrWrite, Op: "tcsetattr", Err: err}
	}
	s.raw = false
	return nil
}

// Raw reports whether raw mode is active.
func (s *Session) Raw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Read performs one bounded read. An elapsed timeout or an interrupted call
// yields (0, nil). A hung-up terminal yields io.EOF.
func (s *Session) Read(p []byte) (int, error) {
	n, err := unix.Read(s.in, p)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return 0, nil
	case errors.Is(err, unix.EIO):
		return 0, io.EOF
	default:
		return 0, &Error{Kind: KindRead, Op: "read", Err: err}
	}
}

// Write writes all of p to the output descriptor.
func (s *Session) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(s.out, p[written:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return written, &Error{Kind: KindWrite, Op: "write", Err: err}
		}
		written += n
	}
	return written, nil
}

// Size returns the cached dimensions, querying them on first use.
func (s *Session) Size() (rows, cols int, err error) {
	s.mu.Lock()
	rows, cols = s.rows, s.cols
	s.mu.Unlock()

	if rows > 0 && cols > 0 {
		return rows, cols, nil
	}
	return s.Refresh()
}

// Refresh queries the window size. When the ioctl fails or reports zero
// columns it falls back to the cursor position probe.
func (s *Session) Refresh() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(s.out)
	if err != nil || cols == 0 {
		rows, cols, err = probeSize(s)
		if err != nil {
			return 0, 0, err
		}
	}

	s.mu.Lock()
	s.rows, s.cols = rows, cols
	s.mu.Unlock()
	return rows, cols, nil
}
