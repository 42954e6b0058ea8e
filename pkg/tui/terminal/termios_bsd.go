// ABOUTME: BSD and Darwin termios ioctl request numbers for reading and flush-setting attributes.
// ABOUTME: TIOCSETAF drains output and discards pending input, matching tcsetattr(TCSAFLUSH).

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TIOCGETA
	ioctlSetTermiosFlush = unix.TIOCSETAF
)
