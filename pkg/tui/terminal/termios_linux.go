// ABOUTME: Linux termios ioctl request numbers for reading and flush-setting attributes.
// ABOUTME: TCSETSF drains output and discards pending input, matching tcsetattr(TCSAFLUSH).

//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermiosFlush = unix.TCSETSF
)
