// ABOUTME: Cursor-position-report fallback for size detection when the window-size ioctl fails.
// ABOUTME: Reads ESC[<rows>;<cols>R with a bounded number of timed reads so it never hangs.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const (
	// probeMove pushes the cursor to the bottom-right corner; terminals clamp it.
	probeMove = "\x1b[999C\x1b[999B"
	// queryCursor asks for a cursor position report (DSR 6).
	queryCursor = "\x1b[6n"
	cursorHome  = "\x1b[H"

	maxReportLen = 32
	// reportPollTries bounds how many empty timed reads are tolerated while
	// waiting for the report.
	reportPollTries = 10
)

// readCursorReport reads a cursor position report one byte at a time from r.
// It stops at the terminating 'R', after maxReportLen-1 bytes, or after
// reportPollTries consecutive empty reads.
func readCursorReport(r io.Reader) (rows, cols int, err error) {
	var buf [maxReportLen]byte
	n, idle := 0, 0
	for n < len(buf)-1 {
		m, err := r.Read(buf[n : n+1])
		if err != nil {
			return 0, 0, fmt.Errorf("reading cursor position report: %w", err)
		}
		if m == 0 {
			idle++
			if idle >= reportPollTries {
				break
			}
			continue
		}
		idle = 0
		n++
		if buf[n-1] == 'R' {
			break
		}
	}
	return parseCursorReport(buf[:n])
}

// parseCursorReport parses ESC[<rows>;<cols>R. Both numbers must be positive.
func parseCursorReport(b []byte) (rows, cols int, err error) {
	if !bytes.HasPrefix(b, []byte("\x1b[")) || len(b) < 6 || b[len(b)-1] != 'R' {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReport, b)
	}
	body := b[2 : len(b)-1]
	sep := bytes.IndexByte(body, ';')
	if sep < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReport, b)
	}
	rows, err = strconv.Atoi(string(body[:sep]))
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReport, b)
	}
	cols, err = strconv.Atoi(string(body[sep+1:]))
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReport, b)
	}
	return rows, cols, nil
}

// probeSize moves the cursor to the far corner and asks the terminal where
// it ended up.
func probeSize(rw io.ReadWriter) (rows, cols int, err error) {
	if _, err := io.WriteString(rw, probeMove+queryCursor); err != nil {
		return 0, 0, &Error{Kind: KindDimensionQuery, Op: "write", Err: err}
	}
	rows, cols, err = readCursorReport(rw)
	if err != nil {
		return 0, 0, &Error{Kind: KindDimensionQuery, Op: "cursor position report", Err: err}
	}
	_, _ = io.WriteString(rw, cursorHome)
	return rows, cols, nil
}
