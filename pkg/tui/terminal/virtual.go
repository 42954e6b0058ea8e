// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Serves scripted input, captures output, and counts writes and restorations.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// Reads drain the scripted input; once it is empty they report an idle tick,
// or io.EOF after CloseInput.
type VirtualTerminal struct {
	mu           sync.Mutex
	buf          bytes.Buffer
	input        []byte
	inputClosed  bool
	rows         int
	cols         int
	writeErr     error
	sizeErr      error
	writeCount   int
	restoreCount int
	idleReads    int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(rows, cols int) *VirtualTerminal {
	return &VirtualTerminal{
		rows: rows,
		cols: cols,
	}
}

// Read copies pending scripted input into p.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		if v.inputClosed {
			return 0, io.EOF
		}
		v.idleReads++
		return 0, nil
	}
	n := copy(p, v.input)
	v.input = v.input[n:]
	return n, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	v.writeCount++
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (rows, cols int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.rows, v.cols, nil
}

// Refresh is Size; a virtual terminal has no cache to invalidate.
func (v *VirtualTerminal) Refresh() (rows, cols int, err error) {
	return v.Size()
}

// Restore records a restoration.
func (v *VirtualTerminal) Restore() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.restoreCount++
	return nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed appends bytes to the scripted input.
func (v *VirtualTerminal) Feed(p []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, p...)
}

// CloseInput makes reads return io.EOF once the scripted input is drained.
func (v *VirtualTerminal) CloseInput() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.inputClosed = true
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and the write count.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writeCount = 0
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(rows, cols int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rows = rows
	v.cols = cols
}

// SetWriteError makes every subsequent Write fail with err (nil clears it).
func (v *VirtualTerminal) SetWriteError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// SetSizeError makes Size and Refresh fail with err (nil clears it).
func (v *VirtualTerminal) SetSizeError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// WriteCount returns how many successful Write calls were made.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeCount
}

// RestoreCount returns how many times Restore was called.
func (v *VirtualTerminal) RestoreCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.restoreCount
}

// IdleReads returns how many reads found no scripted input.
func (v *VirtualTerminal) IdleReads() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.idleReads
}
