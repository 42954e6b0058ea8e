// ABOUTME: Tests for VirtualTerminal verifying scripted input, output capture, and restore counting.
// ABOUTME: Uses table-driven and parallel sub-tests for thorough coverage.

package terminal

import (
	"errors"
	"io"
	"testing"
)

// compile-time checks: both implementations must satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*Session)(nil)
)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rows     int
		cols     int
		wantRows int
		wantCols int
	}{
		{name: "standard 24x80", rows: 24, cols: 80, wantRows: 24, wantCols: 80},
		{name: "wide 50x200", rows: 50, cols: 200, wantRows: 50, wantCols: 200},
		{name: "zero dimensions", rows: 0, cols: 0, wantRows: 0, wantCols: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.rows, tt.cols)

			rows, cols, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if rows != tt.wantRows || cols != tt.wantCols {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", rows, cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestVirtualTerminal_SetSize(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(24, 80)
	vt.SetSize(30, 100)

	rows, cols, err := vt.Refresh()
	if err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}
	if rows != 30 || cols != 100 {
		t.Errorf("Refresh() = (%d, %d), want (30, 100)", rows, cols)
	}
}

func TestVirtualTerminal_ReadScriptedInput(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(24, 80)
	vt.Feed([]byte("ab"))

	buf := make([]byte, 1)
	for _, want := range []byte("ab") {
		n, err := vt.Read(buf)
		if err != nil || n != 1 {
			t.Fatalf("Read() = (%d, %v), want (1, nil)", n, err)
		}
		if buf[0] != want {
			t.Errorf("Read() byte = %q, want %q", buf[0], want)
		}
	}

	n, err := vt.Read(buf)
	if n != 0 || err != nil {
		t.Errorf("Read() on empty input = (%d, %v), want idle tick (0, nil)", n, err)
	}
	if vt.IdleReads() != 1 {
		t.Errorf("IdleReads() = %d, want 1", vt.IdleReads())
	}

	vt.CloseInput()
	if _, err := vt.Read(buf); !errors.Is(err, io.EOF) {
		t.Errorf("Read() after CloseInput error = %v, want io.EOF", err)
	}
}

func TestVirtualTerminal_Write(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(24, 80)

	if _, err := vt.Write([]byte("hello ")); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if _, err := vt.Write([]byte("world")); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if got := vt.Output(); got != "hello world" {
		t.Errorf("Output() = %q, want %q", got, "hello world")
	}
	if vt.WriteCount() != 2 {
		t.Errorf("WriteCount() = %d, want 2", vt.WriteCount())
	}

	vt.Reset()
	if vt.Output() != "" || vt.WriteCount() != 0 {
		t.Errorf("after Reset() Output() = %q, WriteCount() = %d", vt.Output(), vt.WriteCount())
	}
}

func TestVirtualTerminal_WriteError(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(24, 80)
	boom := errors.New("boom")
	vt.SetWriteError(boom)

	if _, err := vt.Write([]byte("x")); !errors.Is(err, boom) {
		t.Fatalf("Write() error = %v, want %v", err, boom)
	}
	if vt.Output() != "" {
		t.Errorf("failed write should leave no output, got %q", vt.Output())
	}
}

func TestVirtualTerminal_RestoreCount(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(24, 80)

	for range 3 {
		if err := vt.Restore(); err != nil {
			t.Fatalf("Restore() unexpected error: %v", err)
		}
	}
	if vt.RestoreCount() != 3 {
		t.Errorf("RestoreCount() = %d, want 3", vt.RestoreCount())
	}
}

func TestError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "attribute write",
			err:  &Error{Kind: KindAttrWrite, Op: "tcsetattr", Err: errors.New("bad file descriptor")},
			want: "tcsetattr: bad file descriptor",
		},
		{
			name: "no cause",
			err:  &Error{Kind: KindWrite, Op: "write"},
			want: "write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	err := &Error{Kind: KindNotInteractive, Op: "tcgetattr", Err: ErrNotInteractive}
	wrapped := errors.Join(errors.New("starting editor"), err)

	if !IsKind(wrapped, KindNotInteractive) {
		t.Error("IsKind() = false for wrapped not-interactive error")
	}
	if IsKind(wrapped, KindWrite) {
		t.Error("IsKind() = true for wrong kind")
	}
	if !errors.Is(wrapped, ErrNotInteractive) {
		t.Error("errors.Is() should reach ErrNotInteractive")
	}
	if KindDimensionQuery.String() != "dimension query" {
		t.Errorf("String() = %q", KindDimensionQuery.String())
	}
}
