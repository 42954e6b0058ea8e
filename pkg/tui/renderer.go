// ABOUTME: Renderer writes frames to the terminal, sending only the rows that changed
// ABOUTME: Each render is a single write wrapped in hide/show cursor; the frame is committed only on success

package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui/internal/pool"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Sizer reports the current terminal dimensions.
type Sizer interface {
	Size() (rows, cols int, err error)
}

// ResizeError is returned when the desired frame does not match the
// terminal size. Nothing is written; the caller should rebuild the frame.
type ResizeError struct {
	Rows int
	Cols int
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("frame does not match terminal size %dx%d", e.Rows, e.Cols)
}

// Renderer owns the committed frame: the last frame fully written.
type Renderer struct {
	w     io.Writer
	sizer Sizer
	sync  bool

	committed *Frame
	cursor    Position
	placed    bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSyncOutput wraps each update in CSI 2026 synchronized output markers.
func WithSyncOutput(on bool) Option {
	return func(r *Renderer) {
		r.sync = on
	}
}

// NewRenderer returns a Renderer writing to w and checking sizes against sizer.
func NewRenderer(w io.Writer, sizer Sizer, opts ...Option) *Renderer {
	r := &Renderer{w: w, sizer: sizer}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render brings the screen to desired with the cursor at cursor (clamped to
// the frame). When nothing changed it writes zero bytes.
func (r *Renderer) Render(desired *Frame, cursor Position) error {
	rows, cols, err := r.sizer.Size()
	if err != nil {
		return err
	}
	if desired.Rows() != rows || desired.Cols() != cols {
		return &ResizeError{Rows: rows, Cols: cols}
	}
	cursor = clampCursor(cursor, rows, cols)

	p := Diff(r.committed, desired, cursor)
	if len(p.Writes) == 0 && r.placed && r.cursor == cursor {
		return nil
	}

	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)
	encode(buf, p, r.sync)

	if _, err := r.w.Write(buf.Bytes()); err != nil {
		var te *terminal.Error
		if errors.As(err, &te) {
			return err
		}
		return &terminal.Error{Kind: terminal.KindWrite, Op: "write", Err: err}
	}

	r.committed = desired.Clone()
	r.cursor = cursor
	r.placed = true
	return nil
}

// Invalidate forgets the committed frame so the next Render repaints every row.
func (r *Renderer) Invalidate() {
	r.committed = nil
	r.placed = false
}

// Committed returns the last frame fully written, or nil.
func (r *Renderer) Committed() *Frame {
	return r.committed
}

func clampCursor(p Position, rows, cols int) Position {
	p.Row = max(0, min(p.Row, rows-1))
	p.Col = max(0, min(p.Col, cols-1))
	return p
}
