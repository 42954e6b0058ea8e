// ABOUTME: Placeholder document: an empty screen of "~" rows with a centered welcome line
// ABOUTME: Tracks a cursor that arrows, Home/End and PageUp/PageDown move within the screen

package document

import (
	"fmt"

	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// Placeholder stands in for a text buffer.
type Placeholder struct {
	marker  string
	welcome string

	rows, cols int
	cx, cy     int
}

// Option configures a Placeholder.
type Option func(*Placeholder)

// WithMarker sets the text drawn at the start of every empty row.
func WithMarker(s string) Option {
	return func(p *Placeholder) {
		p.marker = s
	}
}

// WithWelcome shows a welcome line naming version a third of the way down.
func WithWelcome(version string) Option {
	return func(p *Placeholder) {
		p.welcome = fmt.Sprintf("Kilo-go editor -- version %s", version)
	}
}

// WithSize sets the screen size the cursor is clamped to until the first
// Resize event.
func WithSize(rows, cols int) Option {
	return func(p *Placeholder) {
		p.rows, p.cols = rows, cols
	}
}

// New returns an empty Placeholder.
func New(opts ...Option) *Placeholder {
	p := &Placeholder{marker: "~"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Frame draws the placeholder screen at exactly rows x cols. It does not
// change the document.
func (p *Placeholder) Frame(rows, cols int) *tui.Frame {
	f := tui.NewFrame(rows, cols)
	for y := range rows {
		if p.welcome != "" && y == rows/3 {
			p.drawWelcome(f, y)
			continue
		}
		f.SetString(y, 0, p.marker, tui.Style{})
	}
	return f
}

// drawWelcome centers the welcome line, keeping the marker in column 0
// when there is room for it.
func (p *Placeholder) drawWelcome(f *tui.Frame, y int) {
	msg := width.Truncate(p.welcome, f.Cols())
	padding := (f.Cols() - width.String(msg)) / 2
	col := 0
	if padding > 0 {
		col = f.SetString(y, 0, p.marker, tui.Style{})
		padding -= col
	}
	f.SetString(y, col+max(padding, 0), msg, tui.Style{})
}

// Cursor returns the cursor position within the last known screen size.
func (p *Placeholder) Cursor() tui.Position {
	return tui.Position{
		Row: max(0, min(p.cy, p.rows-1)),
		Col: max(0, min(p.cx, p.cols-1)),
	}
}

// HandleEvent moves the cursor and tracks the screen size from Resize
// events. Other events are ignored.
func (p *Placeholder) HandleEvent(ev key.Event) {
	switch ev.Type {
	case key.EventArrow:
		switch ev.Dir {
		case key.DirUp:
			p.cy--
		case key.DirDown:
			p.cy++
		case key.DirLeft:
			p.cx--
		case key.DirRight:
			p.cx++
		}
	case key.EventHomeEnd:
		if ev.Dir == key.DirHome {
			p.cx = 0
		} else {
			p.cx = p.cols - 1
		}
	case key.EventPage:
		if ev.Dir == key.DirUp {
			p.cy = 0
		} else {
			p.cy = p.rows - 1
		}
	case key.EventResize:
		p.rows, p.cols = ev.Rows, ev.Cols
	}
	p.clamp()
}

func (p *Placeholder) clamp() {
	p.cx = max(0, min(p.cx, p.cols-1))
	p.cy = max(0, min(p.cy, p.rows-1))
}
