// ABOUTME: Frame is a rows x cols grid of styled cells describing one full screen
// ABOUTME: Text is NFC-normalized and laid out by grapheme cluster; wide clusters take two cells

package tui

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// Attr is a bitmask of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Color is a foreground color; the zero value is the terminal default.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Style is the rendition of a cell.
type Style struct {
	Attr Attr
	Fg   Color
}

// Cell is one screen cell. Text holds a single grapheme cluster; it is
// empty for the trailing half of a wide cluster.
type Cell struct {
	Text  string
	Style Style
}

var blank = Cell{Text: " "}

// Position is a zero-based screen coordinate.
type Position struct {
	Row int
	Col int
}

// Frame is a full-screen grid of cells.
type Frame struct {
	rows  int
	cols  int
	cells []Cell
}

// NewFrame returns a blank frame of the given size.
func NewFrame(rows, cols int) *Frame {
	rows, cols = max(rows, 0), max(cols, 0)
	f := &Frame{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range f.cells {
		f.cells[i] = blank
	}
	return f
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return f.cols }

// Row returns the cells of row r. The slice aliases the frame.
func (f *Frame) Row(r int) []Cell {
	return f.cells[r*f.cols : (r+1)*f.cols]
}

// Cell returns the cell at (r, c).
func (f *Frame) Cell(r, c int) Cell {
	return f.cells[r*f.cols+c]
}

// SetString writes s into row r starting at column c and returns the column
// after the last cell written. Text past the right edge is dropped, a wide
// cluster that would straddle the edge is dropped whole, and control
// characters are shown as '?'.
func (f *Frame) SetString(r, c int, s string, st Style) int {
	if r < 0 || r >= f.rows || c < 0 {
		return c
	}
	row := f.Row(r)
	width.Graphemes(norm.NFC.String(s), func(cluster string, cw int) bool {
		if isControl(cluster) {
			cluster, cw = "?", 1
		}
		if cw == 0 {
			return true
		}
		if c+cw > f.cols {
			return false
		}
		splitWide(row, c)
		splitWide(row, c+cw-1)
		row[c] = Cell{Text: cluster, Style: st}
		if cw == 2 {
			row[c+1] = Cell{Style: st}
		}
		c += cw
		return true
	})
	return c
}

// ClearRow resets row r to blanks.
func (f *Frame) ClearRow(r int) {
	row := f.Row(r)
	for i := range row {
		row[i] = blank
	}
}

// Line returns the text of row r with trailing blanks trimmed.
func (f *Frame) Line(r int) string {
	var b strings.Builder
	for _, cell := range f.Row(r) {
		b.WriteString(cell.Text)
	}
	return strings.TrimRight(b.String(), " ")
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	c := &Frame{rows: f.rows, cols: f.cols, cells: make([]Cell, len(f.cells))}
	copy(c.cells, f.cells)
	return c
}

// SameSize reports whether f and o have identical dimensions.
func (f *Frame) SameSize(o *Frame) bool {
	return o != nil && f.rows == o.rows && f.cols == o.cols
}

// splitWide blanks the other half of a wide cluster occupying column c so an
// overwrite never leaves half a cluster behind.
func splitWide(row []Cell, c int) {
	if row[c].Text == "" && c > 0 {
		row[c-1] = blank
	}
	if row[c].Text != "" && c+1 < len(row) && row[c+1].Text == "" {
		row[c+1] = blank
	}
}

func isControl(cluster string) bool {
	return len(cluster) == 1 && (cluster[0] < 0x20 || cluster[0] == 0x7f)
}
