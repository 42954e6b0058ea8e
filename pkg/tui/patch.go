// ABOUTME: Diff computes the rows that differ between the committed and desired frames
// ABOUTME: encode turns a Patch into one byte stream of cursor moves, line erases, and row text

package tui

import (
	"bytes"
	"slices"
	"strconv"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	eraseLine  = "\x1b[K"
	resetSGR   = "\x1b[m"
	syncBegin  = "\x1b[?2026h"
	syncEnd    = "\x1b[?2026l"
)

// RowWrite replaces one screen row.
type RowWrite struct {
	Row   int
	Cells []Cell
}

// Patch is the set of row replacements that turns the committed frame into
// the desired one, plus where the cursor ends up.
type Patch struct {
	Writes []RowWrite
	Cursor Position
}

// Diff returns the rows of desired that differ from committed, in row order.
// Every row is included when committed is nil or sized differently.
func Diff(committed, desired *Frame, cursor Position) Patch {
	p := Patch{Cursor: cursor}
	full := !desired.SameSize(committed)
	for r := range desired.rows {
		row := desired.Row(r)
		if !full && slices.Equal(committed.Row(r), row) {
			continue
		}
		p.Writes = append(p.Writes, RowWrite{Row: r, Cells: row})
	}
	return p
}

// encode appends the terminal byte stream for p to buf: cursor hidden, each
// row rewritten with an absolute move and an erase, then the cursor placed
// and shown again.
func encode(buf *bytes.Buffer, p Patch, sync bool) {
	var num [20]byte
	if sync {
		buf.WriteString(syncBegin)
	}
	buf.WriteString(hideCursor)
	for _, w := range p.Writes {
		moveTo(buf, num[:], w.Row, 0)
		buf.WriteString(eraseLine)
		encodeCells(buf, num[:], w.Cells)
	}
	moveTo(buf, num[:], p.Cursor.Row, p.Cursor.Col)
	buf.WriteString(showCursor)
	if sync {
		buf.WriteString(syncEnd)
	}
}

// moveTo writes ESC [ row ; col H with one-based coordinates.
func moveTo(buf *bytes.Buffer, num []byte, row, col int) {
	buf.WriteString("\x1b[")
	buf.Write(strconv.AppendInt(num[:0], int64(row+1), 10))
	buf.WriteByte(';')
	buf.Write(strconv.AppendInt(num[:0], int64(col+1), 10))
	buf.WriteByte('H')
}

// encodeCells writes the row text, switching SGR only where the style
// changes. Trailing default blanks are left to the preceding erase.
func encodeCells(buf *bytes.Buffer, num []byte, cells []Cell) {
	end := len(cells)
	for end > 0 && cells[end-1] == blank {
		end--
	}
	cur := Style{}
	for _, cell := range cells[:end] {
		if cell.Text == "" {
			continue
		}
		if cell.Style != cur {
			writeSGR(buf, num, cell.Style)
			cur = cell.Style
		}
		buf.WriteString(cell.Text)
	}
	if cur != (Style{}) {
		buf.WriteString(resetSGR)
	}
}

var attrCodes = []struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrUnderline, '4'},
	{AttrReverse, '7'},
}

// writeSGR emits a full rendition reset followed by st's attributes.
func writeSGR(buf *bytes.Buffer, num []byte, st Style) {
	buf.WriteString("\x1b[0")
	for _, a := range attrCodes {
		if st.Attr&a.attr != 0 {
			buf.WriteByte(';')
			buf.WriteByte(a.code)
		}
	}
	if st.Fg != ColorDefault {
		buf.WriteByte(';')
		buf.Write(strconv.AppendInt(num[:0], int64(29+int(st.Fg)), 10))
	}
	buf.WriteByte('m')
}
