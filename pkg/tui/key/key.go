// ABOUTME: Defines the Event type produced by the input decoder and its constructors.
// ABOUTME: Events are a tagged variant: characters, control chords, navigation keys, resize, end of input.

package key

import (
	"fmt"
	"strings"
)

// EventType enumerates the kinds of input events the decoder can produce.
type EventType int

const (
	EventCharacter  EventType = iota + 1 // Byte holds the character
	EventControl                         // Byte holds the control code (< 0x20)
	EventArrow                           // Dir is Up, Down, Left or Right
	EventPage                            // Dir is Up or Down
	EventHomeEnd                         // Dir is Home or End
	EventDelete                          // Delete key
	EventEscape                          // bare ESC
	EventResize                          // Rows and Cols hold the new size
	EventEndOfInput                      // terminal closed
)

// Direction qualifies arrow, page and home/end events.
type Direction int

const (
	DirUp Direction = iota + 1
	DirDown
	DirLeft
	DirRight
	DirHome
	DirEnd
)

// Mod is a bitmask of key modifiers.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// Event is one decoded input event.
type Event struct {
	Type EventType
	Byte byte
	Dir  Direction
	Mod  Mod
	Rows int
	Cols int
}

// Character returns a character event for b.
func Character(b byte) Event { return Event{Type: EventCharacter, Byte: b} }

// Control returns a control chord event for the control code b.
func Control(b byte) Event { return Event{Type: EventControl, Byte: b} }

// Arrow returns an arrow key event.
func Arrow(d Direction) Event { return Event{Type: EventArrow, Dir: d} }

// Page returns a page up (DirUp) or page down (DirDown) event.
func Page(d Direction) Event { return Event{Type: EventPage, Dir: d} }

// HomeEnd returns a Home (DirHome) or End (DirEnd) event.
func HomeEnd(d Direction) Event { return Event{Type: EventHomeEnd, Dir: d} }

// Delete returns a delete key event.
func Delete() Event { return Event{Type: EventDelete} }

// Escape returns a bare ESC event.
func Escape() Event { return Event{Type: EventEscape} }

// Resize returns a window resize event.
func Resize(rows, cols int) Event { return Event{Type: EventResize, Rows: rows, Cols: cols} }

// EndOfInput returns the end-of-input event.
func EndOfInput() Event { return Event{Type: EventEndOfInput} }

// WithMod returns a copy of e with m added to its modifiers.
func (e Event) WithMod(m Mod) Event {
	e.Mod |= m
	return e
}

// IsChord reports whether e is the unmodified control chord c.
func (e Event) IsChord(c Chord) bool {
	return e.Type == EventControl && e.Byte == byte(c) && e.Mod == 0
}

var dirNames = map[Direction]string{
	DirUp:    "Up",
	DirDown:  "Down",
	DirLeft:  "Left",
	DirRight: "Right",
	DirHome:  "Home",
	DirEnd:   "End",
}

// String returns a human-readable representation of the event for debug logs.
func (e Event) String() string {
	var s string
	switch e.Type {
	case EventCharacter:
		s = fmt.Sprintf("%q", rune(e.Byte))
	case EventControl:
		s = Chord(e.Byte).String()
	case EventArrow:
		s = dirNames[e.Dir]
	case EventPage:
		s = "Page" + dirNames[e.Dir]
	case EventHomeEnd:
		s = dirNames[e.Dir]
	case EventDelete:
		s = "Delete"
	case EventEscape:
		s = "Escape"
	case EventResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Rows, e.Cols)
	case EventEndOfInput:
		return "EndOfInput"
	default:
		return "Unknown"
	}
	return e.Mod.prefix() + s
}

func (m Mod) prefix() string {
	var b strings.Builder
	if m&ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}
	if m&ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if m&ModShift != 0 {
		b.WriteString("Shift+")
	}
	return b.String()
}
