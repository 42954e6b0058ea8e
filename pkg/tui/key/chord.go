// ABOUTME: Chord names a control-key combination (Ctrl+letter and friends) by its control code.
// ABOUTME: ParseChord and String convert between config names like "ctrl+q" and control bytes.

package key

import (
	"fmt"
	"strings"
)

// Chord is a control code in the range 0x00..0x1F.
type Chord byte

// Common chords.
const (
	ChordQuit Chord = 0x11 // ctrl+q
)

// chordSymbols names the control codes that are not Ctrl+letter. ESC (ctrl+[)
// is absent: the decoder never reports it as a chord.
var chordSymbols = map[Chord]string{
	0x00: "space",
	0x1c: "\\",
	0x1d: "]",
	0x1e: "^",
	0x1f: "_",
}

// String returns the chord name in config form, e.g. "ctrl+q".
func (c Chord) String() string {
	if c >= 0x01 && c <= 0x1a {
		return "ctrl+" + string(rune('a'+c-1))
	}
	if s, ok := chordSymbols[c]; ok {
		return "ctrl+" + s
	}
	return fmt.Sprintf("chord(0x%02x)", byte(c))
}

// ParseChord parses a chord name such as "ctrl+q" or "Ctrl-Q".
func ParseChord(name string) (Chord, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	rest, ok := strings.CutPrefix(s, "ctrl+")
	if !ok {
		rest, ok = strings.CutPrefix(s, "ctrl-")
	}
	if !ok || rest == "" {
		return 0, fmt.Errorf("unknown chord %q", name)
	}
	if len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		return Chord(rest[0] - 'a' + 1), nil
	}
	for c, sym := range chordSymbols {
		if rest == sym {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown chord %q", name)
}

// ChordNames returns every chord name ParseChord accepts in canonical form.
func ChordNames() []string {
	names := make([]string, 0, 32)
	for c := Chord(0); c < 0x20; c++ {
		if c == 0x1b {
			continue
		}
		names = append(names, c.String())
	}
	return names
}
