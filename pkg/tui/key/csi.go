// ABOUTME: Interprets complete CSI and SS3 escape sequences, including xterm modifier parameters.
// ABOUTME: Returns ok=false for anything outside the grammar so the decoder can discard it.

package key

import (
	"strconv"
	"strings"
)

// xterm modifier parameter bits, encoded on the wire as 1+bits.
const (
	xtermShift = 1 << iota
	xtermAlt
	xtermCtrl
	xtermMeta
)

// interpretCSI maps ESC [ <params> <final> to an event.
func interpretCSI(params string, final byte) (Event, bool) {
	first, modParam, _ := strings.Cut(params, ";")
	if strings.Contains(modParam, ";") {
		return Event{}, false
	}

	var ev Event
	switch {
	case final == '~':
		n, err := strconv.Atoi(first)
		if err != nil {
			return Event{}, false
		}
		e, ok := tildeCodes[n]
		if !ok {
			return Event{}, false
		}
		ev = e
	default:
		e, ok := letterFinals[final]
		if !ok {
			return Event{}, false
		}
		// Letter forms carry either no parameters or a leading 1.
		if first != "" && first != "1" {
			return Event{}, false
		}
		ev = e
	}

	if modParam == "" {
		if strings.Contains(params, ";") {
			return Event{}, false
		}
		return ev, true
	}
	mod, ok := parseModifier(modParam)
	if !ok {
		return Event{}, false
	}
	return ev.WithMod(mod), true
}

// interpretSS3 maps ESC O <final> to an event.
func interpretSS3(final byte) (Event, bool) {
	ev, ok := letterFinals[final]
	return ev, ok
}

// parseModifier decodes an xterm modifier parameter (1 means none).
func parseModifier(s string) (Mod, bool) {
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 16 {
		return 0, false
	}
	bits := m - 1
	var mod Mod
	if bits&xtermShift != 0 {
		mod |= ModShift
	}
	if bits&(xtermAlt|xtermMeta) != 0 {
		mod |= ModAlt
	}
	if bits&xtermCtrl != 0 {
		mod |= ModCtrl
	}
	return mod, true
}
