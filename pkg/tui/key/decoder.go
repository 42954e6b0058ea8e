// ABOUTME: Decoder turns a raw terminal byte stream into Events, one at a time, on demand.
// ABOUTME: Bare ESC and escape sequences are told apart by the read timeout of the underlying reader.

package key

import (
	"errors"
	"io"
)

const (
	esc = 0x1b

	// maxSequenceLen bounds how many bytes of an unrecognized CSI sequence
	// are consumed before the decoder gives up on it.
	maxSequenceLen = 32
)

// IdleFunc is called on every read timeout. Returning ok=true makes Next
// return ev; a non-nil error is returned from Next as is.
type IdleFunc func() (ev Event, ok bool, err error)

// Decoder reads Events from a reader whose Read returns (0, nil) when its
// timeout elapses without input, such as a raw-mode terminal.Session.
// It holds at most one byte of look-ahead.
type Decoder struct {
	r    io.Reader
	idle IdleFunc

	buf     [1]byte
	pending byte
	hasPend bool
	err     error
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithIdle installs the idle tick hook.
func WithIdle(fn IdleFunc) Option {
	return func(d *Decoder) {
		d.idle = fn
	}
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: r}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Next blocks until one event is decoded. io.EOF from the reader becomes an
// EndOfInput event; other read errors are returned.
func (d *Decoder) Next() (Event, error) {
	for {
		b, ok, err := d.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return EndOfInput(), nil
			}
			return Event{}, err
		}
		if !ok {
			if d.idle == nil {
				continue
			}
			ev, ok, err := d.idle()
			if err != nil {
				return Event{}, err
			}
			if ok {
				return ev, nil
			}
			continue
		}

		switch {
		case b == esc:
			if ev, ok := d.escape(); ok {
				return ev, nil
			}
		case b < 0x20:
			return Control(b), nil
		default:
			return Character(b), nil
		}
	}
}

// readByte returns the next byte. ok is false when the read timed out.
// A read error is remembered and returned again on later calls.
func (d *Decoder) readByte() (b byte, ok bool, err error) {
	if d.hasPend {
		d.hasPend = false
		return d.pending, true, nil
	}
	if d.err != nil {
		return 0, false, d.err
	}
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		if err != nil {
			d.err = err
		}
		return d.buf[0], true, nil
	}
	if err != nil {
		d.err = err
		return 0, false, err
	}
	return 0, false, nil
}

func (d *Decoder) unread(b byte) {
	d.pending = b
	d.hasPend = true
}

// follow reads a byte that continues an escape sequence. A timeout or a
// read error ends the sequence; the error surfaces on the next Next call.
func (d *Decoder) follow() (byte, bool) {
	b, ok, err := d.readByte()
	if err != nil || !ok {
		return 0, false
	}
	return b, true
}

// escape decodes what follows an ESC byte. ok is false when the sequence
// was consumed and discarded.
func (d *Decoder) escape() (Event, bool) {
	b, ok := d.follow()
	if !ok {
		return Escape(), true
	}

	switch {
	case b == '[':
		return d.csi()
	case b == 'O':
		return d.ss3()
	case b == esc:
		d.unread(b)
		return Escape(), true
	default:
		// ESC followed by anything else is a lone escape; the byte is
		// swallowed rather than delivered as text.
		return Escape(), true
	}
}

// csi consumes ESC [ <params> <intermediates> <final> up to the final byte.
// Malformed sequences are still consumed through their final byte, up to
// maxSequenceLen bytes, so their tail never leaks out as characters.
func (d *Decoder) csi() (Event, bool) {
	var seq [maxSequenceLen]byte
	n := 0
	intermediate, bad := false, false
	for consumed := 0; consumed < maxSequenceLen; consumed++ {
		b, ok := d.follow()
		if !ok {
			if consumed == 0 {
				return Escape(), true
			}
			return Event{}, false
		}
		switch {
		case b >= 0x40 && b <= 0x7e:
			if intermediate || bad {
				return Event{}, false
			}
			return interpretCSI(string(seq[:n]), b)
		case b >= 0x30 && b <= 0x3f:
			if intermediate {
				bad = true
				continue
			}
			seq[n] = b
			n++
		case b >= 0x20 && b <= 0x2f:
			intermediate = true
		default:
			// Not part of a CSI sequence: abandon it and decode b afresh.
			d.unread(b)
			if consumed == 0 {
				return Escape(), true
			}
			return Event{}, false
		}
	}
	return Event{}, false
}

// ss3 consumes ESC O <final>.
func (d *Decoder) ss3() (Event, bool) {
	b, ok := d.follow()
	if !ok {
		return Escape(), true
	}
	if b == esc || b < 0x20 {
		d.unread(b)
		return Escape(), true
	}
	return interpretSS3(b)
}
