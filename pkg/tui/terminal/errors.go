// ABOUTME: Typed errors for terminal session failures, one Kind per failing OS interaction.
// ABOUTME: Error renders as "op: os error" so fatal diagnostics read like perror output.

package terminal

import "errors"

// Kind classifies a terminal failure.
type Kind int

const (
	KindNotInteractive Kind = iota + 1
	KindAttrRead
	KindAttrWrite
	KindDimensionQuery
	KindRead
	KindWrite
)

var kindNames = map[Kind]string{
	KindNotInteractive: "not interactive",
	KindAttrRead:       "attribute read",
	KindAttrWrite:      "attribute write",
	KindDimensionQuery: "dimension query",
	KindRead:           "read",
	KindWrite:          "write",
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var (
	// ErrNotInteractive is returned when the input is not attached to a terminal.
	ErrNotInteractive = errors.New("inappropriate ioctl for device: not a terminal")
	// ErrMalformedReport is returned when a cursor position report cannot be parsed.
	ErrMalformedReport = errors.New("malformed cursor position report")
)

// Error is a terminal failure tagged with the operation that caused it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == k
}
