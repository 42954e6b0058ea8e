// ABOUTME: Tests for the Renderer: minimal row diffs, single writes, commit-on-success, resize detection
// ABOUTME: Uses VirtualTerminal as both the output writer and the size source

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// textFrame builds a frame whose rows hold the given lines.
func textFrame(rows, cols int, lines ...string) *Frame {
	f := NewFrame(rows, cols)
	for i, l := range lines {
		f.SetString(i, 0, l, Style{})
	}
	return f
}

func TestRenderer_FirstRenderPaintsEveryRow(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)

	if err := r.Render(textFrame(3, 80, "hello", "~", "~"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	want := hideCursor +
		"\x1b[1;1H" + eraseLine + "hello" +
		"\x1b[2;1H" + eraseLine + "~" +
		"\x1b[3;1H" + eraseLine + "~" +
		"\x1b[1;1H" + showCursor
	if got := vt.Output(); got != want {
		t.Errorf("output =\n%q\nwant\n%q", got, want)
	}
	if vt.WriteCount() != 1 {
		t.Errorf("WriteCount() = %d, want 1", vt.WriteCount())
	}
}

func TestRenderer_UnchangedFrameWritesNothing(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)
	frame := textFrame(3, 80, "hello", "~", "~")

	if err := r.Render(frame, Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	vt.Reset()

	if err := r.Render(textFrame(3, 80, "hello", "~", "~"), Position{}); err != nil {
		t.Fatalf("second Render() unexpected error: %v", err)
	}
	if vt.Output() != "" || vt.WriteCount() != 0 {
		t.Errorf("second render wrote %q in %d writes, want nothing", vt.Output(), vt.WriteCount())
	}
}

func TestRenderer_SingleRowChange(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)

	if err := r.Render(textFrame(3, 80, "hello", "~", "~"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	vt.Reset()

	if err := r.Render(textFrame(3, 80, "hello", "~", "world"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	got := vt.Output()
	want := hideCursor + "\x1b[3;1H" + eraseLine + "world" + "\x1b[1;1H" + showCursor
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if n := strings.Count(got, eraseLine); n != 1 {
		t.Errorf("erase count = %d, want 1", n)
	}
}

func TestRenderer_CursorOnlyMove(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)
	if err := r.Render(textFrame(3, 80, "hello"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	vt.Reset()

	if err := r.Render(textFrame(3, 80, "hello"), Position{Row: 1, Col: 2}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got, want := vt.Output(), hideCursor+"\x1b[2;3H"+showCursor; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRenderer_CursorClamped(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)
	if err := r.Render(textFrame(3, 80), Position{Row: 10, Col: 200}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.HasSuffix(vt.Output(), "\x1b[3;80H"+showCursor) {
		t.Errorf("output = %q, want cursor clamped to 3;80", vt.Output())
	}
}

func TestRenderer_SizeMismatch(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(24, 80)
	r := NewRenderer(vt, vt)

	err := r.Render(textFrame(3, 80, "hello"), Position{})
	var re *ResizeError
	if !errors.As(err, &re) {
		t.Fatalf("Render() error = %v, want *ResizeError", err)
	}
	if re.Rows != 24 || re.Cols != 80 {
		t.Errorf("ResizeError = %dx%d, want 24x80", re.Rows, re.Cols)
	}
	if vt.WriteCount() != 0 {
		t.Errorf("WriteCount() = %d, want 0", vt.WriteCount())
	}
	if r.Committed() != nil {
		t.Error("mismatched frame must not be committed")
	}
}

func TestRenderer_SizeError(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	boom := &terminal.Error{Kind: terminal.KindDimensionQuery, Op: "cursor position report", Err: terminal.ErrMalformedReport}
	vt.SetSizeError(boom)
	r := NewRenderer(vt, vt)

	if err := r.Render(textFrame(3, 80), Position{}); !terminal.IsKind(err, terminal.KindDimensionQuery) {
		t.Fatalf("Render() error = %v, want KindDimensionQuery", err)
	}
}

func TestRenderer_WriteFailureDoesNotCommit(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)
	if err := r.Render(textFrame(3, 80, "one"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	vt.SetWriteError(errors.New("broken pipe"))
	err := r.Render(textFrame(3, 80, "two"), Position{})
	if !terminal.IsKind(err, terminal.KindWrite) {
		t.Fatalf("Render() error = %v, want KindWrite", err)
	}
	if got := r.Committed().Line(0); got != "one" {
		t.Errorf("committed row 0 = %q, want %q", got, "one")
	}

	// Once writes work again the failed change is retried.
	vt.SetWriteError(nil)
	vt.Reset()
	if err := r.Render(textFrame(3, 80, "two"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(vt.Output(), "\x1b[1;1H"+eraseLine+"two") {
		t.Errorf("output = %q, want row 1 rewritten", vt.Output())
	}
}

func TestRenderer_WriteErrorKeepsTerminalKind(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	te := &terminal.Error{Kind: terminal.KindWrite, Op: "write", Err: errors.New("input/output error")}
	vt.SetWriteError(te)
	r := NewRenderer(vt, vt)

	err := r.Render(textFrame(3, 80), Position{})
	if err != te {
		t.Errorf("Render() error = %v, want the writer's error unchanged", err)
	}
}

func TestRenderer_InvalidateRepaints(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)
	frame := textFrame(3, 80, "a", "b", "c")
	if err := r.Render(frame, Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	vt.Reset()

	r.Invalidate()
	if err := r.Render(frame, Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if n := strings.Count(vt.Output(), eraseLine); n != 3 {
		t.Errorf("erase count after Invalidate = %d, want 3", n)
	}
}

func TestRenderer_ResizeRepaints(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(3, 80)
	r := NewRenderer(vt, vt)
	if err := r.Render(textFrame(3, 80, "a"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	vt.Reset()

	vt.SetSize(2, 40)
	if err := r.Render(textFrame(2, 40, "a"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if n := strings.Count(vt.Output(), eraseLine); n != 2 {
		t.Errorf("erase count after resize = %d, want 2", n)
	}
}

func TestRenderer_SyncOutput(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(1, 10)
	r := NewRenderer(vt, vt, WithSyncOutput(true))
	if err := r.Render(textFrame(1, 10, "x"), Position{}); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	out := vt.Output()
	if !strings.HasPrefix(out, syncBegin+hideCursor) || !strings.HasSuffix(out, showCursor+syncEnd) {
		t.Errorf("output = %q, want synchronized update markers", out)
	}
}
