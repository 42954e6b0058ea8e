// ABOUTME: Loop drives the editor: render the document, decode one event, dispatch it, repeat
// ABOUTME: Every exit path restores the terminal and clears the screen exactly once

package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

const (
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J\x1b[H"
)

// Document is the editable content the loop displays.
type Document interface {
	// Frame returns the screen contents at exactly rows x cols.
	Frame(rows, cols int) *tui.Frame
	// Cursor returns where the terminal cursor should sit.
	Cursor() tui.Position
	// HandleEvent applies one input event. A Resize event is delivered
	// before the first frame and whenever the screen size changes.
	HandleEvent(ev key.Event)
}

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminating
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "terminating"
}

// Loop is a single-threaded render/read/dispatch cycle over one terminal.
type Loop struct {
	term     terminal.Terminal
	doc      Document
	renderer *tui.Renderer
	decoder  *key.Decoder

	quit     key.Chord
	syncOut  bool
	resizeCh <-chan os.Signal

	ctx   context.Context
	state State

	// size last announced to the document
	rows, cols int
}

// Option configures a Loop.
type Option func(*Loop)

// WithQuitChord sets the chord that ends the session (default ctrl+q).
func WithQuitChord(c key.Chord) Option {
	return func(l *Loop) {
		l.quit = c
	}
}

// WithSyncOutput enables synchronized output in the renderer.
func WithSyncOutput(on bool) Option {
	return func(l *Loop) {
		l.syncOut = on
	}
}

// WithResizeSignal sets the channel polled for window-size changes.
func WithResizeSignal(ch <-chan os.Signal) Option {
	return func(l *Loop) {
		l.resizeCh = ch
	}
}

// New returns a Loop over t and doc.
func New(t terminal.Terminal, doc Document, opts ...Option) *Loop {
	l := &Loop{
		term: t,
		doc:  doc,
		quit: key.ChordQuit,
		ctx:  context.Background(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.renderer = tui.NewRenderer(t, t, tui.WithSyncOutput(l.syncOut))
	l.decoder = key.NewDecoder(t, key.WithIdle(l.poll))
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Run cycles until the quit chord, end of input, cancellation of ctx, or a
// terminal failure. It always restores the terminal and clears the screen
// before returning. The error is nil for a clean quit.
func (l *Loop) Run(ctx context.Context) (err error) {
	l.ctx = ctx
	defer func() {
		err = l.terminate(err)
	}()

	for l.state == StateRunning {
		if err := l.cycle(); err != nil {
			return err
		}
	}
	return nil
}

// cycle handles a pending signal, renders once, then waits for and
// dispatches one event.
func (l *Loop) cycle() error {
	ev, ok, err := l.poll()
	if err != nil {
		return err
	}
	if ok {
		l.dispatch(ev)
	}

	if err := l.render(); err != nil {
		return err
	}
	ev, err = l.decoder.Next()
	if err != nil {
		return err
	}
	l.dispatch(ev)
	return nil
}

func (l *Loop) render() error {
	rows, cols, err := l.term.Size()
	if err != nil {
		return err
	}
	l.announceSize(rows, cols)
	err = l.renderer.Render(l.doc.Frame(rows, cols), l.doc.Cursor())

	// The size changed between the query and the write: rebuild once at
	// the size the renderer saw.
	var re *tui.ResizeError
	if errors.As(err, &re) {
		log.Debug("frame rebuilt for %dx%d", re.Rows, re.Cols)
		l.renderer.Invalidate()
		l.announceSize(re.Rows, re.Cols)
		err = l.renderer.Render(l.doc.Frame(re.Rows, re.Cols), l.doc.Cursor())
	}
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

func (l *Loop) dispatch(ev key.Event) {
	log.Debug("event %s", ev)
	switch {
	case ev.IsChord(l.quit), ev.Type == key.EventEndOfInput:
		l.state = StateTerminating
	case ev.Type == key.EventResize:
		l.renderer.Invalidate()
		l.announceSize(ev.Rows, ev.Cols)
	default:
		l.doc.HandleEvent(ev)
	}
}

// announceSize sends the document a Resize event when rows x cols differs
// from the size it last saw.
func (l *Loop) announceSize(rows, cols int) {
	if rows == l.rows && cols == l.cols {
		return
	}
	l.rows, l.cols = rows, cols
	l.doc.HandleEvent(key.Resize(rows, cols))
}

// poll runs at the top of every cycle and on every read timeout: it
// reports cancellation and turns a pending resize signal into a Resize
// event. It never blocks.
func (l *Loop) poll() (key.Event, bool, error) {
	select {
	case <-l.ctx.Done():
		return key.Event{}, false, context.Cause(l.ctx)
	case <-l.resizeCh:
		rows, cols, err := l.term.Refresh()
		if err != nil {
			return key.Event{}, false, err
		}
		return key.Resize(rows, cols), true, nil
	default:
		return key.Event{}, false, nil
	}
}

// terminate leaves raw mode, shows the cursor and clears the screen. A restore failure is
// reported only when nothing else went wrong first.
func (l *Loop) terminate(cause error) error {
	l.state = StateTerminating

	rerr := l.term.Restore()
	if _, werr := io.WriteString(l.term, showCursor+clearScreen); werr != nil {
		log.Debug("clearing screen: %v", werr)
	}

	if cause != nil {
		log.Error("editor stopped: %v", cause)
		return cause
	}
	if rerr != nil {
		return fmt.Errorf("restoring terminal: %w", rerr)
	}
	log.Info("editor quit")
	return nil
}
