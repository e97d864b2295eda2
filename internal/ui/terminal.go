package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal owns stdin. It runs one reader goroutine for the whole process
// lifetime; the application interprets the decoded runes either as single
// keystrokes or, while capturing a line, as dictation and form input. A
// single reader avoids the mode-switch races of handing stdin back and
// forth between key and line readers.
type Terminal struct {
	in    *os.File
	out   io.Writer
	prev  *term.State
	runes chan rune
}

// NewTerminal wraps stdin and out for interactive use.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, runes: make(chan rune, 16)}
}

// Out returns the terminal's output writer.
func (t *Terminal) Out() io.Writer {
	return t.out
}

// Interactive reports whether stdin is a real terminal. When it is not
// (piped input, tests), Raw is a no-op and keys are still delivered.
func (t *Terminal) Interactive() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// Raw switches the terminal to raw mode so single keystrokes arrive
// without waiting for Enter.
func (t *Terminal) Raw() error {
	if !t.Interactive() {
		return nil
	}
	prev, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.prev = prev
	return nil
}

// Restore undoes Raw. Safe to call more than once.
func (t *Terminal) Restore() {
	if t.prev == nil {
		return
	}
	_ = term.Restore(int(t.in.Fd()), t.prev)
	t.prev = nil
}

// Runes returns the decoded keystroke stream. The channel closes on EOF.
func (t *Terminal) Runes() <-chan rune {
	return t.runes
}

// ReadLoop decodes stdin until EOF. Run it in its own goroutine.
func (t *Terminal) ReadLoop() {
	defer close(t.runes)
	rd := bufio.NewReader(t.in)
	for {
		r, _, err := rd.ReadRune()
		if err != nil {
			return
		}
		t.runes <- r
	}
}

// Echo writes r back to the terminal, used while capturing visible input
// in raw mode.
func (t *Terminal) Echo(r rune) {
	fmt.Fprintf(t.out, "%c", r)
}

// EraseLast moves the cursor back over one echoed rune.
func (t *Terminal) EraseLast() {
	fmt.Fprint(t.out, "\b \b")
}
