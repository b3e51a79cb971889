package terminal

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be queried.
const DefaultWidth = 80

// TTY is the controlling terminal, opened separately from stdin so the
// candidate list can be piped in.
type TTY struct {
	f        *os.File
	reader   *bufio.Reader
	oldState *term.State
}

// OpenTTY opens the controlling terminal for reading keys.
func OpenTTY(path string) (*TTY, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("can't open tty: %w", err)
	}
	if !term.IsTerminal(int(f.Fd())) {
		f.Close()
		return nil, fmt.Errorf("%s is not a terminal", path)
	}
	return &TTY{f: f, reader: bufio.NewReader(f)}, nil
}

// MakeRaw disables line buffering, echo and signal keys. Callers must
// defer Restore right after a successful call.
func (t *TTY) MakeRaw() error {
	oldState, err := term.MakeRaw(int(t.f.Fd()))
	if err != nil {
		return fmt.Errorf("can't enter raw mode: %w", err)
	}
	t.oldState = oldState
	return nil
}

// Restore puts the terminal back the way MakeRaw found it. It is safe to
// call more than once.
func (t *TTY) Restore() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.f.Fd()), t.oldState)
	t.oldState = nil
	return err
}

// Size returns the terminal columns and rows, falling back to
// DefaultWidth columns and zero rows.
func (t *TTY) Size() (width, height int) {
	w, h, err := term.GetSize(int(t.f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth, 0
	}
	return w, h
}

// ReadByte blocks until the next input byte.
func (t *TTY) ReadByte() (byte, error) {
	return t.reader.ReadByte()
}

// Close restores the terminal and closes the device.
func (t *TTY) Close() error {
	rerr := t.Restore()
	if err := t.f.Close(); err != nil {
		return err
	}
	return rerr
}
