package menu

import (
	"github.com/mattn/go-runewidth"
)

// DefaultCapacity is the largest query, in bytes.
const DefaultCapacity = 8191

// Editor is the query line: a bounded byte buffer of UTF-8 text and a
// cursor that always sits on a rune boundary.
type Editor struct {
	buf      []byte
	cursor   int
	capacity int
}

// NewEditor returns an empty editor holding at most capacity bytes.
func NewEditor(capacity int) *Editor {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Editor{capacity: capacity}
}

func (e *Editor) String() string { return string(e.buf) }

// Cursor returns the cursor byte offset.
func (e *Editor) Cursor() int { return e.cursor }

// Len returns the text length in bytes.
func (e *Editor) Len() int { return len(e.buf) }

// AtEnd reports whether the cursor is after the last byte.
func (e *Editor) AtEnd() bool { return e.cursor == len(e.buf) }

// DisplayOffset is the column width of the text before the cursor.
func (e *Editor) DisplayOffset() int {
	return runewidth.StringWidth(string(e.buf[:e.cursor]))
}

// RuneBoundary steps from offset from in direction dir (-1 or +1) to the
// nearest offset that is not a UTF-8 continuation byte. The result is
// clamped to [0, len(b)].
func RuneBoundary(b []byte, from, dir int) int {
	n := from + dir
	for n > 0 && n < len(b) && b[n]&0xc0 == 0x80 {
		n += dir
	}
	return max(0, min(n, len(b)))
}

func (e *Editor) nextRune(dir int) int {
	return RuneBoundary(e.buf, e.cursor, dir)
}

// splice inserts p at the cursor when n > 0, or removes the -n bytes
// before the cursor when n < 0. Growth past capacity is refused.
func (e *Editor) splice(p []byte, n int) bool {
	switch {
	case n > 0:
		if len(e.buf)+n > e.capacity {
			return false
		}
		e.buf = append(e.buf[:e.cursor], append(append([]byte(nil), p[:n]...), e.buf[e.cursor:]...)...)
	case n < 0:
		if e.cursor+n < 0 {
			return false
		}
		e.buf = append(e.buf[:e.cursor+n], e.buf[e.cursor:]...)
	default:
		return false
	}
	e.cursor += n
	return true
}

// Insert adds p at the cursor and moves the cursor past it. It is a
// no-op when the result would not fit.
func (e *Editor) Insert(p []byte) bool {
	return e.splice(p, len(p))
}

// DeleteRunes removes n runes after the cursor when n > 0, or -n runes
// before it when n < 0.
func (e *Editor) DeleteRunes(n int) bool {
	start, end := e.cursor, e.cursor
	for ; n > 0 && end < len(e.buf); n-- {
		end = RuneBoundary(e.buf, end, +1)
	}
	for ; n < 0 && start > 0; n++ {
		start = RuneBoundary(e.buf, start, -1)
	}
	e.cursor = end
	return e.deleteTo(start)
}

// deleteTo removes the bytes between start and the cursor, start <= cursor.
func (e *Editor) deleteTo(start int) bool {
	return e.splice(nil, start-e.cursor)
}

// Left moves one rune back.
func (e *Editor) Left() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor = e.nextRune(-1)
	return true
}

// Right moves one rune forward.
func (e *Editor) Right() bool {
	if e.AtEnd() {
		return false
	}
	e.cursor = e.nextRune(+1)
	return true
}

// Home moves to the start of the line.
func (e *Editor) Home() { e.cursor = 0 }

// End moves to the end of the line.
func (e *Editor) End() { e.cursor = len(e.buf) }

func (e *Editor) wordStart() int {
	n := e.cursor
	for n > 0 && e.buf[RuneBoundary(e.buf, n, -1)] == ' ' {
		n = RuneBoundary(e.buf, n, -1)
	}
	for n > 0 && e.buf[RuneBoundary(e.buf, n, -1)] != ' ' {
		n = RuneBoundary(e.buf, n, -1)
	}
	return n
}

func (e *Editor) wordEnd() int {
	n := e.cursor
	for n < len(e.buf) && e.buf[n] == ' ' {
		n = RuneBoundary(e.buf, n, +1)
	}
	for n < len(e.buf) && e.buf[n] != ' ' {
		n = RuneBoundary(e.buf, n, +1)
	}
	return n
}

// WordLeft moves to the start of the previous word. Space is the only
// separator.
func (e *Editor) WordLeft() { e.cursor = e.wordStart() }

// WordRight moves past the end of the next word.
func (e *Editor) WordRight() { e.cursor = e.wordEnd() }

// DeleteWordLeft removes from the start of the previous word to the cursor.
func (e *Editor) DeleteWordLeft() bool {
	return e.deleteTo(e.wordStart())
}

// DeleteWordRight removes from the cursor to the end of the next word.
func (e *Editor) DeleteWordRight() bool {
	start := e.cursor
	e.cursor = e.wordEnd()
	return e.deleteTo(start)
}

// KillToEnd truncates the line at the cursor.
func (e *Editor) KillToEnd() bool {
	if e.AtEnd() {
		return false
	}
	e.buf = e.buf[:e.cursor]
	return true
}

// KillToStart removes everything before the cursor.
func (e *Editor) KillToStart() bool {
	return e.deleteTo(0)
}

// SetText replaces the line and puts the cursor at its end. Text beyond
// capacity is cut at a rune boundary.
func (e *Editor) SetText(s string) {
	b := []byte(s)
	if len(b) > e.capacity {
		n := e.capacity
		for n > 0 && b[n]&0xc0 == 0x80 {
			n--
		}
		b = b[:n]
	}
	e.buf = b
	e.cursor = len(b)
}
