package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Video attributes; the menu only knows two.
const (
	Reverse = "\033[7m"
)

// Field padding on each side of drawn text.
const fieldPad = "  "

// PadWidth is the number of padding columns around every drawn field.
const PadWidth = 2 * len(fieldPad)

// Ellipsis marks text cut to fit its field.
const Ellipsis = "...."

// OpKind identifies a draw operation.
type OpKind int

const (
	// OpColumn moves the cursor to a zero-based column.
	OpColumn OpKind = iota
	// OpClearLine resets attributes and clears the row from the cursor.
	OpClearLine
	// OpText draws padded text in a field of Width content columns.
	OpText
)

// DrawOp is one instruction of a frame.
type DrawOp struct {
	Kind    OpKind
	Column  int
	Text    string
	Width   int
	Reverse bool
}

// Frame is the ordered list of instructions for one redraw.
type Frame []DrawOp

// Column returns an OpColumn instruction.
func Column(col int) DrawOp {
	return DrawOp{Kind: OpColumn, Column: col}
}

// ClearLine returns an OpClearLine instruction.
func ClearLine() DrawOp {
	return DrawOp{Kind: OpClearLine}
}

// Text returns an OpText instruction.
func Text(s string, width int, reverse bool) DrawOp {
	return DrawOp{Kind: OpText, Text: s, Width: width, Reverse: reverse}
}

// FitText pads s with spaces to exactly width columns, cutting it and
// ending it with an ellipsis when it is wider.
func FitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		tail := Ellipsis
		if width <= len(tail) {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	return runewidth.FillRight(s, width)
}

// Renderer writes frames as escape-coded output.
type Renderer struct {
	w io.Writer
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Draw writes the whole frame in one write.
func (r *Renderer) Draw(f Frame) error {
	var b strings.Builder
	for _, op := range f {
		switch op.Kind {
		case OpColumn:
			fmt.Fprintf(&b, "\033[%dG", op.Column+1)
		case OpClearLine:
			b.WriteString(Reset + "\033[K")
		case OpText:
			if op.Reverse {
				b.WriteString(Reverse)
			}
			b.WriteString(fieldPad)
			b.WriteString(FitText(op.Text, op.Width))
			b.WriteString(fieldPad)
			if op.Reverse {
				b.WriteString(Reset)
			}
		}
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// MoveToRow positions the cursor at the start of a one-based row.
func (r *Renderer) MoveToRow(row int) error {
	_, err := fmt.Fprintf(r.w, "\033[%dH", row)
	return err
}

// Clear blanks the menu row, used once on exit.
func (r *Renderer) Clear() error {
	_, err := io.WriteString(r.w, "\033[G\033[K")
	return err
}
