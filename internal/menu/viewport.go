package menu

import (
	"github.com/mattn/go-runewidth"
	"github.com/slmenu/slmenu/internal/terminal"
)

// markerWidth is the room taken by a drawn "<" or ">".
const markerWidth = 1 + terminal.PadWidth

// TextWidth is the number of columns a field showing s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s) + terminal.PadWidth
}

// Viewport holds the fixed column split of the menu row.
type Viewport struct {
	Width       int // terminal columns
	PromptWidth int // 0 without a prompt
	InputWidth  int // query field when there are matches
}

// NewViewport sizes the row for a terminal of width columns. The query
// field is as wide as the widest candidate but never more than a third
// of the row.
func NewViewport(width int, prompt string, widestCandidate int) Viewport {
	v := Viewport{Width: width}
	if prompt != "" {
		v.PromptWidth = TextWidth(prompt)
	}
	v.InputWidth = min(widestCandidate+terminal.PadWidth, width/3)
	return v
}

// Budget is the width left for candidates between the two markers. It is
// at least 1 so a window is never empty.
func (v Viewport) Budget() int {
	return max(1, v.Width-(v.PromptWidth+v.InputWidth+2*markerWidth))
}

// Window is the visible run [Curr, Next) of a match list. Prev is where
// Curr moves when scrolling back one window. Next equals the list length
// when the tail is visible.
type Window struct {
	Prev, Curr, Next int
}

// Layout computes the window starting at curr over n entries whose widths
// are given by width. An entry wider than the budget counts as exactly
// the budget, so it is shown alone rather than leaving the window empty.
func (v Viewport) Layout(n, curr int, width func(int) int) Window {
	budget := v.Budget()
	w := Window{Curr: curr}

	total := 0
	for w.Next = curr; w.Next < n; w.Next++ {
		if total += min(width(w.Next), budget); total > budget {
			break
		}
	}

	total = 0
	for w.Prev = curr; w.Prev > 0; w.Prev-- {
		if total += min(width(w.Prev-1), budget); total > budget {
			break
		}
	}
	return w
}
