package menu

import "testing"

func TestNewViewport(t *testing.T) {
	v := NewViewport(90, "go", 50)
	if v.PromptWidth != 6 {
		t.Errorf("PromptWidth = %d, want 6", v.PromptWidth)
	}
	if v.InputWidth != 30 {
		t.Errorf("InputWidth = %d, want a third of the row", v.InputWidth)
	}

	v = NewViewport(90, "", 3)
	if v.PromptWidth != 0 || v.InputWidth != 7 {
		t.Errorf("got prompt %d input %d, want 0 and 7", v.PromptWidth, v.InputWidth)
	}
}

func TestTextWidthCountsColumns(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 4},
		{"abc", 7},
		{"ĉĉĉ", 7},
		{"日本語", 10},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.s); got != tt.want {
			t.Errorf("TextWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestBudgetIsNeverEmpty(t *testing.T) {
	v := Viewport{Width: 10, InputWidth: 20}
	if got := v.Budget(); got != 1 {
		t.Fatalf("Budget = %d, want 1", got)
	}
}

func fixedWidths(ws ...int) func(int) int {
	return func(i int) int { return ws[i] }
}

func TestLayout(t *testing.T) {
	// Budget 18: two entries of width 8 fit, a third does not.
	v := Viewport{Width: 36, InputWidth: 8}
	widths := fixedWidths(8, 8, 8, 8, 8)

	tests := []struct {
		name string
		curr int
		want Window
	}{
		{"first page", 0, Window{Prev: 0, Curr: 0, Next: 2}},
		{"second page", 2, Window{Prev: 0, Curr: 2, Next: 4}},
		{"tail visible", 4, Window{Prev: 2, Curr: 4, Next: 5}},
		{"odd start", 1, Window{Prev: 0, Curr: 1, Next: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Layout(5, tt.curr, widths); got != tt.want {
				t.Fatalf("Layout(curr=%d) = %+v, want %+v", tt.curr, got, tt.want)
			}
		})
	}
}

func TestLayoutOversizedEntryShownAlone(t *testing.T) {
	v := Viewport{Width: 30, InputWidth: 5} // budget 15
	got := v.Layout(3, 0, fixedWidths(100, 3, 3))
	if got.Next != 1 {
		t.Fatalf("Next = %d, want the wide entry alone", got.Next)
	}
	got = v.Layout(3, 1, fixedWidths(100, 3, 3))
	if got.Prev != 0 {
		t.Fatalf("Prev = %d, want 0", got.Prev)
	}
}

func TestLayoutEmpty(t *testing.T) {
	v := Viewport{Width: 80, InputWidth: 10}
	if got := v.Layout(0, 0, fixedWidths()); got != (Window{}) {
		t.Fatalf("Layout of empty list = %+v", got)
	}
}
