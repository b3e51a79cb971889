package menu

import (
	"github.com/mattn/go-runewidth"
	"github.com/slmenu/slmenu/internal/terminal"
)

// Frame returns the draw instructions for the current state. It has no
// side effects, so equal states give equal frames.
func (s *Session) Frame() terminal.Frame {
	v := s.view
	f := terminal.Frame{terminal.Column(0), terminal.ClearLine()}

	if s.prompt != "" {
		f = append(f, terminal.Text(s.prompt, v.PromptWidth-terminal.PadWidth, true))
	}

	inputWidth := v.InputWidth
	if len(s.matches) == 0 {
		inputWidth = v.Width - v.PromptWidth
	}
	fieldWidth := inputWidth - terminal.PadWidth
	f = append(f, terminal.Text(s.editor.String(), fieldWidth, false))

	if len(s.matches) > 0 {
		if s.win.Curr > 0 {
			f = append(f, terminal.Text("<", 1, false))
		}
		room := v.Budget()
		for i := s.win.Curr; i < s.win.Next && room > terminal.PadWidth; i++ {
			text := s.store.Text(s.matches[i])
			w := min(runewidth.StringWidth(text), room-terminal.PadWidth)
			f = append(f, terminal.Text(text, w, i == s.sel))
			room -= w + terminal.PadWidth
		}
		if s.win.Next < len(s.matches) {
			f = append(f, terminal.Column(v.Width-markerWidth), terminal.Text(">", 1, false))
		}
	}

	col := v.PromptWidth + terminal.PadWidth/2 + min(s.editor.DisplayOffset(), max(fieldWidth, 0))
	return append(f, terminal.Column(col))
}
