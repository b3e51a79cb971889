package menu

import (
	"log/slog"
	"strings"

	"github.com/slmenu/slmenu/internal/storage"
	"github.com/slmenu/slmenu/internal/terminal"
)

// State is the session's position in its lifecycle.
type State int

const (
	Editing State = iota
	Accepted
	AcceptedRaw
	Cancelled
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Accepted:
		return "accepted"
	case AcceptedRaw:
		return "accepted-raw"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Options configures a Session.
type Options struct {
	Prompt     string
	IgnoreCase bool
	Width      int // terminal columns
	Capacity   int // query bytes, DefaultCapacity when 0
}

// Session is all mutable state of one selection run: the query line, the
// match list, the window over it and the selection.
type Session struct {
	store   *storage.CandidateStore
	matcher *Matcher
	editor  *Editor
	view    Viewport
	clip    terminal.Clipboard
	logger  *slog.Logger
	prompt  string

	matches      []int
	matchedQuery string // folded query matches was computed for
	win          Window
	sel          int // index into matches, -1 when empty
	state        State
}

// NewSession builds a session and runs the initial match.
func NewSession(store *storage.CandidateStore, clip terminal.Clipboard, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		store:   store,
		matcher: NewMatcher(store, opts.IgnoreCase),
		editor:  NewEditor(opts.Capacity),
		view:    NewViewport(opts.Width, opts.Prompt, store.MaxWidth()),
		clip:    clip,
		logger:  logger,
		prompt:  opts.Prompt,
	}
	s.coldMatch()
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Query returns the query text.
func (s *Session) Query() string { return s.editor.String() }

// Editor exposes the query line.
func (s *Session) Editor() *Editor { return s.editor }

// Window returns the visible window.
func (s *Session) Window() Window { return s.win }

// Matches returns the texts of the current match list in order.
func (s *Session) Matches() []string {
	out := make([]string, len(s.matches))
	for i, idx := range s.matches {
		out[i] = s.store.Text(idx)
	}
	return out
}

// Selected returns the position of the selection in the match list.
func (s *Session) Selected() (int, bool) {
	return s.sel, s.sel >= 0
}

// Result is the text to print once the session ended in an accept state.
func (s *Session) Result() string {
	if s.state == Accepted && s.sel >= 0 {
		return s.store.Text(s.matches[s.sel])
	}
	return s.editor.String()
}

func (s *Session) entryWidth(i int) int {
	return TextWidth(s.store.Text(s.matches[i]))
}

func (s *Session) relayout() {
	s.win = s.view.Layout(len(s.matches), s.win.Curr, s.entryWidth)
}

func (s *Session) resetWindow() {
	s.win.Curr = 0
	s.sel = 0
	if len(s.matches) == 0 {
		s.sel = -1
	}
	s.relayout()
}

func (s *Session) coldMatch() {
	q := s.editor.String()
	s.matches = s.matcher.Match(q)
	s.matchedQuery = s.matcher.Fold(q)
	s.logger.Debug("match", "query_len", len(q), "mode", "cold", "matches", len(s.matches))
	s.resetWindow()
}

// rematch refines the previous list when the new query still contains the
// old one and matches from scratch otherwise.
func (s *Session) rematch() {
	q := s.editor.String()
	fq := s.matcher.Fold(q)
	if !strings.Contains(fq, s.matchedQuery) {
		s.coldMatch()
		return
	}
	s.matches = s.matcher.Refine(q, s.matches)
	s.matchedQuery = fq
	s.logger.Debug("match", "query_len", len(q), "mode", "incremental", "matches", len(s.matches))
	s.resetWindow()
}

func (s *Session) edited(changed bool) {
	if changed {
		s.rematch()
	}
}

// Apply runs one decoded command and returns the resulting state.
func (s *Session) Apply(k terminal.Key) State {
	if s.state != Editing {
		return s.state
	}
	ed := s.editor

	switch k.Cmd {
	case terminal.CmdInsert:
		s.edited(ed.Insert(k.Text))
	case terminal.CmdPaste:
		s.edited(ed.Insert(pasteText(s.clip)))
	case terminal.CmdBackspace:
		s.edited(ed.DeleteRunes(-1))
	case terminal.CmdDelete:
		s.edited(ed.DeleteRunes(+1))
	case terminal.CmdKillToEnd:
		s.edited(ed.KillToEnd())
	case terminal.CmdKillToStart:
		s.edited(ed.KillToStart())
	case terminal.CmdDeleteWordLeft:
		s.edited(ed.DeleteWordLeft())
	case terminal.CmdDeleteWordRight:
		s.edited(ed.DeleteWordRight())
	case terminal.CmdWordLeft:
		ed.WordLeft()
	case terminal.CmdWordRight:
		ed.WordRight()
	case terminal.CmdComplete:
		if s.sel >= 0 {
			ed.SetText(s.store.Text(s.matches[s.sel]))
			s.rematch()
		}

	case terminal.CmdHome:
		s.home()
	case terminal.CmdEnd:
		s.end()
	case terminal.CmdLeft:
		// The cursor moves while the selection sits at the list head.
		if ed.Cursor() > 0 && s.sel <= 0 {
			ed.Left()
			break
		}
		s.prev()
	case terminal.CmdRight:
		if ed.Right() {
			break
		}
		s.next()
	case terminal.CmdPrev:
		s.prev()
	case terminal.CmdNext:
		s.next()
	case terminal.CmdPageUp:
		if len(s.matches) > 0 {
			s.win.Curr = s.win.Prev
			s.sel = s.win.Curr
			s.relayout()
		}
	case terminal.CmdPageDown:
		if s.win.Next < len(s.matches) {
			s.win.Curr = s.win.Next
			s.sel = s.win.Curr
			s.relayout()
		}

	case terminal.CmdAccept:
		s.state = Accepted
	case terminal.CmdAcceptRaw:
		s.state = AcceptedRaw
	case terminal.CmdCancel:
		s.state = Cancelled
	}
	return s.state
}

// home selects the first match, or moves the cursor to column 0 when the
// first match is already selected.
func (s *Session) home() {
	first := 0
	if len(s.matches) == 0 {
		first = -1
	}
	if s.sel == first {
		s.editor.Home()
		return
	}
	s.sel = first
	s.win.Curr = 0
	s.relayout()
}

// end moves the cursor to the end of the line, or selects the last match
// when it is already there, sliding the window onto the last page.
func (s *Session) end() {
	if !s.editor.AtEnd() {
		s.editor.End()
		return
	}
	last := len(s.matches) - 1
	if s.win.Next < len(s.matches) {
		s.win.Curr = last
		s.relayout()
		s.win.Curr = s.win.Prev
		s.relayout()
		for s.win.Next < len(s.matches) {
			s.win.Curr++
			s.relayout()
		}
	}
	s.sel = last
}

func (s *Session) prev() {
	if s.sel <= 0 {
		return
	}
	s.sel--
	if s.sel < s.win.Curr {
		s.win.Curr = s.win.Prev
		s.relayout()
	}
}

func (s *Session) next() {
	if s.sel < 0 || s.sel+1 >= len(s.matches) {
		return
	}
	s.sel++
	if s.sel >= s.win.Next {
		s.win.Curr = s.win.Next
		s.relayout()
	}
}

// pasteText reads the clipboard and drops control characters.
func pasteText(clip terminal.Clipboard) []byte {
	if clip == nil {
		return nil
	}
	data := clip.Read()
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b < 0x20 || b == 0x7f {
			continue
		}
		out = append(out, b)
	}
	return []byte(strings.ToValidUTF8(string(out), ""))
}
