package terminal

import "unicode/utf8"

// Command is a logical edit or navigation command decoded from raw input.
type Command int

const (
	CmdNone Command = iota
	CmdInsert
	CmdHome
	CmdEnd
	CmdLeft
	CmdRight
	CmdPrev
	CmdNext
	CmdPageUp
	CmdPageDown
	CmdBackspace
	CmdDelete
	CmdKillToEnd
	CmdKillToStart
	CmdWordLeft
	CmdWordRight
	CmdDeleteWordLeft
	CmdDeleteWordRight
	CmdComplete
	CmdPaste
	CmdAccept
	CmdAcceptRaw
	CmdCancel
)

var commandNames = map[Command]string{
	CmdNone:            "none",
	CmdInsert:          "insert",
	CmdHome:            "home",
	CmdEnd:             "end",
	CmdLeft:            "left",
	CmdRight:           "right",
	CmdPrev:            "prev",
	CmdNext:            "next",
	CmdPageUp:          "page-up",
	CmdPageDown:        "page-down",
	CmdBackspace:       "backspace",
	CmdDelete:          "delete",
	CmdKillToEnd:       "kill-to-end",
	CmdKillToStart:     "kill-to-start",
	CmdWordLeft:        "word-left",
	CmdWordRight:       "word-right",
	CmdDeleteWordLeft:  "delete-word-left",
	CmdDeleteWordRight: "delete-word-right",
	CmdComplete:        "complete",
	CmdPaste:           "paste",
	CmdAccept:          "accept",
	CmdAcceptRaw:       "accept-raw",
	CmdCancel:          "cancel",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "unknown"
}

// Key is a decoded command. Text carries the bytes of a CmdInsert.
type Key struct {
	Cmd  Command
	Text []byte
}

// Status reports what Feed did with a byte.
type Status int

const (
	// NeedMore means the byte was consumed as part of an unfinished sequence.
	NeedMore Status = iota
	// Emit means a Key is ready.
	Emit
	// Discard means an unrecognized sequence ended and was dropped.
	Discard
)

type decoderState int

const (
	stateGround decoderState = iota
	stateEscape
	stateCSI
	stateCSITrailer // numbered key seen, waiting for '~'
	stateCSIParams  // unknown parameters, waiting for the final byte
	stateSS3        // ESC O, one final byte follows
	stateUTF8
)

// Control codes.
const (
	ctrlA   = 0x01
	ctrlB   = 0x02
	ctrlC   = 0x03
	ctrlD   = 0x04
	ctrlE   = 0x05
	ctrlF   = 0x06
	ctrlH   = 0x08
	ctrlI   = 0x09
	ctrlJ   = 0x0a
	ctrlK   = 0x0b
	ctrlM   = 0x0d
	ctrlN   = 0x0e
	ctrlP   = 0x10
	ctrlU   = 0x15
	ctrlV   = 0x16
	ctrlW   = 0x17
	ctrlY   = 0x19
	esc     = 0x1b
	ctrlBsl = 0x1c
	ctrlRbr = 0x1d
	del     = 0x7f
)

var groundKeys = map[byte]Command{
	ctrlA:   CmdHome,
	ctrlB:   CmdLeft,
	ctrlC:   CmdCancel,
	ctrlD:   CmdDelete,
	ctrlE:   CmdEnd,
	ctrlF:   CmdRight,
	ctrlH:   CmdBackspace,
	ctrlI:   CmdComplete,
	ctrlJ:   CmdAccept,
	ctrlK:   CmdKillToEnd,
	ctrlM:   CmdAccept,
	ctrlN:   CmdNext,
	ctrlP:   CmdPrev,
	ctrlU:   CmdKillToStart,
	ctrlV:   CmdPageUp,
	ctrlW:   CmdDeleteWordLeft,
	ctrlY:   CmdPaste,
	ctrlBsl: CmdAcceptRaw,
	ctrlRbr: CmdAcceptRaw,
	del:     CmdBackspace,
}

var escapeKeys = map[byte]Command{
	esc: CmdCancel, // terminals that cannot send a lone cancel code
	'b': CmdWordLeft,
	'f': CmdWordRight,
	'd': CmdDeleteWordRight,
	'v': CmdPageDown,
}

var csiKeys = map[byte]Command{
	'A': CmdPrev,
	'B': CmdNext,
	'C': CmdRight,
	'D': CmdLeft,
	'H': CmdHome,
	'F': CmdEnd,
}

// csiNumbered are keys sent as ESC [ n ~.
var csiNumbered = map[byte]Command{
	'1': CmdHome,
	'7': CmdHome,
	'2': CmdPaste,
	'3': CmdDelete,
	'4': CmdEnd,
	'8': CmdEnd,
	'5': CmdPageUp,
	'6': CmdPageDown,
}

// Decoder turns raw terminal bytes into Keys one byte at a time. It never
// reads on its own, so a truncated sequence just leaves it waiting for the
// next Feed.
type Decoder struct {
	state   decoderState
	pending Command
	utf8Buf []byte
	utf8Len int
}

// NewDecoder returns a decoder in the ground state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset drops any partial sequence.
func (d *Decoder) Reset() {
	d.state = stateGround
	d.pending = CmdNone
	d.utf8Buf = d.utf8Buf[:0]
	d.utf8Len = 0
}

// Feed consumes one byte.
func (d *Decoder) Feed(b byte) (Key, Status) {
	switch d.state {
	case stateEscape:
		d.state = stateGround
		switch b {
		case '[':
			d.state = stateCSI
			return Key{}, NeedMore
		case 'O':
			d.state = stateSS3
			return Key{}, NeedMore
		}
		if cmd, ok := escapeKeys[b]; ok {
			return Key{Cmd: cmd}, Emit
		}
		if b < 0x20 || b == del {
			// A lone ESC followed by a chord: the chord still counts.
			return d.ground(b)
		}
		return Key{}, Discard

	case stateSS3:
		// Application cursor mode arrows and F1-F4.
		d.state = stateGround
		if cmd, ok := csiKeys[b]; ok {
			return Key{Cmd: cmd}, Emit
		}
		return Key{}, Discard

	case stateCSI:
		d.state = stateGround
		if cmd, ok := csiKeys[b]; ok {
			return Key{Cmd: cmd}, Emit
		}
		if cmd, ok := csiNumbered[b]; ok {
			d.pending = cmd
			d.state = stateCSITrailer
			return Key{}, NeedMore
		}
		if isCSIParam(b) {
			d.state = stateCSIParams
			return Key{}, NeedMore
		}
		return Key{}, Discard

	case stateCSITrailer:
		cmd := d.pending
		d.pending = CmdNone
		d.state = stateGround
		if b == '~' {
			return Key{Cmd: cmd}, Emit
		}
		if isCSIParam(b) {
			// ESC [ 1 ; 5 C and friends
			d.state = stateCSIParams
			return Key{}, NeedMore
		}
		return Key{}, Discard

	case stateCSIParams:
		if isCSIParam(b) || isCSIIntermediate(b) {
			return Key{}, NeedMore
		}
		d.state = stateGround
		return Key{}, Discard

	case stateUTF8:
		if !utf8.RuneStart(b) {
			d.utf8Buf = append(d.utf8Buf, b)
			if len(d.utf8Buf) < d.utf8Len {
				return Key{}, NeedMore
			}
			text := append([]byte(nil), d.utf8Buf...)
			d.Reset()
			if !utf8.Valid(text) {
				return Key{}, Discard
			}
			return Key{Cmd: CmdInsert, Text: text}, Emit
		}
		// Interrupted sequence: drop it and decode b afresh.
		d.Reset()
		return d.Feed(b)
	}

	return d.ground(b)
}

func (d *Decoder) ground(b byte) (Key, Status) {
	if b == esc {
		d.state = stateEscape
		return Key{}, NeedMore
	}
	if cmd, ok := groundKeys[b]; ok {
		return Key{Cmd: cmd}, Emit
	}
	if b < 0x20 {
		return Key{}, Discard
	}
	if b < utf8.RuneSelf {
		return Key{Cmd: CmdInsert, Text: []byte{b}}, Emit
	}
	if n := utf8SeqLen(b); n > 1 {
		d.state = stateUTF8
		d.utf8Len = n
		d.utf8Buf = append(d.utf8Buf[:0], b)
		return Key{}, NeedMore
	}
	return Key{}, Discard
}

// utf8SeqLen returns the encoded length announced by a lead byte, or 0.
func utf8SeqLen(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

func isCSIParam(b byte) bool {
	return b >= 0x30 && b <= 0x3f
}

func isCSIIntermediate(b byte) bool {
	return b >= 0x20 && b <= 0x2f
}
