package terminal

import (
	"bytes"
	"testing"
)

// feedAll decodes input and returns every emitted key plus the number of
// discarded sequences.
func feedAll(d *Decoder, input []byte) ([]Key, int) {
	var keys []Key
	discards := 0
	for _, b := range input {
		k, st := d.Feed(b)
		switch st {
		case Emit:
			keys = append(keys, k)
		case Discard:
			discards++
		}
	}
	return keys, discards
}

func TestDecoderSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{"ctrl-a", "\x01", CmdHome},
		{"ctrl-e", "\x05", CmdEnd},
		{"ctrl-b", "\x02", CmdLeft},
		{"ctrl-f", "\x06", CmdRight},
		{"ctrl-p", "\x10", CmdPrev},
		{"ctrl-n", "\x0e", CmdNext},
		{"ctrl-d", "\x04", CmdDelete},
		{"ctrl-h", "\x08", CmdBackspace},
		{"del", "\x7f", CmdBackspace},
		{"tab", "\t", CmdComplete},
		{"ctrl-k", "\x0b", CmdKillToEnd},
		{"ctrl-u", "\x15", CmdKillToStart},
		{"ctrl-w", "\x17", CmdDeleteWordLeft},
		{"ctrl-v", "\x16", CmdPageUp},
		{"ctrl-y", "\x19", CmdPaste},
		{"ctrl-c", "\x03", CmdCancel},
		{"return", "\r", CmdAccept},
		{"ctrl-j", "\n", CmdAccept},
		{"ctrl-]", "\x1d", CmdAcceptRaw},
		{"ctrl-backslash", "\x1c", CmdAcceptRaw},
		{"esc esc", "\x1b\x1b", CmdCancel},
		{"meta-b", "\x1bb", CmdWordLeft},
		{"meta-f", "\x1bf", CmdWordRight},
		{"meta-d", "\x1bd", CmdDeleteWordRight},
		{"meta-v", "\x1bv", CmdPageDown},
		{"up", "\x1b[A", CmdPrev},
		{"down", "\x1b[B", CmdNext},
		{"right", "\x1b[C", CmdRight},
		{"left", "\x1b[D", CmdLeft},
		{"home H", "\x1b[H", CmdHome},
		{"end F", "\x1b[F", CmdEnd},
		{"home 1~", "\x1b[1~", CmdHome},
		{"home 7~", "\x1b[7~", CmdHome},
		{"insert", "\x1b[2~", CmdPaste},
		{"delete", "\x1b[3~", CmdDelete},
		{"end 4~", "\x1b[4~", CmdEnd},
		{"end 8~", "\x1b[8~", CmdEnd},
		{"page up", "\x1b[5~", CmdPageUp},
		{"page down", "\x1b[6~", CmdPageDown},
		{"app up", "\x1bOA", CmdPrev},
		{"app down", "\x1bOB", CmdNext},
		{"app right", "\x1bOC", CmdRight},
		{"app left", "\x1bOD", CmdLeft},
		{"app home", "\x1bOH", CmdHome},
		{"app end", "\x1bOF", CmdEnd},
		{"esc ctrl-c", "\x1b\x03", CmdCancel},
		{"esc return", "\x1b\r", CmdAccept},
		{"esc del", "\x1b\x7f", CmdBackspace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, discards := feedAll(NewDecoder(), []byte(tt.input))
			if discards != 0 {
				t.Fatalf("unexpected discard for %q", tt.input)
			}
			if len(keys) != 1 || keys[0].Cmd != tt.want {
				t.Fatalf("decode %q = %v, want [%v]", tt.input, keys, tt.want)
			}
		})
	}
}

func TestDecoderLiteralText(t *testing.T) {
	keys, _ := feedAll(NewDecoder(), []byte("aé€😀"))
	want := []string{"a", "é", "€", "😀"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d inserts, got %d", len(want), len(keys))
	}
	for i, w := range want {
		if keys[i].Cmd != CmdInsert || string(keys[i].Text) != w {
			t.Errorf("key %d = %v %q, want insert %q", i, keys[i].Cmd, keys[i].Text, w)
		}
	}
}

func TestDecoderNeedsMoreOnPartialSequence(t *testing.T) {
	d := NewDecoder()
	for _, b := range []byte("\x1b[5") {
		if _, st := d.Feed(b); st != NeedMore {
			t.Fatalf("byte %q: status %v, want NeedMore", b, st)
		}
	}
	// the rest arrives on a later read
	k, st := d.Feed('~')
	if st != Emit || k.Cmd != CmdPageUp {
		t.Fatalf("got %v/%v, want page-up", k.Cmd, st)
	}
}

func TestDecoderDiscardsUnknownSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown meta", "\x1bz"},
		{"unknown csi", "\x1b[Z"},
		{"function key", "\x1b[15~"},
		{"modified arrow", "\x1b[1;5C"},
		{"bad trailer", "\x1b[3x"},
		{"f1", "\x1bOP"},
		{"f4", "\x1bOS"},
		{"other control", "\x07"},
		{"stray continuation", "\x80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			keys, discards := feedAll(d, []byte(tt.input))
			if len(keys) != 0 || discards != 1 {
				t.Fatalf("decode %q: keys %v, discards %d; want one discard", tt.input, keys, discards)
			}
			// decoder is back in ground state
			k, st := d.Feed('x')
			if st != Emit || k.Cmd != CmdInsert || !bytes.Equal(k.Text, []byte("x")) {
				t.Fatalf("decoder not reset after %q", tt.input)
			}
		})
	}
}

func TestDecoderInterruptedRune(t *testing.T) {
	// lead byte of é followed by a plain letter
	keys, _ := feedAll(NewDecoder(), []byte{0xc3, 'a'})
	if len(keys) != 1 || string(keys[0].Text) != "a" {
		t.Fatalf("expected the partial rune dropped and 'a' kept, got %v", keys)
	}
}

func TestCommandString(t *testing.T) {
	if CmdAcceptRaw.String() != "accept-raw" {
		t.Fatalf("unexpected name %q", CmdAcceptRaw.String())
	}
	if Command(999).String() != "unknown" {
		t.Fatalf("unexpected name for unknown command")
	}
}
