package menu

import (
	"testing"
)

func newEditorWith(text string) *Editor {
	e := NewEditor(0)
	e.SetText(text)
	return e
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	e := newEditorWith("héllo")
	e.Home()
	e.Right()
	e.Right()
	if e.Cursor() != 3 {
		t.Fatalf("cursor after é = %d, want 3", e.Cursor())
	}
	if !e.DeleteRunes(-1) {
		t.Fatal("expected backspace to change the text")
	}
	if e.String() != "hllo" || e.Cursor() != 1 {
		t.Fatalf("got %q cursor %d, want \"hllo\" cursor 1", e.String(), e.Cursor())
	}
}

func TestDeleteForwardRemovesWholeRune(t *testing.T) {
	e := newEditorWith("héllo")
	e.Home()
	e.Right()
	e.DeleteRunes(+1)
	if e.String() != "hllo" || e.Cursor() != 1 {
		t.Fatalf("got %q cursor %d", e.String(), e.Cursor())
	}
}

func TestRuneBoundaryNeverLandsInsideRune(t *testing.T) {
	b := []byte("aé€😀b")
	for from := 0; from <= len(b); from++ {
		for _, dir := range []int{-1, +1} {
			n := RuneBoundary(b, from, dir)
			if n < 0 || n > len(b) {
				t.Fatalf("RuneBoundary(%d, %d) = %d out of range", from, dir, n)
			}
			if n < len(b) && b[n]&0xc0 == 0x80 {
				t.Fatalf("RuneBoundary(%d, %d) = %d is a continuation byte", from, dir, n)
			}
		}
	}
}

func TestMotionsStayOnRuneBoundaries(t *testing.T) {
	e := newEditorWith("ü ñ 😀x €")
	buf := []byte(e.String())
	check := func(op string) {
		t.Helper()
		c := e.Cursor()
		if c < len(buf) && buf[c]&0xc0 == 0x80 {
			t.Fatalf("%s left cursor inside a rune at %d", op, c)
		}
	}
	for i := 0; i < 12; i++ {
		e.Left()
		check("Left")
	}
	for i := 0; i < 12; i++ {
		e.Right()
		check("Right")
	}
	for i := 0; i < 5; i++ {
		e.WordLeft()
		check("WordLeft")
	}
	for i := 0; i < 5; i++ {
		e.WordRight()
		check("WordRight")
	}
}

func TestWordMotion(t *testing.T) {
	e := newEditorWith("foo  bar baz")
	wantLeft := []int{9, 5, 0, 0}
	for i, want := range wantLeft {
		e.WordLeft()
		if e.Cursor() != want {
			t.Fatalf("WordLeft #%d: cursor %d, want %d", i, e.Cursor(), want)
		}
	}
	wantRight := []int{3, 8, 12, 12}
	for i, want := range wantRight {
		e.WordRight()
		if e.Cursor() != want {
			t.Fatalf("WordRight #%d: cursor %d, want %d", i, e.Cursor(), want)
		}
	}
}

func TestDeleteWords(t *testing.T) {
	e := newEditorWith("foo  bar baz")
	e.DeleteWordLeft()
	if e.String() != "foo  bar " || e.Cursor() != 9 {
		t.Fatalf("got %q cursor %d", e.String(), e.Cursor())
	}
	e.DeleteWordLeft()
	if e.String() != "foo  " || e.Cursor() != 5 {
		t.Fatalf("got %q cursor %d", e.String(), e.Cursor())
	}

	e = newEditorWith("foo  bar")
	e.Home()
	e.DeleteWordRight()
	if e.String() != "  bar" || e.Cursor() != 0 {
		t.Fatalf("got %q cursor %d", e.String(), e.Cursor())
	}
	e.DeleteWordRight()
	if e.String() != "" {
		t.Fatalf("got %q, want empty", e.String())
	}
	if e.DeleteWordRight() {
		t.Fatal("deleting from an empty line should report no change")
	}
}

func TestInsertRespectsCapacity(t *testing.T) {
	e := NewEditor(4)
	if !e.Insert([]byte("abc")) {
		t.Fatal("insert within capacity refused")
	}
	if e.Insert([]byte("de")) {
		t.Fatal("insert past capacity accepted")
	}
	if e.String() != "abc" {
		t.Fatalf("got %q after refused insert", e.String())
	}
	if !e.Insert([]byte("d")) || e.String() != "abcd" {
		t.Fatalf("got %q, want abcd", e.String())
	}
}

func TestInsertInMiddle(t *testing.T) {
	e := newEditorWith("ac")
	e.Left()
	e.Insert([]byte("b"))
	if e.String() != "abc" || e.Cursor() != 2 {
		t.Fatalf("got %q cursor %d", e.String(), e.Cursor())
	}
}

func TestKill(t *testing.T) {
	e := newEditorWith("hello")
	e.Home()
	e.Right()
	e.Right()
	e.KillToEnd()
	if e.String() != "he" || !e.AtEnd() {
		t.Fatalf("KillToEnd: got %q cursor %d", e.String(), e.Cursor())
	}
	if e.KillToEnd() {
		t.Fatal("KillToEnd at end should report no change")
	}
	e.KillToStart()
	if e.String() != "" || e.Cursor() != 0 {
		t.Fatalf("KillToStart: got %q cursor %d", e.String(), e.Cursor())
	}
}

func TestSetTextCutsAtRuneBoundary(t *testing.T) {
	e := NewEditor(3)
	e.SetText("éé")
	if e.String() != "é" {
		t.Fatalf("got %q, want é", e.String())
	}
	e.SetText("aéb")
	if e.String() != "aé" || e.Cursor() != 3 {
		t.Fatalf("got %q cursor %d", e.String(), e.Cursor())
	}
}

func TestDisplayOffset(t *testing.T) {
	e := newEditorWith("日本x")
	if got := e.DisplayOffset(); got != 5 {
		t.Fatalf("DisplayOffset = %d, want 5", got)
	}
	e.Left()
	if got := e.DisplayOffset(); got != 4 {
		t.Fatalf("DisplayOffset = %d, want 4", got)
	}
}
