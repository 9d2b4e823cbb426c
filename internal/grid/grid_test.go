package grid

import (
	"testing"

	"gorca/internal/glyph"
	"gorca/internal/midi"
	"gorca/internal/port"
)

func TestFromStringRejectsEmpty(t *testing.T) {
	if _, err := FromString(""); err == nil {
		t.Errorf("FromString(\"\") should have failed")
	}
}

func TestFromStringRejectsRaggedRows(t *testing.T) {
	if _, err := FromString("abc\nde"); err == nil {
		t.Errorf("FromString with ragged rows should have failed")
	}
}

func TestFromStringRejectsTooManyRows(t *testing.T) {
	s := ""
	for i := 0; i <= MaxRows; i++ {
		if i > 0 {
			s += "\n"
		}
		s += "."
	}
	if _, err := FromString(s); err == nil {
		t.Errorf("FromString with %d rows should have failed (max %d)", MaxRows+1, MaxRows)
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	s := "1a2\n.b."
	g, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	if got := g.String(); got != s {
		t.Errorf("String() = %q, want %q", got, s)
	}
}

func TestPeekPokeOutOfBounds(t *testing.T) {
	g := New(2, 2)
	if got := g.Peek(-1, 0); got != glyph.Absent {
		t.Errorf("Peek(-1,0) = %q, want Absent", got)
	}
	if got := g.Peek(2, 0); got != glyph.Absent {
		t.Errorf("Peek(2,0) = %q, want Absent", got)
	}
	g.Poke(5, 5, 'x') // must not panic
	if g.IsInside(5, 5) {
		t.Errorf("(5,5) should be outside a 2x2 grid")
	}
}

func TestLockResetForFrame(t *testing.T) {
	g := New(1, 3)
	g.Lock(0, 0)
	g.Lock(1, 0)
	g.PushMIDI(midi.NoteOnEvent{Channel: 0, Octave: 3, Note: 'C', Velocity: 4})
	g.MarkExploded(2, 0)

	if !g.IsLocked(0, 0) || !g.IsLocked(1, 0) {
		t.Fatalf("locks did not take")
	}

	g.ResetForFrame()

	if g.IsLocked(0, 0) || g.IsLocked(1, 0) {
		t.Errorf("locks should be cleared after ResetForFrame")
	}
	if len(g.DrainMIDI()) != 0 {
		t.Errorf("MIDI queue should be cleared after ResetForFrame")
	}
	if len(g.LastExploded()) != 0 {
		t.Errorf("exploded cells should be cleared after ResetForFrame")
	}
}

func TestListenDefaultSubstitution(t *testing.T) {
	g := New(1, 1)
	p := port.New(0, 0, port.WithDefault('8'))
	if got := g.Listen(p); got != '8' {
		t.Errorf("Listen on DOT cell with default = %q, want '8'", got)
	}

	g.Poke(0, 0, '5')
	if got := g.Listen(p); got != '5' {
		t.Errorf("Listen on non-DOT cell = %q, want '5' (default should not apply)", got)
	}
}

func TestListenAsValueAppliesClamp(t *testing.T) {
	g := New(1, 1)
	p := port.New(0, 0, port.WithClamp(port.AtLeast(1)))
	if got := g.ListenAsValue(p); got != 1 {
		t.Errorf("ListenAsValue on DOT cell with AtLeast(1) = %d, want 1", got)
	}
}
