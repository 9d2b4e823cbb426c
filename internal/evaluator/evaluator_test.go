package evaluator

import (
	"testing"

	"gorca/internal/grid"
	"gorca/internal/midi"
)

type recordingTransport struct {
	sent [][3]byte
}

func (r *recordingTransport) SendMessage(msg [3]byte) error {
	r.sent = append(r.sent, msg)
	return nil
}

func mustGrid(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.FromString(s)
	if err != nil {
		t.Fatalf("grid.FromString(%q): %v", s, err)
	}
	return g
}

func TestAddLowercaseOnlyRunsWithBang(t *testing.T) {
	g := mustGrid(t, "*a2\n...")
	ev := New(g, midi.NewSink(&recordingTransport{}))
	if err := ev.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := g.Peek(1, 1); got != '2' {
		t.Errorf("output @ (1,1) = %q, want '2'", got)
	}
}

func TestUppercaseAddRunsWithoutBang(t *testing.T) {
	g := mustGrid(t, "1A2\n...")
	ev := New(g, midi.NewSink(&recordingTransport{}))
	if err := ev.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := g.Peek(1, 1); got != '3' {
		t.Errorf("output @ (1,1) = %q, want '3'", got)
	}
}

func TestLowercaseAddSkippedWithoutBang(t *testing.T) {
	g := mustGrid(t, ".a2\n...")
	ev := New(g, midi.NewSink(&recordingTransport{}))
	if err := ev.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := g.Peek(1, 1); got != '.' {
		t.Errorf("output @ (1,1) = %q, want '.' (operator should not have run)", got)
	}
}

func TestLockedCellNotDiscovered(t *testing.T) {
	// H at (1,0) locks its south neighbor (1,1) before the scan reaches
	// it. The 'a' living there has a bang to its west and would
	// otherwise run, but being locked it must be skipped entirely.
	g := mustGrid(t, ".H.\n*a2\n...")
	ev := New(g, midi.NewSink(&recordingTransport{}))
	if err := ev.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := g.Peek(1, 2); got != '.' {
		t.Errorf("locked operator ran and wrote @ (1,2) = %q, want '.'", got)
	}
}

func TestBangAlwaysSelfErasesEvenAlone(t *testing.T) {
	g := mustGrid(t, "*")
	ev := New(g, midi.NewSink(&recordingTransport{}))
	if err := ev.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := g.Peek(0, 0); got != '.' {
		t.Errorf("solitary bang after tick = %q, want '.' (must self-erase unconditionally)", got)
	}
}

func TestMidiSinkOrdersOffBeforeNextOn(t *testing.T) {
	g := mustGrid(t, "*:13C4\n......")
	tr := &recordingTransport{}
	ev := New(g, midi.NewSink(tr))

	if err := ev.Tick(); err != nil {
		t.Fatalf("tick 0: %v", err)
	}
	if len(tr.sent) != 1 || tr.sent[0][0]&0xF0 != 0x90 {
		t.Fatalf("tick 0 sent = %v, want one note-on", tr.sent)
	}

	if err := ev.Tick(); err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	if len(tr.sent) != 2 || tr.sent[1][0]&0xF0 != 0x80 {
		t.Fatalf("tick 1 sent = %v, want a note-off appended", tr.sent)
	}
}
