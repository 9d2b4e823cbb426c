// Package midi defines the MIDI note-on event produced by the `:`
// operator and the sink adapter that turns a tick's queued events into
// note-on/note-off message pairs for an external transport.
package midi

import "gorca/internal/glyph"

// noteOrder is the Orca note-glyph alphabet, used to derive a MIDI
// note number from a note glyph and an octave.
var noteOrder = []glyph.Glyph{'C', 'c', 'D', 'd', 'E', 'F', 'f', 'G', 'g', 'A', 'a', 'B'}

var noteIndex = func() map[glyph.Glyph]int {
	m := make(map[glyph.Glyph]int, len(noteOrder))
	for i, n := range noteOrder {
		m[n] = i
	}
	return m
}()

// NoteIndex returns the index of note glyph g within the 12-note
// alphabet, or -1 if g is not a note glyph.
func NoteIndex(g glyph.Glyph) int {
	if i, ok := noteIndex[g]; ok {
		return i
	}
	return -1
}

// NoteOnEvent is a single MIDI note-on produced by the midi operator.
type NoteOnEvent struct {
	Channel  int // 0..15
	Octave   int // 0..8
	Note     glyph.Glyph
	Velocity int // 0..16
	Length   int // 0..32; parsed but not honored by Sink
}

// NoteNumber derives the MIDI note number for e: 24 + 12*octave +
// index of the note glyph in the 12-note alphabet.
func (e NoteOnEvent) NoteNumber() int {
	return 24 + 12*e.Octave + NoteIndex(e.Note)
}

// Transport is the opaque external sink the adapter delivers raw
// 3-byte MIDI messages to: [status, data1, data2].
type Transport interface {
	SendMessage(msg [3]byte) error
}

// pending is a (channel, note, velocity) triple tracked across ticks
// so note-offs can be emitted for notes turned on the previous tick.
type pending struct {
	channel, note, velocity int
}

// Sink drains a tick's queued NoteOnEvents and turns them into
// note-on/note-off message pairs, delivered to a Transport. Within a
// tick, queued note-offs from the previous tick are flushed before the
// current tick's note-ons are sent, so offs for tick N are strictly
// ordered before ons for tick N+1 on the wire.
type Sink struct {
	transport  Transport
	pendingOff []pending
}

// NewSink builds a Sink delivering to transport.
func NewSink(transport Transport) *Sink {
	return &Sink{transport: transport}
}

// Drain processes one tick's worth of queued events: it flushes any
// note-offs pending from the previous tick, then emits note-ons for
// events, queuing their note-offs for the next call to Drain.
func (s *Sink) Drain(events []NoteOnEvent) error {
	for _, p := range s.pendingOff {
		if err := s.transport.SendMessage([3]byte{
			byte(0x80 | p.channel),
			byte(p.note),
			byte(p.velocity),
		}); err != nil {
			return err
		}
	}
	s.pendingOff = s.pendingOff[:0]

	for _, e := range events {
		p := pending{channel: e.Channel, note: e.NoteNumber(), velocity: e.Velocity}
		if err := s.transport.SendMessage([3]byte{
			byte(0x90 | p.channel),
			byte(p.note),
			byte(p.velocity),
		}); err != nil {
			return err
		}
		s.pendingOff = append(s.pendingOff, p)
	}

	return nil
}

// NoOpTransport discards every message. It is wired in when MIDI
// output is not requested.
type NoOpTransport struct{}

// SendMessage implements Transport by discarding msg.
func (NoOpTransport) SendMessage(msg [3]byte) error { return nil }
