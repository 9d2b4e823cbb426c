package operator

import (
	"gorca/internal/glyph"
	"gorca/internal/grid"
	coremidi "gorca/internal/midi"
	"gorca/internal/port"
)

// midiOp emits a MIDI note-on event when it has a bang neighbor. It is
// always passive regardless of the source glyph's case, since ':'
// carries no case distinction of its own.
type midiOp struct {
	base
	channel, octave, note, velocity, length port.Port
}

func newMidi(x, y int) *midiOp {
	return &midiOp{
		base:     base{x: x, y: y, passive: true},
		channel:  port.New(x+1, y),
		octave:   port.New(x+2, y, port.WithClamp(port.Clamped(0, 8))),
		note:     port.New(x+3, y),
		velocity: port.New(x+4, y, port.WithDefault('f'), port.WithClamp(port.Clamped(0, 16))),
		length:   port.New(x+5, y, port.WithClamp(port.Clamped(0, 32))),
	}
}

func (o *midiOp) Glyph() glyph.Glyph { return glyph.Midi }

func (o *midiOp) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	lockPorts(g, o.channel, o.octave, o.note, o.velocity, o.length)

	if !hasNeighbor(g, o.x, o.y, glyph.Bang) {
		return
	}

	for _, p := range []port.Port{o.channel, o.octave, o.note} {
		if g.Listen(p) == glyph.Dot {
			return
		}
	}

	channel := g.ListenAsValue(o.channel)
	if channel > 15 {
		return
	}

	note := g.Listen(o.note)
	if coremidi.NoteIndex(note) < 0 {
		return
	}

	octave := g.ListenAsValue(o.octave)
	velocity := g.ListenAsValue(o.velocity)
	length := g.ListenAsValue(o.length)

	g.PushMIDI(coremidi.NoteOnEvent{
		Channel:  channel,
		Octave:   octave,
		Note:     note,
		Velocity: velocity,
		Length:   length,
	})
}
