// Package miditransport wires the evaluator's MIDI sink to a real
// hardware/virtual MIDI output port via gitlab.com/gomidi/midi/v2,
// grounded on the way
// _examples/other_examples/.../lpd8-led-bridge finds and sends to an
// rtmidi output port (midi.FindOutPort / midi.SendTo).
package miditransport

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	coremidi "gorca/internal/midi"
)

// Port wraps a single opened MIDI output port, acquired once at
// startup: the adapter owns exactly one output port acquired at startup.
type Port struct {
	send func(midi.Message) error
}

// Open finds the named output port (or the first available one if
// name is empty) and opens it. It returns an error if no suitable
// port is available.
func Open(name string) (*Port, error) {
	var out midi.Port
	var err error
	if name == "" {
		outs := midi.GetOutPorts()
		if len(outs) == 0 {
			return nil, fmt.Errorf("miditransport: no MIDI output ports available")
		}
		out = outs[0]
	} else {
		out, err = midi.FindOutPort(name)
		if err != nil {
			return nil, fmt.Errorf("miditransport: couldn't find output port %q: %w", name, err)
		}
	}

	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("miditransport: couldn't open output port %q: %w", out.String(), err)
	}

	return &Port{send: send}, nil
}

// SendMessage implements coremidi.Transport.
func (p *Port) SendMessage(msg [3]byte) error {
	return p.send(midi.Message(msg[:]))
}

// Close releases the underlying MIDI driver.
func Close() {
	midi.CloseDriver()
}

var _ coremidi.Transport = (*Port)(nil)
