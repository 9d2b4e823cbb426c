package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gorca/internal/display"
	"gorca/internal/evaluator"
	"gorca/internal/grid"
	"gorca/internal/midi"
	"gorca/internal/miditransport"
	"gorca/internal/operator"
)

var (
	gridFile = flag.String("grid", "", "Path to an Orca grid file to load.")
	useMIDI  = flag.Bool("midi", false, "Enable sending MIDI note events to a real output port.")
	midiPort = flag.String("midi_port", "", "Name of the MIDI output port to send to; empty picks the first available.")
	rngSeed  = flag.Int64("seed", 0, "Seed for the random operator's generator. 0 means unseeded (randomly seeded at startup).")
)

func main() {
	flag.Parse()

	if *gridFile == "" {
		log.Fatalf("Missing required -grid flag.")
	}

	g, err := grid.FromFile(*gridFile)
	if err != nil {
		log.Fatalf("Couldn't load grid: %v", err)
	}

	if *rngSeed != 0 {
		operator.Rand = operator.NewSeededRand(*rngSeed)
	}

	transport := midiTransport()
	defer miditransport.Close()

	ev := evaluator.New(g, midi.NewSink(transport))

	ebiten.SetWindowTitle("gorca")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(display.New(ev)); err != nil {
		log.Fatalf("Display error: %v", err)
	}
}

// midiTransport opens a real MIDI output port when -midi is set, and
// exits if no port could be acquired; without -midi it returns a no-op
// transport so evaluation proceeds without MIDI output.
func midiTransport() midi.Transport {
	if !*useMIDI {
		return midi.NoOpTransport{}
	}

	t, err := miditransport.Open(*midiPort)
	if err != nil {
		log.Fatalf("Couldn't open MIDI output: %v", err)
	}
	return t
}
