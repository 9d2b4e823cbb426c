// Package evaluator drives the grid's per-frame scan/discover/filter/
// execute loop and wires the frame's MIDI queue to a sink.
package evaluator

import (
	"gorca/internal/glyph"
	"gorca/internal/grid"
	"gorca/internal/midi"
	"gorca/internal/operator"
)

// Evaluator owns a grid and a frame counter, and advances both one
// tick at a time. It is not safe for concurrent use: a tick must run
// to completion before another starts, or before any collaborator
// reads grid state.
type Evaluator struct {
	grid  *grid.Grid
	sink  *midi.Sink
	frame int
}

// New builds an Evaluator over g, delivering each tick's MIDI events
// to sink.
func New(g *grid.Grid, sink *midi.Sink) *Evaluator {
	return &Evaluator{grid: g, sink: sink}
}

// Grid returns the evaluator's underlying grid, for a renderer to read
// between ticks.
func (e *Evaluator) Grid() *grid.Grid { return e.grid }

// Frame returns the next frame number Tick will run.
func (e *Evaluator) Frame() int { return e.frame }

// Snapshot exposes the grid's current dimensions and a bound glyph
// accessor, for a renderer that only wants to read cells, not import
// the grid package directly.
func (e *Evaluator) Snapshot() (rows, cols int, at func(x, y int) glyph.Glyph) {
	return e.grid.Rows(), e.grid.Cols(), e.grid.Peek
}

// LastExploded returns the cells a movement operator exploded into
// during the most recent tick.
func (e *Evaluator) LastExploded() [][2]int {
	return e.grid.LastExploded()
}

// discovered is one operator found during the scan step; its
// IsPassive carries the case it was discovered under (an upper-case
// source glyph always activates; ForcePassive glyphs like ':' are
// pinned regardless of case).
type discovered struct {
	op operator.Operator
}

// Tick runs one full frame: reset, scan, filter + execute in row-major
// order, then drain the frame's MIDI queue to the sink.
//
// BANG cells are executed in a second pass after every other
// discovered operator: a bang is "alive" for its whole tick, and a
// neighbor scanned after it in row-major order must still see it
// before it self-erases. Running bangs interleaved at their row-major
// position would erase a bang before a neighbor further along the
// same row got a chance to read it, e.g. a bang immediately west of
// the MIDI operator it pulses.
func (e *Evaluator) Tick() error {
	e.grid.ResetForFrame()

	ops := e.scan()
	var bangs []operator.Operator
	for _, d := range ops {
		if d.op.Glyph() == glyph.Bang {
			bangs = append(bangs, d.op)
			continue
		}
		e.runIfActive(d.op)
	}
	for _, op := range bangs {
		e.runIfActive(op)
	}

	e.frame++

	if e.sink == nil {
		return nil
	}
	return e.sink.Drain(e.grid.DrainMIDI())
}

func (e *Evaluator) runIfActive(op operator.Operator) {
	x, y := op.X(), op.Y()
	if e.grid.IsLocked(x, y) {
		return
	}
	if !(op.IsPassive() || hasBangNeighbor(e.grid, x, y)) {
		return
	}
	op.Run(e.grid, e.frame)
}

// scan walks the grid in row-major order, constructing an Operator for
// every cell whose lower-cased glyph matches a dispatch entry
// step 2). Glyphs with no dispatch entry (DOT, unknown letters) are
// skipped: they carry no behavior.
func (e *Evaluator) scan() []discovered {
	var found []discovered
	for y := 0; y < e.grid.Rows(); y++ {
		for x := 0; x < e.grid.Cols(); x++ {
			g := e.grid.Peek(x, y)
			if g == glyph.Dot {
				continue
			}
			lower := g
			if glyph.IsUpper(g) {
				lower = g + ('a' - 'A')
			}
			ctor, ok := operator.Dispatch[lower]
			if !ok {
				continue
			}
			passive := glyph.IsUpper(g)
			if operator.ForcePassive(lower) {
				passive = true
			}
			found = append(found, discovered{op: ctor(x, y, passive)})
		}
	}
	return found
}

var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func hasBangNeighbor(g *grid.Grid, x, y int) bool {
	for _, d := range neighborOffsets {
		if g.Peek(x+d[0], y+d[1]) == glyph.Bang {
			return true
		}
	}
	return false
}
