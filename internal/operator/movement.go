package operator

import (
	"gorca/internal/glyph"
	"gorca/internal/grid"
)

// mover implements the four directional operators (`e`, `w`,
// `n`, `s`): each tick it either moves one cell in its fixed direction
// or explodes. Movement operators manage their
// own cell directly, so they never declare ports and never go through
// the standard output-write path.
type mover struct {
	base
	letter glyph.Glyph
	dx, dy int
}

func newMover(x, y int, passive bool, letter glyph.Glyph, dx, dy int) *mover {
	return &mover{base: base{x: x, y: y, passive: passive}, letter: letter, dx: dx, dy: dy}
}

func (o *mover) Glyph() glyph.Glyph { return o.glyphFor(o.letter) }

func (o *mover) Run(g *grid.Grid, frame int) {
	o.x, o.y = move(g, o.x, o.y, o.dx, o.dy, o.Glyph())
}
