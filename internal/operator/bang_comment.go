package operator

import (
	"gorca/internal/glyph"
	"gorca/internal/grid"
)

// bangOp erases itself and produces no output. It is the
// one-tick pulse that activates lower-case neighbors.
type bangOp struct {
	base
}

func newBangOp(x, y int, passive bool) *bangOp {
	return &bangOp{base: base{x: x, y: y, passive: passive}}
}

func (o *bangOp) Glyph() glyph.Glyph { return glyph.Bang }

func (o *bangOp) Run(g *grid.Grid, frame int) {
	erase(g, o.x, o.y)
}

// comment locks itself and every cell rightward up to and including
// the next comment glyph (or the end of the row), masking whatever
// operators would otherwise be discovered in that span.
type comment struct {
	base
}

func newComment(x, y int, passive bool) *comment {
	return &comment{base: base{x: x, y: y, passive: passive}}
}

func (o *comment) Glyph() glyph.Glyph { return glyph.Comment }

func (o *comment) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	for x := o.x + 1; x < g.Cols(); x++ {
		g.Lock(x, o.y)
		if g.Peek(x, o.y) == glyph.Comment {
			break
		}
	}
}
