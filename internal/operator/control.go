package operator

import (
	"gorca/internal/glyph"
	"gorca/internal/grid"
	"gorca/internal/port"
)

// ifOp bangs when its two horizontal neighbors read as the same glyph
// Equality is glyph equality, not decoded value equality.
type ifOp struct {
	base
	a, b port.Port
	out  port.Output
}

func newIf(x, y int, passive bool) *ifOp {
	return &ifOp{
		base: base{x: x, y: y, passive: passive},
		a:    port.New(x-1, y),
		b:    port.New(x+1, y),
		out:  port.NewOutput(x, y+1, port.Bang()),
	}
}

func (o *ifOp) Glyph() glyph.Glyph { return o.glyphFor('f') }

func (o *ifOp) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	eq := g.Listen(o.a) == g.Listen(o.b)
	lockPorts(g, o.a, o.b)
	writeBang(g, o.out, eq)
}

// haltOp locks its south neighbor, preventing it from acting this
// tick, and produces no output.
type haltOp struct {
	base
}

func newHalt(x, y int, passive bool) *haltOp {
	return &haltOp{base: base{x: x, y: y, passive: passive}}
}

func (o *haltOp) Glyph() glyph.Glyph { return o.glyphFor('h') }

func (o *haltOp) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	g.Lock(o.x, o.y+1)
}

// jumper reads the glyph directly above it and writes it, unmodified,
// directly below it. This is
// implemented per the literal catalogue entry rather than left
// unimplemented.
type jumper struct {
	base
	val port.Port
	out port.Output
}

func newJumper(x, y int, passive bool) *jumper {
	return &jumper{
		base: base{x: x, y: y, passive: passive},
		val:  port.New(x, y-1),
		out:  port.NewOutput(x, y+1),
	}
}

func (o *jumper) Glyph() glyph.Glyph { return o.glyphFor('j') }

func (o *jumper) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	payload := g.Listen(o.val)
	lockPorts(g, o.val, o.out.Port)
	writeGlyph(g, o.x, o.y, o.out, payload)
}

// track reads a glyph from a window of its eastward neighbors,
// selected by key mod len, and locks that whole window.
type track struct {
	base
	key, length port.Port
}

func newTrack(x, y int, passive bool) *track {
	return &track{
		base:   base{x: x, y: y, passive: passive},
		key:    port.New(x-2, y),
		length: port.New(x-1, y, port.WithClamp(port.AtLeast(1))),
	}
}

func (o *track) Glyph() glyph.Glyph { return o.glyphFor('t') }

func (o *track) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	key := g.ListenAsValue(o.key)
	length := g.ListenAsValue(o.length)

	for i := 1; i <= length; i++ {
		g.Lock(o.x+i, o.y)
	}
	lockPorts(g, o.key, o.length)

	src := port.New(o.x+1+key%length, o.y)
	out := port.NewOutput(o.x, o.y+1)
	writeGlyph(g, o.x, o.y, out, g.Listen(src))
}

// generator writes a run of `len` glyphs, read from the cells
// immediately right of it, to a destination offset by (x, y+1)
// relative to its own position. Output is plain: it never applies the
// sensitivity rule, since its dynamic per-offset output cells are
// never registered under the operator's single "output" port name.
type generator struct {
	base
	xPort, yPort, lenPort port.Port
}

func newGenerator(x, y int, passive bool) *generator {
	return &generator{
		base:    base{x: x, y: y, passive: passive},
		xPort:   port.New(x-3, y),
		yPort:   port.New(x-2, y),
		lenPort: port.New(x-1, y, port.WithClamp(port.AtLeast(1))),
	}
}

func (o *generator) Glyph() glyph.Glyph { return o.glyphFor('g') }

func (o *generator) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	length := g.ListenAsValue(o.lenPort)
	dx := g.ListenAsValue(o.xPort)
	dy := g.ListenAsValue(o.yPort) + 1
	lockPorts(g, o.xPort, o.yPort, o.lenPort)

	for k := 0; k < length; k++ {
		in := port.New(o.x+k+1, o.y)
		outX, outY := o.x+dx+k, o.y+dy
		g.Lock(in.X, in.Y)
		g.Lock(outX, outY)
		out := port.NewOutput(outX, outY)
		writeGlyph(g, o.x, o.y, out, g.Listen(in))
	}
}
