package operator

import (
	"gorca/internal/glyph"
	"gorca/internal/grid"
	"gorca/internal/port"
)

// add outputs the sum of its two horizontal neighbors.
type add struct {
	base
	a, b port.Port
	out  port.Output
}

func newAdd(x, y int, passive bool) *add {
	return &add{
		base: base{x: x, y: y, passive: passive},
		a:    port.New(x-1, y),
		b:    port.New(x+1, y),
		out:  port.NewOutput(x, y+1, port.Sensitive()),
	}
}

func (o *add) Glyph() glyph.Glyph { return o.glyphFor('a') }

func (o *add) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	sum := g.ListenAsValue(o.a) + g.ListenAsValue(o.b)
	lockPorts(g, o.a, o.b, o.out.Port)
	writeGlyph(g, o.x, o.y, o.out, g.KeyOf(sum, false))
}

// substract outputs the absolute difference of its two horizontal
// neighbors.
type substract struct {
	base
	a, b port.Port
	out  port.Output
}

func newSubstract(x, y int, passive bool) *substract {
	return &substract{
		base: base{x: x, y: y, passive: passive},
		a:    port.New(x-1, y),
		b:    port.New(x+1, y),
		out:  port.NewOutput(x, y+1, port.Sensitive()),
	}
}

func (o *substract) Glyph() glyph.Glyph { return o.glyphFor('b') }

func (o *substract) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	a := g.ListenAsValue(o.a)
	b := g.ListenAsValue(o.b)
	diff := b - a
	if diff < 0 {
		diff = -diff
	}
	lockPorts(g, o.a, o.b, o.out.Port)
	writeGlyph(g, o.x, o.y, o.out, g.KeyOf(diff, false))
}

// clock outputs floor(frame/rate) mod mod.
type clock struct {
	base
	rate, mod port.Port
	out       port.Output
}

func newClock(x, y int, passive bool) *clock {
	return &clock{
		base: base{x: x, y: y, passive: passive},
		rate: port.New(x-1, y, port.WithClamp(port.AtLeast(1))),
		mod:  port.New(x+1, y, port.WithDefault('8')),
		out:  port.NewOutput(x, y+1, port.Sensitive()),
	}
}

func (o *clock) Glyph() glyph.Glyph { return o.glyphFor('c') }

func (o *clock) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	rate := g.ListenAsValue(o.rate)
	mod := g.ListenAsValue(o.mod)
	lockPorts(g, o.rate, o.mod, o.out.Port)
	if mod == 0 {
		return
	}
	value := (frame / rate) % mod
	writeGlyph(g, o.x, o.y, o.out, g.KeyOf(value, false))
}

// delay bangs when frame mod (mod*rate) == 0, or whenever mod == 1
//
type delay struct {
	base
	rate, mod port.Port
	out       port.Output
}

func newDelay(x, y int, passive bool) *delay {
	return &delay{
		base: base{x: x, y: y, passive: passive},
		rate: port.New(x-1, y, port.WithClamp(port.AtLeast(1))),
		mod:  port.New(x+1, y, port.WithDefault('8')),
		out:  port.NewOutput(x, y+1, port.Bang()),
	}
}

func (o *delay) Glyph() glyph.Glyph { return o.glyphFor('d') }

func (o *delay) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	rate := g.ListenAsValue(o.rate)
	mod := g.ListenAsValue(o.mod)
	lockPorts(g, o.rate, o.mod)
	if mod == 0 {
		writeBang(g, o.out, false)
		return
	}
	fires := mod == 1 || frame%(mod*rate) == 0
	writeBang(g, o.out, fires)
}

// multiply outputs the product of its two horizontal neighbors.
type multiply struct {
	base
	a, b port.Port
	out  port.Output
}

func newMultiply(x, y int, passive bool) *multiply {
	return &multiply{
		base: base{x: x, y: y, passive: passive},
		a:    port.New(x-1, y),
		b:    port.New(x+1, y),
		out:  port.NewOutput(x, y+1, port.Sensitive()),
	}
}

func (o *multiply) Glyph() glyph.Glyph { return o.glyphFor('m') }

func (o *multiply) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	a := g.ListenAsValue(o.a)
	b := g.ListenAsValue(o.b)
	lockPorts(g, o.a, o.b, o.out.Port)
	writeGlyph(g, o.x, o.y, o.out, g.KeyOf(a*b, false))
}

// increment adds step to its own previous output, mod mod (or 36 if
// mod is unset).
type increment struct {
	base
	step, mod port.Port
	out       port.Output
}

func newIncrement(x, y int, passive bool) *increment {
	return &increment{
		base: base{x: x, y: y, passive: passive},
		step: port.New(x-1, y, port.WithDefault('1')),
		mod:  port.New(x+1, y),
		out:  port.NewOutput(x, y+1, port.Sensitive()),
	}
}

func (o *increment) Glyph() glyph.Glyph { return o.glyphFor('i') }

func (o *increment) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	step := g.ListenAsValue(o.step)
	mod := g.ListenAsValue(o.mod)
	if mod <= 0 {
		mod = 36
	}
	out := g.ListenAsValue(o.out.Port)
	lockPorts(g, o.step, o.mod, o.out.Port)
	writeGlyph(g, o.x, o.y, o.out, g.KeyOf((out+step)%mod, false))
}

// random outputs a uniformly random value in [min, max].
type random struct {
	base
	min, max port.Port
	out      port.Output
}

func newRandom(x, y int, passive bool) *random {
	return &random{
		base: base{x: x, y: y, passive: passive},
		min:  port.New(x-1, y),
		max:  port.New(x+1, y),
		out:  port.NewOutput(x, y+1, port.Sensitive()),
	}
}

func (o *random) Glyph() glyph.Glyph { return o.glyphFor('r') }

func (o *random) Run(g *grid.Grid, frame int) {
	g.Lock(o.x, o.y)
	lo := g.ListenAsValue(o.min)
	hi := g.ListenAsValue(o.max)
	lockPorts(g, o.min, o.max, o.out.Port)
	writeGlyph(g, o.x, o.y, o.out, g.KeyOf(Rand.Intn(lo, hi), false))
}
