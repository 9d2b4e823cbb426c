// Package operator implements the closed set of Orca operator
// variants as a dispatch table keyed by lower-case
// glyph. Each variant shares a common run protocol:
// lock declared ports, then write the computed payload to the
// output port (applying the bang or sensitivity rule as appropriate).
package operator

import (
	"gorca/internal/glyph"
	"gorca/internal/grid"
	"gorca/internal/port"
)

// Operator is a single tick's worth of behavior bound to a grid cell.
// Instances are constructed fresh every frame by scanning the grid;
// they are never reused across ticks.
type Operator interface {
	X() int
	Y() int
	// Glyph is the operator's own glyph, case-correct for this tick
	// (upper iff it is passive).
	Glyph() glyph.Glyph
	IsPassive() bool
	Run(g *grid.Grid, frame int)
}

var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func erase(g *grid.Grid, x, y int) {
	g.Poke(x, y, glyph.Dot)
}

func explode(g *grid.Grid, x, y int) {
	g.Poke(x, y, glyph.Bang)
	g.MarkExploded(x, y)
}

func hasNeighbor(g *grid.Grid, x, y int, target glyph.Glyph) bool {
	for _, d := range neighborOffsets {
		if g.Peek(x+d[0], y+d[1]) == target {
			return true
		}
	}
	return false
}

// move implements directional movement: explode on out-of-bounds or
// collision, otherwise erase the old cell, write self at the new one,
// and lock it. Returns the operator's position after the attempt.
func move(g *grid.Grid, x, y, dx, dy int, self glyph.Glyph) (newX, newY int) {
	nx, ny := x+dx, y+dy
	if !g.IsInside(nx, ny) {
		explode(g, x, y)
		return x, y
	}
	collider := g.Peek(nx, ny)
	if collider != glyph.Dot && collider != glyph.Bang {
		explode(g, x, y)
		return x, y
	}
	erase(g, x, y)
	g.Poke(nx, ny, self)
	g.Lock(nx, ny)
	return nx, ny
}

func toUpper(g glyph.Glyph) glyph.Glyph {
	if g >= 'a' && g <= 'z' {
		return g - ('a' - 'A')
	}
	return g
}

// shouldUpperCase implements the sensitivity rule: fires when
// the output is sensitive and the glyph immediately to the operator's
// right has distinct case and is currently upper case.
func shouldUpperCase(g *grid.Grid, x, y int, sensitive bool) bool {
	if !sensitive {
		return false
	}
	right := g.Peek(x+1, y)
	return glyph.HasCase(right) && glyph.IsUpper(right)
}

func lockPorts(g *grid.Grid, ports ...port.Port) {
	for _, p := range ports {
		g.Lock(p.X, p.Y)
	}
}

func writeGlyph(g *grid.Grid, x, y int, out port.Output, payload glyph.Glyph) {
	if shouldUpperCase(g, x, y, out.IsSensitive) {
		payload = toUpper(payload)
	}
	g.Poke(out.X, out.Y, payload)
}

func writeBang(g *grid.Grid, out port.Output, truthy bool) {
	v := glyph.Dot
	if truthy {
		v = glyph.Bang
	}
	g.Poke(out.X, out.Y, v)
}

// base holds the fields common to every operator variant.
type base struct {
	x, y    int
	passive bool
}

func (b base) X() int          { return b.x }
func (b base) Y() int          { return b.y }
func (b base) IsPassive() bool { return b.passive }

// key identifies an operator by position and glyph, for test
// assertions that want to compare two discovered operators without
// reaching into variant-specific fields.
func key(op Operator) (int, int, glyph.Glyph) {
	return op.X(), op.Y(), op.Glyph()
}

func (b base) glyphFor(lower glyph.Glyph) glyph.Glyph {
	if b.passive {
		return toUpper(lower)
	}
	return lower
}

// Constructor builds an Operator bound to (x, y), with passive set
// from the source glyph's case.
type Constructor func(x, y int, passive bool) Operator

// Dispatch maps each lower-case opcode glyph to its constructor. The
// evaluator looks up lower-cased grid glyphs here; ForcePassive
// operators (midi, bang and comment) are always treated as passive
// regardless of the source glyph's case, since ':', '*' and '#' carry
// no case distinction of their own.
var Dispatch = map[glyph.Glyph]Constructor{
	'a': func(x, y int, p bool) Operator { return newAdd(x, y, p) },
	'b': func(x, y int, p bool) Operator { return newSubstract(x, y, p) },
	'c': func(x, y int, p bool) Operator { return newClock(x, y, p) },
	'd': func(x, y int, p bool) Operator { return newDelay(x, y, p) },
	'e': func(x, y int, p bool) Operator { return newMover(x, y, p, 'e', 1, 0) },
	'w': func(x, y int, p bool) Operator { return newMover(x, y, p, 'w', -1, 0) },
	'n': func(x, y int, p bool) Operator { return newMover(x, y, p, 'n', 0, -1) },
	's': func(x, y int, p bool) Operator { return newMover(x, y, p, 's', 0, 1) },
	'f': func(x, y int, p bool) Operator { return newIf(x, y, p) },
	'g': func(x, y int, p bool) Operator { return newGenerator(x, y, p) },
	'h': func(x, y int, p bool) Operator { return newHalt(x, y, p) },
	'i': func(x, y int, p bool) Operator { return newIncrement(x, y, p) },
	'j': func(x, y int, p bool) Operator { return newJumper(x, y, p) },
	'm': func(x, y int, p bool) Operator { return newMultiply(x, y, p) },
	'r': func(x, y int, p bool) Operator { return newRandom(x, y, p) },
	't':           func(x, y int, p bool) Operator { return newTrack(x, y, p) },
	glyph.Bang:    func(x, y int, p bool) Operator { return newBangOp(x, y, p) },
	glyph.Comment: func(x, y int, p bool) Operator { return newComment(x, y, p) },
	glyph.Midi:    func(x, y int, p bool) Operator { return newMidi(x, y) },
}

// ForcePassive reports whether glyph g's operator is always treated
// as passive regardless of the source grid glyph's case. The MIDI
// operator is always treated as passive, reflecting its glyph having
// no case distinction; that reasoning applies equally to the
// other two structural glyphs dispatched here, BANG and COMMENT, since
// neither has an upper/lower form either: gating them on a bang
// neighbor the way a lettered operator is gated would leave a solitary
// bang or comment unable to ever run.
func ForcePassive(g glyph.Glyph) bool {
	return g == glyph.Midi || g == glyph.Bang || g == glyph.Comment
}

// --- Randomizer injection -------------------------------------------------

// IntRange returns a pseudo-random integer in [lo, hi] inclusive.
type IntRange interface {
	Intn(lo, hi int) int
}

// Rand is the source of randomness for the random operator. It is
// swappable so evaluation is reproducible under test via an injected
// seeded generator.
var Rand IntRange = defaultRand{}

// defaultRand uses the package-level math/rand/v2 generator, which is
// automatically seeded. Tests that need determinism install a
// SeededRand (see rand.go) instead.
type defaultRand struct{}

func (defaultRand) Intn(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + randIntn(hi-lo+1)
}
