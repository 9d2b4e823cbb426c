// Package port implements Orca port value objects: named, absolute
// grid coordinates an operator reads from or writes to, with an
// optional default glyph and a clamp applied after value decoding.
package port

import "gorca/internal/glyph"

// Clamp narrows a decoded integer value, e.g. to enforce a minimum
// rate or a MIDI-legal range. It is never applied to the raw glyph,
// only to the value produced by glyph.ValueOf.
type Clamp func(int) int

// Identity performs no clamping.
func Identity() Clamp {
	return func(v int) int { return v }
}

// AtLeast clamps to a minimum of n.
func AtLeast(n int) Clamp {
	return func(v int) int {
		if v < n {
			return n
		}
		return v
	}
}

// Clamped restricts v to [lo, hi].
func Clamped(lo, hi int) Clamp {
	return func(v int) int {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		default:
			return v
		}
	}
}

// Port is a named coordinate, absolute in grid space, with an optional
// default glyph substituted when the cell reads as Dot or Bang.
type Port struct {
	X, Y    int
	Default glyph.Glyph // zero value means "no default"
	Clamp   Clamp
}

// New builds an input-style port. A zero Clamp is treated as Identity.
func New(x, y int, opts ...Option) Port {
	p := Port{X: x, Y: y, Clamp: Identity()}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Option configures a Port at construction.
type Option func(*Port)

// WithDefault sets the port's default glyph.
func WithDefault(g glyph.Glyph) Option {
	return func(p *Port) { p.Default = g }
}

// WithClamp overrides the port's clamp function.
func WithClamp(c Clamp) Option {
	return func(p *Port) { p.Clamp = c }
}

// Output is a Port that additionally carries output semantics:
// whether the written glyph's case is derived from the right neighbor
// (IsSensitive) and whether the port writes Bang/Dot rather than a
// computed glyph (IsBang).
type Output struct {
	Port
	IsSensitive bool
	IsBang      bool
}

// NewOutput builds an output port.
func NewOutput(x, y int, opts ...OutputOption) Output {
	o := Output{Port: New(x, y)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// OutputOption configures an Output port at construction.
type OutputOption func(*Output)

// Sensitive marks the output port's written case as derived from the
// right-neighbor glyph (see the operator package's sensitivity rule).
func Sensitive() OutputOption {
	return func(o *Output) { o.IsSensitive = true }
}

// Bang marks the output port as writing Bang/Dot instead of a glyph.
func Bang() OutputOption {
	return func(o *Output) { o.IsBang = true }
}

// WithOutputDefault sets the output port's default glyph.
func WithOutputDefault(g glyph.Glyph) OutputOption {
	return func(o *Output) { o.Default = g }
}

// WithOutputClamp overrides the output port's clamp function.
func WithOutputClamp(c Clamp) OutputOption {
	return func(o *Output) { o.Clamp = c }
}
