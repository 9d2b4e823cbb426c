// Package grid implements the mutable 2D glyph array the evaluator
// ticks: cell state, the per-frame lock mask, and the frame-scoped
// MIDI event queue, together with the peek/poke/listen/lock
// primitives operators use.
package grid

import (
	"bufio"
	"fmt"
	"os"

	"gorca/internal/glyph"
	"gorca/internal/midi"
	"gorca/internal/port"
)

const (
	// MaxRows bounds the number of lines a loaded grid may have.
	MaxRows = 200
	// MaxFileSize bounds the size of a grid file the loader will read.
	MaxFileSize = 1 << 20 // 1 MiB
)

// Grid is the evaluator's mutable playfield: a rows x cols array of
// glyphs, a parallel lock mask reset every frame, and the current
// frame's MIDI event queue.
type Grid struct {
	rows, cols int
	state      [][]glyph.Glyph
	locks      [][]bool
	events     []midi.NoteOnEvent

	// exploded records cells a movement operator wrote Bang to during
	// the most recent tick, so a renderer can flash them for one frame.
	exploded [][2]int
}

// New allocates a rows x cols grid, every cell set to Dot.
func New(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.state = make([][]glyph.Glyph, rows)
	for y := range g.state {
		g.state[y] = make([]glyph.Glyph, cols)
		for x := range g.state[y] {
			g.state[y][x] = glyph.Dot
		}
	}
	g.locks = make([][]bool, rows)
	for y := range g.locks {
		g.locks[y] = make([]bool, cols)
	}
	return g
}

// FromString parses a grid from newline-separated rows of equal
// length. It fails if there are no rows, more than MaxRows rows, or
// any row's length differs from the first row's.
func FromString(s string) (*Grid, error) {
	lines, err := splitLines(s)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("grid: empty input")
	}
	if len(lines) > MaxRows {
		return nil, fmt.Errorf("grid: %d rows, max is %d", len(lines), MaxRows)
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			return nil, fmt.Errorf("grid: row %d length %d, want %d (row 0's length)", i, n, width)
		}
	}

	g := New(len(lines), width)
	for y, line := range lines {
		for x, r := range []rune(line) {
			g.state[y][x] = r
		}
	}
	return g, nil
}

func splitLines(s string) ([]string, error) {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines, nil
}

// FromFile loads a grid from a file, rejecting files over MaxFileSize
// before reading them in full.
func FromFile(path string) (*Grid, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("grid: couldn't stat %q: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("grid: %q is %d bytes, max is %d", path, info.Size(), MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: couldn't open %q: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 0, info.Size())
	r := bufio.NewReader(f)
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}

	return FromString(string(buf))
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// IsInside reports whether (x, y) is within grid bounds.
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Peek returns the glyph at (x, y), or glyph.Absent if out of bounds.
func (g *Grid) Peek(x, y int) glyph.Glyph {
	if !g.IsInside(x, y) {
		return glyph.Absent
	}
	return g.state[y][x]
}

// Poke writes v at (x, y). Writes outside bounds are silent no-ops.
func (g *Grid) Poke(x, y int, v glyph.Glyph) {
	if !g.IsInside(x, y) {
		return
	}
	g.state[y][x] = v
}

// Lock marks (x, y) inert for the remainder of the current tick: it
// will not be run as an operator. A lock does not gate Poke, so
// operator outputs still write to a locked cell. Locking outside
// bounds is a no-op.
func (g *Grid) Lock(x, y int) {
	if !g.IsInside(x, y) {
		return
	}
	g.locks[y][x] = true
}

// IsLocked reports whether (x, y) is locked for the current tick.
// Out-of-bounds coordinates are never locked.
func (g *Grid) IsLocked(x, y int) bool {
	if !g.IsInside(x, y) {
		return false
	}
	return g.locks[y][x]
}

// ResetForFrame clears every lock and the MIDI event queue. It must be
// called once at the start of every tick, before any operator runs.
func (g *Grid) ResetForFrame() {
	for y := range g.locks {
		for x := range g.locks[y] {
			g.locks[y][x] = false
		}
	}
	g.events = g.events[:0]
	g.exploded = g.exploded[:0]
}

// Listen peeks the port's cell and substitutes the port's default
// glyph when the result is Dot or Bang and a default is set.
func (g *Grid) Listen(p port.Port) glyph.Glyph {
	got := g.Peek(p.X, p.Y)
	if (got == glyph.Dot || got == glyph.Bang) && p.Default != 0 {
		return p.Default
	}
	return got
}

// ListenAsValue listens to the port's glyph, decodes it to a value,
// and applies the port's clamp.
func (g *Grid) ListenAsValue(p port.Port) int {
	clamp := p.Clamp
	if clamp == nil {
		clamp = port.Identity()
	}
	return clamp(glyph.ValueOf(g.Listen(p)))
}

// KeyOf returns the glyph for value n, as glyph.KeyOf.
func (g *Grid) KeyOf(n int, upper bool) glyph.Glyph {
	return glyph.KeyOf(n, upper)
}

// PushMIDI appends e to the current frame's MIDI event queue, in
// insertion order.
func (g *Grid) PushMIDI(e midi.NoteOnEvent) {
	g.events = append(g.events, e)
}

// DrainMIDI returns the current frame's queued MIDI events. It does
// not clear the queue; ResetForFrame does that at the start of the
// next tick.
func (g *Grid) DrainMIDI() []midi.NoteOnEvent {
	return g.events
}

// MarkExploded records that a movement operator exploded at (x, y)
// this tick.
func (g *Grid) MarkExploded(x, y int) {
	g.exploded = append(g.exploded, [2]int{x, y})
}

// LastExploded returns the cells that exploded during the most recent
// tick, for a renderer to flash for one frame.
func (g *Grid) LastExploded() [][2]int {
	return g.exploded
}

// String renders the grid as newline-separated rows, exactly as
// FromString would parse it back.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			buf = append(buf, byte(g.state[y][x]))
		}
		if y < g.rows-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
