// Package glyph implements the bidirectional mapping between Orca's
// 36-symbol alphabet (0-9, a-z) and the integer values operators compute
// with, plus the small set of structural glyphs (dot, bang, comment,
// midi) that are not part of the value alphabet.
package glyph

// Glyph is a single grid cell's character.
type Glyph = rune

const (
	Dot     Glyph = '.' // storage-level empty cell
	Empty   Glyph = ' ' // display-level empty cell; never stored
	Bang    Glyph = '*' // one-tick pulse
	Comment Glyph = '#'
	Midi    Glyph = ':'

	// Absent is returned by Grid.Peek for out-of-bounds reads. It is
	// distinct from Dot so callers can tell "off the grid" from "empty
	// cell" when that distinction matters (it normally doesn't: both
	// carry value 0).
	Absent Glyph = 0
)

// table is the 36-symbol alphabet in index order: '0'..'9', 'a'..'z'.
var table = [36]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
	'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't',
	'u', 'v', 'w', 'x', 'y', 'z',
}

var indexOf = func() map[byte]int {
	m := make(map[byte]int, len(table))
	for i, g := range table {
		m[g] = i
	}
	return m
}()

func lower(g Glyph) Glyph {
	if g >= 'A' && g <= 'Z' {
		return g + ('a' - 'A')
	}
	return g
}

// IsUpper reports whether g is an upper-case letter that has a distinct
// lower-case counterpart, i.e. case carries meaning for g.
func IsUpper(g Glyph) bool {
	return g >= 'A' && g <= 'Z'
}

// HasCase reports whether g's upper and lower forms differ, i.e. g is a
// letter at all (digits have no case).
func HasCase(g Glyph) bool {
	l := lower(g)
	return l >= 'a' && l <= 'z'
}

// ValueOf decodes g into its integer value in [0,35]. Dot, Bang, and
// Absent all decode to 0. Any glyph outside the value alphabet decodes
// to -1.
func ValueOf(g Glyph) int {
	switch g {
	case Dot, Bang, Absent:
		return 0
	}
	if g < 0 || g > 0x7f {
		return -1
	}
	if i, ok := indexOf[byte(lower(g))]; ok {
		return i
	}
	return -1
}

// KeyOf returns the glyph for value n (reduced mod 36), in lower case
// unless upper is true.
func KeyOf(n int, upper bool) Glyph {
	n %= len(table)
	if n < 0 {
		n += len(table)
	}
	g := Glyph(table[n])
	if upper && g >= 'a' && g <= 'z' {
		return g - ('a' - 'A')
	}
	return g
}

// DisplayGlyph substitutes the display-level empty glyph for Dot, for
// renderers that want to show empty cells as blank space.
func DisplayGlyph(g Glyph) Glyph {
	if g == Dot {
		return Empty
	}
	return g
}
