package glyph

import "testing"

func TestValueOfRoundTrip(t *testing.T) {
	for _, g := range table {
		lo := Glyph(g)
		up := lo - ('a' - 'A')
		if lo >= 'a' && lo <= 'z' {
			if ValueOf(lo) != ValueOf(up) {
				t.Errorf("%q: ValueOf(lower)=%d ValueOf(upper)=%d, want equal", lo, ValueOf(lo), ValueOf(up))
			}
		}
		if v := ValueOf(lo); v < 0 || v > 35 {
			t.Errorf("ValueOf(%q) = %d, want in [0,35]", lo, v)
		}
	}
}

func TestKeyOfValueOf(t *testing.T) {
	for n := -40; n < 80; n++ {
		g := KeyOf(n, false)
		want := ((n % 36) + 36) % 36
		if got := ValueOf(g); got != want {
			t.Errorf("ValueOf(KeyOf(%d)) = %d, want %d", n, got, want)
		}
	}
}

func TestValueOfSpecial(t *testing.T) {
	cases := []struct {
		g    Glyph
		want int
	}{
		{Dot, 0},
		{Bang, 0},
		{Absent, 0},
		{'0', 0},
		{'9', 9},
		{'a', 10},
		{'z', 35},
		{'A', 10},
		{'Z', 35},
		{'#', -1},
		{':', -1},
	}
	for _, tc := range cases {
		if got := ValueOf(tc.g); got != tc.want {
			t.Errorf("ValueOf(%q) = %d, want %d", tc.g, got, tc.want)
		}
	}
}

func TestKeyOfUpper(t *testing.T) {
	if got := KeyOf(10, true); got != 'A' {
		t.Errorf("KeyOf(10, true) = %q, want 'A'", got)
	}
	if got := KeyOf(0, true); got != '0' {
		t.Errorf("KeyOf(0, true) = %q, want '0' (digits have no case)", got)
	}
}

func TestDisplayGlyph(t *testing.T) {
	if DisplayGlyph(Dot) != Empty {
		t.Errorf("DisplayGlyph(Dot) should be Empty")
	}
	if DisplayGlyph('a') != 'a' {
		t.Errorf("DisplayGlyph should pass through non-dot glyphs")
	}
}
