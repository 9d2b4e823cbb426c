package port

import "testing"

func TestClamps(t *testing.T) {
	cases := []struct {
		name  string
		clamp Clamp
		in    int
		want  int
	}{
		{"identity", Identity(), -5, -5},
		{"at-least-1-below", AtLeast(1), 0, 1},
		{"at-least-1-above", AtLeast(1), 4, 4},
		{"clamped-low", Clamped(0, 8), -1, 0},
		{"clamped-high", Clamped(0, 8), 9, 8},
		{"clamped-in-range", Clamped(0, 8), 3, 3},
	}
	for _, tc := range cases {
		if got := tc.clamp(tc.in); got != tc.want {
			t.Errorf("%s: clamp(%d) = %d, want %d", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestOutputOptions(t *testing.T) {
	o := NewOutput(1, 2, Sensitive())
	if !o.IsSensitive || o.IsBang {
		t.Errorf("Sensitive() output = %+v, want IsSensitive only", o)
	}

	o = NewOutput(1, 2, Bang())
	if o.IsSensitive || !o.IsBang {
		t.Errorf("Bang() output = %+v, want IsBang only", o)
	}
}

func TestOutputWithDefaultAndClamp(t *testing.T) {
	o := NewOutput(1, 2, WithOutputDefault('8'), WithOutputClamp(AtLeast(1)))
	if o.Default != '8' {
		t.Errorf("Default = %q, want '8'", o.Default)
	}
	if got := o.Clamp(0); got != 1 {
		t.Errorf("Clamp(0) = %d, want 1", got)
	}
}
