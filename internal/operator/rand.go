package operator

import "math/rand/v2"

// randIntn returns a value in [0, n) using the package-level
// math/rand/v2 source, which seeds itself from the OS.
func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// SeededRand is a reproducible IntRange backed by a fixed seed, for
// deterministic tests and for CLI runs started with an explicit seed
// flag.
type SeededRand struct {
	r *rand.Rand
}

// NewSeededRand builds a SeededRand from a 64-bit seed.
func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

// Intn implements IntRange.
func (s *SeededRand) Intn(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.r.IntN(hi-lo+1)
}
