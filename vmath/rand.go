package vmath

// FastRand is a seeded xorshift64 generator (13, 17, 5)
// Not safe for concurrent use; every consumer in a tick runs on the loop goroutine
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is coerced to 1 since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns a value in [lo, hi), lo when the range is empty
func (r *FastRand) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo)
}
