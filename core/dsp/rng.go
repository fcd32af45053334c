// Package dsp holds the small numeric primitives shared by every voice: the
// decay envelope and the seeded noise source.
package dsp

// RNG is a deterministic xorshift64* generator. The zero value is not usable;
// construct it with Seed.
type RNG struct {
	state uint64
}

// Seed scrambles seed with splitmix64 so neighbouring seeds give unrelated
// streams. Seed 0 is valid.
func Seed(seed uint64) RNG {
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		// xorshift locks up on an all-zero state
		z = 0x9e3779b97f4a7c15
	}
	return RNG{state: z}
}

// Uint64 advances the generator.
func (r *RNG) Uint64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545f4914f6cdd1d
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// NextMono returns white noise in [-1, 1).
func (r *RNG) NextMono() float32 {
	u := float32(r.Uint64()>>40) / (1 << 24)
	return 2*u - 1
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Range returns a value in [lo, hi].
func (r *RNG) Range(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
