package audio

import (
	"math"
	"testing"

	"github.com/ingyamilmolinar/seedloop/core/dsp"
)

func TestLimiterNeverAmplifies(t *testing.T) {
	lm := NewLimiter(testRate, DefaultLimiterConfig())
	rng := dsp.Seed(3)
	const n = 20000
	l := make([]float32, n)
	r := make([]float32, n)
	in := make([]float32, n)
	for i := range l {
		amp := float32(1 + 2*math.Sin(float64(i)/900))
		l[i] = rng.NextMono() * amp
		r[i] = rng.NextMono() * amp
		in[i] = l[i]
	}
	orig := append([]float32(nil), r...)
	for off := 0; off < n; off += 512 {
		m := 512
		if off+m > n {
			m = n - off
		}
		lm.Process(l[off:], r[off:], m)
		if lm.Gain() > 1 {
			t.Fatalf("gain %v > 1", lm.Gain())
		}
	}
	for i := range l {
		if math.Abs(float64(l[i])) > math.Abs(float64(in[i]))+1e-7 ||
			math.Abs(float64(r[i])) > math.Abs(float64(orig[i]))+1e-7 {
			t.Fatalf("sample %d was boosted", i)
		}
	}
}

func TestLimiterConvergesToUnity(t *testing.T) {
	cfg := DefaultLimiterConfig()
	lm := NewLimiter(testRate, cfg)

	loud := make([]float32, 4410)
	for i := range loud {
		loud[i] = 2
	}
	lm.Process(loud, append([]float32(nil), loud...), len(loud))
	if lm.Gain() >= 1 {
		t.Fatalf("expected reduction on a +6 dBFS signal, gain %v", lm.Gain())
	}

	// below threshold - knee/2 the knee never engages
	quiet := float32(0.99 * math.Pow(10, cfg.ThresholdDB/20) * math.Pow(10, -cfg.KneeDB/40))
	n := int(testRate * 2)
	l := make([]float32, n)
	r := make([]float32, n)
	for i := range l {
		l[i] = quiet
		r[i] = -quiet
	}
	lm.Process(l, r, n)
	if lm.Gain() != 1 {
		t.Fatalf("gain after release = %v, want 1", lm.Gain())
	}
	if l[n-1] != quiet || r[n-1] != -quiet {
		t.Fatalf("quiet signal altered: %v %v", l[n-1], r[n-1])
	}
}

func TestLimiterHoldsNearThreshold(t *testing.T) {
	cfg := DefaultLimiterConfig()
	lm := NewLimiter(testRate, cfg)
	n := int(testRate)
	l := make([]float32, n)
	r := make([]float32, n)
	for i := range l {
		l[i] = 4
		r[i] = 4
	}
	lm.Process(l, r, n)
	thresh := math.Pow(10, cfg.ThresholdDB/20)
	if got := float64(l[n-1]); math.Abs(got-thresh) > 1e-3 {
		t.Fatalf("steady state level %v, want ~%v", got, thresh)
	}
}

func TestLimiterSharedDetector(t *testing.T) {
	lm := NewLimiter(testRate, DefaultLimiterConfig())
	n := 2000
	l := make([]float32, n)
	r := make([]float32, n)
	for i := range l {
		l[i] = 3
		r[i] = 0.3
	}
	lm.Process(l, r, n)
	ratio := float64(l[n-1] / r[n-1])
	if math.Abs(ratio-10) > 1e-4 {
		t.Fatalf("stereo balance changed: L/R = %v", ratio)
	}
}

func TestLimiterKneeCurve(t *testing.T) {
	lm := NewLimiter(testRate, LimiterConfig{ThresholdDB: 0, KneeDB: 6})
	cases := []struct{ over, want float64 }{
		{-10, 0},
		{-3, 0},
		{0, 9.0 / 12},
		{2, 25.0 / 12},
		{3, 3},
		{8, 8},
	}
	for _, c := range cases {
		if got := lm.reduction(c.over); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("reduction(%v) = %v, want %v", c.over, got, c.want)
		}
	}
}

func TestLimiterSilenceIsUntouched(t *testing.T) {
	lm := NewLimiter(testRate, DefaultLimiterConfig())
	l := make([]float32, 100)
	r := make([]float32, 100)
	lm.Process(l, r, 100)
	if lm.Gain() != 1 || lm.Envelope() != 0 {
		t.Fatalf("silence changed limiter state: gain %v env %v", lm.Gain(), lm.Envelope())
	}
	if energy(l)+energy(r) != 0 {
		t.Fatalf("silence produced output")
	}
}
