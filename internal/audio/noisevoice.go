package audio

import "github.com/ingyamilmolinar/seedloop/core/dsp"

// noiseVoice is white noise from a private generator shaped by an
// exponential decay.
type noiseVoice struct {
	span
	rng    dsp.RNG
	decay  float64
	lenSec float64
	amp    float64
}

func (v *noiseVoice) Trigger() { v.start(v.lenSec) }

func (v *noiseVoice) Process(l, r []float32, n int) {
	if !v.Active() {
		return
	}
	n = limit(l, r, n)
	for i := 0; i < n && v.pos < v.length; i++ {
		env := dsp.ExpDecay(v.elapsed(), v.decay)
		s := float32(env*v.amp) * v.rng.NextMono()
		l[i] += s
		r[i] += s
		v.pos++
	}
}
