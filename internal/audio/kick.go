package audio

import (
	"math"

	"github.com/ingyamilmolinar/seedloop/core/dsp"
)

const (
	kickBaseFreq  = 50.0
	kickDecayRate = 20.0
	kickLenSec    = 1.0
	kickAmp       = 0.8
)

// Kick is a decaying sine bass drum at a fixed fundamental.
type Kick struct {
	span
}

// NewKick returns an idle kick for the given sample rate.
func NewKick(sampleRate float64) *Kick {
	return &Kick{span: span{sr: sampleRate}}
}

func (k *Kick) Trigger() { k.start(kickLenSec) }

func (k *Kick) Process(l, r []float32, n int) {
	if !k.Active() {
		return
	}
	n = limit(l, r, n)
	for i := 0; i < n && k.pos < k.length; i++ {
		t := k.elapsed()
		env := dsp.ExpDecay(t, kickDecayRate)
		tone := math.Sin(2 * math.Pi * kickBaseFreq * t)
		s := float32(env * tone * kickAmp)
		l[i] += s
		r[i] += s
		k.pos++
	}
}
