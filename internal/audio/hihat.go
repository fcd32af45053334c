package audio

import "github.com/ingyamilmolinar/seedloop/core/dsp"

const (
	hatDecayRate = 120.0
	hatLenSec    = 0.05
	hatAmp       = 0.15
)

// Hat renders a short, bright noise burst.
// It aims to mimic a closed hi-hat.
type Hat struct {
	noiseVoice
}

// NewHat returns an idle hat whose noise stream is fixed by seed.
func NewHat(sampleRate float64, seed uint64) *Hat {
	return &Hat{noiseVoice{
		span:   span{sr: sampleRate},
		rng:    dsp.Seed(seed),
		decay:  hatDecayRate,
		lenSec: hatLenSec,
		amp:    hatAmp,
	}}
}
