package audio

import "github.com/ingyamilmolinar/seedloop/core/dsp"

const (
	snareDecayRate = 35.0
	snareLenSec    = 0.1
	snareAmp       = 0.4
)

// Snare renders white noise shaped by a fast exponential decay.
type Snare struct {
	noiseVoice
}

// NewSnare returns an idle snare whose noise stream is fixed by seed.
func NewSnare(sampleRate float64, seed uint64) *Snare {
	return &Snare{noiseVoice{
		span:   span{sr: sampleRate},
		rng:    dsp.Seed(seed),
		decay:  snareDecayRate,
		lenSec: snareLenSec,
		amp:    snareAmp,
	}}
}
