package audio

import (
	"math"

	"github.com/ingyamilmolinar/seedloop/core/dsp"
)

const (
	leadDecayRate = 5.0
	leadDrive     = 1.2
	leadAmp       = 0.25
)

// Lead is a driven sawtooth with a cubic soft clip.
type Lead struct {
	span
	lenSec float64
	freq   float64
}

// NewLead returns an idle lead that plays for lenSec once triggered.
func NewLead(sampleRate, lenSec float64) *Lead {
	return &Lead{span: span{sr: sampleRate}, lenSec: lenSec}
}

func (v *Lead) SetFreq(hz float64) { v.freq = hz }

func (v *Lead) Trigger() { v.start(v.lenSec) }

func (v *Lead) Process(l, r []float32, n int) {
	if !v.Active() {
		return
	}
	n = limit(l, r, n)
	for i := 0; i < n && v.pos < v.length; i++ {
		t := v.elapsed()
		cycles := v.freq * t
		raw := 2*(cycles-math.Floor(cycles)) - 1
		d := leadDrive * raw
		soft := 1.5*d - 0.5*d*d*d
		s := float32(leadAmp * dsp.ExpDecay(t, leadDecayRate) * soft)
		l[i] += s
		r[i] += s
		v.pos++
	}
}
