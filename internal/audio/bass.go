package audio

import (
	"math"

	"github.com/ingyamilmolinar/seedloop/core/dsp"
)

// BassProfile sets the FM timbre of the bass voice.
type BassProfile struct {
	Name  string
	Ratio float64 // modulator frequency / carrier frequency
	Index float64 // modulation depth in radians
	Decay float64 // envelope rate per second
	Amp   float64
}

// BassProfiles lists the timbres a seed can pick from.
var BassProfiles = []BassProfile{
	{Name: "default", Ratio: 2.0, Index: 5.0, Decay: 10, Amp: 0.4},
	{Name: "quantum", Ratio: 1.5, Index: 8.0, Decay: 8, Amp: 0.45},
	{Name: "plucky", Ratio: 3.0, Index: 2.5, Decay: 14, Amp: 0.35},
}

// Bass is a two-operator FM tone.
type Bass struct {
	span
	profile BassProfile
	lenSec  float64
	freq    float64
}

// NewBass returns an idle bass that plays for lenSec once triggered.
func NewBass(sampleRate float64, p BassProfile, lenSec float64) *Bass {
	return &Bass{span: span{sr: sampleRate}, profile: p, lenSec: lenSec}
}

func (b *Bass) SetFreq(hz float64) { b.freq = hz }

func (b *Bass) Trigger() { b.start(b.lenSec) }

func (b *Bass) Process(l, r []float32, n int) {
	if !b.Active() {
		return
	}
	n = limit(l, r, n)
	p := b.profile
	for i := 0; i < n && b.pos < b.length; i++ {
		t := b.elapsed()
		mod := p.Index * math.Sin(2*math.Pi*b.freq*p.Ratio*t)
		s := float32(p.Amp * dsp.ExpDecay(t, p.Decay) * math.Sin(2*math.Pi*b.freq*t+mod))
		l[i] += s
		r[i] += s
		b.pos++
	}
}
