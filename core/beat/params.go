// Package beat turns a seed into musical parameters and a step schedule.
// Both are pure functions of the seed: the same seed always yields the same
// tempo, key, and events.
package beat

import (
	"github.com/ingyamilmolinar/seedloop/core/dsp"
	"github.com/ingyamilmolinar/seedloop/internal/audio"
)

const (
	StepsPerBeat = 4 // sixteenth notes
	BeatsPerBar  = 4
	StepsPerBar  = StepsPerBeat * BeatsPerBar

	MinBPM = 50
	MaxBPM = 120

	// DelayFeedback is fixed; only the delay time follows the seed.
	DelayFeedback = 0.45
)

// Config holds the tunables that are not derived from the seed.
type Config struct {
	SampleRate     int
	BarsPerSegment int
}

// DefaultConfig renders four bars at 44.1 kHz.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, BarsPerSegment: 4}
}

// Scale is a set of semitone offsets from the root.
type Scale struct {
	Name    string
	Degrees []int
}

var (
	RootFreqs    = []float64{220, 233.08, 246.94, 261.63, 293.66}
	Scales       = []Scale{{"major", []int{0, 2, 4, 7, 9}}, {"minor", []int{0, 3, 5, 7, 10}}}
	DelayFactors = []float64{2, 1, 0.5, 0.25} // in beats
)

// Params are the musical parameters of one segment.
type Params struct {
	Seed       uint64
	SampleRate int

	BPM         int
	RootFreq    float64
	Scale       Scale
	Bass        audio.BassProfile
	DelayFactor float64

	BeatSec      float64
	DelayMs      int
	DelaySamples int
	Feedback     float64

	StepSamples int
	Steps       int
	TotalFrames int
}

// Derive computes the parameters for seed. Draw order is fixed: BPM, root,
// scale, bass profile, delay factor.
func Derive(seed uint64, cfg Config) Params {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.BarsPerSegment <= 0 {
		cfg.BarsPerSegment = DefaultConfig().BarsPerSegment
	}
	rng := dsp.Seed(seed)

	p := Params{Seed: seed, SampleRate: cfg.SampleRate}
	p.BPM = rng.Range(MinBPM, MaxBPM)
	p.RootFreq = RootFreqs[rng.Intn(len(RootFreqs))]
	p.Scale = Scales[rng.Intn(len(Scales))]
	p.Bass = audio.BassProfiles[rng.Intn(len(audio.BassProfiles))]
	p.DelayFactor = DelayFactors[rng.Intn(len(DelayFactors))]

	sr := float64(cfg.SampleRate)
	p.BeatSec = 60 / float64(p.BPM)
	p.DelayMs = int(p.BeatSec * p.DelayFactor * 1000)
	p.DelaySamples = int(sr * float64(p.DelayMs) / 1000)
	p.Feedback = DelayFeedback

	p.StepSamples = int(p.BeatSec / StepsPerBeat * sr)
	p.Steps = cfg.BarsPerSegment * StepsPerBar
	p.TotalFrames = p.Steps * p.StepSamples
	return p
}

// DurationMs returns the nominal segment length in milliseconds.
func (p Params) DurationMs() uint32 {
	if p.SampleRate <= 0 {
		return 0
	}
	return uint32(int64(p.TotalFrames) * 1000 / int64(p.SampleRate))
}

// StepSec returns the length of one sixteenth step in seconds.
func (p Params) StepSec() float64 { return p.BeatSec / StepsPerBeat }
