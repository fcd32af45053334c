package audio

import (
	"math"

	"github.com/ingyamilmolinar/seedloop/internal/utils"
)

// LimiterConfig describes the limiter's transfer curve and timing.
type LimiterConfig struct {
	ThresholdDB float64 // must be finite
	KneeDB      float64 // must be > 0
	AttackMs    float64
	ReleaseMs   float64
}

// DefaultLimiterConfig limits at -1 dBFS with a 6 dB knee.
func DefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		ThresholdDB: -1,
		KneeDB:      6,
		AttackMs:    1,
		ReleaseMs:   100,
	}
}

// Limiter is a stereo peak limiter with a soft knee. Both channels share one
// detector so the stereo image is kept.
type Limiter struct {
	env       float64
	attack    float64
	release   float64
	threshold float64 // linear
	knee      float64 // dB
	gain      float64
}

// NewLimiter builds a limiter for the given sample rate.
func NewLimiter(sampleRate float64, cfg LimiterConfig) *Limiter {
	return &Limiter{
		attack:    smoothing(cfg.AttackMs, sampleRate),
		release:   smoothing(cfg.ReleaseMs, sampleRate),
		threshold: utils.DBToLinear(cfg.ThresholdDB),
		knee:      cfg.KneeDB,
		gain:      1,
	}
}

// smoothing turns a time constant into a one-pole coefficient; 0 follows
// the input instantly.
func smoothing(ms, sampleRate float64) float64 {
	if ms <= 0 || sampleRate <= 0 {
		return 0
	}
	return math.Exp(-1 / (ms * 0.001 * sampleRate))
}

// Process attenuates l[:n] and r[:n] in place. It never boosts.
func (lm *Limiter) Process(l, r []float32, n int) {
	n = limit(l, r, n)
	env := lm.env
	for i := 0; i < n; i++ {
		peak := math.Max(math.Abs(float64(l[i])), math.Abs(float64(r[i])))

		if peak > env {
			env = peak + lm.attack*(env-peak)
		} else {
			env = peak + lm.release*(env-peak)
		}

		gain := utils.DBToLinear(-lm.reduction(utils.LinearToDB(env / lm.threshold)))
		if gain < 1 {
			l[i] = float32(float64(l[i]) * gain)
			r[i] = float32(float64(r[i]) * gain)
		} else {
			gain = 1
		}
		lm.gain = gain
	}
	lm.env = env
}

// reduction returns the gain reduction in dB for an overshoot in dB.
func (lm *Limiter) reduction(overshoot float64) float64 {
	half := lm.knee / 2
	switch {
	case overshoot <= -half:
		return 0
	case overshoot < half:
		x := overshoot + half
		return x * x / (2 * lm.knee)
	default:
		return overshoot
	}
}

// Envelope returns the current detector level.
func (lm *Limiter) Envelope() float64 { return lm.env }

// Gain returns the gain applied to the most recent sample.
func (lm *Limiter) Gain() float64 { return lm.gain }
