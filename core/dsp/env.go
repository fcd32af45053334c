package dsp

import "math"

// ExpDecay returns the exponential decay curve e^(-rate*t). It is 1 at t=0 and
// falls toward 0. Callers pass t >= 0 and rate > 0.
func ExpDecay(t, rate float64) float64 {
	return math.Exp(-rate * t)
}
