package beat

// Euclid spreads pulses as evenly as possible over steps using the bucket
// method. Pulses outside [0, steps] are clamped.
func Euclid(pulses, steps int) []bool {
	if steps <= 0 {
		return nil
	}
	if pulses < 0 {
		pulses = 0
	}
	if pulses > steps {
		pulses = steps
	}
	out := make([]bool, steps)
	bucket := 0
	for i := range out {
		bucket += pulses
		if bucket >= steps {
			bucket -= steps
			out[i] = true
		}
	}
	return out
}

// Rotate shifts pattern left by n steps.
func Rotate(pattern []bool, n int) []bool {
	if len(pattern) == 0 {
		return nil
	}
	n %= len(pattern)
	if n < 0 {
		n += len(pattern)
	}
	out := make([]bool, 0, len(pattern))
	out = append(out, pattern[n:]...)
	return append(out, pattern[:n]...)
}
