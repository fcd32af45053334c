package audio

// Delay is a ping-pong feedback delay over a fixed ring of stereo frames.
// Its output is the delayed signal only; blending with the dry signal is up
// to the caller.
type Delay struct {
	buf  []float32 // interleaved L,R
	idx  int
	size int
}

// NewDelay returns a delay line holding size frames of history. Sizes below
// one frame are raised to one.
func NewDelay(size int) *Delay {
	if size < 1 {
		size = 1
	}
	return &Delay{buf: make([]float32, size*2), size: size}
}

// Size returns the delay length in frames.
func (d *Delay) Size() int { return d.size }

// Process replaces l[:n] and r[:n] with the frames written size frames
// earlier. Stored frames are fed back crossed over, scaled by feedback; a
// feedback of 1 or more grows without bound.
func (d *Delay) Process(l, r []float32, n int, feedback float32) {
	n = limit(l, r, n)
	buf := d.buf
	idx := d.idx
	for i := 0; i < n; i++ {
		yl := buf[idx*2]
		yr := buf[idx*2+1]
		buf[idx*2] = l[i] + yr*feedback
		buf[idx*2+1] = r[i] + yl*feedback
		l[i] = yl
		r[i] = yr
		idx++
		if idx >= d.size {
			idx = 0
		}
	}
	d.idx = idx
}

// Reset clears the history and rewinds the cursor.
func (d *Delay) Reset() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.idx = 0
}
