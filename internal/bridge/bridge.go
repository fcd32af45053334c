// Package bridge is the read-only view of a rendered segment that the
// visual side polls. It carries timing and a per-frame loudness summary and
// nothing else: no samples, no synth state.
package bridge

import (
	"math"
	"time"

	"github.com/ingyamilmolinar/seedloop/internal/utils"
)

// FPS is the visual frame rate the RMS table is computed for.
const FPS = 30

// Clock reports how far playback has progressed.
type Clock interface {
	Elapsed() time.Duration
	Playing() bool
}

// Bridge answers timing and level queries about one segment. It is safe for
// concurrent readers once built; the only moving part is the Clock.
type Bridge struct {
	rms        []float32
	durationMs uint32
	clock      Clock
}

// New precomputes the RMS table for l/r and binds the playback clock. A nil
// clock reports time zero and an inactive segment.
func New(l, r []float32, frames, sampleRate int, clock Clock) *Bridge {
	frames = utils.MinInt(frames, utils.MinInt(len(l), len(r)))
	b := &Bridge{clock: clock}
	if sampleRate <= 0 || frames <= 0 {
		return b
	}
	b.durationMs = uint32(int64(frames) * 1000 / int64(sampleRate))
	b.rms = rmsTable(l[:frames], r[:frames], sampleRate)
	return b
}

// rmsTable returns the stereo RMS of each visual frame, clamped to [0,1].
func rmsTable(l, r []float32, sampleRate int) []float32 {
	per := sampleRate / FPS
	if per <= 0 {
		per = 1
	}
	count := len(l) * FPS / sampleRate
	table := make([]float32, count)
	for f := range table {
		start := f * per
		end := start + per
		if end > len(l) {
			end = len(l)
		}
		if start >= end {
			break
		}
		var sum float64
		for i := start; i < end; i++ {
			sum += float64(l[i])*float64(l[i]) + float64(r[i])*float64(r[i])
		}
		v := math.Sqrt(sum / float64(2*(end-start)))
		table[f] = float32(math.Min(v, 1))
	}
	return table
}

// CurrentAudioTimeMs returns the playback position, never past the end.
func (b *Bridge) CurrentAudioTimeMs() uint32 {
	if b.clock == nil {
		return 0
	}
	ms := b.clock.Elapsed().Milliseconds()
	if ms < 0 {
		return 0
	}
	if ms > int64(b.durationMs) {
		return b.durationMs
	}
	return uint32(ms)
}

// RMSLevel returns the loudness of visual frame idx in [0,1]; frames
// outside the segment are silent.
func (b *Bridge) RMSLevel(idx int) float32 {
	if idx < 0 || idx >= len(b.rms) {
		return 0
	}
	return b.rms[idx]
}

// IsAudioActive reports whether the segment is still playing.
func (b *Bridge) IsAudioActive() bool {
	return b.clock != nil && b.clock.Playing() && b.CurrentAudioTimeMs() < b.durationMs
}

// SegmentDurationMs returns the segment length.
func (b *Bridge) SegmentDurationMs() uint32 { return b.durationMs }

// FrameCount returns how many visual frames the RMS table covers.
func (b *Bridge) FrameCount() int { return len(b.rms) }
