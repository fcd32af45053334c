package engine

import (
	"github.com/ingyamilmolinar/seedloop/core/beat"
	loop_log "github.com/ingyamilmolinar/seedloop/internal/log"
)

// blockFrames is how many frames Render asks for per Process call.
const blockFrames = 1024

// Segment is a finished render ready for serialization or playback.
type Segment struct {
	L, R       []float32
	Frames     int
	SampleRate int
	Params     beat.Params
	Clamped    bool // true if capacity cut the segment short
}

// Render runs a fresh generator for seed and returns up to capacity frames.
// A capacity of zero or less renders the whole segment.
func Render(seed uint64, cfg Config, capacity int, logger *loop_log.Logger) *Segment {
	g := New(cfg, logger)
	g.Init(seed)

	total := g.TotalFrames()
	frames := total
	if capacity > 0 && frames > capacity {
		frames = capacity
	}
	seg := &Segment{
		L:          make([]float32, frames),
		R:          make([]float32, frames),
		Frames:     frames,
		SampleRate: g.Params().SampleRate,
		Params:     g.Params(),
		Clamped:    frames < total,
	}
	for off := 0; off < frames; {
		n := blockFrames
		if off+n > frames {
			n = frames - off
		}
		got := g.Process(seg.L[off:], seg.R[off:], n)
		if got == 0 {
			break
		}
		off += got
	}
	return seg
}

// DurationMs returns the rendered length in milliseconds.
func (s *Segment) DurationMs() uint32 {
	if s.SampleRate <= 0 {
		return 0
	}
	return uint32(int64(s.Frames) * 1000 / int64(s.SampleRate))
}
