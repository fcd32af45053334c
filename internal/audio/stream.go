package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync/atomic"
)

const bytesPerFrame = 8 // stereo float32 LE

// stream serves a rendered stereo segment as interleaved float32 LE bytes.
// It implements io.Reader for oto.Player; read counts frames handed out and
// is safe to load from other goroutines.
type stream struct {
	l, r   []float32
	frames int
	read   atomic.Int64
}

func newStream(l, r []float32, frames int) *stream {
	frames = limit(l, r, frames)
	if frames < 0 {
		frames = 0
	}
	return &stream{l: l, r: r, frames: frames}
}

// Read implements io.Reader.
func (s *stream) Read(p []byte) (int, error) {
	pos := int(s.read.Load())
	if pos >= s.frames {
		return 0, io.EOF
	}
	n := len(p) / bytesPerFrame
	if rest := s.frames - pos; n > rest {
		n = rest
	}
	for i := 0; i < n; i++ {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(s.l[pos+i]))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(s.r[pos+i]))
	}
	s.read.Store(int64(pos + n))
	return n * bytesPerFrame, nil
}

// Frames returns how many frames have been read so far.
func (s *stream) Frames() int64 { return s.read.Load() }

// Done reports whether every frame has been read.
func (s *stream) Done() bool { return int(s.read.Load()) >= s.frames }
