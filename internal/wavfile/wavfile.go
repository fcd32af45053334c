// Package wavfile writes rendered segments to disk as 16-bit stereo PCM.
package wavfile

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth  = 16
	channels  = 2
	pcmFormat = 1
	fullScale = 32767
)

// Write creates path and stores the first frames of l and r in it.
func Write(path string, l, r []float32, frames, sampleRate int) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavfile: %w", err)
		}
	}()
	return Encode(f, l, r, frames, sampleRate)
}

// Encode writes a complete WAV stream to w. Samples outside [-1,1] are
// hard clipped.
func Encode(w io.WriteSeeker, l, r []float32, frames, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wavfile: bad sample rate %d", sampleRate)
	}
	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           PCM16(l, r, frames),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavfile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavfile: finish: %w", err)
	}
	return nil
}

// PCM16 interleaves l and r as 16-bit integers.
func PCM16(l, r []float32, frames int) []int {
	if frames > len(l) {
		frames = len(l)
	}
	if frames > len(r) {
		frames = len(r)
	}
	if frames < 0 {
		frames = 0
	}
	out := make([]int, frames*channels)
	for i := 0; i < frames; i++ {
		out[2*i] = toInt16(l[i])
		out[2*i+1] = toInt16(r[i])
	}
	return out
}

func toInt16(v float32) int {
	switch {
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}
	return int(v * fullScale)
}
