//go:build !headless

package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays a rendered segment once through the system audio device.
// It only reads the finished buffer; synthesis is never driven from here.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	src    *stream
	sr     int
}

// NewPlayer opens the audio device for stereo float32 output. Only one
// Player may exist per process because oto allows a single context.
func NewPlayer(l, r []float32, frames, sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	src := newStream(l, r, frames)
	return &Player{ctx: ctx, player: ctx.NewPlayer(src), src: src, sr: sampleRate}, nil
}

// Play starts playback without blocking.
func (p *Player) Play() { p.player.Play() }

// Elapsed returns the audible position, excluding audio still queued in
// the player's buffer.
func (p *Player) Elapsed() time.Duration {
	frames := p.src.Frames() - int64(p.player.BufferedSize()/bytesPerFrame)
	if frames < 0 {
		frames = 0
	}
	return time.Duration(frames) * time.Second / time.Duration(p.sr)
}

// Playing reports whether audio is still coming out of the device.
func (p *Player) Playing() bool { return p.player.IsPlaying() }

// Wait blocks until playback finishes or ctx is done.
func (p *Player) Wait(ctx context.Context) error {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for p.player.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Close releases the player. Errors reported by the device surface here.
func (p *Player) Close() error {
	if err := p.player.Err(); err != nil {
		_ = p.player.Close()
		return fmt.Errorf("playback: %w", err)
	}
	return p.player.Close()
}
