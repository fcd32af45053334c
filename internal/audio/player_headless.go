//go:build headless

package audio

import (
	"context"
	"errors"
	"time"
)

// ErrNoDevice is returned by NewPlayer in headless builds.
var ErrNoDevice = errors.New("audio playback not available in headless build")

// Player is a placeholder so headless builds keep the same API.
type Player struct{}

func NewPlayer(l, r []float32, frames, sampleRate int) (*Player, error) {
	return nil, ErrNoDevice
}

func (p *Player) Play()                          {}
func (p *Player) Elapsed() time.Duration         { return 0 }
func (p *Player) Playing() bool                  { return false }
func (p *Player) Wait(ctx context.Context) error { return nil }
func (p *Player) Close() error                   { return nil }
