// Package ui opens the visualizer window. It only polls the audio bridge.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	loop_log "github.com/ingyamilmolinar/seedloop/internal/log"
	"github.com/ingyamilmolinar/seedloop/internal/visual"
)

type Game struct {
	scene  visual.Scene
	src    visual.Source
	logger *loop_log.Logger

	trail      *ebiten.Image
	frame      visual.Frame
	seenActive bool
	ticks      int64
}

func New(scene visual.Scene, src visual.Source, logger *loop_log.Logger) *Game {
	if logger == nil {
		logger = loop_log.Discard()
	}
	return &Game{scene: scene, src: src, logger: logger}
}

func (g *Game) Layout(int, int) (int, int) {
	return visual.Width, visual.Height
}

func (g *Game) Update() error {
	g.ticks++
	if isKeyPressed(ebiten.KeyEscape) || isKeyPressed(ebiten.KeyQ) {
		g.logger.Infof("[UI] quit requested")
		return ebiten.Termination
	}
	active := g.src.IsAudioActive()
	if active {
		g.seenActive = true
	} else if g.seenActive {
		g.logger.Infof("[UI] playback finished after %d ticks", g.ticks)
		return ebiten.Termination
	}
	g.frame = g.scene.At(g.src)
	g.logger.Debugf("[UI] frame=%d level=%.3f", g.frame.Index, g.frame.Level)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.trail == nil {
		g.trail = ebiten.NewImage(visual.Width, visual.Height)
		g.trail.Fill(colBG)
	}
	// older frames fade out at a rate set by Persistence
	keep := g.scene.Effects.Persistence
	drawRect(g.trail, 0, 0, visual.Width, visual.Height, fade(colBG, uint8((1-keep)*255)))
	g.drawFrame(g.trail, g.frame)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(g.frame.Shake.X, g.frame.Shake.Y)
	screen.Fill(colBG)
	screen.DrawImage(g.trail, &op)
	g.drawScanlines(screen)
	g.drawOverlay(screen)
}

func (g *Game) drawFrame(dst *ebiten.Image, f visual.Frame) {
	for _, c := range f.Circles {
		drawCircle(dst, c.Center.X, c.Center.Y, c.Radius, c.Stroke, c.Color)
	}
	if n := len(f.Polygon); n > 1 {
		for i, p := range f.Polygon {
			q := f.Polygon[(i+1)%n]
			drawLine(dst, p.X, p.Y, q.X, q.Y, 2, f.Color)
		}
	}
	for _, p := range f.Dots {
		drawRect(dst, p.X-1, p.Y-1, 2, 2, f.Color)
	}
}

func (g *Game) drawScanlines(dst *ebiten.Image) {
	a := g.scene.Effects.ScanlineAlpha
	if a == 0 {
		return
	}
	c := fade(colScanline, a)
	for y := 0; y < visual.Height; y += 3 {
		drawRect(dst, 0, float64(y), visual.Width, 1, c)
	}
}

func (g *Game) drawOverlay(dst *ebiten.Image) {
	info := fmt.Sprintf("seed 0x%X  %d bpm  %s\n%5.2fs / %5.2fs  rms %.3f",
		g.scene.Seed, g.scene.BPM, g.scene.Mode,
		g.frame.TimeSec, float64(g.src.SegmentDurationMs())/1000, g.frame.Level)
	drawText(dst, info, 8, 8)
}

// Run opens the window and blocks until playback ends or the user quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(visual.Width, visual.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("seedloop 0x%X", g.scene.Seed))
	ebiten.SetTPS(visual.FPS)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
