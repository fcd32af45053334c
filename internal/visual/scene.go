// Package visual computes what the visualizer draws. It only reads the
// audio bridge; nothing on the audio side knows this package exists.
package visual

import (
	"image/color"
	"math"

	"github.com/ingyamilmolinar/seedloop/core/dsp"
)

// Source is the read-only audio view the visuals poll.
type Source interface {
	CurrentAudioTimeMs() uint32
	RMSLevel(frame int) float32
	IsAudioActive() bool
	SegmentDurationMs() uint32
}

const (
	Width  = 512
	Height = 512
	FPS    = 30

	orbitSpeed = 0.2 // radians per second
	baseRadius = 30
	levelScale = 80
)

const (
	hueSalt     = 0xb45e
	degradeSalt = 0xde5a7
)

// Mode picks the centrepiece shape from the tempo.
type Mode int

const (
	ModeThick Mode = iota // < 70 bpm: thick outline
	ModeRings             // 70-99: concentric rings
	ModePoly              // 100-129: rotating polygon
	ModeLissa             // 130+: figure-eight
)

func (m Mode) String() string {
	switch m {
	case ModeThick:
		return "thick"
	case ModeRings:
		return "rings"
	case ModePoly:
		return "poly"
	case ModeLissa:
		return "lissa"
	default:
		return "unknown"
	}
}

// ModeForBPM maps a tempo to a Mode.
func ModeForBPM(bpm int) Mode {
	switch {
	case bpm < 70:
		return ModeThick
	case bpm < 100:
		return ModeRings
	case bpm < 130:
		return ModePoly
	default:
		return ModeLissa
	}
}

// Degradation is the seed-chosen amount of "worn screen" effects.
type Degradation struct {
	Persistence   float64 // ghost trail retention, 0.3-0.9
	ScanlineAlpha uint8   // 0-200
	Jitter        float64 // pixels of shake, 0-3
}

// DegradationFor derives the effect levels for seed.
func DegradationFor(seed uint64) Degradation {
	rng := dsp.Seed(seed ^ degradeSalt)
	return Degradation{
		Persistence:   0.3 + 0.6*rng.Float64(),
		ScanlineAlpha: uint8(200 * rng.Float64()),
		Jitter:        3 * rng.Float64(),
	}
}

// Scene holds everything about the picture that stays fixed for a segment.
type Scene struct {
	Seed        uint64
	BPM         int
	Mode        Mode
	BaseHue     float64
	OrbitRadius float64
	Effects     Degradation
}

// NewScene builds the scene for a seed and tempo.
func NewScene(seed uint64, bpm int) Scene {
	rng := dsp.Seed(seed ^ hueSalt)
	return Scene{
		Seed:        seed,
		BPM:         bpm,
		Mode:        ModeForBPM(bpm),
		BaseHue:     rng.Float64(),
		OrbitRadius: math.Min(Width, Height) / 3,
		Effects:     DegradationFor(seed),
	}
}

// Point is a position in screen pixels.
type Point struct{ X, Y float64 }

// Circle is an outlined circle.
type Circle struct {
	Center Point
	Radius float64
	Stroke float64
	Color  color.RGBA
}

// Frame is one picture: shapes plus the numbers shown in the overlay.
type Frame struct {
	Index   int
	TimeSec float64
	Level   float32
	Circles []Circle
	Polygon []Point // closed outline, empty when unused
	Dots    []Point
	Color   color.RGBA
	Shake   Point
}

// At polls src and lays out the current frame.
func (s Scene) At(src Source) Frame {
	ms := src.CurrentAudioTimeMs()
	idx := int(int64(ms) * FPS / 1000)
	f := Frame{
		Index:   idx,
		TimeSec: float64(ms) / 1000,
		Level:   src.RMSLevel(idx),
		Color:   HSV{H: s.BaseHue, S: 1, V: 1}.RGBA(),
	}
	t := f.TimeSec
	ang := t * orbitSpeed
	c := Point{
		X: Width/2 + math.Cos(ang)*s.OrbitRadius,
		Y: Height/2 + math.Sin(ang)*s.OrbitRadius,
	}
	r := baseRadius + levelScale*float64(f.Level)

	switch s.Mode {
	case ModeThick:
		f.Circles = []Circle{{Center: c, Radius: r + 10, Stroke: 6, Color: f.Color}}
	case ModeRings:
		for k := 0; k < 3; k++ {
			rr := r + float64(k)*15 + 10*math.Sin(t+float64(k))
			hue := math.Mod(s.BaseHue+0.05*float64(k), 1)
			f.Circles = append(f.Circles, Circle{Center: c, Radius: rr, Stroke: 2, Color: HSV{H: hue, S: 1, V: 1}.RGBA()})
		}
	case ModePoly:
		n := 4 + s.BPM/30
		for i := 0; i < n; i++ {
			a := t + float64(i)*2*math.Pi/float64(n)
			f.Polygon = append(f.Polygon, Point{X: c.X + math.Cos(a)*r, Y: c.Y + math.Sin(a)*r})
		}
	case ModeLissa:
		const dots = 120
		for i := 0; i < dots; i++ {
			phi := 2 * math.Pi * float64(i) / (dots - 1)
			x := math.Mod(c.X+r*math.Sin(2*phi+t)+Width, Width)
			y := math.Mod(c.Y+r*math.Sin(3*phi)+Height, Height)
			f.Dots = append(f.Dots, Point{X: x, Y: y})
		}
	}

	if j := s.Effects.Jitter; j > 0 {
		// deterministic per frame so a replay shakes the same way
		rng := dsp.Seed(s.Seed ^ uint64(idx))
		f.Shake = Point{X: (2*rng.Float64() - 1) * j, Y: (2*rng.Float64() - 1) * j}
	}
	return f
}
