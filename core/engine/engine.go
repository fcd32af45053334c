// Package engine runs one segment: it derives the musical parameters from a
// seed, fires the scheduled voices step by step, and threads the mix through
// the delay and the limiter.
package engine

import (
	"github.com/ingyamilmolinar/seedloop/core/beat"
	"github.com/ingyamilmolinar/seedloop/internal/audio"
	loop_log "github.com/ingyamilmolinar/seedloop/internal/log"
)

// State is the generator lifecycle. It only moves forward.
type State int

const (
	Idle State = iota
	Initializing
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// sub-seeds so the two noise voices never share a stream
const (
	snareSalt = 0x736e617265 // "snare"
	hatSalt   = 0x686174     // "hat"
)

// Config holds everything the generator needs besides the seed.
type Config struct {
	Beat    beat.Config
	Limiter audio.LimiterConfig
	// DelayReturn scales the wet delay output added back onto the dry mix.
	// Negative means "use the derived feedback".
	DelayReturn float64
}

// DefaultConfig returns the stock render settings.
func DefaultConfig() Config {
	return Config{
		Beat:        beat.DefaultConfig(),
		Limiter:     audio.DefaultLimiterConfig(),
		DelayReturn: -1,
	}
}

// Generator renders one segment. It is not safe for concurrent use, but
// separate generators share nothing and can run in parallel.
type Generator struct {
	cfg    Config
	logger *loop_log.Logger
	state  State

	params   beat.Params
	schedule beat.Schedule

	voices  [audio.NumVoices]audio.Voice
	delay   *audio.Delay
	limiter *audio.Limiter

	eventIdx  int
	step      int
	posInStep int
	frame     int

	wetL, wetR []float32
}

// New returns an idle generator. A nil logger discards debug output.
func New(cfg Config, logger *loop_log.Logger) *Generator {
	if logger == nil {
		logger = loop_log.Discard()
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Init derives the segment from seed and moves to Running. Calling Init on a
// generator that has already started is a no-op; use a fresh generator per
// segment.
func (g *Generator) Init(seed uint64) {
	if g.state != Idle {
		g.logger.Warnf("[ENGINE] Init called in state %s, ignoring", g.state)
		return
	}
	g.state = Initializing

	g.params = beat.Derive(seed, g.cfg.Beat)
	g.schedule = beat.NewSchedule(seed, g.params)
	p := g.params
	sr := float64(p.SampleRate)

	g.voices[audio.KickID] = audio.NewKick(sr)
	g.voices[audio.SnareID] = audio.NewSnare(sr, seed^snareSalt)
	g.voices[audio.HatID] = audio.NewHat(sr, seed^hatSalt)
	g.voices[audio.BassID] = audio.NewBass(sr, p.Bass, p.BeatSec)
	g.voices[audio.LeadID] = audio.NewLead(sr, p.BeatSec)

	g.delay = audio.NewDelay(p.DelaySamples)
	g.limiter = audio.NewLimiter(sr, g.cfg.Limiter)

	g.logger.Debugf("[ENGINE] seed %#x: %d bpm, root %.2f Hz %s, bass %s, delay %g beats (%d ms)",
		seed, p.BPM, p.RootFreq, p.Scale.Name, p.Bass.Name, p.DelayFactor, p.DelayMs)
	g.logger.Debugf("[ENGINE] %d steps x %d samples = %d frames, %d events",
		p.Steps, p.StepSamples, p.TotalFrames, len(g.schedule.Events))

	g.state = Running
	if p.TotalFrames == 0 {
		g.state = Finished
	}
}

// Process renders up to n frames into l and r, overwriting them, and returns
// how many frames were produced. Frames past the end of the segment, and
// every frame once Finished, are silence. The output does not depend on how
// a render is split across calls.
func (g *Generator) Process(l, r []float32, n int) int {
	if n > len(l) {
		n = len(l)
	}
	if n > len(r) {
		n = len(r)
	}
	if n <= 0 {
		return 0
	}
	clear(l[:n])
	clear(r[:n])
	if g.state != Running {
		return 0
	}

	p := g.params
	done := 0
	for done < n && g.frame < p.TotalFrames {
		if g.posInStep == 0 {
			g.fire()
		}
		span := n - done
		if rest := p.StepSamples - g.posInStep; span > rest {
			span = rest
		}
		for _, v := range g.voices {
			v.Process(l[done:], r[done:], span)
		}
		done += span
		g.frame += span
		g.posInStep += span
		if g.posInStep == p.StepSamples {
			g.posInStep = 0
			g.step++
		}
	}

	g.effects(l, r, done)

	if g.frame >= p.TotalFrames {
		g.state = Finished
		g.logger.Debugf("[ENGINE] segment finished after %d frames", g.frame)
	}
	return done
}

// fire triggers every event scheduled for the current step.
func (g *Generator) fire() {
	events := g.schedule.Events
	for g.eventIdx < len(events) && events[g.eventIdx].Step < g.step {
		g.eventIdx++
	}
	for g.eventIdx < len(events) && events[g.eventIdx].Step == g.step {
		e := events[g.eventIdx]
		v := g.voices[e.Voice]
		if pv, ok := v.(audio.Pitched); ok {
			pv.SetFreq(e.Freq)
		}
		v.Trigger()
		g.eventIdx++
	}
}

// effects sends a copy of the dry mix through the delay, adds the wet
// return, then limits the sum in place.
func (g *Generator) effects(l, r []float32, n int) {
	if n == 0 {
		return
	}
	if cap(g.wetL) < n {
		g.wetL = make([]float32, n)
		g.wetR = make([]float32, n)
	}
	wl, wr := g.wetL[:n], g.wetR[:n]
	copy(wl, l[:n])
	copy(wr, r[:n])
	g.delay.Process(wl, wr, n, float32(g.params.Feedback))

	ret := float32(g.delayReturn())
	for i := 0; i < n; i++ {
		l[i] += wl[i] * ret
		r[i] += wr[i] * ret
	}
	g.limiter.Process(l, r, n)
}

func (g *Generator) delayReturn() float64 {
	if g.cfg.DelayReturn < 0 {
		return g.params.Feedback
	}
	return g.cfg.DelayReturn
}

// State returns the lifecycle state.
func (g *Generator) State() State { return g.state }

// Params returns the derived musical parameters. Valid after Init.
func (g *Generator) Params() beat.Params { return g.params }

// Schedule returns the derived event list. Valid after Init.
func (g *Generator) Schedule() beat.Schedule { return g.schedule }

// Frame returns how many frames have been rendered.
func (g *Generator) Frame() int { return g.frame }

// TotalFrames returns the nominal segment length.
func (g *Generator) TotalFrames() int { return g.params.TotalFrames }
