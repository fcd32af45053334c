package beat

import (
	"math"
	"sort"

	"github.com/ingyamilmolinar/seedloop/core/dsp"
	"github.com/ingyamilmolinar/seedloop/internal/audio"
)

// scheduleSalt keeps the rhythm stream independent of the parameter stream.
const scheduleSalt = 0x5c4ed01e5c4ed01e

// Event fires one voice at the start of a step. Freq is set for pitched
// voices only.
type Event struct {
	Step  int
	Voice audio.ID
	Freq  float64
}

// Pattern is the one-bar drum rhythm repeated over the segment.
type Pattern struct {
	KickPulses, SnarePulses, HatPulses int
	Rotation                           int
	Kick, Snare, Hat                   []bool
}

// Schedule is the full list of events for a segment, ordered by step and
// then voice.
type Schedule struct {
	Pattern Pattern
	Events  []Event
}

// NewSchedule builds the event list for seed. Draw order is fixed: kick,
// snare and hat pulse counts, rotation, then melodic degrees in step order.
func NewSchedule(seed uint64, p Params) Schedule {
	rng := dsp.Seed(seed ^ scheduleSalt)

	pat := Pattern{
		KickPulses:  rng.Range(1, 3),
		SnarePulses: rng.Range(0, 2),
		HatPulses:   rng.Range(2, 4),
	}
	pat.Rotation = rng.Intn(StepsPerBar)
	pat.Kick = Rotate(Euclid(pat.KickPulses, StepsPerBar), pat.Rotation)
	pat.Snare = Rotate(Euclid(pat.SnarePulses, StepsPerBar), pat.Rotation)
	pat.Hat = Rotate(Euclid(pat.HatPulses, StepsPerBar), pat.Rotation)

	var upper []int
	for _, d := range p.Scale.Degrees {
		if d > 0 {
			upper = append(upper, d)
		}
	}

	var events []Event
	leadDeg := 0
	for step := 0; step < p.Steps; step++ {
		bar := step % StepsPerBar
		if pat.Kick[bar] {
			events = append(events, Event{Step: step, Voice: audio.KickID})
		}
		if pat.Snare[bar] {
			events = append(events, Event{Step: step, Voice: audio.SnareID})
		}
		if pat.Hat[bar] {
			events = append(events, Event{Step: step, Voice: audio.HatID})
		}

		cycle := step % (2 * StepsPerBar)
		if cycle == 0 {
			deg := p.Scale.Degrees[rng.Intn(len(p.Scale.Degrees))]
			events = append(events, Event{Step: step, Voice: audio.BassID, Freq: p.RootFreq / 4 * semitones(deg)})
		}
		switch cycle {
		case 0, 16:
			events = append(events, Event{Step: step, Voice: audio.LeadID, Freq: p.RootFreq * 4})
		case 8:
			if len(upper) > 0 {
				leadDeg = upper[rng.Intn(len(upper))]
			}
			fallthrough
		case 24:
			events = append(events, Event{Step: step, Voice: audio.LeadID, Freq: p.RootFreq * semitones(leadDeg)})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Step != events[j].Step {
			return events[i].Step < events[j].Step
		}
		return events[i].Voice < events[j].Voice
	})
	return Schedule{Pattern: pat, Events: events}
}

// semitones returns the frequency ratio of n equal-tempered semitones.
func semitones(n int) float64 { return math.Pow(2, float64(n)/12) }

// Count returns how many events fire the given voice.
func (s Schedule) Count(id audio.ID) int {
	n := 0
	for _, e := range s.Events {
		if e.Voice == id {
			n++
		}
	}
	return n
}
