package audio

import "strings"

// Voice generates PCM samples in the range [-1,1]. Process adds into the
// given buffers, never overwrites, so any number of voices can share one mix.
type Voice interface {
	// Trigger restarts the voice from the beginning of its envelope.
	Trigger()
	// Process renders up to n samples into l and r, stopping early once the
	// voice has played its full length.
	Process(l, r []float32, n int)
	// Active reports whether the voice still has samples to render.
	Active() bool
}

// Pitched voices take their frequency before Trigger.
type Pitched interface {
	Voice
	SetFreq(hz float64)
}

// ID names one of the built-in voices.
type ID int

const (
	KickID ID = iota
	SnareID
	HatID
	BassID
	LeadID
	NumVoices
)

var idNames = [NumVoices]string{"kick", "snare", "hat", "bass", "lead"}

func (id ID) String() string {
	if id < 0 || id >= NumVoices {
		return "unknown"
	}
	return idNames[id]
}

// ParseID maps a voice name to its ID. "hihat" is accepted for the hat.
func ParseID(s string) (ID, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "hihat" {
		return HatID, true
	}
	for i, name := range idNames {
		if name == s {
			return ID(i), true
		}
	}
	return 0, false
}

// Instrument constructs a voice for a sample rate and noise seed.
type Instrument func(sampleRate float64, seed uint64) Voice

// defaultNoteSec is the length used for pitched voices built by NewVoice.
const defaultNoteSec = 0.5

var instruments = [NumVoices]Instrument{
	KickID:  func(sr float64, _ uint64) Voice { return NewKick(sr) },
	SnareID: func(sr float64, seed uint64) Voice { return NewSnare(sr, seed) },
	HatID:   func(sr float64, seed uint64) Voice { return NewHat(sr, seed) },
	BassID: func(sr float64, _ uint64) Voice {
		b := NewBass(sr, BassProfiles[0], defaultNoteSec)
		b.SetFreq(55)
		return b
	},
	LeadID: func(sr float64, _ uint64) Voice {
		l := NewLead(sr, defaultNoteSec)
		l.SetFreq(440)
		return l
	},
}

// NewVoice builds the voice named by id, or nil for an unknown id.
func NewVoice(id ID, sampleRate float64, seed uint64) Voice {
	if id < 0 || id >= NumVoices {
		return nil
	}
	return instruments[id](sampleRate, seed)
}

// span tracks the active window shared by every voice: pos counts up to
// length, and pos == length means silent.
type span struct {
	sr     float64
	pos    int
	length int
}

func (s *span) start(sec float64) {
	s.pos = 0
	s.length = int(sec * s.sr)
}

func (s *span) Active() bool { return s.pos < s.length }

// elapsed returns the time in seconds of the current sample.
func (s *span) elapsed() float64 { return float64(s.pos) / s.sr }

// limit bounds n by both buffer lengths.
func limit(l, r []float32, n int) int {
	if n > len(l) {
		n = len(l)
	}
	if n > len(r) {
		n = len(r)
	}
	return n
}
