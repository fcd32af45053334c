package beat

import (
	"reflect"
	"testing"

	"github.com/ingyamilmolinar/seedloop/internal/audio"
)

func TestEuclid(t *testing.T) {
	cases := []struct {
		pulses, steps int
		want          string
	}{
		{0, 8, "........"},
		{1, 4, "...x"},
		{3, 8, "..x..x.x"},
		{4, 16, "...x...x...x...x"},
		{5, 5, "xxxxx"},
		{9, 4, "xxxx"},
		{-1, 3, "..."},
	}
	for _, c := range cases {
		got := ""
		for _, on := range Euclid(c.pulses, c.steps) {
			if on {
				got += "x"
			} else {
				got += "."
			}
		}
		if got != c.want {
			t.Fatalf("Euclid(%d,%d) = %s, want %s", c.pulses, c.steps, got, c.want)
		}
	}
	if Euclid(3, 0) != nil {
		t.Fatalf("Euclid with zero steps should be nil")
	}
}

func TestEuclidPulseCount(t *testing.T) {
	for steps := 1; steps <= 16; steps++ {
		for pulses := 0; pulses <= steps; pulses++ {
			n := 0
			for _, on := range Euclid(pulses, steps) {
				if on {
					n++
				}
			}
			if n != pulses {
				t.Fatalf("Euclid(%d,%d) has %d pulses", pulses, steps, n)
			}
		}
	}
}

func TestRotate(t *testing.T) {
	in := []bool{true, false, false, true}
	if got := Rotate(in, 1); !reflect.DeepEqual(got, []bool{false, false, true, true}) {
		t.Fatalf("Rotate(1) = %v", got)
	}
	if got := Rotate(in, -1); !reflect.DeepEqual(got, []bool{true, true, false, false}) {
		t.Fatalf("Rotate(-1) = %v", got)
	}
	if got := Rotate(in, 4); !reflect.DeepEqual(got, in) {
		t.Fatalf("Rotate(4) = %v", got)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 0x42, 0xCAFEBABE, ^uint64(0)} {
		a := Derive(seed, DefaultConfig())
		b := Derive(seed, DefaultConfig())
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("seed %#x derived different params", seed)
		}
	}
}

func TestDeriveRanges(t *testing.T) {
	cfg := DefaultConfig()
	bpms := map[int]bool{}
	for seed := uint64(0); seed < 500; seed++ {
		p := Derive(seed, cfg)
		if p.BPM < MinBPM || p.BPM > MaxBPM {
			t.Fatalf("seed %d: BPM %d out of range", seed, p.BPM)
		}
		bpms[p.BPM] = true
		found := false
		for _, f := range RootFreqs {
			if f == p.RootFreq {
				found = true
			}
		}
		if !found {
			t.Fatalf("seed %d: root %v not in table", seed, p.RootFreq)
		}
		if p.Steps != cfg.BarsPerSegment*StepsPerBar {
			t.Fatalf("seed %d: %d steps", seed, p.Steps)
		}
		if p.TotalFrames != p.Steps*p.StepSamples {
			t.Fatalf("seed %d: total frames %d != %d*%d", seed, p.TotalFrames, p.Steps, p.StepSamples)
		}
		if p.DelaySamples <= 0 || p.Feedback >= 1 {
			t.Fatalf("seed %d: delay %d samples feedback %v", seed, p.DelaySamples, p.Feedback)
		}
	}
	if len(bpms) < 20 {
		t.Fatalf("only %d distinct tempos over 500 seeds", len(bpms))
	}
}

func TestDeriveStepSamples(t *testing.T) {
	p := Derive(7, Config{SampleRate: 48000, BarsPerSegment: 2})
	want := int(60.0 / float64(p.BPM) / 4 * 48000)
	if p.StepSamples != want {
		t.Fatalf("step samples %d, want %d", p.StepSamples, want)
	}
	if p.DurationMs() != uint32(int64(p.TotalFrames)*1000/48000) {
		t.Fatalf("duration %d ms", p.DurationMs())
	}
	d := Derive(7, Config{})
	if d.SampleRate != 44100 || d.Steps != 4*StepsPerBar {
		t.Fatalf("zero config not defaulted: %+v", d)
	}
}

func TestScheduleDeterministic(t *testing.T) {
	p := Derive(0xCAFEBABE, DefaultConfig())
	a := NewSchedule(p.Seed, p)
	b := NewSchedule(p.Seed, p)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed gave different schedules")
	}
}

func TestScheduleOrderedAndInRange(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		p := Derive(seed, DefaultConfig())
		s := NewSchedule(seed, p)
		for i, e := range s.Events {
			if e.Step < 0 || e.Step >= p.Steps {
				t.Fatalf("seed %d: event %d at step %d", seed, i, e.Step)
			}
			if i > 0 {
				prev := s.Events[i-1]
				if prev.Step > e.Step || (prev.Step == e.Step && prev.Voice > e.Voice) {
					t.Fatalf("seed %d: events out of order at %d", seed, i)
				}
			}
			pitched := e.Voice == audio.BassID || e.Voice == audio.LeadID
			if pitched != (e.Freq > 0) {
				t.Fatalf("seed %d: event %+v has wrong frequency", seed, e)
			}
		}
	}
}

func TestSchedulePulseCounts(t *testing.T) {
	p := Derive(99, DefaultConfig())
	s := NewSchedule(99, p)
	bars := p.Steps / StepsPerBar
	if got := s.Count(audio.KickID); got != s.Pattern.KickPulses*bars {
		t.Fatalf("kick events %d, want %d", got, s.Pattern.KickPulses*bars)
	}
	if got := s.Count(audio.HatID); got != s.Pattern.HatPulses*bars {
		t.Fatalf("hat events %d, want %d", got, s.Pattern.HatPulses*bars)
	}
	if s.Pattern.KickPulses < 1 || s.Pattern.KickPulses > 3 ||
		s.Pattern.SnarePulses < 0 || s.Pattern.SnarePulses > 2 ||
		s.Pattern.HatPulses < 2 || s.Pattern.HatPulses > 4 {
		t.Fatalf("pulse counts out of range: %+v", s.Pattern)
	}
	// bass every two bars, lead four times every two bars
	if got := s.Count(audio.BassID); got != p.Steps/32 {
		t.Fatalf("bass events %d, want %d", got, p.Steps/32)
	}
	if got := s.Count(audio.LeadID); got != p.Steps/8 {
		t.Fatalf("lead events %d, want %d", got, p.Steps/8)
	}
}

func TestScheduleLeadPitches(t *testing.T) {
	p := Derive(3, DefaultConfig())
	s := NewSchedule(3, p)
	var leads []Event
	for _, e := range s.Events {
		if e.Voice == audio.LeadID {
			leads = append(leads, e)
		}
	}
	if leads[0].Freq != p.RootFreq*4 || leads[2].Freq != p.RootFreq*4 {
		t.Fatalf("downbeat leads should sit two octaves up: %+v", leads[:4])
	}
	if leads[1].Freq != leads[3].Freq {
		t.Fatalf("steps 8 and 24 should share a degree: %v vs %v", leads[1].Freq, leads[3].Freq)
	}
	if leads[1].Freq <= p.RootFreq {
		t.Fatalf("step 8 degree should be above the root, got %v", leads[1].Freq)
	}
}
