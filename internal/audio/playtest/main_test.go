package main

import (
	"testing"

	"github.com/ingyamilmolinar/seedloop/internal/audio"
)

func TestHitLengths(t *testing.T) {
	const sr = 8000
	cases := []struct {
		id  audio.ID
		max int
	}{
		{audio.KickID, sr},
		{audio.SnareID, sr / 10},
		{audio.HatID, sr / 20},
		{audio.BassID, sr / 2},
		{audio.LeadID, sr / 2},
	}
	for _, c := range cases {
		l, r := Hit(c.id, sr, 1, 0)
		if len(l) == 0 || len(l) > c.max || len(l) != len(r) {
			t.Fatalf("%s: %d/%d frames, want 1..%d", c.id, len(l), len(r), c.max)
		}
	}
}

func TestHitDeterministic(t *testing.T) {
	a, _ := Hit(audio.SnareID, 8000, 9, 0)
	b, _ := Hit(audio.SnareID, 8000, 9, 0)
	if len(a) != len(b) {
		t.Fatalf("lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}
