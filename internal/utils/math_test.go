package utils

import (
	"math"
	"testing"
)

func TestDBRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, -1, 0, 3, 12} {
		got := LinearToDB(DBToLinear(db))
		if math.Abs(got-db) > 1e-9 {
			t.Fatalf("round trip %v dB -> %v", db, got)
		}
	}
	if v := DBToLinear(-6); math.Abs(v-0.501187) > 1e-5 {
		t.Fatalf("DBToLinear(-6) = %v", v)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatalf("LinearToDB(0) should be -Inf")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float64 }{{-2, -1}, {0.5, 0.5}, {3, 1}}
	for _, c := range cases {
		if got := Clamp(c.v, -1, 1); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.v, got, c.want)
		}
	}
	if MinInt(4, 2) != 2 || MinInt(-1, 5) != -1 {
		t.Fatalf("integer helpers broken")
	}
}
