package audio

import "testing"

func TestDelayPingPong(t *testing.T) {
	d := NewDelay(4)
	const n = 12
	l := make([]float32, n)
	r := make([]float32, n)
	l[0] = 1
	d.Process(l, r, n, 0.5)

	for i := 0; i < 4; i++ {
		if l[i] != 0 || r[i] != 0 {
			t.Fatalf("frame %d = (%v, %v), want silence", i, l[i], r[i])
		}
	}
	if l[4] != 1 || r[4] != 0 {
		t.Fatalf("frame 4 = (%v, %v), want (1, 0)", l[4], r[4])
	}
	if l[8] != 0 || r[8] != 0.5 {
		t.Fatalf("frame 8 = (%v, %v), want (0, 0.5)", l[8], r[8])
	}
	for _, i := range []int{5, 6, 7, 9, 10, 11} {
		if l[i] != 0 || r[i] != 0 {
			t.Fatalf("frame %d = (%v, %v), want silence", i, l[i], r[i])
		}
	}
}

func TestDelaySplitCalls(t *testing.T) {
	input := func() ([]float32, []float32) {
		l := make([]float32, 50)
		r := make([]float32, 50)
		for i := range l {
			l[i] = float32(i%7) * 0.1
			r[i] = -float32(i%5) * 0.1
		}
		return l, r
	}
	a := NewDelay(9)
	la, ra := input()
	a.Process(la, ra, 50, 0.4)

	b := NewDelay(9)
	lb, rb := input()
	b.Process(lb[:13], rb[:13], 13, 0.4)
	b.Process(lb[13:], rb[13:], 37, 0.4)
	for i := range la {
		if la[i] != lb[i] || ra[i] != rb[i] {
			t.Fatalf("split processing differs at %d", i)
		}
	}
}

func TestDelayMinimumSize(t *testing.T) {
	d := NewDelay(0)
	if d.Size() != 1 {
		t.Fatalf("size = %d, want 1", d.Size())
	}
	l := []float32{1, 0}
	r := []float32{0, 0}
	d.Process(l, r, 2, 0)
	if l[0] != 0 || l[1] != 1 {
		t.Fatalf("one frame delay gave %v", l)
	}
}

func TestDelayReset(t *testing.T) {
	d := NewDelay(3)
	l := []float32{1, 1, 1}
	r := []float32{1, 1, 1}
	d.Process(l, r, 3, 0.5)
	d.Reset()
	l = make([]float32, 3)
	r = make([]float32, 3)
	d.Process(l, r, 3, 0.5)
	if energy(l)+energy(r) != 0 {
		t.Fatalf("reset left history behind: %v %v", l, r)
	}
}
