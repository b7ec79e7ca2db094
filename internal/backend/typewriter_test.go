package backend

import "testing"

type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}

// TestTypewriterTimingInvariant checks the "Typewriter timing"
// universal property.
func TestTypewriterTimingInvariant(t *testing.T) {
	text := "hello world"
	speed, variance := 40, 15
	seq := Typewriter(text, speed, variance, fixedRand{n: 7})

	if len(seq) != len([]rune(text)) {
		t.Fatalf("got %d pairs, want %d", len(seq), len([]rune(text)))
	}
	for _, ks := range seq {
		if ks.DelayMs < speed || ks.DelayMs > speed+variance {
			t.Fatalf("delay %d outside [%d, %d]", ks.DelayMs, speed, speed+variance)
		}
	}
}

func TestTypewriterEmptyText(t *testing.T) {
	seq := Typewriter("", 40, 15, fixedRand{n: 0})
	if len(seq) != 0 {
		t.Fatalf("expected empty sequence, got %d", len(seq))
	}
}

func TestTypewriterZeroVarianceIsConstant(t *testing.T) {
	seq := Typewriter("abc", 40, 0, fixedRand{n: 99})
	for _, ks := range seq {
		if ks.DelayMs != 40 {
			t.Fatalf("delay = %d, want 40", ks.DelayMs)
		}
	}
}
