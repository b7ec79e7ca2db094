package backend

import "math/rand"

// Keystroke is one step of a typewriter sequence: the AppleScript to run
// and how long to wait after running it.
type Keystroke struct {
	Script  string
	DelayMs int
}

// RandSource is the subset of math/rand's API the typewriter needs,
// satisfied by *rand.Rand. Tests inject a seeded source for deterministic
// delays.
type RandSource interface {
	Intn(n int) int
}

// Typewriter returns one Keystroke per rune of text. Each delay is drawn
// uniformly from [speedMs, speedMs+varianceMs], satisfying the
// "Typewriter timing" invariant. varianceMs <= 0 yields a constant delay.
func Typewriter(text string, speedMs, varianceMs int, rnd RandSource) []Keystroke {
	runes := []rune(text)
	out := make([]Keystroke, 0, len(runes))
	for _, c := range runes {
		delay := speedMs
		if varianceMs > 0 {
			delay += rnd.Intn(varianceMs + 1)
		}
		out = append(out, Keystroke{
			Script:  TypeCharScript(c),
			DelayMs: delay,
		})
	}
	return out
}

// DefaultRand returns a new math/rand generator, seeded from the
// package-level source, for production use.
func DefaultRand() RandSource {
	return rand.New(rand.NewSource(rand.Int63()))
}
