package engine

import (
	"math/rand"

	"github.com/vovakirdan/typestorm/internal/words"
)

// spawnInterval returns the delay until the next enemy spawn. Waves tighten
// as the score climbs, bottoming out at the base interval.
func spawnInterval(score int) float64 {
	extra := 12 - 0.2*float64(score)
	if extra < 0 {
		extra = 0
	}
	return 4 + extra
}

// pickWord selects a spawn word whose first letter differs from every
// letter in taken, keeping typing targets unambiguous. It draws a random
// length first and falls back over the remaining lengths in random order;
// when every candidate pool is exhausted it returns "" and the caller skips
// the spawn.
func pickWord(src *words.Source, taken map[rune]bool, rng *rand.Rand) string {
	span := words.MaxLength - words.MinLength + 1
	first := words.MinLength + rng.Intn(span)

	if w := pickWordOfLength(src, first, taken, rng); w != "" {
		return w
	}
	for _, off := range rng.Perm(span) {
		n := words.MinLength + off
		if n == first {
			continue
		}
		if w := pickWordOfLength(src, n, taken, rng); w != "" {
			return w
		}
	}
	return ""
}

func pickWordOfLength(src *words.Source, n int, taken map[rune]bool, rng *rand.Rand) string {
	pool := src.WordsOfLength(n)
	var open []string
	for _, w := range pool {
		if !taken[[]rune(w)[0]] {
			open = append(open, w)
		}
	}
	if len(open) == 0 {
		return ""
	}
	return open[rng.Intn(len(open))]
}
