package exercise

import (
	"math/rand/v2"

	"github.com/abhisek/grammarjourney/internal/catalog"
)

// Shuffler permutes a word slice in place.
type Shuffler func([]catalog.Word)

// RandomShuffler returns a Fisher-Yates shuffler backed by the global
// random source.
func RandomShuffler() Shuffler {
	return func(words []catalog.Word) {
		rand.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
	}
}

// SeededShuffler returns a deterministic shuffler, for tests and replays.
func SeededShuffler(seed uint64) Shuffler {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(words []catalog.Word) {
		r.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
	}
}

// inCanonicalOrder reports whether words are sorted by position.
func inCanonicalOrder(words []catalog.Word) bool {
	for i, w := range words {
		if w.Position != i+1 {
			return false
		}
	}
	return true
}

// shuffled returns a permutation of words that is never the solved order
// when there are at least two words.
func shuffled(words []catalog.Word, shuffle Shuffler) []catalog.Word {
	out := make([]catalog.Word, len(words))
	copy(out, words)
	shuffle(out)

	if len(out) > 1 && inCanonicalOrder(out) {
		out = append(out[1:], out[0])
	}
	return out
}
