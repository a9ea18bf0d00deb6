// Package shuffle produces uniformly random permutations with Fisher-Yates.
package shuffle

import (
	"math/rand"
	"time"
)

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a random source. A zero seed seeds from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle returns a shuffled copy of in. The input slice is never modified.
func Shuffle[T any](src Source, in []T) []T {
	shuffled := make([]T, len(in))
	copy(shuffled, in)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
