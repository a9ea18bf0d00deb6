package testutil

import (
	"math/rand"
	"strconv"
)

// Rand returns a deterministic random source for tests.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// IdentitySource always draws the top of the range, which makes
// Fisher-Yates leave every slice in its original order.
type IdentitySource struct{}

// Intn returns n-1.
func (IdentitySource) Intn(n int) int {
	return n - 1
}

// ScriptedSource replays fixed draws, then behaves like IdentitySource.
type ScriptedSource struct {
	Draws []int
}

// Intn returns the next scripted draw clamped to [0, n).
func (s *ScriptedSource) Intn(n int) int {
	if len(s.Draws) == 0 {
		return n - 1
	}
	v := s.Draws[0]
	s.Draws = s.Draws[1:]
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// SequenceIDs returns an id generator yielding "session-1", "session-2", ...
func SequenceIDs() func() string {
	next := 0
	return func() string {
		next++
		return "session-" + strconv.Itoa(next)
	}
}
