// Package effects produces the cosmetic animations shown around the letters.
// Nothing here reads or writes session progress.
package effects

import (
	"math/rand"
	"time"
)

// New returns a random source seeded with the current time.
func New() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSeed returns a deterministic random source.
func NewWithSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func pick[T any](rnd *rand.Rand, values []T) T {
	return values[rnd.Intn(len(values))]
}
