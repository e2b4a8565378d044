// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so barrier layouts can be reproduced from a
// seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator for seed. A zero seed uses the current
// time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed in use, so a random layout can be reported and
// replayed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
