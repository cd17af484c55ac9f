// Package rng provides an injectable random source so roll outcomes are
// reproducible in tests while production stays non-deterministic.
package rng

import (
	"math/rand/v2"
)

//go:generate mockgen -destination=mock/mock.go -package=rngmock github.com/genroll/roulette-api/internal/pkg/rng Source

// Source abstracts random number generation
type Source interface {
	// Intn returns a random int in [0, n). n must be > 0.
	Intn(n int) int
}

type chaCha struct{}

// New returns a non-deterministic source backed by the runtime's
// cryptographically seeded generator.
func New() Source {
	return chaCha{}
}

func (chaCha) Intn(n int) int {
	return rand.IntN(n)
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a reproducible source for tests and replays
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seeded) Intn(n int) int {
	return s.r.IntN(n)
}
