package app

import (
	"math/rand/v2"
	"sync"

	"github.com/agbru/mpint/internal/mpint"
)

// seededSource is a deterministic randomness source for reproducible runs.
// A mutex guards the PCG state because generation workers share one source;
// the kernel itself imposes no synchronization on Source implementations.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// newSeededSource returns a Source producing the same word stream for the
// same seed. Not cryptographically secure; selected only via -seed.
func newSeededSource(seed uint64) mpint.Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Word() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64(), nil
}
