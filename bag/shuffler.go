package bag

import "math/rand/v2"

// Shuffler permutes n elements in place through swap.
// Implementations must make every permutation equally likely.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type pcgShuffler struct {
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler backed by a randomly seeded PCG source.
func NewShuffler() Shuffler {
	return NewSeededShuffler(rand.Uint64(), rand.Uint64())
}

// NewSeededShuffler returns a deterministic Shuffler. Two shufflers built from
// the same seed but different streams produce unrelated permutations.
func NewSeededShuffler(seed, stream uint64) Shuffler {
	return &pcgShuffler{rnd: rand.New(rand.NewPCG(seed, stream))}
}

// Shuffle runs a Fisher-Yates shuffle.
func (s *pcgShuffler) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	s.rnd.Shuffle(n, swap)
}
