package ddm

import "math/rand"

// NoiseSource yields standard normal draws for the per-step noise term.
// Injecting the source keeps trials reproducible and lets concurrent
// trials use stream-separated generators.
type NoiseSource interface {
	Normal() float64
}

type gaussianNoise struct {
	rng *rand.Rand
}

// NewGaussianNoise returns a seeded N(0,1) source backed by math/rand.
func NewGaussianNoise(seed int64) NoiseSource {
	return &gaussianNoise{rng: rand.New(rand.NewSource(seed))}
}

func (g *gaussianNoise) Normal() float64 {
	return g.rng.NormFloat64()
}

// SequenceNoise replays a fixed list of draws, cycling when exhausted.
// It backs deterministic runs and tests.
type SequenceNoise struct {
	Draws []float64
	next  int
}

func (s *SequenceNoise) Normal() float64 {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[s.next%len(s.Draws)]
	s.next++
	return v
}
