package mines

// Sequence is a deterministic pseudo-random stream of floats in [0, 1).
// It uses only 32-bit integer arithmetic with wraparound, so the same seed
// produces the same sequence on every platform and run. The engine consumes
// it exclusively during board generation; gameplay transitions never touch
// randomness.
type Sequence struct {
	seed  uint32
	state uint32
}

// NewSequence creates a sequence seeded with the low 32 bits of seed.
func NewSequence(seed int64) *Sequence {
	s := &Sequence{}
	s.Reset(seed)
	return s
}

// Reset rewinds the sequence to the start of the stream for the given seed.
func (s *Sequence) Reset(seed int64) {
	s.seed = uint32(seed)
	s.state = s.seed
}

// Next returns the next value in [0, 1).
func (s *Sequence) Next() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / (1 << 32)
}

// Intn returns a uniformly distributed integer in [0, n).
// n must be positive.
func (s *Sequence) Intn(n int) int {
	return int(s.Next() * float64(n))
}
