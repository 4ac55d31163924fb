package seqs_test

// scriptedRand replays fixed values, reduced modulo n.
type scriptedRand struct {
	vals []uint64
	i    int
}

func (s *scriptedRand) Uint64() uint64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func (s *scriptedRand) Uint64N(n uint64) uint64 {
	return s.Uint64() % n
}
