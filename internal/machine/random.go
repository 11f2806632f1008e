package machine

import "math/rand/v2"

// RandomSource provides the entropy for the CXNN instruction.
type RandomSource interface {
	Uint32() uint32
}

// NewRandom returns a deterministic random source for the given seed.
// Two sources created with the same seed return the same sequence.
func NewRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
