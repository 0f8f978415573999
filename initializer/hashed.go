package initializer

import "math"

// Hashed is a deterministic source: the n-th value only depends on the seed
// and n. Two networks built from Hashed sources with the same seed get the
// same weights on any platform. A Hashed must not be shared between
// goroutines.
type Hashed struct {
	seed uint32
	n    uint32
}

// NewHashed creates a Hashed source.
func NewHashed(seed uint32) *Hashed {
	return &Hashed{seed: seed}
}

// NextSignedUnit returns the next value in [-1, 1].
func (h *Hashed) NextSignedUnit() float64 {
	m := Hash(h.n, h.seed)
	h.n++
	return float64(m)/math.MaxUint32*2 - 1
}

// Hash mixes n with salt s into a well distributed 32-bit word.
func Hash(n, s uint32) uint32 {
	// salt in by subtraction
	m := n - s

	// xor shift with prime shifts
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	// salt in again by addition
	return m + s
}
