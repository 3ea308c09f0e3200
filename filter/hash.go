package filter

import (
	"github.com/zeebo/xxh3"
)

// The index derivation is pinned to XXH3-64 with the two seeds below.
// Filters exchange raw bit vectors with no hash identifier in the byte
// stream, so every process touching the same bytes must derive indices
// with exactly this function or membership results silently diverge.
const (
	SeedH1 = 0
	SeedH2 = 32
)

// BaseHashes computes the two base hash values of data, each reduced
// modulo m. Requires m > 0.
func BaseHashes(data []byte, m uint64) (uint64, uint64) {
	h1 := xxh3.HashSeed(data, SeedH1) % m
	h2 := xxh3.HashSeed(data, SeedH2) % m
	return h1, h2
}

// DoubleHash derives k indices in [0, m) from a single pass over data
// using Kirsch-Mitzenmacher double hashing:
//
//	index_i = (h1 + i*h2) mod m
//
// index_0 is h1 itself.
func DoubleHash(data []byte, m uint64, k uint32) []uint64 {
	h1, h2 := BaseHashes(data, m)
	hashedIdx := make([]uint64, k)
	hashedIdx[0] = h1
	for i := uint64(1); i < uint64(k); i++ {
		hashedIdx[i] = (h1 + i*h2) % m
	}
	return hashedIdx
}
