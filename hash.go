package seqdb

import "github.com/cespare/xxhash/v2"

// HashFunc maps a sequence to a bucket hash. It must be pure and
// deterministic; the store reduces the result modulo the table capacity.
type HashFunc func(sequence string) uint64

// DefaultHash is the 64-bit xxHash of the sequence.
func DefaultHash(sequence string) uint64 {
	return xxhash.Sum64String(sequence)
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNV1a computes a 32-bit FNV-1a hash of the sequence.
func FNV1a(sequence string) uint64 {
	hash := uint32(offset32)
	for i := 0; i < len(sequence); i++ {
		hash ^= uint32(sequence[i])
		hash *= prime32
	}
	return uint64(hash)
}
