// Package testutil provides deterministic record generators and hash
// functions for tests, benchmarks and examples.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/theflywheel/seqdb"
)

// Alphabet holds the nucleotide letters used for generated sequences.
const Alphabet = "ACGT"

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// IntRange returns a pseudo-random number in [lo,hi].
func (r *RNG) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Sequence returns a random nucleotide sequence of length n.
func (r *RNG) Sequence(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = Alphabet[r.rand.Intn(len(Alphabet))]
	}
	return string(b)
}

// Records returns n distinct records with sequences of length seqLen and
// locations drawn uniformly from lr.
func (r *RNG) Records(n, seqLen int, lr seqdb.LocationRange) []seqdb.Record {
	seen := make(map[seqdb.Record]struct{}, n)
	out := make([]seqdb.Record, 0, n)
	for len(out) < n {
		rec := lr.Record(r.Sequence(seqLen), r.IntRange(lr.Min, lr.Max))
		if _, dup := seen[rec]; dup {
			continue
		}
		seen[rec] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// IndexHash returns a hash that maps the i-th sequence to i. Sequences not
// in the list hash to len(sequences). Tables larger than the list place every
// listed sequence in its own home slot.
func IndexHash(sequences []string) seqdb.HashFunc {
	idx := make(map[string]uint64, len(sequences))
	for i, s := range sequences {
		idx[s] = uint64(i)
	}
	miss := uint64(len(sequences))
	return func(s string) uint64 {
		if h, ok := idx[s]; ok {
			return h
		}
		return miss
	}
}

// ConstantHash returns a hash that sends every sequence to the same bucket.
func ConstantHash(h uint64) seqdb.HashFunc {
	return func(string) uint64 { return h }
}
