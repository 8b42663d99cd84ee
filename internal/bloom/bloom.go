// Package bloom provides the Bloom filter used exclusively by
// UniquenessChecker's first pass.
//
// Structurally grounded on the double-hashing technique (Kirsch and
// Mitzenmacher, 2006) as implemented by the Bloom filter collaborator in
// this pack's corpus: two base hashes derive k bit positions via
// pos = (h1 + i*h2) mod m, avoiding k independent hash functions. The
// sizing formula, however, is the uniqueness checker's own - fixed
// density for a given average item size B, not a target false-positive
// rate - so NewSized takes n and B directly rather than n and fp.
package bloom

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

const bitsPerWord = 64

// Filter is a fixed-size Bloom filter. It carries no lock: this package's
// sole caller, UniquenessChecker, is itself single-threaded by contract.
type Filter struct {
	bits []uint64
	m    uint64
	k    uint64
}

// NewSized returns a Filter sized for n expected items of average size B
// bytes, using the formula
//
//	m = max(256, round(n * ln(8*B*ln(2)^2) / ln(2)))
//	k = max(1, round(ln(2) * m / n))
//
// matching the uniqueness checker's sizing rule. n must be positive.
func NewSized(n uint64, b float64) *Filter {
	m := uint64(math.Round(float64(n) * math.Log(8*b*math.Ln2*math.Ln2) / math.Ln2))
	if m < 256 {
		m = 256
	}

	k := uint64(math.Round(math.Ln2 * float64(m) / float64(n)))
	if k < 1 {
		k = 1
	}

	words := (m + bitsPerWord - 1) / bitsPerWord
	return &Filter{
		bits: make([]uint64, words),
		m:    m,
		k:    k,
	}
}

// BitCount returns the size of the bit array in bits.
func (f *Filter) BitCount() uint64 { return f.m }

// HashCount returns the number of hash functions (probe positions) used.
func (f *Filter) HashCount() uint64 { return f.k }

// Add inserts data into the filter and reports whether every one of its k
// positions was already set - i.e. whether data was possibly already
// present. This is the exact primitive UniquenessChecker's pass 1 needs:
// "insert into Bloom filter; if the filter indicates already present,
// insert into the candidate set."
func (f *Filter) Add(data []byte) bool {
	h1, h2 := hashKernel(data)

	present := true
	for i := uint64(0); i < f.k; i++ {
		pos := (h1 + i*h2) % f.m
		word, mask := pos/bitsPerWord, uint64(1)<<(pos%bitsPerWord)
		if f.bits[word]&mask == 0 {
			present = false
			f.bits[word] |= mask
		}
	}
	return present
}

// Test reports whether data is possibly in the filter.
func (f *Filter) Test(data []byte) bool {
	h1, h2 := hashKernel(data)

	for i := uint64(0); i < f.k; i++ {
		pos := (h1 + i*h2) % f.m
		word, mask := pos/bitsPerWord, uint64(1)<<(pos%bitsPerWord)
		if f.bits[word]&mask == 0 {
			return false
		}
	}
	return true
}

// hashKernel derives two independent 64-bit hashes from data via FNV-128a,
// splitting the 128-bit digest into its two halves and forcing the second
// half odd so its step through the bit array is never zero (and is coprime
// with m whenever m is a power of two).
func hashKernel(data []byte) (h1, h2 uint64) {
	h := fnv.New128a()
	_, _ = h.Write(data)
	sum := h.Sum(nil)

	h1 = binary.BigEndian.Uint64(sum[:8])
	h2 = binary.BigEndian.Uint64(sum[8:]) | 1
	return h1, h2
}
