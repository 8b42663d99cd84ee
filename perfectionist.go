// perfectionist.go -- Perfectionist[T]
//
// Ported from original_source/.../Perfectionist.java: the same
// seed-loop-with-injectivity-grace-window search.
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

import "math/rand"

// Perfectionist searches for a perfect hash over a PerfectDomain via a
// bounded, randomized seed search (spec.md §4.3).
type Perfectionist[T comparable] struct {
	domain          *PerfectDomain[T]
	maxSeedAttempts int
	rng             *rand.Rand
}

// AssumedPerfect wraps h as a Perfect without verifying it - the caller
// is trusted to already know h is injective over the domain.
func (p *Perfectionist[T]) AssumedPerfect(h Hasher[T]) *Perfect[T] {
	return &Perfect[T]{domain: p.domain, hasher: h, rng: p.rng}
}

// MaybePerfect verifies perfection using an unseeded object hasher at its
// full 32-bit range, matching Perfectionist.java's maybePerfect(), which
// calls Hashing.objectHasher() unsized. A Perfect hash need only be
// injective - its range is not required to be [0, n) - so this drives
// IsPerfect's big-hash path (domain.go's isPerfectByBigHash) rather than
// the compact bitset path, which would be near-certain to collide for any
// n close to the declared range.
func (p *Perfectionist[T]) MaybePerfect() (*Perfect[T], bool) {
	h := NewObjectHasher[T](BitHashSize(32))
	return p.MaybePerfectWith(h)
}

// MaybePerfectWith verifies perfection of the supplied hasher over the
// domain.
func (p *Perfectionist[T]) MaybePerfectWith(h Hasher[T]) (*Perfect[T], bool) {
	if p.domain.IsPerfect(h) {
		return &Perfect[T]{domain: p.domain, hasher: h, rng: p.rng}, true
	}
	return nil, false
}

// Perfect runs the randomized search described in spec.md §4.3 using
// Murmur3Family, raising PerfectionFailure on exhaustion.
func (p *Perfectionist[T]) Perfect(ser Serializer[T]) (*Perfect[T], error) {
	return p.PerfectWith(ser, Murmur3Family)
}

// PerfectWith runs the randomized search using the named hash family. The
// search hasher is sized to its full 32-bit range, matching
// Perfectionist.java's use of Hashing.murmur3Int() (unsized): Perfect only
// requires injectivity, not a range of exactly n, and searching at full
// range is what makes IsPerfect's big-hash path succeed on the first or
// second attempt instead of requiring astronomically many seeds. BMZ, not
// this search, is what later narrows the range to [0, n).
func (p *Perfectionist[T]) PerfectWith(ser Serializer[T], fam HashFamily) (*Perfect[T], error) {
	size := BitHashSize(32)

	for i := 0; i < p.maxSeedAttempts; i++ {
		var h Hasher[T]
		if i == 0 {
			h = newSerializerHasher(fam, ser, 0, size)
		} else {
			seed := p.rng.Uint64()
			h = newSerializerHasher(fam, ser, seed, size)
		}

		if p.domain.IsPerfect(h) {
			return &Perfect[T]{domain: p.domain, hasher: h, rng: p.rng}, nil
		}

		if i == 1 && !p.domain.IsInjective(ser) {
			return nil, newPerfectionFailure("serializer not injective")
		}
	}

	return nil, newPerfectionFailure("unable to find hash function after %d attempts", p.maxSeedAttempts)
}

// minimalBitSize returns the smallest power-of-two HashSize that can hold
// n items, with a floor of 1 bit so an empty or singleton domain still
// gets a well-formed range.
func minimalBitSize(n int) HashSize {
	bits := 1
	for (uint64(1) << uint(bits)) < uint64(n) {
		bits++
	}
	return BitHashSize(bits)
}
