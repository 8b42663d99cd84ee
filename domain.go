// domain.go -- PerfectDomain[T]
//
// Ported from original_source/.../PerfectDomain.java: same isPerfect
// policy (dense bitset for small ranges, big-hash + UniquenessChecker
// otherwise) and same isInjective check over serialized bytes. The stray
// debug println noted in spec.md §9 is intentionally not reproduced.
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

import (
	"math/rand"
)

// compactBitCutoff is the largest declared bit width for which IsPerfect
// allocates a dense bitset directly, rather than falling back to the
// Bloom-assisted uniqueness path (spec.md §4.2).
const compactBitCutoff = 16

// defaultMaxSeedAttempts is the attempt budget UsingDefaults hands to a
// Perfectionist.
const defaultMaxSeedAttempts = 100

// PerfectDomain holds a finite, twice-enumerable collection of keys and
// verifies candidate hash functions over it.
type PerfectDomain[T comparable] struct {
	values []T
}

// DomainOver returns a PerfectDomain over the distinct order of values as
// given; duplicates in values are not deduplicated - callers who need a
// set semantics should dedupe before calling.
func DomainOver[T comparable](values []T) *PerfectDomain[T] {
	v := make([]T, len(values))
	copy(v, values)
	return &PerfectDomain[T]{values: v}
}

// DomainOverSeq materializes seq into a PerfectDomain. seq is consumed
// exactly once by this call; PerfectDomain itself is re-enumerable any
// number of times afterwards.
func DomainOverSeq[T comparable](seq func(yield func(T) bool)) *PerfectDomain[T] {
	var v []T
	seq(func(t T) bool {
		v = append(v, t)
		return true
	})
	return &PerfectDomain[T]{values: v}
}

// Values returns the underlying slice, not copied. Callers must not
// mutate it.
func (d *PerfectDomain[T]) Values() []T { return d.values }

// Size returns n, the number of keys in the domain.
func (d *PerfectDomain[T]) Size() int { return len(d.values) }

// IsPerfect reports whether h is injective over the domain.
func (d *PerfectDomain[T]) IsPerfect(h Hasher[T]) bool {
	size := h.Size()
	if size.Bits > 0 && size.Bits <= compactBitCutoff {
		return d.isPerfectCompact(h, size)
	}
	return d.isPerfectByBigHash(h)
}

func (d *PerfectDomain[T]) isPerfectCompact(h Hasher[T], size HashSize) bool {
	seen := newBitset(size.Span)
	for _, v := range d.values {
		j := uint64(h.IntHash(v))
		if seen.GetThenSet(j) {
			return false
		}
	}
	return true
}

func (d *PerfectDomain[T]) isPerfectByBigHash(h Hasher[T]) bool {
	// ⌈(rangeBits+31)/32⌉·4 + 11 bytes per hash, as spec.md §4.2 gives it.
	// A big hash in this repo is always a 64-bit word, so rangeBits caps
	// at 64 regardless of h's own declared range; use that as the byte
	// estimate's basis. Ceiling-of-division via the (a+b-1)/b idiom, since
	// Go's integer division floors.
	const rangeBits = 64
	words := (rangeBits + 31 + 31) / 32
	avgBytes := float64(words*4 + 11)

	checker := NewUniquenessChecker[T](func(v T) []byte {
		var buf [8]byte
		big := h.BigHash(v)
		buf[0] = byte(big >> 56)
		buf[1] = byte(big >> 48)
		buf[2] = byte(big >> 40)
		buf[3] = byte(big >> 32)
		buf[4] = byte(big >> 24)
		buf[5] = byte(big >> 16)
		buf[6] = byte(big >> 8)
		buf[7] = byte(big)
		return buf[:]
	})
	return checker.AllDistinctSlice(d.values, avgBytes)
}

// IsInjective reports whether ser's byte output is distinct across the
// domain, using an average-size estimate of 50 bytes per item (spec.md
// §4.2).
func (d *PerfectDomain[T]) IsInjective(ser Serializer[T]) bool {
	checker := NewUniquenessChecker[T](func(v T) []byte {
		return ser.Serialize(v)
	})
	return checker.AllDistinctSlice(d.values, 50)
}

// Using returns a Perfectionist bound to this domain with the given
// attempt budget and RNG.
func (d *PerfectDomain[T]) Using(maxSeedAttempts int, rng *rand.Rand) *Perfectionist[T] {
	if maxSeedAttempts < 1 {
		panic(newInvalidArgument("maxSeedAttempts", "must be >= 1, got %d", maxSeedAttempts))
	}
	if rng == nil {
		panic(newInvalidArgument("rng", "must not be nil"))
	}
	return &Perfectionist[T]{domain: d, maxSeedAttempts: maxSeedAttempts, rng: rng}
}

// UsingDefaults returns a Perfectionist with a default attempt budget
// (100) and a non-reproducible, crypto/rand-seeded RNG.
func (d *PerfectDomain[T]) UsingDefaults() *Perfectionist[T] {
	return d.Using(defaultMaxSeedAttempts, defaultRand())
}
