// hasher.go -- Hasher[T] collaborator and its two concrete families
//
// The library treats hashing as a collaborator (spec.md §2, item 1):
// callers may supply their own Hasher[T], but two concrete families
// ship with this package for the two paths spec.md names explicitly -
// an unseeded "trust the value's natural identity" hasher for
// MaybePerfect, and a seeded murmur3 family for Perfectionist's
// randomized search and for BMZ's internal h1/h2.
//
// (c) Sudhi Herle 2018 (teacher), adapted 2026
//
// License GPLv2

package perfect

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/opencoff/go-fasthash"
	"github.com/spaolacci/murmur3"
)

// HashSize describes the declared range of a Hasher: either a power-of-two
// bit width (Bits > 0, Span == 1<<Bits) or an arbitrary integer span with
// no associated bit width (Bits == 0). PerfectDomain.IsPerfect uses Bits
// to decide whether the dense-bitset path applies (spec.md §4.2).
type HashSize struct {
	Bits int
	Span uint64
}

// BitHashSize returns a HashSize whose range is exactly [0, 2^bits).
func BitHashSize(bits int) HashSize {
	return HashSize{Bits: bits, Span: uint64(1) << uint(bits)}
}

// SpanHashSize returns a HashSize whose range is exactly [0, span), with no
// associated power-of-two bit width.
func SpanHashSize(span uint64) HashSize {
	return HashSize{Span: span}
}

// Hasher maps a value of type T to an integer in its declared range. See
// spec.md §6 ("Hasher over T").
type Hasher[T comparable] interface {
	// Size reports the declared range of this hasher.
	Size() HashSize
	// IntHash returns a value in [0, Size().Span).
	IntHash(v T) int
	// BigHash returns a full-width digest, independent of Size - used by
	// the dense-bitset-too-large fallback path in PerfectDomain.IsPerfect.
	BigHash(v T) uint64
	// Seeded returns a hasher identical to this one but keyed by seed.
	Seeded(seed uint64) Hasher[T]
	// Sized returns a hasher identical to this one but with a new range.
	Sized(size HashSize) Hasher[T]
}

func reduce(h uint64, span uint64) int {
	if span == 0 {
		return 0
	}
	return int(h % span)
}

// objectHasher is the "trust the value's natural identity" family: it
// hashes T's comparable representation directly via hash/maphash, with no
// serializer involved. It backs Perfectionist.MaybePerfect's no-argument
// path.
type objectHasher[T comparable] struct {
	seed maphash.Seed
	size HashSize
}

// NewObjectHasher returns a Hasher[T] over T's natural comparable identity,
// with a freshly generated random maphash.Seed and the given declared
// range. Hash values are stable for the life of the hasher but differ
// between hashers and between runs.
func NewObjectHasher[T comparable](size HashSize) Hasher[T] {
	return &objectHasher[T]{seed: maphash.MakeSeed(), size: size}
}

func (h *objectHasher[T]) Size() HashSize { return h.size }

func (h *objectHasher[T]) BigHash(v T) uint64 {
	return maphash.Comparable(h.seed, v)
}

func (h *objectHasher[T]) IntHash(v T) int {
	return reduce(h.BigHash(v), h.size.Span)
}

func (h *objectHasher[T]) Seeded(seed uint64) Hasher[T] {
	// maphash.Seed has no public constructor from a uint64, so the
	// caller's seed can't become the maphash seed itself. Instead keep a
	// fresh maphash.Seed for the digest and carry seed as an explicit
	// salt, mixed into that digest via fasthash in BigHash below.
	return &seededObjectHasher[T]{seed: maphash.MakeSeed(), salt: seed, size: h.size}
}

func (h *objectHasher[T]) Sized(size HashSize) Hasher[T] {
	return &objectHasher[T]{seed: h.seed, size: size}
}

// seededObjectHasher adds an explicit 64-bit salt on top of objectHasher,
// since maphash.Seed itself cannot be constructed deterministically from a
// caller-supplied uint64.
type seededObjectHasher[T comparable] struct {
	seed maphash.Seed
	salt uint64
	size HashSize
}

func (h *seededObjectHasher[T]) Size() HashSize { return h.size }

func (h *seededObjectHasher[T]) BigHash(v T) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], maphash.Comparable(h.seed, v))
	return fasthash.Hash64(h.salt, buf[:])
}

func (h *seededObjectHasher[T]) IntHash(v T) int {
	return reduce(h.BigHash(v), h.size.Span)
}

func (h *seededObjectHasher[T]) Seeded(seed uint64) Hasher[T] {
	return &seededObjectHasher[T]{seed: h.seed, salt: seed, size: h.size}
}

func (h *seededObjectHasher[T]) Sized(size HashSize) Hasher[T] {
	return &seededObjectHasher[T]{seed: h.seed, salt: h.salt, size: size}
}

// HashFamily names a concrete seeded-hasher algorithm that can be built
// over any Serializer[T]. Perfectionist.PerfectWith accepts one so callers
// can pick a non-default family; this package currently ships exactly one.
type HashFamily int

const (
	// Murmur3Family builds a serializerHasher backed by
	// github.com/spaolacci/murmur3, the family spec.md §4.3/§4.4 names
	// as "a murmur3-style family keyed by 64-bit seeds".
	Murmur3Family HashFamily = iota
)

// serializerHasher is the murmur3-backed family used by Perfectionist's
// randomized search (spec.md §4.3) and by BMZ's internal h1/h2 (spec.md
// §4.4). It hashes the byte sequence a Serializer[T] produces, so any
// comparable T works so long as a Serializer[T] is supplied.
type serializerHasher[T comparable] struct {
	ser  Serializer[T]
	seed uint64
	size HashSize
}

// newSerializerHasher builds a Hasher[T] over ser using fam, keyed by seed
// and bounded to size. Attempt 0 of Perfectionist's search uses seed 0,
// which is murmur3's well-defined "unseeded" case.
func newSerializerHasher[T comparable](fam HashFamily, ser Serializer[T], seed uint64, size HashSize) Hasher[T] {
	switch fam {
	case Murmur3Family:
		return &serializerHasher[T]{ser: ser, seed: seed, size: size}
	default:
		return &serializerHasher[T]{ser: ser, seed: seed, size: size}
	}
}

func (h *serializerHasher[T]) Size() HashSize { return h.size }

func (h *serializerHasher[T]) BigHash(v T) uint64 {
	b := h.ser.Serialize(v)
	return murmur3.Sum64WithSeed(b, uint32(h.seed))
}

func (h *serializerHasher[T]) IntHash(v T) int {
	b := h.ser.Serialize(v)
	h32 := murmur3.Sum32WithSeed(b, uint32(h.seed))
	return reduce(uint64(h32), h.size.Span)
}

func (h *serializerHasher[T]) Seeded(seed uint64) Hasher[T] {
	return &serializerHasher[T]{ser: h.ser, seed: seed, size: h.size}
}

func (h *serializerHasher[T]) Sized(size HashSize) Hasher[T] {
	return &serializerHasher[T]{ser: h.ser, seed: h.seed, size: size}
}
