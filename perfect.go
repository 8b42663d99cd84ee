// perfect.go -- Perfect[T]
//
// Ported from original_source/.../Perfect.java: minimized() defaults and
// the minimizedWithBMZ entry point.
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

import "math/rand"

// defaultMaxBMZAttempts and defaultC are the defaults Minimized() passes
// through to BMZ, matching Perfect.java's minimized().
const (
	defaultMaxBMZAttempts = 100
	defaultC              = 1.15
)

// Perfect is a verified perfect hash over a domain: hasher is injective
// over domain, but its range need not be exactly [0, n). It carries the
// RNG that minimizing it via BMZ will consume, threaded through from the
// Perfectionist that produced it (spec.md §5, "RNG as capability").
type Perfect[T comparable] struct {
	domain *PerfectDomain[T]
	hasher Hasher[T]
	rng    *rand.Rand
}

// Hasher returns the verified perfect hasher.
func (p *Perfect[T]) Hasher() Hasher[T] { return p.hasher }

// Domain returns the domain this hash was verified over.
func (p *Perfect[T]) Domain() *PerfectDomain[T] { return p.domain }

// Minimized runs BMZ with the default attempt budget (100) and slack
// ratio (1.15) to produce a minimal perfect hash over the same domain.
func (p *Perfect[T]) Minimized() (*Minimal[T], error) {
	return p.MinimizedWithBMZ(defaultMaxBMZAttempts, defaultC)
}

// MinimizedWithBMZ runs BMZ with an explicit attempt budget and slack
// ratio c (spec.md §4.4).
func (p *Perfect[T]) MinimizedWithBMZ(maxAttempts int, c float64) (*Minimal[T], error) {
	if maxAttempts < 1 {
		return nil, newInvalidArgument("maxAttempts", "must be >= 1, got %d", maxAttempts)
	}
	if c < 1.0 {
		return nil, newInvalidArgument("c", "must be >= 1.0, got %g", c)
	}

	n := p.domain.Size()
	if n == 0 {
		return &Minimal[T]{domain: p.domain, hasher: emptyHasher[T]{}}, nil
	}

	minHasher, err := buildBMZ(p.domain, p.hasher, maxAttempts, c, p.rng)
	if err != nil {
		return nil, err
	}
	return &Minimal[T]{domain: p.domain, hasher: minHasher}, nil
}

// emptyHasher is the trivially empty hash for the n == 0 edge case
// (spec.md §4.4, "Edge cases").
type emptyHasher[T comparable] struct{}

func (emptyHasher[T]) Size() HashSize           { return SpanHashSize(0) }
func (emptyHasher[T]) IntHash(T) int            { panic(newInvalidArgument("key", "empty domain has no keys")) }
func (emptyHasher[T]) BigHash(T) uint64         { panic(newInvalidArgument("key", "empty domain has no keys")) }
func (emptyHasher[T]) Seeded(uint64) Hasher[T]  { return emptyHasher[T]{} }
func (emptyHasher[T]) Sized(HashSize) Hasher[T] { return emptyHasher[T]{} }
