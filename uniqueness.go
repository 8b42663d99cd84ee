// uniqueness.go -- UniquenessChecker[T]
//
// Ported from original_source/.../UniquenessChecker.java: same two-pass
// Bloom-filter-plus-candidate-set-plus-witness-set algorithm, same sizing
// formula, wired to this repo's internal/bloom instead of a hand-rolled
// bit array.
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

import "github.com/tomgibara/perfect/internal/bloom"

// UniquenessChecker reports whether a twice-traversable sequence of items
// yields only distinct items under a caller-supplied key function, in
// memory proportional to the count of candidate duplicates rather than to
// n (spec.md §4.1).
type UniquenessChecker[T any] struct {
	key func(T) []byte
}

// NewUniquenessChecker returns a checker that reduces each item to a
// byte-comparable key via key. The Bloom filter is sized per call of
// AllDistinct, from its item count and average item size.
func NewUniquenessChecker[T any](key func(T) []byte) *UniquenessChecker[T] {
	return &UniquenessChecker[T]{key: key}
}

// AllDistinct reports whether every item two successive calls to seq
// produce is distinct. seq must yield the same sequence, in the same
// order, each time it is invoked - the checker traverses it exactly
// twice.
func (u *UniquenessChecker[T]) AllDistinct(n uint64, avgItemBytes float64, seq func(yield func(T) bool)) bool {
	if n == 0 {
		return true
	}

	filter := bloom.NewSized(n, avgItemBytes)
	candidates := make(map[string]struct{})

	// Pass 1: insert into the Bloom filter; a possibly-already-present
	// hit goes into the candidate set. A candidate re-inserted and found
	// possibly-already-present a second time is a definite duplicate.
	distinct := true
	seq(func(item T) bool {
		k := string(u.key(item))
		if filter.Add([]byte(k)) {
			if _, dup := candidates[k]; dup {
				distinct = false
				return false
			}
			candidates[k] = struct{}{}
		}
		return true
	})
	if !distinct {
		return false
	}
	if len(candidates) == 0 {
		return true
	}

	// Pass 2: only items that landed in the candidate set are checked
	// against a witness set; a re-insertion there is a definite
	// duplicate.
	witnesses := make(map[string]struct{}, len(candidates))
	seq(func(item T) bool {
		k := string(u.key(item))
		if _, isCandidate := candidates[k]; !isCandidate {
			return true
		}
		if _, dup := witnesses[k]; dup {
			distinct = false
			return false
		}
		witnesses[k] = struct{}{}
		return true
	})
	return distinct
}

// AllDistinctSlice is a convenience wrapper over a fully materialized
// slice, used by PerfectDomain's big-hash and injectivity paths.
func (u *UniquenessChecker[T]) AllDistinctSlice(items []T, avgItemBytes float64) bool {
	return u.AllDistinct(uint64(len(items)), avgItemBytes, func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	})
}
