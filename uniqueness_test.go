package perfect

import "testing"

func TestUniquenessCheckerDistinct(t *testing.T) {
	assert := newAsserter(t)

	u := NewUniquenessChecker[string](func(s string) []byte { return []byte(s) })
	ok := u.AllDistinctSlice(keyw, 12)
	assert(ok, "word list is known to be distinct, AllDistinctSlice should return true")
}

func TestUniquenessCheckerDuplicate(t *testing.T) {
	assert := newAsserter(t)

	withDup := append(append([]string(nil), keyw...), keyw[0])
	u := NewUniquenessChecker[string](func(s string) []byte { return []byte(s) })
	ok := u.AllDistinctSlice(withDup, 12)
	assert(!ok, "appending a repeated word must be detected as non-distinct")
}

func TestUniquenessCheckerEmpty(t *testing.T) {
	assert := newAsserter(t)

	u := NewUniquenessChecker[string](func(s string) []byte { return []byte(s) })
	ok := u.AllDistinctSlice(nil, 12)
	assert(ok, "empty input is trivially distinct")
}

// TestUniquenessCheckerLargePath exercises the Bloom + candidate-set path
// with a large near-unique int domain (spec.md §8, scenario 6).
func TestUniquenessCheckerLargePath(t *testing.T) {
	assert := newAsserter(t)

	const n = 1_000_000
	items := make([]int64, n)
	for i := range items {
		items[i] = int64(i)
	}

	key := func(v int64) []byte {
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		return buf[:]
	}

	u := NewUniquenessChecker[int64](key)
	assert(u.AllDistinctSlice(items, 8), "distinct large int domain should check out")

	// Mutate the last element so it shares low bits (and, deterministically
	// for this test, the full value) with an earlier element.
	items[n-1] = items[0]
	ok := u.AllDistinctSlice(items, 8)
	assert(!ok, "mutating the last element to duplicate another must be detected")
}
