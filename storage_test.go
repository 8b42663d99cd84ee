package perfect

import "testing"

func TestStoreGenericNullSemantics(t *testing.T) {
	assert := newAsserter(t)

	s := GenericStorage[int]().NewStore(5)
	assert(s.IsNull(0), "fresh generic store slot should be null")
	assert(s.Count() == 0, "fresh generic store should have count 0, got %d", s.Count())

	s.Set(0, 42)
	assert(!s.IsNull(0), "slot should be present after Set")
	assert(s.Get(0) == 42, "expected 42, got %d", s.Get(0))
	assert(s.Count() == 1, "count should be 1 after one Set, got %d", s.Count())

	s.Remove(0)
	assert(s.IsNull(0), "slot should be null after Remove")
	assert(s.Count() == 0, "count should be 0 after Remove, got %d", s.Count())
}

func TestStoreDefaultValueSemantics(t *testing.T) {
	assert := newAsserter(t)

	s := DefaultValueStorage(0).NewStore(5)
	assert(!s.IsNull(0), "default-value store slot should always be present")
	assert(s.Count() == 5, "default-value store count should equal size, got %d", s.Count())
	assert(s.Get(0) == 0, "fresh slot should hold the default, got %d", s.Get(0))

	s.Set(0, 9)
	assert(s.Get(0) == 9, "expected 9, got %d", s.Get(0))

	s.Remove(0)
	assert(!s.IsNull(0), "default-value store slot stays present after Remove")
	assert(s.Get(0) == 0, "slot should be reset to the default, got %d", s.Get(0))
	assert(s.Count() == 5, "count should stay at size after Remove, got %d", s.Count())
}

func TestStoreTransformedIterator(t *testing.T) {
	assert := newAsserter(t)

	s := GenericStorage[string]().NewStore(4)
	s.Set(0, "a")
	s.Set(3, "d")

	got := TransformedIterator(s, func(i int, v string) string { return v })
	assert(len(got) == 2, "expected 2 present entries, got %d", len(got))
	assert(got[0] == "a" && got[1] == "d", "expected [a d], got %v", got)
}

func TestStoreMutabilityProtocol(t *testing.T) {
	assert := newAsserter(t)

	s := GenericStorage[int]().NewStore(3)
	s.Set(0, 1)

	view := s.ImmutableView()
	assert(!view.IsMutable(), "ImmutableView should not be mutable")

	defer func() {
		r := recover()
		assert(r != nil, "mutating an immutable store should panic")
	}()
	view.Set(1, 2)
}
