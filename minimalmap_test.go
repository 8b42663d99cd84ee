package perfect

import "testing"

// TestMinimalMapContainerContract exercises spec.md §8 scenario 7.
func TestMinimalMapContainerContract(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	maps := WithTypedStorage[string, int](m, 0)
	mm := maps.NewMap()

	prev, wasPresent := mm.Put("ostrich", 2)
	assert(wasPresent, "ostrich's slot is always present under default-value storage")
	assert(prev == 0, "previous value for an unset default-storage slot should be the default, got %d", prev)

	v, ok := mm.Get("ostrich")
	assert(ok, "ostrich should now be present")
	assert(v == 2, "ostrich should map to 2, got %d", v)

	func() {
		defer func() {
			r := recover()
			assert(r != nil, "Put of a non-member key should panic with InvalidArgument")
		}()
		mm.Put("whippet", 3)
	}()

	// default-value storage: every domain key is present even without an
	// explicit Put, reading back the configured default.
	snail, ok := mm.Get("snail")
	assert(ok, "snail should be present by virtue of default-value storage")
	assert(snail == 0, "snail's default value should be 0, got %d", snail)

	_, wasPresent = mm.Put("dog", 7)
	assert(wasPresent, "dog's slot is always present under default-value storage")

	removedVal, hadValue := mm.Remove("dog")
	assert(hadValue, "Remove should report dog had a value")
	assert(removedVal == 7, "Remove should return dog's last value, got %d", removedVal)

	afterRemove, ok := mm.Get("dog")
	assert(ok, "dog's slot remains present (reset to default) after Remove")
	assert(afterRemove == 0, "dog's slot should read back as the default after Remove, got %d", afterRemove)
}

func TestMinimalMapEntriesIterationAndSetValue(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	maps := WithTypedStorage[string, int](m, 0)
	mm := maps.NewMap()

	mm.Put("ostrich", 2)
	mm.Put("dog", 5)

	entries := mm.Entries()
	assert(len(entries) == len(m.Domain().Values()), "a default-value map should yield one entry per domain key, got %d", len(entries))

	found := false
	for _, e := range entries {
		if e.Key == "ostrich" {
			found = true
			assert(e.Value() == 2, "ostrich entry should read 2, got %d", e.Value())
			prev := e.SetValue(9)
			assert(prev == 2, "SetValue should return the previous value, got %d", prev)
		}
	}
	assert(found, "ostrich should appear among the entries")

	v, _ := mm.Get("ostrich")
	assert(v == 9, "SetValue through an entry should be visible via Get, got %d", v)
}

func TestMinimalMapGenericStorageAbsence(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	maps := WithGenericStorage[string, int](m)
	mm := maps.NewMap()

	assert(mm.IsEmpty(), "a generic-storage map should start empty")
	_, ok := mm.Get("snail")
	assert(!ok, "an unset key in a generic-storage map should report absent")

	mm.Put("snail", 11)
	assert(!mm.IsEmpty(), "map should not be empty after a Put")
	assert(mm.ContainsKey("snail"), "map should contain snail after Put")

	v, ok := mm.Remove("snail")
	assert(ok, "Remove should report success")
	assert(v == 11, "Remove should return the removed value, got %d", v)
	assert(mm.IsEmpty(), "map should be empty again after removing its only entry")
}

func TestMinimalMapPutIfAbsentAndReplace(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	maps := WithGenericStorage[string, int](m)
	mm := maps.NewMap()

	_, existed := mm.PutIfAbsent("centipede", 100)
	assert(!existed, "PutIfAbsent should succeed on an absent key")

	prev, existed := mm.PutIfAbsent("centipede", 200)
	assert(existed, "PutIfAbsent should report the key already existed")
	assert(prev == 100, "PutIfAbsent should return the existing value, got %d", prev)

	v, _ := mm.Get("centipede")
	assert(v == 100, "PutIfAbsent must not overwrite an existing value, got %d", v)

	old, replaced := mm.Replace("centipede", 150)
	assert(replaced, "Replace should succeed on a present key")
	assert(old == 100, "Replace should return the previous value, got %d", old)

	_, replaced = mm.Replace("ostrich", 1)
	assert(!replaced, "Replace should fail on an absent key")
}

func TestReplaceExpectMatchesOldValue(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	maps := WithGenericStorage[string, int](m)
	mm := maps.NewMap()
	mm.Put("dog", 5)

	eq := func(a, b int) bool { return a == b }

	ok := ReplaceExpect(mm, "dog", 9, 10, eq)
	assert(!ok, "ReplaceExpect should fail when the current value doesn't match")

	ok = ReplaceExpect(mm, "dog", 5, 10, eq)
	assert(ok, "ReplaceExpect should succeed when the current value matches")

	v, _ := mm.Get("dog")
	assert(v == 10, "ReplaceExpect should have written the new value, got %d", v)
}

func TestContainsValue(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	maps := WithGenericStorage[string, int](m)
	mm := maps.NewMap()
	mm.Put("snail", 42)

	assert(ContainsValue(mm, 42), "ContainsValue should find 42")
	assert(!ContainsValue(mm, 7), "ContainsValue should not find an absent value")
}

func TestMinimalMapMutabilityProtocol(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	maps := WithGenericStorage[string, int](m)
	mm := maps.NewMap()
	mm.Put("dog", 5)

	view := mm.ImmutableView()
	assert(!view.IsMutable(), "ImmutableView should not be mutable")
	v, ok := view.Get("dog")
	assert(ok && v == 5, "view should reflect the underlying mapping")

	defer func() {
		r := recover()
		assert(r != nil, "Put through an immutable view should panic")
	}()
	view.Put("dog", 6)
}
