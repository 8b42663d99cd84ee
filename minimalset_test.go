package perfect

import "testing"

func animalMinimal(t *testing.T) *Minimal[string] {
	d := DomainOver([]string{"ostrich", "dog", "snail", "centipede"})
	p := d.UsingDefaults()
	pf, ok := p.MaybePerfect()
	if !ok {
		t.Fatalf("MaybePerfect should succeed over this small domain")
	}
	m, err := pf.Minimized()
	if err != nil {
		t.Fatalf("Minimized should succeed: %v", err)
	}
	return m
}

func TestMinimalSetAddContainsRemove(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	s := m.NewSet()

	assert(s.Add("dog"), "Add should report true for a previously absent member")
	assert(!s.Add("dog"), "Add should report false the second time")
	assert(s.Contains("dog"), "set should contain dog after Add")
	assert(!s.Contains("snail"), "set should not contain snail yet")

	assert(s.Remove("dog"), "Remove should report true for a present member")
	assert(!s.Remove("dog"), "Remove should report false the second time")
	assert(!s.Contains("dog"), "set should no longer contain dog")
}

func TestMinimalSetRejectsNonMember(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	s := m.NewSet()

	defer func() {
		r := recover()
		assert(r != nil, "Add of a non-member should panic with InvalidArgument")
	}()
	s.Add("giraffe")
}

// TestMinimalSetIsEmptyUsesZerosIsAll verifies the spec.md §9 fix: a set
// with every bit clear is empty, independent of how many bits the
// underlying domain has (count() != 0 was the original's bug).
func TestMinimalSetIsEmptyUsesZerosIsAll(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	s := m.NewSet()
	assert(s.IsEmpty(), "freshly created set must be empty")

	s.Add("snail")
	assert(!s.IsEmpty(), "set with one member must not be empty")

	s.Remove("snail")
	assert(s.IsEmpty(), "set must be empty again once its only member is removed")
}

func TestMinimalSetFillAndClear(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	s := m.NewSet()

	s.Fill()
	assert(s.IsFull(), "Fill should make every domain key a member")
	assert(s.Size() == m.Domain().Size(), "filled set size should equal domain size")

	s.Clear()
	assert(s.IsEmpty(), "Clear should remove every member")
}

func TestMinimalSetForEachAndToSlice(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	s := m.NewSet()
	s.Add("ostrich")
	s.Add("centipede")

	seen := make(map[string]bool)
	s.ForEach(func(e string) { seen[e] = true })
	assert(len(seen) == 2, "ForEach should visit exactly 2 members, got %d", len(seen))
	assert(seen["ostrich"] && seen["centipede"], "ForEach should visit both added members")

	sl := s.ToSlice()
	assert(len(sl) == 2, "ToSlice should return exactly 2 members, got %d", len(sl))
}

func TestMinimalSetRemoveIf(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	s := m.NewSet()
	s.Fill()

	modified := s.RemoveIf(func(e string) bool { return len(e) > 5 })
	assert(modified, "RemoveIf should report a modification")
	assert(!s.Contains("centipede"), "centipede (len 9) should have been removed")
	assert(!s.Contains("ostrich"), "ostrich (len 7) should have been removed")
	assert(s.Contains("dog"), "dog (len 3) should remain")
	assert(s.Contains("snail"), "snail (len 5) should remain")
}

func TestMinimalSetMutabilityProtocol(t *testing.T) {
	assert := newAsserter(t)

	m := animalMinimal(t)
	s := m.NewSet()
	s.Add("dog")

	view := s.ImmutableView()
	assert(!view.IsMutable(), "ImmutableView should not be mutable")
	assert(view.Contains("dog"), "the view should reflect the underlying membership")

	defer func() {
		r := recover()
		assert(r != nil, "Add through an immutable view should panic")
	}()
	view.Add("snail")
}
