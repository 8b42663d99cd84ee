// minimalset.go -- MinimalSet[T]
//
// Ported from original_source/.../MinimalSet.java. isEmpty is fixed per
// spec.md §9: the original's `bits.count() != 0` is a bug; this reports
// `bits.zeros().isAll()` (no set bits), as the spec requires.
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

// MinimalSet is a set over a minimal hash domain, backed by a dense
// bitset of length n: bit j is set iff store[j] is a member (spec.md
// §4.6). It cannot contain elements outside the domain.
type MinimalSet[T comparable] struct {
	minimal *Minimal[T]
	bits    *bitset
}

func (s *MinimalSet[T]) store() *Store[T] { return s.minimal.Store() }

// indexOf returns the store index for e, or (0, false) if e is not a
// member of the domain's store at its own hash position.
func (s *MinimalSet[T]) indexOf(e T) (int, bool) {
	i := s.minimal.Hasher().IntHash(e)
	st := s.store()
	if i < 0 || i >= st.Size() {
		return 0, false
	}
	if st.Get(i) != e {
		return 0, false
	}
	return i, true
}

func (s *MinimalSet[T]) checkedIndexOf(e T) int {
	i, ok := s.indexOf(e)
	if !ok {
		panic(newInvalidArgument("e", "%v is not a member of this set's domain", e))
	}
	return i
}

// Add adds e, returning whether it was previously absent. e must be a
// member of the underlying hash domain.
func (s *MinimalSet[T]) Add(e T) bool {
	i := s.checkedIndexOf(e)
	return !s.bits.GetThenSet(uint64(i))
}

// Contains reports whether e is a member of this set.
func (s *MinimalSet[T]) Contains(e T) bool {
	i, ok := s.indexOf(e)
	if !ok {
		return false
	}
	return s.bits.Get(uint64(i))
}

// Remove removes e, returning whether it was previously a member.
func (s *MinimalSet[T]) Remove(e T) bool {
	i, ok := s.indexOf(e)
	if !ok {
		return false
	}
	return s.bits.Clear(uint64(i))
}

// Size returns the number of members.
func (s *MinimalSet[T]) Size() int { return int(s.bits.Count()) }

// IsEmpty reports whether no bit is set.
func (s *MinimalSet[T]) IsEmpty() bool { return s.bits.ZerosIsAll() }

// IsFull reports whether every bit is set.
func (s *MinimalSet[T]) IsFull() bool { return s.bits.OnesIsAll() }

// Fill sets every bit, so every domain key becomes a member.
func (s *MinimalSet[T]) Fill() { s.bits.Fill() }

// Clear removes every member.
func (s *MinimalSet[T]) Clear() { s.bits.Reset() }

// ForEach calls fn once for every current member, in ascending store-index order.
func (s *MinimalSet[T]) ForEach(fn func(e T)) {
	st := s.store()
	for _, p := range s.bits.Positions() {
		fn(st.Get(int(p)))
	}
}

// RemoveIf removes every member for which pred returns true, returning
// whether anything was removed. It is non-reentrant with respect to the
// bitset being walked - pred must not mutate s.
func (s *MinimalSet[T]) RemoveIf(pred func(e T) bool) bool {
	st := s.store()
	modified := false
	for _, p := range s.bits.Positions() {
		if pred(st.Get(int(p))) {
			if s.bits.Clear(p) {
				modified = true
			}
		}
	}
	return modified
}

// ToSlice returns every current member, in ascending store-index order.
func (s *MinimalSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Size())
	s.ForEach(func(e T) { out = append(out, e) })
	return out
}

// IsMutable reports whether this set accepts mutation.
func (s *MinimalSet[T]) IsMutable() bool { return s.bits.IsMutable() }

// MutableCopy returns an independent, mutable copy of s.
func (s *MinimalSet[T]) MutableCopy() *MinimalSet[T] {
	return &MinimalSet[T]{minimal: s.minimal, bits: s.bits.MutableCopy()}
}

// ImmutableCopy returns an independent, immutable copy of s.
func (s *MinimalSet[T]) ImmutableCopy() *MinimalSet[T] {
	return &MinimalSet[T]{minimal: s.minimal, bits: s.bits.ImmutableCopy()}
}

// ImmutableView returns a read-only view sharing s's backing bitset.
func (s *MinimalSet[T]) ImmutableView() *MinimalSet[T] {
	return &MinimalSet[T]{minimal: s.minimal, bits: s.bits.ImmutableView()}
}

// Mutable returns s if already mutable, otherwise a mutable copy.
func (s *MinimalSet[T]) Mutable() *MinimalSet[T] {
	if s.bits.IsMutable() {
		return s
	}
	return s.MutableCopy()
}

// Immutable returns s if already immutable, otherwise an immutable view.
func (s *MinimalSet[T]) Immutable() *MinimalSet[T] {
	if !s.bits.IsMutable() {
		return s
	}
	return s.ImmutableView()
}
