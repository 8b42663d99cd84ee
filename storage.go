// storage.go -- typed slot-array collaborator
//
// A Store[V] is the Storage/Store collaborator named in spec.md §6: a
// fixed-length slot array with configurable null-vs-default semantics,
// count-of-present tracking, a transformed iterator, and the same
// four-way mutable/immutable copy/view protocol as bitset. There is no
// published Go library in this pack's dependency surface that provides
// this (no repo imports one - see DESIGN.md); the teacher's own
// bitVector is the closest analogue and this type follows its shape:
// a bare backing slice plus small bookkeeping, no locking (this package
// is single-threaded by contract).
//
// (c) 2026, following the teacher's (Sudhi Herle, 2018) house style.
//
// License GPLv2

package perfect

// Storage describes how to allocate a Store[V] of a given size. It exists
// so that WithStorage can be handed either a generic (absent-until-set)
// storage or a default-value storage without the caller repeating the
// size at each call site.
type Storage[V any] struct {
	hasDefault bool
	def        V
	isNull     func(V) bool
}

// GenericStorage returns a Storage whose slots start absent: Set makes a
// slot present (any value of V, including its zero value, is accepted)
// and Remove makes it absent again.
func GenericStorage[V any]() Storage[V] {
	return Storage[V]{}
}

// DefaultValueStorage returns a Storage in which every slot is always
// "present" holding at least def; Remove/Clear reset a slot back to def
// rather than making it absent.
func DefaultValueStorage[V any](def V) Storage[V] {
	return Storage[V]{hasDefault: true, def: def}
}

// NewStore allocates a slot array of the given size according to this
// Storage's null/default policy.
func (s Storage[V]) NewStore(size int) *Store[V] {
	st := &Store[V]{
		slots:      make([]V, size),
		present:    newBitset(uint64(size)),
		hasDefault: s.hasDefault,
		def:        s.def,
		mutable:    true,
	}
	if s.hasDefault {
		for i := range st.slots {
			st.slots[i] = s.def
		}
		st.present.Fill()
	}
	return st
}

// Store is a fixed-length, index-addressed slot array. Depending on how it
// was allocated (see Storage), a slot is either absent until explicitly
// Set, or always present holding at least a configured default value.
type Store[V any] struct {
	slots      []V
	present    *bitset
	hasDefault bool
	def        V
	mutable    bool
}

// Size returns the fixed length of the store.
func (s *Store[V]) Size() int { return len(s.slots) }

// Count returns the number of present slots. For a default-value store
// this is always Size().
func (s *Store[V]) Count() int {
	return int(s.present.Count())
}

// IsNull reports whether slot i is absent.
func (s *Store[V]) IsNull(i int) bool {
	return !s.present.Get(uint64(i))
}

// Get returns the value at slot i, and the store's zero value if absent.
func (s *Store[V]) Get(i int) V {
	return s.slots[i]
}

func (s *Store[V]) checkMutable() {
	if !s.mutable {
		panic(newContainerIntegrity("attempt to mutate an immutable store"))
	}
}

// Set writes value to slot i and returns the previous value (the zero
// value of V if the slot was absent). For a default-value store, the slot
// remains present afterwards; for a generic store, it becomes present.
func (s *Store[V]) Set(i int, value V) V {
	s.checkMutable()
	prev := s.slots[i]
	s.slots[i] = value
	s.present.Set(uint64(i))
	return prev
}

// Remove clears slot i and returns its previous value. For a
// default-value store, the slot is reset to the configured default and
// remains present; for a generic store, it becomes absent.
func (s *Store[V]) Remove(i int) V {
	s.checkMutable()
	prev := s.slots[i]
	if s.hasDefault {
		s.slots[i] = s.def
	} else {
		var zero V
		s.slots[i] = zero
		s.present.Clear(uint64(i))
	}
	return prev
}

// Clear resets every slot: to the configured default for a default-value
// store, or to absent for a generic store.
func (s *Store[V]) Clear() {
	s.checkMutable()
	var zero V
	for i := range s.slots {
		if s.hasDefault {
			s.slots[i] = s.def
		} else {
			s.slots[i] = zero
		}
	}
	if s.hasDefault {
		s.present.Fill()
	} else {
		s.present.Reset()
	}
}

// ForEachPresent calls fn(i, value) for every present slot, in ascending
// index order.
func (s *Store[V]) ForEachPresent(fn func(i int, value V)) {
	for _, p := range s.present.Positions() {
		fn(int(p), s.slots[p])
	}
}

// TransformedIterator returns a slice produced by applying fn to every
// present slot, in ascending index order.
func TransformedIterator[V, R any](s *Store[V], fn func(i int, value V) R) []R {
	out := make([]R, 0, s.Count())
	s.ForEachPresent(func(i int, v V) {
		out = append(out, fn(i, v))
	})
	return out
}

// IsMutable reports whether this store accepts mutation.
func (s *Store[V]) IsMutable() bool { return s.mutable }

// MutableCopy returns an independent, mutable copy of s.
func (s *Store[V]) MutableCopy() *Store[V] {
	slots := make([]V, len(s.slots))
	copy(slots, s.slots)
	return &Store[V]{
		slots:      slots,
		present:    s.present.Clone(),
		hasDefault: s.hasDefault,
		def:        s.def,
		mutable:    true,
	}
}

// ImmutableCopy returns an independent, immutable copy of s.
func (s *Store[V]) ImmutableCopy() *Store[V] {
	c := s.MutableCopy()
	c.mutable = false
	c.present = c.present.ImmutableCopy()
	return c
}

// ImmutableView returns a read-only view sharing s's backing array.
func (s *Store[V]) ImmutableView() *Store[V] {
	return &Store[V]{
		slots:      s.slots,
		present:    s.present.ImmutableView(),
		hasDefault: s.hasDefault,
		def:        s.def,
		mutable:    false,
	}
}

// Mutable returns s if it is already mutable, otherwise a mutable copy.
func (s *Store[V]) Mutable() *Store[V] {
	if s.mutable {
		return s
	}
	return s.MutableCopy()
}

// Immutable returns s if it is already immutable, otherwise an immutable view.
func (s *Store[V]) Immutable() *Store[V] {
	if !s.mutable {
		return s
	}
	return s.ImmutableView()
}
