// minimalmap.go -- MinimalMap[K,V]
//
// Ported from original_source/.../MinimalMap.java: get/put/remove over a
// preallocated value slot array, plus live keySet/values/entrySet views.
// Put stores whatever value of V it is given: no value (zero or nil) is
// rejected, and none is treated as a removal. Only Remove and Clear make
// a slot absent in a generic store; in a default-value store they reset
// the slot to the configured default.
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

// MinimalMap is a map over a minimal hash domain, backed by a typed slot
// array of length n (spec.md §4.7).
type MinimalMap[K comparable, V any] struct {
	hasher Hasher[K]
	store  *Store[K]
	values *Store[V]
}

func (m *MinimalMap[K, V]) indexOf(k K) (int, bool) {
	i := m.hasher.IntHash(k)
	if i < 0 || i >= m.store.Size() {
		return 0, false
	}
	if m.store.Get(i) != k {
		return 0, false
	}
	return i, true
}

func (m *MinimalMap[K, V]) checkedIndexOf(k K) int {
	i, ok := m.indexOf(k)
	if !ok {
		panic(newInvalidArgument("k", "%v is not a member of this map's domain", k))
	}
	return i
}

// Size returns the number of present slots (always n for a default-value
// map).
func (m *MinimalMap[K, V]) Size() int { return m.values.Count() }

// IsEmpty reports whether no slot is present.
func (m *MinimalMap[K, V]) IsEmpty() bool { return m.values.Count() == 0 }

// Get returns the value mapped to k, and whether k has a mapping.
func (m *MinimalMap[K, V]) Get(k K) (V, bool) {
	i, ok := m.indexOf(k)
	if !ok || m.values.IsNull(i) {
		var zero V
		return zero, false
	}
	return m.values.Get(i), true
}

// ContainsKey reports whether k has a mapping.
func (m *MinimalMap[K, V]) ContainsKey(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// ContainsValue reports whether any present slot holds a value equal to
// v. V must be comparable for this to compile at the call site; callers
// with a non-comparable V should scan Values() themselves.
func ContainsValue[K comparable, V comparable](m *MinimalMap[K, V], v V) bool {
	found := false
	m.values.ForEachPresent(func(_ int, val V) {
		if val == v {
			found = true
		}
	})
	return found
}

// Put maps k to v, rejecting a key outside the domain with
// InvalidArgument, and returns the previous value (if any).
func (m *MinimalMap[K, V]) Put(k K, v V) (V, bool) {
	i := m.checkedIndexOf(k)
	wasPresent := !m.values.IsNull(i)
	var prev V
	if wasPresent {
		prev = m.values.Get(i)
	}
	m.values.Set(i, v)
	return prev, wasPresent
}

// PutIfAbsent maps k to v only if k has no mapping yet, returning the
// existing value if one was already present.
func (m *MinimalMap[K, V]) PutIfAbsent(k K, v V) (V, bool) {
	i := m.checkedIndexOf(k)
	if !m.values.IsNull(i) {
		return m.values.Get(i), true
	}
	m.values.Set(i, v)
	var zero V
	return zero, false
}

// Replace maps k to v only if k already has a mapping, returning the
// previous value.
func (m *MinimalMap[K, V]) Replace(k K, v V) (V, bool) {
	i := m.checkedIndexOf(k)
	if m.values.IsNull(i) {
		var zero V
		return zero, false
	}
	prev := m.values.Get(i)
	m.values.Set(i, v)
	return prev, true
}

// ReplaceExpect maps k to newValue only if k's current value equals
// oldValue (via eq), returning whether the replacement happened.
func ReplaceExpect[K comparable, V any](m *MinimalMap[K, V], k K, oldValue, newValue V, eq func(V, V) bool) bool {
	i := m.checkedIndexOf(k)
	if m.values.IsNull(i) || !eq(m.values.Get(i), oldValue) {
		return false
	}
	m.values.Set(i, newValue)
	return true
}

// Remove clears k's mapping, returning the previous value (if any).
func (m *MinimalMap[K, V]) Remove(k K) (V, bool) {
	i, ok := m.indexOf(k)
	if !ok || m.values.IsNull(i) {
		var zero V
		return zero, false
	}
	prev := m.values.Get(i)
	m.values.Remove(i)
	return prev, true
}

// Clear resets every slot.
func (m *MinimalMap[K, V]) Clear() { m.values.Clear() }

// Keys returns every present key, in store-index order.
func (m *MinimalMap[K, V]) Keys() []K {
	return TransformedIterator(m.values, func(i int, _ V) K {
		return m.store.Get(i)
	})
}

// Values returns every present value, in store-index order.
func (m *MinimalMap[K, V]) Values() []V {
	return TransformedIterator(m.values, func(_ int, v V) V { return v })
}

// Entry is a single live key/value pair, as yielded by Entries.
type Entry[K comparable, V any] struct {
	Key   K
	index int
	m     *MinimalMap[K, V]
}

// Value returns the entry's current value.
func (e Entry[K, V]) Value() V { return e.m.values.Get(e.index) }

// SetValue writes a new value for this entry, returning the previous one.
func (e Entry[K, V]) SetValue(v V) V {
	prev := e.m.values.Get(e.index)
	e.m.values.Set(e.index, v)
	return prev
}

// Entries returns every present (key, value) pair, in store-index order.
func (m *MinimalMap[K, V]) Entries() []Entry[K, V] {
	return TransformedIterator(m.values, func(i int, _ V) Entry[K, V] {
		return Entry[K, V]{Key: m.store.Get(i), index: i, m: m}
	})
}

// IsMutable reports whether this map accepts mutation.
func (m *MinimalMap[K, V]) IsMutable() bool { return m.values.IsMutable() }

// MutableCopy returns an independent, mutable copy of m.
func (m *MinimalMap[K, V]) MutableCopy() *MinimalMap[K, V] {
	return &MinimalMap[K, V]{hasher: m.hasher, store: m.store, values: m.values.MutableCopy()}
}

// ImmutableCopy returns an independent, immutable copy of m.
func (m *MinimalMap[K, V]) ImmutableCopy() *MinimalMap[K, V] {
	return &MinimalMap[K, V]{hasher: m.hasher, store: m.store, values: m.values.ImmutableCopy()}
}

// ImmutableView returns a read-only view sharing m's backing value store.
func (m *MinimalMap[K, V]) ImmutableView() *MinimalMap[K, V] {
	return &MinimalMap[K, V]{hasher: m.hasher, store: m.store, values: m.values.ImmutableView()}
}

// Mutable returns m if already mutable, otherwise a mutable copy.
func (m *MinimalMap[K, V]) Mutable() *MinimalMap[K, V] {
	if m.values.IsMutable() {
		return m
	}
	return m.MutableCopy()
}

// Immutable returns m if already immutable, otherwise an immutable view.
func (m *MinimalMap[K, V]) Immutable() *MinimalMap[K, V] {
	if !m.values.IsMutable() {
		return m
	}
	return m.ImmutableView()
}
