// minimal.go -- Minimal[T]
//
// Ported from original_source/.../Minimal.java: the same lazy,
// single-pass permutation/store materialization (three cases), and the
// withStorage/withGenericStorage/withTypedStorage factory family,
// adapted to Go as a package-level generic helper since Go methods
// cannot introduce their own type parameter beyond the receiver's.
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

// Minimal is a minimal perfect hash plus its lazily materialized
// permutation and store (spec.md §4.5). Once published, both are
// observably immutable; this package's single-threaded contract (spec.md
// §5) means no publication guard is needed.
type Minimal[T comparable] struct {
	domain      *PerfectDomain[T]
	hasher      Hasher[T]
	permutation *Permutation
	store       *Store[T]
}

// Hasher returns the minimal hasher, whose range is exactly [0, n).
func (m *Minimal[T]) Hasher() Hasher[T] { return m.hasher }

// Domain returns the domain this hash is minimal over.
func (m *Minimal[T]) Domain() *PerfectDomain[T] { return m.domain }

// Permutation returns π, materializing it on first call.
func (m *Minimal[T]) Permutation() *Permutation {
	if m.permutation == nil {
		m.populate()
	}
	return m.permutation
}

// Store returns S, materializing it (and, as a side effect, π) on first
// call.
func (m *Minimal[T]) Store() *Store[T] {
	if m.store == nil {
		m.store = GenericStorage[T]().NewStore(m.domain.Size())
		m.populate()
		m.store = m.store.ImmutableView()
	}
	return m.store
}

// populate implements the three cases of spec.md §4.5, sharing a single
// pass of the domain wherever possible.
func (m *Minimal[T]) populate() {
	values := m.domain.Values()

	if m.permutation == nil {
		order := make([]int, len(values))
		storeIsLive := m.store != nil && m.store.IsMutable()
		for i, v := range values {
			idx := m.hasher.IntHash(v)
			order[i] = idx
			if storeIsLive {
				m.store.Set(idx, v)
			}
		}
		m.permutation = Reorder(order)
		return
	}

	// permutation already computed: this call must be populating the
	// store for the first time. Write values in domain order, then
	// apply the permutation to move each into hash order.
	for i, v := range values {
		m.store.Set(i, v)
	}
	Permute(m.permutation, m.store.slots)
}

// NewSet returns a new, empty MinimalSet over this minimal hash.
func (m *Minimal[T]) NewSet() *MinimalSet[T] {
	return &MinimalSet[T]{
		minimal: m,
		bits:    newBitset(uint64(m.domain.Size())),
	}
}

// Maps is the factory returned by WithStorage et al.: it knows how a map
// container over this Minimal should allocate its value slots.
type Maps[T comparable, V any] struct {
	minimal *Minimal[T]
	storage Storage[V]
}

// WithStorage returns a Maps factory over an explicitly configured
// Storage[V].
func WithStorage[T comparable, V any](m *Minimal[T], storage Storage[V]) *Maps[T, V] {
	return &Maps[T, V]{minimal: m, storage: storage}
}

// WithGenericStorage returns a Maps factory whose value slots start
// absent, become present on Put, and become absent again on Remove or
// Clear.
func WithGenericStorage[T comparable, V any](m *Minimal[T]) *Maps[T, V] {
	return WithStorage[T, V](m, GenericStorage[V]())
}

// WithTypedStorage returns a Maps factory whose value slots always hold
// at least def - the default-value storage semantics of spec.md §4.7's
// final paragraph.
func WithTypedStorage[T comparable, V any](m *Minimal[T], def V) *Maps[T, V] {
	return WithStorage[T, V](m, DefaultValueStorage[V](def))
}

// NewMap returns a new MinimalMap over the bound Minimal, with value
// slots allocated per the factory's Storage[V].
func (mm *Maps[T, V]) NewMap() *MinimalMap[T, V] {
	store := mm.minimal.Store()
	return &MinimalMap[T, V]{
		hasher: mm.minimal.Hasher(),
		store:  store,
		values: mm.storage.NewStore(store.Size()),
	}
}
