// permutation.go -- Permutation
//
// No example repo in this pack ships a reusable permutation type, so this
// is a from-scratch type, grounded on
// original_source/.../Minimal.java's populate() (Permutation.reorder /
// permutation.permute) and spec.md §4.5/§GLOSSARY.
//
// (c) 2026, following the teacher's house style.
//
// License GPLv2

package perfect

// Permutation is the bijection i -> order[i] for i in [0, n): the
// reordering induced by sorting domain keys by their minimal hash value
// (spec.md, GLOSSARY). order[i] is the destination position of the
// element originally at position i.
type Permutation struct {
	order []int
}

// Reorder returns the Permutation that sends position i to order[i], for
// every i. order must be a bijection on [0, len(order)).
func Reorder(order []int) *Permutation {
	o := make([]int, len(order))
	copy(o, order)
	return &Permutation{order: o}
}

// Len returns n, the size of the permutation.
func (p *Permutation) Len() int { return len(p.order) }

// At returns the destination position of source position i.
func (p *Permutation) At(i int) int { return p.order[i] }

// Inverse returns the permutation that undoes p.
func (p *Permutation) Inverse() *Permutation {
	inv := make([]int, len(p.order))
	for i, j := range p.order {
		inv[j] = i
	}
	return &Permutation{order: inv}
}

// Permute reorders s in place so that the element originally at position
// i ends up at position p.At(i), matching Minimal.java's
// permutation.permute(store). len(s) must equal p.Len().
func Permute[T any](p *Permutation, s []T) {
	tmp := make([]T, len(s))
	for i, v := range s {
		tmp[p.order[i]] = v
	}
	copy(s, tmp)
}

// Apply returns a new slice with src reordered by p: the element
// originally at position i appears at position p.At(i). src is not
// modified.
func Apply[T any](p *Permutation, src []T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[p.order[i]] = v
	}
	return out
}
