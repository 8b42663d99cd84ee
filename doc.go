// doc.go - top level documentation
//
// (c) Sudhi Herle 2018 (teacher), adapted 2026
//
// License GPLv2
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package perfect constructs perfect and minimal perfect hash functions
// (MPHFs) over a finite, user-supplied domain of keys, and provides two
// compact keyed containers - a set and a map - that exploit the resulting
// injective hash to allocate exactly one storage slot per key.
//
// A perfect hash over a domain D is an injective function from D into
// [0, S). A minimal perfect hash additionally satisfies S = len(D). The
// usual path through the API is:
//
//	d := perfect.DomainOver(values)
//	p, err := d.UsingDefaults().Perfect(mySerializer)
//	m, err := p.Minimized()
//	set := m.NewSet()
//
// The domain is frozen once a PerfectDomain is built from it: there is no
// support for incremental updates, no persistence format for a computed
// hash, and no concurrent construction or mutation of any type in this
// package.
package perfect
