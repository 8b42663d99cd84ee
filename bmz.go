// bmz.go -- the BMZ minimal-perfect-hash constructor
//
// Ported directly from original_source/.../BMZ.java: the same
// edge-packing helpers, Graph/Assigner split, degree-1 peeling to find
// critical vertices, and two-phase (critical-then-non-critical) BFS
// assignment. h1/h2 are this repo's serializerHasher[int] over the base
// perfect hasher's big-hash output, matching spec.md §4.4's "h1 and h2
// are independently seeded 32-bit integer hashes with range N".
//
// (c) Sudhi Herle 2018 (teacher, house style), adapted 2026
//
// License GPLv2

package perfect

import (
	"fmt"
	"math"
	"math/rand"
	"os"
)

// set to true for verbose trace of BMZ's attempt loop.
const debug bool = false

func printf(f string, v ...interface{}) {
	if !debug {
		return
	}

	s := fmt.Sprintf(f, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stdout.WriteString(s)
	os.Stdout.Sync()
}

// minimalHasher is the closure BMZ returns on success: g, plus the seeds
// needed to recompute h1/h2, implementing Hasher[T] with range [0, n).
type minimalHasher[T comparable] struct {
	base Hasher[T]
	h1   Hasher[int]
	h2   Hasher[int]
	g    []int32
	n    uint64
}

func (h *minimalHasher[T]) Size() HashSize { return SpanHashSize(h.n) }

func (h *minimalHasher[T]) edge(v T) (int, int) {
	hc := int(h.base.BigHash(v))
	a := h.h1.IntHash(hc)
	b := h.h2.IntHash(hc)
	if a == b {
		n := len(h.g)
		if b == n-1 {
			b = 0
		} else {
			b++
		}
	}
	return a, b
}

func (h *minimalHasher[T]) IntHash(v T) int {
	a, b := h.edge(v)
	return int(h.g[a] + h.g[b])
}

func (h *minimalHasher[T]) BigHash(v T) uint64 {
	return uint64(h.IntHash(v))
}

func (h *minimalHasher[T]) Seeded(uint64) Hasher[T] {
	panic(newContainerIntegrity("a minimized hash cannot be re-seeded"))
}

func (h *minimalHasher[T]) Sized(HashSize) Hasher[T] {
	panic(newContainerIntegrity("a minimized hash cannot be resized"))
}

// buildBMZ runs BMZ's per-attempt procedure (spec.md §4.4) up to
// maxAttempts times, returning a minimal perfect hasher over domain or a
// PerfectionFailure on exhaustion.
func buildBMZ[T comparable](domain *PerfectDomain[T], base Hasher[T], maxAttempts int, c float64, rng *rand.Rand) (Hasher[T], error) {
	values := domain.Values()
	m := len(values)
	n := int(math.Ceil(float64(m) * c))
	if n < m {
		n = m
	}
	vertices := SpanHashSize(uint64(n))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		seed1 := rng.Uint64()
		seed2 := rng.Uint64()

		mh := &minimalHasher[T]{
			base: base,
			h1:   newSerializerHasher[int](Murmur3Family, intSerializer{}, seed1, vertices),
			h2:   newSerializerHasher[int](Murmur3Family, intSerializer{}, seed2, vertices),
			g:    make([]int32, n),
			n:    uint64(m),
		}

		g, ok := buildBMZGraph(mh, values, n, m)
		if !ok {
			printf("bmz: attempt %d: duplicate edge, retrying", attempt)
			continue // duplicate edge detected; abandon this seed
		}

		if !g.assignIntegersToVertices(mh.g) {
			printf("bmz: attempt %d: critical-vertex assignment failed, retrying", attempt)
			continue // failed to assign integers to critical vertices
		}

		printf("bmz: attempt %d: succeeded, %d vertices for %d keys", attempt, n, m)
		return mh, nil
	}

	return nil, newPerfectionFailure("failed to find minimal hash")
}

// bmzGraph is the bipartite hash graph for one BMZ attempt: n vertices, m
// edges (one per domain key), with adjacency lists keyed by vertex.
type bmzGraph struct {
	n, m      int
	edgeA     []int // edgeA[i], edgeB[i] are the endpoints of edge i
	edgeB     []int
	adjacency [][]int // per vertex: list of neighbour vertices
}

// buildBMZGraph builds the graph for this attempt's h1/h2, rejecting the
// seed outright on the first duplicate edge.
func buildBMZGraph[T comparable](mh *minimalHasher[T], values []T, n, m int) (*bmzGraph, bool) {
	g := &bmzGraph{
		n:         n,
		m:         m,
		edgeA:     make([]int, m),
		edgeB:     make([]int, m),
		adjacency: make([][]int, n),
	}

	for i, v := range values {
		a, b := mh.edge(v)
		if g.hasEdge(a, b) {
			return nil, false
		}
		g.edgeA[i] = a
		g.edgeB[i] = b
		g.adjacency[a] = append(g.adjacency[a], b)
		g.adjacency[b] = append(g.adjacency[b], a)
	}
	return g, true
}

func (g *bmzGraph) hasEdge(a, b int) bool {
	for _, x := range g.adjacency[a] {
		if x == b {
			return true
		}
	}
	return false
}

// findCriticalVertices computes vertex degrees, iteratively peels
// degree-1 vertices, and returns the bitset of vertices that remain with
// degree > 1.
func (g *bmzGraph) findCriticalVertices() *bitset {
	degree := make([]int, g.n)
	for i := 0; i < g.m; i++ {
		degree[g.edgeA[i]]++
		degree[g.edgeB[i]]++
	}

	var degreeOne []int
	for v := 0; v < g.n; v++ {
		if degree[v] == 1 {
			degreeOne = append(degreeOne, v)
		}
	}
	for len(degreeOne) > 0 {
		v := degreeOne[0]
		degreeOne = degreeOne[1:]
		degree[v]--
		for _, adj := range g.adjacency[v] {
			degree[adj]--
			if degree[adj] == 1 {
				degreeOne = append(degreeOne, adj)
			}
		}
	}

	critical := newBitset(uint64(g.n))
	for v := 0; v < g.n; v++ {
		if degree[v] > 1 {
			critical.Set(uint64(v))
		}
	}
	return critical
}

// assignIntegersToVertices runs both assignment phases, writing results
// into g[0:n]. It returns false if the critical-vertex phase could not
// find a conflict-free assignment.
func (g *bmzGraph) assignIntegersToVertices(gtab []int32) bool {
	critical := g.findCriticalVertices()
	assignedEdges := newBitset(uint64(g.m))
	assignedNodes := newBitset(uint64(g.n))

	if !g.assignCriticalVertices(gtab, critical, assignedNodes, assignedEdges) {
		return false
	}
	g.assignNonCriticalVertices(gtab, critical, assignedNodes, assignedEdges)
	return true
}

// assignCriticalVertices implements
// Assigner.assignIntegersToCriticalVertices / processCriticalNodes: root
// a new BFS tree at the lowest unassigned critical vertex, repeating
// until every critical vertex has been assigned.
func (g *bmzGraph) assignCriticalVertices(gtab []int32, critical, assignedNodes, assignedEdges *bitset) bool {
	x := 0
	for {
		unprocessed := newBitset(uint64(g.n))
		unprocessed.Or(critical)
		for i := uint64(0); i < uint64(g.n); i++ {
			if assignedNodes.Get(i) {
				unprocessed.Clear(i)
			}
		}
		root, ok := unprocessed.First()
		if !ok {
			return true // every critical vertex assigned
		}

		nx, ok := g.processCriticalTree(gtab, int(root), x, critical, assignedNodes, assignedEdges)
		if !ok {
			return false
		}
		x = nx
	}
}

// processCriticalTree processes a single connected tree of critical
// vertices rooted at root, following BMZ.java's processCriticalNodes.
func (g *bmzGraph) processCriticalTree(gtab []int32, root, x int, critical, assignedNodes, assignedEdges *bitset) (int, bool) {
	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v < 0 || assignedNodes.Get(uint64(v)) {
			continue
		}

		nx, ok := getXThatSatisfies(gtab, g.adjacency[v], x, assignedNodes, assignedEdges, g.m)
		if !ok {
			return 0, false
		}
		x = nx

		for _, adj := range g.adjacency[v] {
			if !assignedNodes.Get(uint64(adj)) && critical.Get(uint64(adj)) && v != adj {
				queue = append(queue, adj)
			}
			if assignedNodes.Get(uint64(adj)) {
				edgeVal := x + int(gtab[adj])
				assignedEdges.Set(uint64(edgeVal))
			}
		}

		gtab[v] = int32(x)
		assignedNodes.Set(uint64(v))
		x++
	}
	return x, true
}

// getXThatSatisfies is BMZ.java's getXThatSatifies: the smallest x, no
// smaller than the given candidate, such that every already-assigned
// neighbour's edge value g[u]+x lands inside [0, m) and is not already
// assigned. It returns false if no such x exists within range.
func getXThatSatisfies(gtab []int32, adjacency []int, x int, assignedNodes, assignedEdges *bitset, m int) (int, bool) {
	for {
		conflict := false
		for _, adj := range adjacency {
			if !assignedNodes.Get(uint64(adj)) {
				continue
			}
			idx := int(gtab[adj]) + x
			if idx < 0 || idx >= m {
				return 0, false
			}
			if assignedEdges.Get(uint64(idx)) {
				conflict = true
				break
			}
		}
		if !conflict {
			return x, true
		}
		x++
	}
}

// assignNonCriticalVertices implements
// Assigner.assignIntegersToNonCriticalVertices: BFS outward from the
// already-assigned critical frontier, then sweep any remaining unvisited
// component roots to cover isolated chains.
func (g *bmzGraph) assignNonCriticalVertices(gtab []int32, critical, visited, assignedEdges *bitset) {
	queue := critical.Positions()
	visited = visited.Clone()
	visited.Or(critical)

	g.processNonCriticalQueue(gtab, asIntQueue(queue), visited, assignedEdges)

	for {
		pos, ok := visited.FirstClear()
		if !ok {
			return
		}
		g.processNonCriticalQueue(gtab, []int{int(pos)}, visited, assignedEdges)
	}
}

func asIntQueue(positions []uint64) []int {
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = int(p)
	}
	return out
}

// processNonCriticalQueue implements BMZ.java's processNonCriticalNodes:
// drains toProcess and everything reachable from it, assigning each
// newly visited neighbour the next unused edge slot.
func (g *bmzGraph) processNonCriticalQueue(gtab []int32, toProcess []int, visited, assignedEdges *bitset) {
	nextEdge, hasNext := assignedEdges.FirstClear()

	for len(toProcess) > 0 {
		v := toProcess[0]
		toProcess = toProcess[1:]
		if v < 0 {
			continue
		}
		for _, adj := range g.adjacency[v] {
			if visited.Get(uint64(adj)) || v == adj {
				continue
			}
			gtab[adj] = int32(int(nextEdge) - int(gtab[v]))
			toProcess = append(toProcess, adj)
			assignedEdges.Set(nextEdge)
			visited.Set(uint64(adj))

			nextEdge, hasNext = assignedEdges.NextClear(nextEdge + 1)
			if !hasNext {
				nextEdge = assignedEdges.Len()
			}
		}
		visited.Set(uint64(v))
	}
}
