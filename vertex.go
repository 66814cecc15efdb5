// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import (
	"sort"
	"sync"

	"github.com/mankinskin/context-engine/internal/bitset"
	"github.com/mankinskin/context-engine/internal/sparse"
)

// ParentEntry lists the positions at which a vertex appears as a child
// within one parent's patterns: pattern id -> sorted sub-indices. A
// vertex may occur more than once in the same pattern (e.g. "abab"
// built from two occurrences of "ab"), hence the slice.
type ParentEntry struct {
	Positions map[PatternId][]int
}

func newParentEntry() *ParentEntry {
	return &ParentEntry{Positions: make(map[PatternId][]int)}
}

func (p *ParentEntry) add(pid PatternId, subIndex int) {
	s := p.Positions[pid]
	i := sort.SearchInts(s, subIndex)
	if i < len(s) && s[i] == subIndex {
		return
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = subIndex
	p.Positions[pid] = s
}

// sortedPatternIds returns the parent's pattern ids in ascending order.
func (p *ParentEntry) sortedPatternIds() []PatternId {
	ids := make([]PatternId, 0, len(p.Positions))
	for id := range p.Positions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Vertex is a graph record: either an atom (Width == 1, no children)
// or a compound carrying one or more alternative child patterns that
// all cover the same Width.
type Vertex struct {
	mu sync.RWMutex

	Index VertexIndex
	Width uint32

	// Atom holds the interned payload for width-1 vertices; nil for
	// compounds.
	Atom any

	// Parents maps a parent vertex to the positions at which this
	// vertex appears as a child of that parent.
	Parents map[VertexIndex]*ParentEntry

	// Children holds a vertex's child patterns, keyed by PatternId, as
	// a popcount-compressed sparse array: the occupancy bitset answers
	// "does pattern id p exist" without touching the backing slice.
	Children sparse.Array[Pattern]

	// borderBits tracks, per atom offset, whether a child pattern
	// attached through AddPattern already places an interior
	// decomposition border there; AddPattern rejects a new pattern that
	// clashes with one of them before mutating the vertex. The first
	// pattern stored by InsertPattern or InsertPatternWithId claims no
	// borders, so an alternative may share borders with it.
	borderBits bitset.BitSet

	nextPattern PatternId
}

func newVertex(index VertexIndex, width uint32) *Vertex {
	return &Vertex{
		Index:   index,
		Width:   width,
		Parents: make(map[VertexIndex]*ParentEntry),
	}
}

// IsAtom reports whether the vertex has width 1.
func (v *Vertex) IsAtom() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.Width == 1
}

// interiorBorders returns the cumulative-width offsets that lie
// strictly between the start and end of the pattern: the "borders" no
// two patterns of the same vertex may share.
func interiorBorders(p Pattern) []uint64 {
	if len(p) < 2 {
		return nil
	}
	borders := make([]uint64, 0, len(p)-1)
	var off uint64
	for i := 0; i < len(p)-1; i++ {
		off += uint64(p[i].Width)
		borders = append(borders, off)
	}
	return borders
}

// checkAndClaimBorders verifies the new pattern's interior borders
// don't collide with any already recorded for the vertex, then claims
// them. Caller must hold v.mu for writing.
func (v *Vertex) checkAndClaimBorders(borders []uint64) error {
	for _, b := range borders {
		if v.borderBits.Test(uint(b)) {
			return &GraphInvariantViolation{
				Vertex: v.Index,
				Reason: "duplicate pattern border at offset",
			}
		}
	}
	for _, b := range borders {
		v.borderBits.Set(uint(b))
	}
	return nil
}

// addChildPattern stores pattern under a freshly allocated PatternId.
// It does not touch the children's parent maps; the caller records that
// half of parent/child symmetry (Graph.linkChildren). Caller must hold
// v.mu for writing.
func (v *Vertex) addChildPattern(pattern Pattern) PatternId {
	pid := v.nextPattern
	v.nextPattern++

	v.Children.InsertAt(uint(pid), pattern)

	return pid
}

// firstPatternId returns the lowest occupied pattern slot, reading
// straight from the occupancy bitset rather than ranging over
// Children. Callers that know a vertex carries exactly one pattern
// (e.g. one freshly built by a single InsertPattern call) use this
// instead of an arbitrary map iteration.
func (v *Vertex) firstPatternId() (PatternId, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	bit, ok := v.Children.Bits.NextSet(0)
	return PatternId(bit), ok
}

// sortedPatternIds returns this vertex's child pattern ids in
// ascending order, so callers iterate patterns deterministically.
func (v *Vertex) sortedPatternIds() []PatternId {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sortedPatternIdsLocked()
}

// sortedPatternIdsLocked is sortedPatternIds without taking the lock;
// callers must already hold v.mu (for reading or writing). Children.Keys
// already returns ascending dense keys, so no extra sort is needed.
func (v *Vertex) sortedPatternIdsLocked() []PatternId {
	keys := v.Children.Keys()
	ids := make([]PatternId, len(keys))
	for i, k := range keys {
		ids[i] = PatternId(k)
	}
	return ids
}

// childPattern returns the pattern stored at pid, for callers that
// already hold v.mu.
func (v *Vertex) childPattern(pid PatternId) Pattern {
	p, _ := v.Children.Get(uint(pid))
	return p
}

// sortedParentVertices returns this vertex's parent vertices ordered
// by (pattern_id, sub_index) of their first occurrence, then by vertex
// index, so parent batches are built in one fixed order regardless of
// map iteration. Each parent appears exactly once.
func (v *Vertex) sortedParentVertices() []VertexIndex {
	v.mu.RLock()
	defer v.mu.RUnlock()

	type entry struct {
		vertex VertexIndex
		pid    PatternId
		sub    int
	}
	entries := make([]entry, 0, len(v.Parents))
	for pv, pe := range v.Parents {
		pids := pe.sortedPatternIds()
		if len(pids) == 0 {
			continue
		}
		// pids and Positions are both sorted, so this is the parent's
		// first occurrence of v.
		entries = append(entries, entry{pv, pids[0], pe.Positions[pids[0]][0]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pid != entries[j].pid {
			return entries[i].pid < entries[j].pid
		}
		if entries[i].sub != entries[j].sub {
			return entries[i].sub < entries[j].sub
		}
		return entries[i].vertex < entries[j].vertex
	})

	out := make([]VertexIndex, len(entries))
	for i, e := range entries {
		out[i] = e.vertex
	}
	return out
}

// ParentOccurrences returns every location at which v appears as a
// child across all of its parents, ordered by parent vertex (per
// sortedParentVertices) and then by (pattern_id, sub_index) within
// that parent.
func (v *Vertex) ParentOccurrences() []ChildLocation {
	parents := v.sortedParentVertices()

	v.mu.RLock()
	defer v.mu.RUnlock()

	var out []ChildLocation
	for _, pv := range parents {
		pe := v.Parents[pv]
		for _, pid := range pe.sortedPatternIds() {
			for _, sub := range pe.Positions[pid] {
				out = append(out, ChildLocation{Parent: pv, Pattern: pid, SubIndex: sub})
			}
		}
	}
	return out
}
