// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import (
	"fmt"
	"sort"
	"sync"
)

// TraceEdgeKind distinguishes the two directions a search can cross a
// vertex boundary.
type TraceEdgeKind int

const (
	// EdgeTopDown: entering child c at position i in pattern p of
	// parent v.
	EdgeTopDown TraceEdgeKind = iota
	// EdgeBottomUp: leaving a child at position i in pattern p of
	// parent v, arriving at v itself.
	EdgeBottomUp
)

// TraceEdge is one step recorded during a search, used to reconstruct
// the match path afterwards.
type TraceEdge struct {
	Kind     TraceEdgeKind
	Location ChildLocation
}

// PositionCache holds every edge recorded so far leading toward one
// atom position of one vertex.
type PositionCache struct {
	Edges []TraceEdge
}

func (pc *PositionCache) add(e TraceEdge) {
	for _, existing := range pc.Edges {
		if existing == e {
			return
		}
	}
	pc.Edges = append(pc.Edges, e)
}

type directionCache struct {
	positions map[uint64]*PositionCache
}

func newDirectionCache() *directionCache {
	return &directionCache{positions: make(map[uint64]*PositionCache)}
}

func (d *directionCache) record(pos uint64, e TraceEdge) {
	pc, ok := d.positions[pos]
	if !ok {
		pc = &PositionCache{}
		d.positions[pos] = pc
	}
	pc.add(e)
}

// vertexTrace is the per-vertex record with two directed-position
// sub-caches.
type vertexTrace struct {
	bottomUp *directionCache
	topDown  *directionCache
}

func newVertexTrace() *vertexTrace {
	return &vertexTrace{bottomUp: newDirectionCache(), topDown: newDirectionCache()}
}

// TraceCache is a per-(vertex, position) memo of up/down edges
// traversed during a search. It is monotonic: entries are inserted,
// never removed, and deduplicated by (vertex, position, edge): the
// first edge at a key wins as the canonical predecessor, later
// identical observations fold into the same position's edge-list.
//
// Write-only during a search, read-only afterwards. Tests comparing
// caches must compare semantically (entries as sets), not
// structurally.
type TraceCache struct {
	mu       sync.Mutex
	vertices map[VertexIndex]*vertexTrace
}

// NewTraceCache returns an empty cache, ready for one search
// invocation.
func NewTraceCache() *TraceCache {
	return &TraceCache{vertices: make(map[VertexIndex]*vertexTrace)}
}

func (tc *TraceCache) vertexTraceFor(v VertexIndex) *vertexTrace {
	vt, ok := tc.vertices[v]
	if !ok {
		vt = newVertexTrace()
		tc.vertices[v] = vt
	}
	return vt
}

func (tc *TraceCache) recordTopDown(v VertexIndex, pos uint64, loc ChildLocation) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.vertexTraceFor(v).topDown.record(pos, TraceEdge{Kind: EdgeTopDown, Location: loc})
}

func (tc *TraceCache) recordBottomUp(v VertexIndex, pos uint64, loc ChildLocation) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.vertexTraceFor(v).bottomUp.record(pos, TraceEdge{Kind: EdgeBottomUp, Location: loc})
}

// TopDownEdges returns the edges recorded entering v at atom position
// pos, in insertion order. The returned slice is a copy.
func (tc *TraceCache) TopDownEdges(v VertexIndex, pos uint64) []TraceEdge {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	vt, ok := tc.vertices[v]
	if !ok {
		return nil
	}
	pc, ok := vt.topDown.positions[pos]
	if !ok {
		return nil
	}
	return append([]TraceEdge(nil), pc.Edges...)
}

// BottomUpEdges returns the edges recorded leaving v at atom position
// pos, in insertion order. The returned slice is a copy.
func (tc *TraceCache) BottomUpEdges(v VertexIndex, pos uint64) []TraceEdge {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	vt, ok := tc.vertices[v]
	if !ok {
		return nil
	}
	pc, ok := vt.bottomUp.positions[pos]
	if !ok {
		return nil
	}
	return append([]TraceEdge(nil), pc.Edges...)
}

// String renders the number of vertices touched and total edges
// recorded, for quick inspection in test failures and debug logging.
func (tc *TraceCache) String() string {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	vertices := make([]VertexIndex, 0, len(tc.vertices))
	for v := range tc.vertices {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })

	var edges int
	for _, vt := range tc.vertices {
		for _, pc := range vt.topDown.positions {
			edges += len(pc.Edges)
		}
		for _, pc := range vt.bottomUp.positions {
			edges += len(pc.Edges)
		}
	}

	return fmt.Sprintf("TraceCache(vertices=%d, edges=%d)", len(vertices), edges)
}
