// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

// SnapshotVertex is the read-only view of one vertex in a GraphSnapshot.
type SnapshotVertex struct {
	Index  VertexIndex
	Width  uint32
	IsAtom bool
}

// SnapshotEdge is one directed parent->child edge with its pattern
// metadata, the granularity external visualisation tools need.
type SnapshotEdge struct {
	Parent   VertexIndex
	Pattern  PatternId
	SubIndex int
	Child    VertexIndex
}

// GraphSnapshot is a purely observational, in-memory dump of the graph
// for external visualisation tools. No wire protocol or file format is
// defined here; callers serialise it however they need.
type GraphSnapshot struct {
	Vertices []SnapshotVertex
	Edges    []SnapshotEdge
}

// Snapshot walks every shard and returns a consistent-enough (not
// atomic across the whole graph) point-in-time view.
func (g *Graph) Snapshot() GraphSnapshot {
	var snap GraphSnapshot

	for _, sh := range g.shards {
		sh.mu.RLock()
		for _, v := range sh.vertices {
			v.mu.RLock()
			snap.Vertices = append(snap.Vertices, SnapshotVertex{
				Index:  v.Index,
				Width:  v.Width,
				IsAtom: v.Width == 1,
			})
			for _, pid := range v.sortedPatternIdsLocked() {
				for i, tok := range v.childPattern(pid) {
					snap.Edges = append(snap.Edges, SnapshotEdge{
						Parent:   v.Index,
						Pattern:  pid,
						SubIndex: i,
						Child:    tok.Vertex,
					})
				}
			}
			v.mu.RUnlock()
		}
		sh.mu.RUnlock()
	}

	return snap
}
