// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// DumpString is a wrapper for Dump, useful during development and
// debugging.
func (g *Graph) DumpString() string {
	w := new(strings.Builder)
	g.Dump(w)
	return w.String()
}

// Dump writes a human-readable listing of every vertex and its child
// patterns to w, ordered by vertex index. Not part of the search
// algorithm; purely observational.
func (g *Graph) Dump(w io.Writer) {
	snap := g.Snapshot()

	sort.Slice(snap.Vertices, func(i, j int) bool {
		return snap.Vertices[i].Index < snap.Vertices[j].Index
	})
	// Snapshot emits edges ordered by (pattern, subIndex) within each
	// vertex, so grouping by parent preserves render order.
	byParent := make(map[VertexIndex][]SnapshotEdge)
	for _, e := range snap.Edges {
		byParent[e.Parent] = append(byParent[e.Parent], e)
	}

	for _, v := range snap.Vertices {
		kind := "compound"
		if v.IsAtom {
			kind = "atom"
		}
		fmt.Fprintf(w, "#%d [%s] width=%d\n", v.Index, kind, v.Width)

		var lastPattern PatternId
		open := false
		for _, e := range byParent[v.Index] {
			if !open || e.Pattern != lastPattern {
				if open {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "  pattern %d:", e.Pattern)
				lastPattern = e.Pattern
				open = true
			}
			fmt.Fprintf(w, " #%d", e.Child)
		}
		if open {
			fmt.Fprintln(w)
		}
	}
}

// String renders the coverage kind and root vertex, e.g. "Prefix(#4)".
func (c PathCoverage) String() string {
	var kind string
	switch c.Kind {
	case CoverageEntireRoot:
		kind = "EntireRoot"
	case CoveragePrefix:
		kind = "Prefix"
	case CoveragePostfix:
		kind = "Postfix"
	case CoverageRange:
		kind = "Range"
	default:
		kind = "Unknown"
	}
	return fmt.Sprintf("%s(#%d)", kind, c.Root)
}

// String renders the match's coverage and how much of the query it
// consumed.
func (m MatchResult) String() string {
	return fmt.Sprintf("%s query_pos=%d", m.Path, m.Cursor.Current.Pos)
}

// String renders a one-line summary of the search outcome.
func (r SearchResponse) String() string {
	return r.End.String()
}
