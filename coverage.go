// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

// CoverageKind is the classification PathCoverage.Kind assigns to a
// completed match.
type CoverageKind int

const (
	// CoverageEntireRoot: the query equals some existing compound
	// exactly.
	CoverageEntireRoot CoverageKind = iota
	// CoveragePrefix: the query is a strict prefix of a compound.
	CoveragePrefix
	// CoveragePostfix: the query is a strict suffix of a compound.
	CoveragePostfix
	// CoverageRange: the query is an interior infix of a compound.
	CoverageRange
)

// PathCoverage classifies how a matched query relates to its root
// compound. Classification runs exactly once per search, on the state
// that concludes it (the first QueryEnd or, failing one, the best
// partial match), and the stored range path is simplified; the
// simplified form is canonical, so two coverages denote the same
// location iff they are equal.
type PathCoverage struct {
	Kind  CoverageKind
	Root  VertexIndex
	Range RangePath
}

// IsComplete reports whether the coverage is CoverageEntireRoot.
func (c PathCoverage) IsComplete() bool { return c.Kind == CoverageEntireRoot }

// RootParent returns the token for the compound containing the match.
func (c PathCoverage) RootParent(g *Graph) Token {
	v := g.ExpectVertex(c.Root)
	return Token{Vertex: v.Index, Width: v.Width}
}

// UnwrapComplete returns the range path, but only for a
// CoverageEntireRoot coverage; any other kind is a caller bug.
func (c PathCoverage) UnwrapComplete() RangePath {
	if c.Kind != CoverageEntireRoot {
		panic("hypergraph: UnwrapComplete called on a non-EntireRoot PathCoverage")
	}
	return c.Range
}

// classifyCoverage builds a PathCoverage from a concluded compare
// state, reading where the match began from the state's start
// bookkeeping.
//
// Classification is at root-pattern granularity: if the query ran out
// while the index cursor was still mid-decomposition (chain depth > 1,
// inside some nested compound's own pattern), the end boundary is
// treated as interior: a nested, unresolved position never reaches
// the end of the root pattern.
func classifyCoverage(g *Graph, state CompareState) PathCoverage {
	root := state.Index.RootVertex()
	rootPatternId := state.Index.path.chain[0].Pattern
	rootPattern := g.ExpectVertex(root).childPattern(rootPatternId)

	nested := len(state.Index.path.chain) > 1
	endSubIndex := state.Index.path.chain[0].SubIndex
	startSubIndex := state.start

	startBorder := state.startAtBorder && startSubIndex == 0
	endBorder := !nested && endSubIndex == len(rootPattern)

	var kind CoverageKind
	switch {
	case startBorder && endBorder:
		kind = CoverageEntireRoot
	case startBorder:
		kind = CoveragePrefix
	case endBorder:
		kind = CoveragePostfix
	default:
		kind = CoverageRange
	}

	lastIncluded := endSubIndex - 1
	if lastIncluded < 0 {
		lastIncluded = 0
	}

	rp := RangePath{
		Root:        root,
		RootPattern: rootPatternId,
		Start:       StartPath{rolePath{role: RoleStart, chain: []ChildLocation{{Parent: root, Pattern: rootPatternId, SubIndex: startSubIndex}}}},
		End:         EndPath{rolePath{role: RoleEnd, chain: []ChildLocation{{Parent: root, Pattern: rootPatternId, SubIndex: lastIncluded}}}},
	}
	rp.Start.simplify(g)
	rp.End.simplify(g)

	return PathCoverage{Kind: kind, Root: root, Range: rp}
}
