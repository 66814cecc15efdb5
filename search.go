// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import "container/heap"

// MatchResult is one candidate match surfaced by the root cursor: the
// query's checkpointed progress and how far the index side reached.
type MatchResult struct {
	Cursor CheckpointedCursor
	Path   PathCoverage
}

// QueryExhausted reports whether every query token was consumed by
// this match, as opposed to the search simply running out of
// candidates to escalate to.
func (m MatchResult) QueryExhausted() bool { return m.Cursor.Current.Exhausted() }

// SearchResponse is the outcome of a top-level search call.
type SearchResponse struct {
	End   MatchResult
	Cache *TraceCache
}

// initialCandidates seeds the search frontier from every place root
// occurs as a child: the query's first token is already "matched"
// trivially (it is the vertex itself), so each leg starts with the
// query cursor past position 0 and the graph cursor placed right
// after that occurrence in its immediate parent. An occurrence sitting
// at the last position of its own parent's pattern is, in turn,
// already exhausted there; that is a root end reached at seed time,
// reported in deadEnds exactly like the main loop's own root-end
// states, and if escalate is set the same leg additionally recurses
// into that parent's own parents (FindParent never looks past the
// immediate parent, not even during seeding).
func initialCandidates(g *Graph, cache *TraceCache, query []Token, root VertexIndex, escalate bool) (nodes []*SearchNode, deadEnds []CompareState) {
	v := g.ExpectVertex(root)

	for _, loc := range v.ParentOccurrences() {
		start := loc.SubIndex
		cursor := newGraphCursor(loc.Parent, loc.Pattern, start)
		rootExhausted := cursor.path.step(g, cache)
		qc := QueryCursor{Tokens: query, Pos: 1, State: StateCandidate}

		if rootExhausted {
			// The occurrence alone already covers the first token up
			// to its parent's right border. Even if no further parent
			// exists, that parent is still a real (partial) match and
			// must survive as a best-candidate rather than be dropped.
			deadEnds = append(deadEnds, CompareState{Query: qc, Index: cursor, start: start, startAtBorder: true})
			if !escalate {
				continue
			}
			for _, next := range escalateToParents(g, cache, qc, start, true, loc.Parent) {
				nodes = append(nodes, &SearchNode{Kind: ParentCandidate, Width: g.ExpectVertex(next.Index.RootVertex()).Width, State: next})
			}
			continue
		}

		nodes = append(nodes, &SearchNode{
			Kind:  ParentCandidate,
			Width: g.ExpectVertex(loc.Parent).Width,
			State: CompareState{Query: qc, Index: cursor, start: start, startAtBorder: true},
		})
	}
	return nodes, deadEnds
}

// escalateToParents continues a leg past a root pattern that just ran
// out: one candidate per occurrence of from as a child inside some
// parent, continuing from the position right after that occurrence.
// An occurrence sitting at the end of its own parent's pattern
// escalates again, recursively.
//
// start/startAtBorder describe where the match began within the root
// being left. The escalated leg begins at the occurrence's own
// sub-index, and only keeps the border flag if the old root was
// entered at its absolute start.
func escalateToParents(g *Graph, cache *TraceCache, query QueryCursor, start int, startAtBorder bool, from VertexIndex) []CompareState {
	v := g.ExpectVertex(from)
	fromStart := startAtBorder && start == 0
	var out []CompareState

	for _, loc := range v.ParentOccurrences() {
		cursor := newGraphCursor(loc.Parent, loc.Pattern, loc.SubIndex)
		rootExhausted := cursor.path.step(g, cache)
		if rootExhausted {
			out = append(out, escalateToParents(g, cache, query, loc.SubIndex, fromStart, loc.Parent)...)
			continue
		}
		out = append(out, CompareState{Query: query, Index: cursor, start: loc.SubIndex, startAtBorder: fromStart})
	}
	return out
}

// bestSoFar tracks the longest confirmed query prefix seen across the
// whole search, so a search that never fully consumes the query still
// reports its best partial match instead of an empty result.
type bestSoFar struct {
	have  bool
	pos   int
	state CompareState
}

func (b *bestSoFar) consider(state CompareState) {
	if !b.have || state.Query.Pos > b.pos {
		b.have = true
		b.pos = state.Query.Pos
		b.state = state
	}
}

// runSearch drives a width-ascending priority queue of search nodes
// seeded from every occurrence of query's first token as a
// child elsewhere in the graph: it is the shared engine behind
// FindAncestor and FindParent, differing only in whether an
// OutcomeRootEnd escalates to parents (ancestor search) or is treated
// as a dead end (parent-only search).
func runSearch(g *Graph, cache *TraceCache, query []Token, root VertexIndex, escalate bool) SearchResponse {
	h := &searchHeap{}
	heap.Init(h)
	seq := 0
	push := func(kind SearchNodeKind, width uint32, state CompareState) {
		heap.Push(h, &SearchNode{Kind: kind, Width: width, State: state, seq: seq})
		seq++
	}

	nodes, deadEnds := initialCandidates(g, cache, query, root, escalate)
	for _, node := range nodes {
		node.seq = seq
		seq++
		heap.Push(h, node)
	}

	var best bestSoFar
	for _, state := range deadEnds {
		best.consider(state)
	}

	for h.Len() > 0 {
		node := heap.Pop(h).(*SearchNode)
		state := node.State

		res := RunRootCursor(g, cache, state)

		switch res.Outcome {
		case OutcomeMismatch:
			best.consider(res.State)

		case OutcomeQueryEnd:
			cp := CheckpointedCursor{Current: res.State.Query, Checkpoint: res.State.Query}
			return SearchResponse{
				End:   MatchResult{Cursor: cp, Path: classifyCoverage(g, res.State)},
				Cache: cache,
			}

		case OutcomeRootEnd:
			best.consider(res.State)
			if !escalate {
				continue
			}
			for _, next := range escalateToParents(g, cache, res.State.Query, res.State.start, res.State.startAtBorder, res.State.Index.RootVertex()) {
				push(ParentCandidate, g.ExpectVertex(next.Index.RootVertex()).Width, next)
			}

		case OutcomeExploreChildren:
			for _, next := range res.Queue {
				push(ChildCandidate, next.Index.Current(g).Width, next)
			}
		}
	}

	if !best.have {
		// The query's first token has no parent in the graph at all.
		// Return a degenerate SearchResponse whose coverage is
		// EntireRoot over that token alone, cursor positioned past it.
		qc := QueryCursor{Tokens: query, Pos: 1, State: StateMatched}
		cp := CheckpointedCursor{Current: qc, Checkpoint: qc}
		rp := RangePath{
			Root:  root,
			Start: StartPath{rolePath{role: RoleStart}},
			End:   EndPath{rolePath{role: RoleEnd}},
		}
		return SearchResponse{End: MatchResult{Cursor: cp, Path: PathCoverage{Kind: CoverageEntireRoot, Root: root, Range: rp}}, Cache: cache}
	}

	cp := CheckpointedCursor{Current: best.state.Query, Checkpoint: best.state.Query}
	return SearchResponse{
		End:   MatchResult{Cursor: cp, Path: classifyCoverage(g, best.state)},
		Cache: cache,
	}
}

// FindAncestor searches for the longest prefix of query already
// present in the graph, escalating through parent vertices whenever a
// candidate's own compound is fully consumed before the query is.
func (g *Graph) FindAncestor(query []Token) (SearchResponse, error) {
	if len(query) == 0 {
		return SearchResponse{}, &ErrorReason{Kind: ErrEmpty}
	}
	if len(query) == 1 {
		return SearchResponse{}, singleIndexError(query[0])
	}

	cache := NewTraceCache()
	root := query[0].Vertex
	return runSearch(g, cache, query, root, true), nil
}

// FindParent searches for a match within the immediate compounds
// containing query's first token only, without escalating past a
// fully consumed candidate.
func (g *Graph) FindParent(query []Token) (SearchResponse, error) {
	if len(query) == 0 {
		return SearchResponse{}, &ErrorReason{Kind: ErrEmpty}
	}
	if len(query) == 1 {
		return SearchResponse{}, singleIndexError(query[0])
	}

	cache := NewTraceCache()
	root := query[0].Vertex
	return runSearch(g, cache, query, root, false), nil
}

// singleIndexError builds the ErrSingleIndex reason for a one-token
// query: there is no second token to drive a comparison over, so the
// error carries the degenerate range addressing the atom itself.
func singleIndexError(tok Token) *ErrorReason {
	return &ErrorReason{
		Kind:  ErrSingleIndex,
		Token: tok,
		Path: RangePath{
			Root:  tok.Vertex,
			Start: StartPath{rolePath{role: RoleStart}},
			End:   EndPath{rolePath{role: RoleEnd}},
		},
	}
}

// FindSequence is a deprecated alias for FindAncestor, kept for
// callers migrating off the older name.
//
// Deprecated: use FindAncestor.
func (g *Graph) FindSequence(query []Token) (SearchResponse, error) {
	return g.FindAncestor(query)
}
