// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import "sort"

// CompareState pairs a query cursor with a graph cursor: the state the
// compare engine steps one token-pair at a time.
type CompareState struct {
	Query QueryCursor
	Index GraphCursor

	// start is the sub-index, in the current root's pattern, of the
	// first child the match covers (wholly or partially). It is set
	// when a leg is seeded and re-derived on every escalation; steps
	// and decompositions carry it unchanged.
	start int

	// startAtBorder records whether the match truly begins at the
	// leftmost atom of the child at start. A leg seeded directly does
	// (the query's first token is that child); an escalated leg only
	// keeps the flag if the previous root was itself entered at its
	// absolute start. Coverage classification needs both: start == 0
	// alone doesn't mean the root's left border was reached when the
	// match began partway into child 0.
	startAtBorder bool
}

func (cs CompareState) clone() CompareState {
	return CompareState{Query: cs.Query, Index: cs.Index.clone(), start: cs.start, startAtBorder: cs.startAtBorder}
}

// CompareResultKind tags the three outcomes of a single compare step.
type CompareResultKind int

const (
	ResultFoundMatch CompareResultKind = iota
	ResultMismatch
	ResultPrefixes
)

// CompareResult is the outcome of one CompareToken call.
type CompareResult struct {
	Kind CompareResultKind

	// State is the advanced state for FoundMatch, or the state at the
	// point of failure for Mismatch.
	State CompareState

	// RootExhausted is set alongside FoundMatch when advancing the
	// index cursor also consumed the last token of its root-level
	// pattern: the caller (RunRootCursor) must treat this as the RootEnd
	// escalation trigger rather than looping for another step.
	RootExhausted bool

	// Queue holds the decomposed prefix candidates for ResultPrefixes,
	// already ordered: widest child first, ties broken by vertex index.
	Queue []CompareState
}

// CompareToken is the compare engine's single primitive: matches,
// mismatches, or decomposes a compound into prefix candidates.
func CompareToken(g *Graph, cache *TraceCache, state CompareState) CompareResult {
	// Edge case (a): an exhausted cursor can't be compared further.
	if state.Query.Exhausted() || state.Index.Exhausted(g) {
		state.Query.State = StateMismatched
		state.Index.State = StateMismatched
		return CompareResult{Kind: ResultMismatch, State: state}
	}

	qt := state.Query.Current()
	it := state.Index.Current(g)

	// Edge case (c): identical tokens.
	if qt.Equal(it) {
		next := state.clone()
		next.Query.Pos++
		next.Query.State = StateMatched
		rootExhausted := next.Index.path.step(g, cache)
		next.Index.State = StateMatched
		return CompareResult{Kind: ResultFoundMatch, State: next, RootExhausted: rootExhausted}
	}

	// Edge case (b), for any equal width (atoms or compounds) with
	// different identity: only the index side ever decomposes, and its
	// narrower children could never equal the query token.
	if qt.Width == it.Width {
		state.Query.State = StateMismatched
		state.Index.State = StateMismatched
		return CompareResult{Kind: ResultMismatch, State: state}
	}

	if it.Width > qt.Width {
		queue := decomposePrefixes(g, cache, state, it.Vertex)
		if len(queue) == 0 {
			state.Query.State = StateMismatched
			state.Index.State = StateMismatched
			return CompareResult{Kind: ResultMismatch, State: state}
		}
		return CompareResult{Kind: ResultPrefixes, State: state, Queue: queue}
	}

	// qt.Width > it.Width: the query side is wider than the graph
	// candidate. Only the graph (index) side ever decomposes; a wider
	// query token continues through parent escalation instead, so here
	// it is a mismatch.
	state.Query.State = StateMismatched
	state.Index.State = StateMismatched
	return CompareResult{Kind: ResultMismatch, State: state}
}

// decomposePrefixes expands compound into its prefix children: for
// every child pattern of compound, the token sitting at position 0.
// Each becomes a new Candidate/Candidate CompareState with the index
// cursor descended one level deeper.
func decomposePrefixes(g *Graph, cache *TraceCache, state CompareState, compound VertexIndex) []CompareState {
	v := g.ExpectVertex(compound)

	type candidate struct {
		state CompareState
		child Token
	}

	var candidates []candidate
	for _, pid := range v.sortedPatternIds() {
		pattern := v.childPattern(pid)
		if len(pattern) == 0 {
			continue
		}
		child := pattern[0]
		loc := ChildLocation{Parent: compound, Pattern: pid, SubIndex: 0}

		next := state.clone()
		next.Query.State = StateCandidate
		next.Index.State = StateCandidate
		next.Index.path.descend(cache, loc, 0)

		candidates = append(candidates, candidate{state: next, child: child})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].child.Width != candidates[j].child.Width {
			return candidates[i].child.Width > candidates[j].child.Width
		}
		return candidates[i].child.Vertex < candidates[j].child.Vertex
	})

	out := make([]CompareState, len(candidates))
	for i, c := range candidates {
		out[i] = c.state
	}
	return out
}
