// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

// SearchNodeKind distinguishes the two ways a CompareState enters the
// search frontier: escalating to an enclosing compound, or descending
// into one of the current compound's prefix children.
type SearchNodeKind int

const (
	// ParentCandidate: the state is rooted at (or has just escalated
	// to) some vertex containing the previous candidate as a child.
	ParentCandidate SearchNodeKind = iota
	// ChildCandidate: the state was produced by decomposing a wider
	// compound into one of its prefix children.
	ChildCandidate
)

// SearchNode is one entry on the match frontier, ordered by Width
// ascending: narrower candidates are resolved before wider
// ones, so a search never reports a long match while a shorter,
// already-complete one is still sitting unexplored in the queue. Ties
// break ChildCandidate before ParentCandidate, then by insertion order.
type SearchNode struct {
	Kind  SearchNodeKind
	Width uint32
	State CompareState
	seq   int
}

// searchHeap implements container/heap.Interface over []*SearchNode.
type searchHeap []*SearchNode

func (h searchHeap) Len() int { return len(h) }

func (h searchHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Width != b.Width {
		return a.Width < b.Width
	}
	if a.Kind != b.Kind {
		return a.Kind == ChildCandidate
	}
	return a.seq < b.seq
}

func (h searchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *searchHeap) Push(x any) {
	*h = append(*h, x.(*SearchNode))
}

func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
