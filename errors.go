// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import "fmt"

// ErrReasonKind distinguishes the recoverable query-shape errors a
// search can return.
type ErrReasonKind int

const (
	// ErrEmpty is returned for an empty query.
	ErrEmpty ErrReasonKind = iota
	// ErrSingleIndex is returned for any one-token query, whether or
	// not that token has parents: there is no second token to compare.
	ErrSingleIndex
)

// ErrorReason is the error type returned by the search entry points for
// recoverable, user-triggerable query problems.
type ErrorReason struct {
	Kind  ErrReasonKind
	Token Token // set for ErrSingleIndex

	// Path is the degenerate range covering Token alone, set for
	// ErrSingleIndex so callers consuming the error can still address
	// the atom it names.
	Path RangePath
}

func (e *ErrorReason) Error() string {
	switch e.Kind {
	case ErrEmpty:
		return "hypergraph: empty query"
	case ErrSingleIndex:
		return fmt.Sprintf("hypergraph: single-token query %s has nothing to compare", e.Token)
	default:
		return "hypergraph: invalid query"
	}
}

// GraphInvariantViolation signals that the hypergraph's structural
// invariants (parent/child symmetry, pattern width, border
// uniqueness, minimum pattern length) were violated. Insert-time
// violations are returned as a plain error; violations discovered
// while traversing an already-built graph indicate corruption and are
// raised as a panic via panicInvariant, since a search has no way to
// recover from a graph that lied about its own shape.
type GraphInvariantViolation struct {
	Vertex VertexIndex
	Reason string
}

func (e *GraphInvariantViolation) Error() string {
	return fmt.Sprintf("hypergraph: invariant violated at vertex %d: %s", e.Vertex, e.Reason)
}

func panicInvariant(vertex VertexIndex, reason string) {
	panic(&GraphInvariantViolation{Vertex: vertex, Reason: reason})
}
