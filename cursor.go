// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

// MatchState tags a cursor with its confidence level. The underlying
// cursor data is identical in every state; only the explicit
// transitions differ, so a plain runtime tag is enough.
type MatchState int

const (
	StateCandidate MatchState = iota
	StateMatched
	StateMismatched
)

// QueryCursor addresses a position in the flat query token slice. It
// has no graph edges of its own to trace: the query is the caller's
// input, not a vertex in the graph.
type QueryCursor struct {
	Tokens []Token
	Pos    int
	State  MatchState
}

// Exhausted reports whether every query token has been consumed.
func (q QueryCursor) Exhausted() bool { return q.Pos >= len(q.Tokens) }

// AtomPos counts the atoms consumed so far: the summed widths of every
// token behind the cursor.
func (q QueryCursor) AtomPos() uint64 {
	var w uint64
	for _, t := range q.Tokens[:q.Pos] {
		w += uint64(t.Width)
	}
	return w
}

// Current is the next token to compare, or the zero Token if exhausted.
func (q QueryCursor) Current() Token {
	if q.Exhausted() {
		return Token{}
	}
	return q.Tokens[q.Pos]
}

// GraphCursor addresses a position inside the recursive structure of a
// candidate vertex's child pattern(s).
type GraphCursor struct {
	path  *rolePath
	State MatchState
}

func newGraphCursor(root VertexIndex, pattern PatternId, subIndex int) GraphCursor {
	return GraphCursor{path: newRolePath(RoleStart, root, pattern, subIndex)}
}

func (c GraphCursor) clone() GraphCursor {
	return GraphCursor{path: c.path.clone(), State: c.State}
}

// Exhausted reports whether the root-level pattern has been fully
// consumed (scanned past its last token).
func (c GraphCursor) Exhausted(g *Graph) bool { return c.path.exhausted(g) }

// Current is the token at the cursor's current leaf position.
func (c GraphCursor) Current(g *Graph) Token { return c.path.roleLeafToken(g) }

// RootVertex is the vertex this cursor's path is rooted at.
func (c GraphCursor) RootVertex() VertexIndex { return c.path.rootVertex() }

// RootChildIndex is the position at the outermost level.
func (c GraphCursor) RootChildIndex() int { return c.path.rootChildIndex() }

// CheckpointPair pairs a current cursor with its last confirmed-match
// checkpoint. The invariant checkpoint.Pos <= current.Pos (in
// whatever the cursor's own notion of position is) must never be
// violated; MarkMatch is the only way to advance the checkpoint.
type CheckpointPair[T any] struct {
	Current    T
	Checkpoint T
}

// MarkMatch promotes Current to the new Checkpoint.
func (cp *CheckpointPair[T]) MarkMatch() {
	cp.Checkpoint = cp.Current
}

// CheckpointedCursor pairs a QueryCursor's progress with its last
// confirmed match.
type CheckpointedCursor = CheckpointPair[QueryCursor]
