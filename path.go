// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

// Role distinguishes which boundary of a range a path addresses. One
// rolePath implementation is shared between Start and End, with the
// role selecting traversal direction at runtime.
type Role int

const (
	RoleStart Role = iota
	RoleEnd
)

// rolePath localises a position inside the recursive structure of a
// compound vertex. Chain[0] is the root-level location (inside the
// vertex the path is rooted at); each subsequent entry descends one
// level deeper into a compound child. The deepest entry is the
// "current" leaf the path addresses.
type rolePath struct {
	role  Role
	chain []ChildLocation
}

func newRolePath(role Role, root VertexIndex, pattern PatternId, subIndex int) *rolePath {
	return &rolePath{
		role:  role,
		chain: []ChildLocation{{Parent: root, Pattern: pattern, SubIndex: subIndex}},
	}
}

func (p *rolePath) clone() *rolePath {
	c := &rolePath{role: p.role, chain: make([]ChildLocation, len(p.chain))}
	copy(c.chain, p.chain)
	return c
}

// rootVertex is the vertex the path is rooted at.
func (p *rolePath) rootVertex() VertexIndex { return p.chain[0].Parent }

// rootChildIndex is role_root_child_index: the index at the outermost
// level.
func (p *rolePath) rootChildIndex() int { return p.chain[0].SubIndex }

func (p *rolePath) currentLocation() ChildLocation { return p.chain[len(p.chain)-1] }

// currentPattern is the pattern the deepest chain entry indexes into.
func (p *rolePath) currentPattern(g *Graph) Pattern {
	loc := p.currentLocation()
	return g.ExpectVertex(loc.Parent).childPattern(loc.Pattern)
}

// roleLeafToken yields the token at the current leaf.
func (p *rolePath) roleLeafToken(g *Graph) Token {
	pat := p.currentPattern(g)
	loc := p.currentLocation()
	if loc.SubIndex < 0 || loc.SubIndex >= len(pat) {
		panicInvariant(loc.Parent, "path position out of pattern bounds")
	}
	return pat[loc.SubIndex]
}

// exhausted reports whether the current leaf position has run past
// the end (Start role, scanning forward) or before the start (End
// role, scanning backward) of its pattern.
func (p *rolePath) exhausted(g *Graph) bool {
	pat := p.currentPattern(g)
	loc := p.currentLocation()
	if p.role == RoleStart {
		return loc.SubIndex >= len(pat)
	}
	return loc.SubIndex < 0
}

// atBorder reports whether the path points at the extremal leaf of
// its subtree at every level: position 0 for Start, len(pattern)-1
// for End.
func (p *rolePath) atBorder(g *Graph) bool {
	for _, loc := range p.chain {
		pat := g.ExpectVertex(loc.Parent).childPattern(loc.Pattern)
		if p.role == RoleStart && loc.SubIndex != 0 {
			return false
		}
		if p.role == RoleEnd && loc.SubIndex != len(pat)-1 {
			return false
		}
	}
	return true
}

// simplify pops trailing segments that sit at a border: the border and
// its ancestor coincide, so the shorter representation is canonical.
// Runs exactly once, at coverage time.
func (p *rolePath) simplify(g *Graph) {
	for len(p.chain) > 1 {
		loc := p.chain[len(p.chain)-1]
		pat := g.ExpectVertex(loc.Parent).childPattern(loc.Pattern)
		atBorder := (p.role == RoleStart && loc.SubIndex == 0) ||
			(p.role == RoleEnd && loc.SubIndex == len(pat)-1)
		if !atBorder {
			return
		}
		p.chain = p.chain[:len(p.chain)-1]
	}
}

// descend pushes a new, deeper location onto the chain: entering child
// c at position i in pattern p of the current leaf's vertex. This is
// a top-down trace edge.
func (p *rolePath) descend(cache *TraceCache, loc ChildLocation, atomPos uint64) {
	p.chain = append(p.chain, loc)
	if cache != nil {
		cache.recordTopDown(loc.Parent, atomPos, loc)
	}
}

// ascend pops the deepest location off the chain and records the
// bottom-up trace edge; bumping the newly exposed level (and carrying
// further) is left to step's loop. Returns true, without popping, if
// the chain is already at the root level: the root pattern itself is
// exhausted.
func (p *rolePath) ascend(g *Graph, cache *TraceCache, atomPos uint64) (rootExhausted bool) {
	if len(p.chain) == 1 {
		return true
	}
	popped := p.chain[len(p.chain)-1]
	p.chain = p.chain[:len(p.chain)-1]
	if cache != nil {
		cache.recordBottomUp(popped.Parent, atomPos, popped)
	}
	return false
}

// step moves the current leaf position one place in the path's
// direction (+1 for Start, -1 for End), carrying up through ascend
// whenever the move runs off the end of the current level's pattern.
// cache may be nil (e.g. for the query-side cursor, which has no
// graph edges to trace).
func (p *rolePath) step(g *Graph, cache *TraceCache) (rootExhausted bool) {
	for {
		loc := &p.chain[len(p.chain)-1]
		pat := g.ExpectVertex(loc.Parent).childPattern(loc.Pattern)
		var atomPos uint64
		if p.role == RoleStart {
			atomPos = pat.OffsetOf(loc.SubIndex) + uint64(pat[loc.SubIndex].Width)
			loc.SubIndex++
			if loc.SubIndex < len(pat) {
				return false
			}
		} else {
			atomPos = pat.OffsetOf(loc.SubIndex)
			loc.SubIndex--
			if loc.SubIndex >= 0 {
				return false
			}
		}
		if len(p.chain) == 1 {
			return true
		}
		if p.ascend(g, cache, atomPos) {
			return true
		}
	}
}

// StartPath addresses the left boundary of a sub-range.
type StartPath struct{ rolePath }

// EndPath addresses the right boundary of a sub-range, symmetric to
// StartPath.
type EndPath struct{ rolePath }

// RangePath roots both a StartPath and an EndPath in the same root
// pattern.
type RangePath struct {
	Root        VertexIndex
	RootPattern PatternId
	Start       StartPath
	End         EndPath
}
