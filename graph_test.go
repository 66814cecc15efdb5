// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import "testing"

func atoms(g *Graph, letters string) []Token {
	toks := make([]Token, len(letters))
	for i, r := range letters {
		toks[i] = g.InsertAtom(r)
	}
	return toks
}

func TestInsertAtomIdempotent(t *testing.T) {
	g := NewGraph()
	a1 := g.InsertAtom('a')
	a2 := g.InsertAtom('a')
	if a1.Vertex != a2.Vertex {
		t.Fatalf("InsertAtom not idempotent: %v != %v", a1, a2)
	}
	b := g.InsertAtom('b')
	if b.Vertex == a1.Vertex {
		t.Fatalf("distinct atoms got the same vertex")
	}
}

func TestInsertPatternIdempotent(t *testing.T) {
	g := NewGraph()
	toks := atoms(g, "ab")

	tok1, pid1, err := g.InsertPattern(toks)
	if err != nil {
		t.Fatal(err)
	}
	tok2, pid2, err := g.InsertPattern(toks)
	if err != nil {
		t.Fatal(err)
	}
	if tok1.Vertex != tok2.Vertex || pid1 != pid2 {
		t.Fatalf("InsertPattern not idempotent: (%v,%v) != (%v,%v)", tok1, pid1, tok2, pid2)
	}
}

func TestInsertPatternRejectsShort(t *testing.T) {
	g := NewGraph()
	toks := atoms(g, "a")
	if _, _, err := g.InsertPattern(toks); err == nil {
		t.Fatal("expected error for single-token pattern")
	}
}

func TestParentChildSymmetry(t *testing.T) {
	g := NewGraph()
	toks := atoms(g, "ab")
	ab, _, err := g.InsertPattern(toks)
	if err != nil {
		t.Fatal(err)
	}

	parents := g.Parents(toks[0].Vertex)
	pe, ok := parents[ab.Vertex]
	if !ok {
		t.Fatalf("atom %v has no parent entry for %v", toks[0], ab.Vertex)
	}
	if subs := pe.Positions[0]; len(subs) != 1 || subs[0] != 0 {
		t.Fatalf("unexpected parent positions %v", pe.Positions)
	}

	children := g.ChildPatterns(ab.Vertex)
	pat, ok := children[0]
	if !ok || len(pat) != 2 {
		t.Fatalf("unexpected child patterns %v", children)
	}
	if pat[0].Vertex != toks[0].Vertex || pat[1].Vertex != toks[1].Vertex {
		t.Fatalf("child pattern does not match inserted tokens: %v", pat)
	}
}

func TestAddPatternEnforcesWidth(t *testing.T) {
	g := NewGraph()
	toks := atoms(g, "ab")
	ab, _, err := g.InsertPattern(toks)
	if err != nil {
		t.Fatal(err)
	}

	c := g.InsertAtom('c')
	if _, err := g.AddPattern(ab.Vertex, []Token{c}); err == nil {
		t.Fatal("expected width mismatch error")
	}
}

func TestAddPatternRejectsDuplicateBorder(t *testing.T) {
	g := NewGraph()
	a, b, c, d := g.InsertAtom('a'), g.InsertAtom('b'), g.InsertAtom('c'), g.InsertAtom('d')

	root, _, err := g.InsertPattern([]Token{a, b, c, d})
	if err != nil {
		t.Fatal(err)
	}

	// ab+cd claims the interior border at offset 2.
	ab, _, err := g.InsertPattern([]Token{a, b})
	if err != nil {
		t.Fatal(err)
	}
	cd, _, err := g.InsertPattern([]Token{c, d})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddPattern(root.Vertex, []Token{ab, cd}); err != nil {
		t.Fatalf("first alternative split at offset 2 should be accepted: %v", err)
	}

	abc, _, err := g.InsertPattern([]Token{a, b, c})
	if err != nil {
		t.Fatal(err)
	}
	// abc+d splits at offset 3, a different border: should be accepted.
	if _, err := g.AddPattern(root.Vertex, []Token{abc, d}); err != nil {
		t.Fatalf("split at offset 3 should be accepted: %v", err)
	}

	// A split whose borders include an already claimed offset must be
	// rejected (duplicate border).
	bc, _, err := g.InsertPattern([]Token{b, c})
	if err != nil {
		t.Fatal(err)
	}
	// a + bc + d: borders at offsets 1 and 3; 3 already claimed by abc/d.
	if _, err := g.AddPattern(root.Vertex, []Token{a, bc, d}); err == nil {
		t.Fatal("expected border-collision error")
	}
}

func TestSnapshotWalksAllVertices(t *testing.T) {
	g := NewGraph()
	toks := atoms(g, "abc")
	if _, _, err := g.InsertPattern(toks); err != nil {
		t.Fatal(err)
	}

	snap := g.Snapshot()
	if len(snap.Vertices) != 4 { // a, b, c, abc
		t.Fatalf("expected 4 vertices, got %d", len(snap.Vertices))
	}
	if len(snap.Edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(snap.Edges))
	}
}
