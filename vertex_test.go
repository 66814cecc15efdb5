// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypergraph

import "testing"

func TestParentOccurrencesOrdering(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom('a'), g.InsertAtom('b')
	ab, _, err := g.InsertPattern([]Token{a, b})
	if err != nil {
		t.Fatal(err)
	}
	abab, _, err := g.InsertPattern([]Token{ab, ab})
	if err != nil {
		t.Fatal(err)
	}

	v := g.ExpectVertex(ab.Vertex)
	occs := v.ParentOccurrences()
	if len(occs) != 2 {
		t.Fatalf("expected 2 occurrences of ab within abab, got %d", len(occs))
	}
	if occs[0].Parent != abab.Vertex || occs[0].SubIndex != 0 {
		t.Fatalf("expected first occurrence at subIndex 0, got %v", occs[0])
	}
	if occs[1].Parent != abab.Vertex || occs[1].SubIndex != 1 {
		t.Fatalf("expected second occurrence at subIndex 1, got %v", occs[1])
	}
}

func TestFirstPatternIdMatchesInsertedPattern(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom('a'), g.InsertAtom('b')
	ab, pid, err := g.InsertPattern([]Token{a, b})
	if err != nil {
		t.Fatal(err)
	}

	v := g.ExpectVertex(ab.Vertex)
	got, ok := v.firstPatternId()
	if !ok || got != pid {
		t.Fatalf("firstPatternId() = (%v, %v), want (%v, true)", got, ok, pid)
	}
}

func TestSortedPatternIdsDeterministic(t *testing.T) {
	g := NewGraph()
	a, b, c, d := g.InsertAtom('a'), g.InsertAtom('b'), g.InsertAtom('c'), g.InsertAtom('d')

	root, _, err := g.InsertPattern([]Token{a, b, c, d})
	if err != nil {
		t.Fatal(err)
	}
	ab, _, err := g.InsertPattern([]Token{a, b})
	if err != nil {
		t.Fatal(err)
	}
	cd, _, err := g.InsertPattern([]Token{c, d})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddPattern(root.Vertex, []Token{ab, cd}); err != nil {
		t.Fatal(err)
	}

	v := g.ExpectVertex(root.Vertex)
	ids := v.sortedPatternIds()
	if len(ids) != 2 {
		t.Fatalf("expected 2 patterns on root, got %d", len(ids))
	}
	if ids[0] != 0 || ids[1] != 1 {
		t.Fatalf("expected pattern ids [0,1], got %v", ids)
	}
}
