// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package hypergraph provides a compositional hypergraph engine for
// longest-prefix matching over streams of tokens.
//
// Every sequence ever read becomes a vertex; every substructural
// overlap with a pre-existing vertex is preserved as an alternative
// decomposition (child pattern) of the same vertex. A search walks the
// graph two cursors at a time, one advancing through the query and one
// advancing through a candidate vertex's child pattern, escalating to
// parent vertices whenever the query outlives the current candidate's
// width, and decomposing a candidate into its prefix children whenever
// the query is narrower than it.
//
// Graph holds the vertex store: atoms are interned,
// compounds carry one or more child patterns, and parent/child
// symmetry is enforced on every insert. FindAncestor, FindParent and
// FindSequence run the search engine over a query and return a
// SearchResponse describing how the query's longest matched prefix
// relates to the vertex it was found in (EntireRoot, Prefix, Postfix
// or an interior Range),
// together with the trace cache accumulated along the way.
//
// The insert subsystem that grows the graph from a SearchResponse's
// path artifacts is out of scope for this package; Graph only exposes
// the insertion primitives (InsertAtom, InsertPattern, AddPattern,
// InsertPatternWithId, AddPatternWithUpdate) that subsystem is built
// on top of.
package hypergraph
