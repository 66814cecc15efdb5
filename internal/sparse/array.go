// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// package sparse implements a generic sparse array with popcount
// compression, keyed by a small dense integer.
//
// The graph package uses it to hold a vertex's child patterns, keyed
// by PatternId: the bitset answers membership, the slice holds the
// payloads.
package sparse

import (
	"github.com/mankinskin/context-engine/internal/bitset"
)

// Array, a generic implementation of a sparse array
// with popcount compression and payload T.
type Array[T any] struct {
	Bits  bitset.BitSet
	Items []T
}

// Get the value at i from sparse array.
//
// example: Array.Get(5) -> Array.Items[1]
//
//	                   ⬇
//	BitSet: [0|0|1|0|0|1|0|1|...] <- 3 bits set
//	Items:  [*|*|*]               <- len(Items) = 3
//	           ⬆
func (s *Array[T]) Get(i uint) (value T, ok bool) {
	if s.Bits.Test(i) {
		return s.Items[s.Bits.Rank0(i)], true
	}
	return
}

// MustGet, use it only after a successful test
// or the behavior is undefined, maybe it panics.
func (s *Array[T]) MustGet(i uint) T {
	return s.Items[s.Bits.Rank0(i)]
}

// Len returns the number of items in sparse array.
func (s *Array[T]) Len() int {
	return len(s.Items)
}

// InsertAt a value at i into the sparse array.
// If the value already exists, overwrite it with val and return true.
func (s *Array[T]) InsertAt(i uint, value T) (exists bool) {
	if s.Len() != 0 && s.Bits.Test(i) {
		s.Items[s.Bits.Rank0(i)] = value
		return true
	}

	s.Bits.Set(i)
	s.insertItem(s.Bits.Rank0(i), value)

	return false
}

// DeleteAt a value at i from the sparse array, zeroes the tail.
func (s *Array[T]) DeleteAt(i uint) (value T, exists bool) {
	if s.Len() == 0 || !s.Bits.Test(i) {
		return
	}

	rank0 := s.Bits.Rank0(i)
	value = s.Items[rank0]

	s.deleteItem(rank0)
	s.Bits.Clear(i)

	return value, true
}

// Keys returns the occupied dense keys in ascending order.
func (s *Array[T]) Keys() []uint {
	keys := make([]uint, 0, s.Len())
	for i, ok := s.Bits.NextSet(0); ok; i, ok = s.Bits.NextSet(i + 1) {
		keys = append(keys, i)
	}
	return keys
}

// insertItem inserts the item at index i, shift the rest one pos right
//
// It panics if i is out of range.
func (s *Array[T]) insertItem(i int, item T) {
	if len(s.Items) < cap(s.Items) {
		s.Items = s.Items[:len(s.Items)+1] // fast resize, no alloc
	} else {
		var zero T
		s.Items = append(s.Items, zero) // append one item, mostly enlarge cap by more than one item
	}

	copy(s.Items[i+1:], s.Items[i:])
	s.Items[i] = item
}

// deleteItem at index i, shift the rest one pos left and clears the tail item
//
// It panics if i is out of range.
func (s *Array[T]) deleteItem(i int) {
	var zero T

	nl := len(s.Items) - 1           // new len
	copy(s.Items[i:], s.Items[i+1:]) // overwrite item at [i]

	s.Items[nl] = zero     // clear the tail item
	s.Items = s.Items[:nl] // new len, keep cap is unchanged
}
