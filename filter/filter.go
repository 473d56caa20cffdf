// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter implements the plan-time Filter value threaded through
// query-plan construction: no filter, a bit-vector selecting rows, or an
// explicit (possibly reordering) index list. Filters are shared by
// reference among the plan nodes of a single query and are never mutated
// after being handed to a child node.
package filter

import "github.com/solidcoredata/rook/bitvec"

// Kind tags which field of a Filter is populated.
type Kind uint8

const (
	None Kind = iota
	BitVec
	Indices
)

// Filter is the plan-time value describing which rows (and in what
// order) a query-plan node should act on.
type Filter struct {
	Kind  Kind
	Bits  *bitvec.Vec
	Index []int
}

// NoneFilter returns the trivially-true filter.
func NoneFilter() Filter { return Filter{Kind: None} }

// FromBits wraps a bit-vector filter.
func FromBits(b *bitvec.Vec) Filter { return Filter{Kind: BitVec, Bits: b} }

// FromIndices wraps an explicit index-list filter.
func FromIndices(idx []int) Filter { return Filter{Kind: Indices, Index: idx} }
