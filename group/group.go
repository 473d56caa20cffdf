// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package group implements dense small-cardinality grouping and
// accumulation, per spec.md 4.4: a u8/u16 encoded column's code stream
// doubles as the group id, so accumulation is a direct array index with
// no hashing.
package group

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/vector"
)

// Count accumulates COUNT(*) into a dense array of length maxIndex+1.
// The group id of a row is its raw code; the vector's offset is not
// added.
func Count(keys vector.Vec, maxIndex int) []int64 {
	acc := make([]int64, maxIndex+1)
	n := keys.Len()
	off := keys.Offset()
	for i := 0; i < n; i++ {
		acc[keys.IntAt(i)-off]++
	}
	return acc
}

// Sum accumulates SUM(values) into a dense array of length maxIndex+1,
// keyed by raw code as in Count. keys and values must have equal length.
func Sum(keys, values vector.Vec, maxIndex int) []int64 {
	acc := make([]int64, maxIndex+1)
	n := keys.Len()
	off := keys.Offset()
	for i := 0; i < n; i++ {
		acc[keys.IntAt(i)-off] += values.IntAt(i)
	}
	return acc
}

// DecodeKeys decodes every group id in [0, maxIndex] through codec,
// producing the one decoded key per group that the driver needs to both
// sort groups and label output rows.
func DecodeKeys(codec column.Codec, maxIndex int) vector.Vec {
	// An offset-integer codec decodes code+offset, so the synthesized code
	// vector carries the same offset the codec's own code stream does.
	off := codec.GetEncoded().Offset()
	switch codec.EncodingType() {
	case vector.U8:
		codes := make([]uint8, maxIndex+1)
		for i := range codes {
			codes[i] = uint8(i)
		}
		return codec.Decode(vector.FromU8(codes, off))
	case vector.U16:
		codes := make([]uint16, maxIndex+1)
		for i := range codes {
			codes[i] = uint16(i)
		}
		return codec.Decode(vector.FromU16(codes, off))
	default:
		panic(errors.AssertionFailedf("group: dense grouping requires u8 or u16 codes, got %s", codec.EncodingType()))
	}
}

// SortIndices returns the permutation of [0, decodedKeys.Len()) that puts
// decodedKeys in ascending order, stably.
func SortIndices(decodedKeys vector.Vec) []int {
	n := decodedKeys.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	switch decodedKeys.Type() {
	case vector.Raw64:
		data := decodedKeys.I64()
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(data[a], data[b]) })
	case vector.StrEnc:
		data := decodedKeys.Str()
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(data[a], data[b]) })
	default:
		panic(errors.AssertionFailedf("group: cannot sort group keys of encoding %s", decodedKeys.Type()))
	}
	return idx
}

// PermuteI64 applies order to vals, gathering vals[order[i]] into
// position i.
func PermuteI64(vals []int64, order []int) []int64 {
	out := make([]int64, len(order))
	for i, o := range order {
		out[i] = vals[o]
	}
	return out
}

// PermuteVec gathers a decoded group-key vector (Raw64 or StrEnc) by
// order, the same way PermuteI64 gathers an aggregate accumulator.
func PermuteVec(v vector.Vec, order []int) vector.Vec {
	switch v.Type() {
	case vector.Raw64:
		return vector.FromI64(PermuteI64(v.I64(), order))
	case vector.StrEnc:
		data := v.Str()
		out := make([]string, len(order))
		for i, o := range order {
			out[i] = data[o]
		}
		return vector.FromStr(out)
	default:
		panic(errors.AssertionFailedf("group: cannot permute vector of encoding %s", v.Type()))
	}
}
