// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecops

import (
	"github.com/cockroachdb/errors"

	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/vector"
)

// compareFn evaluates a binary predicate over a vector and a broadcast
// scalar, returning a packed bit-vector. lower.go selects the correct
// compareFn once, at plan-build time, based on the comparison's static
// width; Execute never re-dispatches on the runtime Vec tag.
type compareFn func(lhs, rhs vector.Vec) vector.Vec

type compareOp struct {
	lhs, rhs Operator
	cmp      compareFn
}

func (op compareOp) Execute(stats *Stats) vector.Vec {
	l := op.lhs.Execute(stats)
	r := op.rhs.Execute(stats)
	return op.cmp(l, r)
}

// buildLess returns the specialized less-than comparator for width, per
// spec.md 4.3's requirement that comparisons for encoded columns operate
// directly on codes (order-preserving modulo a constant offset) rather
// than decoding first.
func buildLess(width vector.EncodingType) compareFn {
	switch width {
	case vector.Raw64:
		return lessRaw64
	case vector.U8:
		return lessU8
	case vector.U16:
		return lessU16
	case vector.U32:
		return lessU32
	default:
		panic(errors.AssertionFailedf("vecops: less-than unsupported for width %s", width))
	}
}

// buildEquals returns the specialized equality comparator for width.
func buildEquals(width vector.EncodingType) compareFn {
	switch width {
	case vector.Raw64:
		return equalsRaw64
	case vector.U8:
		return equalsU8
	case vector.U16:
		return equalsU16
	case vector.U32:
		return equalsU32
	case vector.StrEnc:
		return equalsStr
	default:
		panic(errors.AssertionFailedf("vecops: equals unsupported for width %s", width))
	}
}

func allFalse(n int) vector.Vec { return vector.FromBits(bitvec.New(n)) }

func lessRaw64(lhs, rhs vector.Vec) vector.Vec {
	data := lhs.I64()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(data))
	}
	out := bitvec.New(len(data))
	for i, v := range data {
		out.Set(i, v < c.I)
	}
	return vector.FromBits(out)
}

func lessU8(lhs, rhs vector.Vec) vector.Vec {
	codes, _ := lhs.U8()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(codes))
	}
	out := bitvec.New(len(codes))
	for i, v := range codes {
		out.Set(i, int64(v) < c.I)
	}
	return vector.FromBits(out)
}

func lessU16(lhs, rhs vector.Vec) vector.Vec {
	codes, _ := lhs.U16()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(codes))
	}
	out := bitvec.New(len(codes))
	for i, v := range codes {
		out.Set(i, int64(v) < c.I)
	}
	return vector.FromBits(out)
}

func lessU32(lhs, rhs vector.Vec) vector.Vec {
	codes, _ := lhs.U32()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(codes))
	}
	out := bitvec.New(len(codes))
	for i, v := range codes {
		out.Set(i, int64(v) < c.I)
	}
	return vector.FromBits(out)
}

func equalsRaw64(lhs, rhs vector.Vec) vector.Vec {
	data := lhs.I64()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(data))
	}
	out := bitvec.New(len(data))
	for i, v := range data {
		out.Set(i, v == c.I)
	}
	return vector.FromBits(out)
}

func equalsU8(lhs, rhs vector.Vec) vector.Vec {
	codes, _ := lhs.U8()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(codes))
	}
	out := bitvec.New(len(codes))
	for i, v := range codes {
		out.Set(i, int64(v) == c.I)
	}
	return vector.FromBits(out)
}

func equalsU16(lhs, rhs vector.Vec) vector.Vec {
	codes, _ := lhs.U16()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(codes))
	}
	out := bitvec.New(len(codes))
	for i, v := range codes {
		out.Set(i, int64(v) == c.I)
	}
	return vector.FromBits(out)
}

func equalsU32(lhs, rhs vector.Vec) vector.Vec {
	codes, _ := lhs.U32()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(codes))
	}
	out := bitvec.New(len(codes))
	for i, v := range codes {
		out.Set(i, int64(v) == c.I)
	}
	return vector.FromBits(out)
}

func equalsStr(lhs, rhs vector.Vec) vector.Vec {
	data := lhs.Str()
	c := rhs.Constant()
	if c.IsNull() {
		return allFalse(len(data))
	}
	out := bitvec.New(len(data))
	for i, v := range data {
		out.Set(i, v == c.S)
	}
	return vector.FromBits(out)
}
