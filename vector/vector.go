// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements TypedVec, the tagged runtime vector that
// flows between vecops.Operator instances. A Vec is either borrowed from
// a column (decoded-dictionary strings, encoded code streams) or owned
// (filter results, decoded projections, aggregation accumulators); the
// distinction only matters for whether the backing slice may be mutated
// in place, which operators never do once a Vec has been handed to a
// caller.
package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/rawval"
)

// EncodingType tags which payload field of a Vec is populated.
type EncodingType uint8

const (
	// Raw64 is an undecorated slice of int64.
	Raw64 EncodingType = iota
	// U32, U16, U8 are narrow unsigned code/offset streams, order-preserving
	// modulo the Offset field (decoded value = int64(code) + Offset).
	U32
	U16
	U8
	// StrEnc is a slice of (possibly borrowed) strings.
	StrEnc
	// BoolEnc is a packed bit-vector, the result type of all predicates.
	BoolEnc
	// NullRun represents N consecutive nulls without materializing them.
	NullRun
	// ConstEnc is a single scalar value broadcast over the batch.
	ConstEnc
	// MixedRaw is a slice of rawval.Value, used only for constant-expression
	// plumbing and never produced by bulk column scans.
	MixedRaw
)

func (t EncodingType) String() string {
	switch t {
	case Raw64:
		return "i64"
	case U32:
		return "u32"
	case U16:
		return "u16"
	case U8:
		return "u8"
	case StrEnc:
		return "str"
	case BoolEnc:
		return "bool"
	case NullRun:
		return "null"
	case ConstEnc:
		return "const"
	case MixedRaw:
		return "mixed"
	default:
		return "unknown"
	}
}

// Vec is the tagged union carried between operators.
type Vec struct {
	typ EncodingType

	i64 []int64
	u32 []uint32
	u16 []uint16
	u8  []uint8
	// offset is added back to narrow integer codes to produce the
	// order-preserving decoded value: decoded[i] = int64(code[i]) + offset.
	offset int64

	strs []string
	bits *bitvec.Vec

	nullRunLen int

	constant Value

	mixed []Value
}

// Value re-exports rawval.Value so callers of this package don't need to
// import rawval directly for constant handling.
type Value = rawval.Value

// Type returns the encoding tag of v.
func (v Vec) Type() EncodingType { return v.typ }

// Len returns the number of logical rows represented by v.
func (v Vec) Len() int {
	switch v.typ {
	case Raw64:
		return len(v.i64)
	case U32:
		return len(v.u32)
	case U16:
		return len(v.u16)
	case U8:
		return len(v.u8)
	case StrEnc:
		return len(v.strs)
	case BoolEnc:
		return v.bits.Len()
	case NullRun:
		return v.nullRunLen
	case ConstEnc:
		return 1
	case MixedRaw:
		return len(v.mixed)
	default:
		return 0
	}
}

// FromI64 wraps an owned or borrowed []int64.
func FromI64(data []int64) Vec { return Vec{typ: Raw64, i64: data} }

// FromU32 wraps a narrow code stream with the offset needed to recover
// the original i64 values (decoded[i] = int64(data[i]) + offset).
func FromU32(data []uint32, offset int64) Vec { return Vec{typ: U32, u32: data, offset: offset} }

// FromU16 is the 16-bit analog of FromU32.
func FromU16(data []uint16, offset int64) Vec { return Vec{typ: U16, u16: data, offset: offset} }

// FromU8 is the 8-bit analog of FromU32.
func FromU8(data []uint8, offset int64) Vec { return Vec{typ: U8, u8: data, offset: offset} }

// FromStr wraps a (possibly borrowed) []string.
func FromStr(data []string) Vec { return Vec{typ: StrEnc, strs: data} }

// FromBits wraps a bit-vector, the universal predicate result type.
func FromBits(b *bitvec.Vec) Vec { return Vec{typ: BoolEnc, bits: b} }

// FromNullRun represents n consecutive null rows without allocating.
func FromNullRun(n int) Vec { return Vec{typ: NullRun, nullRunLen: n} }

// FromConstant wraps a single scalar value broadcast to every row it is
// compared against.
func FromConstant(v Value) Vec { return Vec{typ: ConstEnc, constant: v} }

// FromMixed wraps a slice of heterogeneous raw values.
func FromMixed(data []Value) Vec { return Vec{typ: MixedRaw, mixed: data} }

// Offset returns the order-preserving offset for narrow integer vectors.
func (v Vec) Offset() int64 { return v.offset }

// I64 returns the backing []int64; panics if v is not Raw64.
func (v Vec) I64() []int64 {
	mustType(v, Raw64)
	return v.i64
}

// U32 returns the backing []uint32 and its offset; panics if v is not U32.
func (v Vec) U32() ([]uint32, int64) {
	mustType(v, U32)
	return v.u32, v.offset
}

// U16 returns the backing []uint16 and its offset; panics if v is not U16.
func (v Vec) U16() ([]uint16, int64) {
	mustType(v, U16)
	return v.u16, v.offset
}

// U8 returns the backing []uint8 and its offset; panics if v is not U8.
func (v Vec) U8() ([]uint8, int64) {
	mustType(v, U8)
	return v.u8, v.offset
}

// Str returns the backing []string; panics if v is not StrEnc.
func (v Vec) Str() []string {
	mustType(v, StrEnc)
	return v.strs
}

// Bits returns the backing bit-vector; panics if v is not BoolEnc.
func (v Vec) Bits() *bitvec.Vec {
	mustType(v, BoolEnc)
	return v.bits
}

// Constant returns the scalar value; panics if v is not ConstEnc.
func (v Vec) Constant() Value {
	mustType(v, ConstEnc)
	return v.constant
}

// Mixed returns the backing []Value; panics if v is not MixedRaw.
func (v Vec) Mixed() []Value {
	mustType(v, MixedRaw)
	return v.mixed
}

func mustType(v Vec, want EncodingType) {
	if v.typ != want {
		panic(errors.AssertionFailedf("vector: expected %s, got %s", want, v.typ))
	}
}

// Decode materializes v into its basic-type view: a Raw64, StrEnc,
// NullRun, or ConstEnc vector with all offsets/codes resolved. Decode is
// idempotent for already-decoded vectors.
func (v Vec) Decode() Vec {
	switch v.typ {
	case Raw64, StrEnc, NullRun, ConstEnc, MixedRaw, BoolEnc:
		return v
	case U32:
		out := make([]int64, len(v.u32))
		for i, c := range v.u32 {
			out[i] = int64(c) + v.offset
		}
		return FromI64(out)
	case U16:
		out := make([]int64, len(v.u16))
		for i, c := range v.u16 {
			out[i] = int64(c) + v.offset
		}
		return FromI64(out)
	case U8:
		out := make([]int64, len(v.u8))
		for i, c := range v.u8 {
			out[i] = int64(c) + v.offset
		}
		return FromI64(out)
	default:
		panic(errors.AssertionFailedf("vector: cannot decode encoding %s", v.typ))
	}
}

// IntAt returns the int64 value at row i for any integer-encoded vector
// (Raw64, U32, U16, U8) or the broadcast value for ConstEnc.
func (v Vec) IntAt(i int) int64 {
	switch v.typ {
	case Raw64:
		return v.i64[i]
	case U32:
		return int64(v.u32[i]) + v.offset
	case U16:
		return int64(v.u16[i]) + v.offset
	case U8:
		return int64(v.u8[i]) + v.offset
	case ConstEnc:
		return v.constant.I
	default:
		panic(errors.AssertionFailedf("vector: IntAt unsupported for encoding %s", v.typ))
	}
}
