// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

// Codec is the compact-encoding view of a Column, exposed only when the
// column actually has one (string-dictionary and offset-integer
// columns). It plays the role the teacher's ts.FieldCoder plays for
// on-the-wire encodings, but for the in-memory code-stream encodings
// described in spec.md 4.1.
type Codec interface {
	// EncodingType reports the narrow width (U8, U16, or U32) the code
	// stream is packed at.
	EncodingType() vector.EncodingType

	// CodeCount reports the number of representable code values
	// (codebook size for a dictionary column, max-min+1 for an
	// offset-integer column). max_index for grouping is CodeCount()-1.
	CodeCount() int

	// GetEncoded returns the raw code stream, unfiltered.
	GetEncoded() vector.Vec
	// FilterEncoded returns the code stream restricted to set bits, in
	// row order.
	FilterEncoded(bits *bitvec.Vec) vector.Vec
	// IndexEncoded returns the code stream gathered at the given
	// positions, in the given order.
	IndexEncoded(idx []int) vector.Vec

	// EncodeStr maps a string constant to its code, or to rawval.NullValue()
	// (the sentinel) if the string never appeared in the input. Only
	// meaningful on string-dictionary columns.
	EncodeStr(s string) rawval.Value
	// EncodeInt maps an integer constant to code = value-offset, or to
	// rawval.NullValue() (the sentinel) if the value is out of the
	// encodable range. Only meaningful on offset-integer columns.
	EncodeInt(i int64) rawval.Value

	// Decode converts an encoded Vec (as produced by this codec) into its
	// basic-type view: strings for a dictionary codec, int64 for an
	// offset-integer codec.
	Decode(v vector.Vec) vector.Vec
}

// Orderable is implemented by codecs (string-dictionary columns) whose
// code order does not already match decoded-value order. OrderRanks
// returns code -> ascending rank, letting ORDER BY sort the code stream
// directly instead of materializing every decoded value first.
type Orderable interface {
	OrderRanks() []int32
}

// sentinel is the value EncodeStr/EncodeInt return when a constant does
// not map to any valid code. Using Null rather than an in-band integer
// means comparison operators can short-circuit to an all-false result by
// checking IsNull, regardless of the code stream's bit width, and never
// risk colliding with a real code via integer wraparound.
func sentinel() rawval.Value { return rawval.NullValue() }
