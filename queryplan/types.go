// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryplan

import (
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

// Type is the type descriptor attached to every plan node: basic type,
// physical encoding, whether the value is a single broadcast scalar, and
// (when the node is encoded) a back-reference to the codec that produced
// it, per spec.md 3.
type Type struct {
	Basic    column.BasicType
	Encoding vector.EncodingType
	IsScalar bool
	Codec    column.Codec // nil unless Encoding is a compact code stream
}

// IsEncoded reports whether this type carries a compact codec.
func (t Type) IsEncoded() bool { return t.Codec != nil }

func decodedEncodingFor(basic column.BasicType) vector.EncodingType {
	switch basic {
	case column.TString:
		return vector.StrEnc
	case column.TNull:
		return vector.NullRun
	default:
		return vector.Raw64
	}
}

func scalarType(v rawval.Value) Type {
	var basic column.BasicType
	switch v.Kind {
	case rawval.Null:
		basic = column.TNull
	case rawval.Int:
		basic = column.TInt
	case rawval.Str:
		basic = column.TString
	}
	return Type{Basic: basic, Encoding: vector.ConstEnc, IsScalar: true}
}

// BoolType is the output type of every comparison and boolean combinator.
func BoolType() Type {
	return Type{Basic: column.TBoolean, Encoding: vector.BoolEnc}
}
