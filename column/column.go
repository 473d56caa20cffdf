// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column implements the frozen, read-only column segment: the
// decoded view every column exposes, and the optional codec view exposed
// by string-dictionary and offset-integer columns. Columns are immutable
// after Freeze and freely shareable across goroutines.
package column

import (
	"math"
	"strconv"

	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/rawcol"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

// BasicType is the decoded type family of a column or expression.
type BasicType uint8

const (
	TInt BasicType = iota
	TString
	TBoolean
	TNull
)

func (t BasicType) String() string {
	switch t {
	case TInt:
		return "int"
	case TString:
		return "string"
	case TBoolean:
		return "boolean"
	case TNull:
		return "null"
	default:
		return "unknown"
	}
}

type decodedView interface {
	collectDecoded() vector.Vec
	filterDecode(bits *bitvec.Vec) vector.Vec
	indexDecode(idx []int) vector.Vec
}

// Column is an immutable, independently queryable column segment.
type Column struct {
	name  string
	rows  int
	basic BasicType

	impl  decodedView
	codec Codec // nil if this column has no compact encoding
}

// Name returns the column's name.
func (c *Column) Name() string { return c.name }

// Rows returns the column's row count.
func (c *Column) Rows() int { return c.rows }

// BasicType returns the column's decoded basic type.
func (c *Column) BasicType() BasicType { return c.basic }

// Codec returns the column's compact-encoding view, if it has one.
func (c *Column) Codec() (Codec, bool) { return c.codec, c.codec != nil }

// CollectDecoded returns the entire column, decoded.
func (c *Column) CollectDecoded() vector.Vec { return c.impl.collectDecoded() }

// FilterDecode returns the rows where bits is set, decoded, preserving
// row order.
func (c *Column) FilterDecode(bits *bitvec.Vec) vector.Vec { return c.impl.filterDecode(bits) }

// IndexDecode returns the rows at the given positions, in the given
// order, decoded.
func (c *Column) IndexDecode(idx []int) vector.Vec { return c.impl.indexDecode(idx) }

// Freeze finalizes a rawcol.Buffer into an immutable Column, selecting
// the encoding described in spec.md 4.1: all-null becomes a null column,
// all-int is range-scanned and offset-encoded at the narrowest width (or
// kept as raw i64 past 32 bits), all-str becomes a string-dictionary
// column, and mixed is promoted to strings by stringifying integers.
func Freeze(name string, buf *rawcol.Buffer) *Column {
	values := buf.Values()
	switch buf.Classification() {
	case rawcol.AllNull:
		return &Column{name: name, rows: len(values), basic: TNull, impl: &nullColumn{rows: len(values)}}
	case rawcol.AllInt:
		return freezeInt(name, values)
	case rawcol.AllStr:
		return freezeStr(name, values)
	default: // Mixed: promote to strings by stringifying integers.
		return freezeStr(name, stringifyMixed(values))
	}
}

func stringifyMixed(values []rawval.Value) []rawval.Value {
	out := make([]rawval.Value, len(values))
	for i, v := range values {
		switch v.Kind {
		case rawval.Null:
			out[i] = v
		case rawval.Str:
			out[i] = v
		case rawval.Int:
			out[i] = rawval.StrValue(strconv.FormatInt(v.I, 10))
		}
	}
	return out
}

func freezeInt(name string, values []rawval.Value) *Column {
	min, max := int64(math.MaxInt64), int64(math.MinInt64)
	any := false
	for _, v := range values {
		if v.Kind == rawval.Null {
			continue
		}
		any = true
		if v.I < min {
			min = v.I
		}
		if v.I > max {
			max = v.I
		}
	}
	if !any {
		return &Column{name: name, rows: len(values), basic: TNull, impl: &nullColumn{rows: len(values)}}
	}
	span := uint64(max - min)
	var width vector.EncodingType
	switch {
	case span <= 0xFF:
		width = vector.U8
	case span <= 0xFFFF:
		width = vector.U16
	case span <= 0xFFFFFFFF:
		width = vector.U32
	default:
		impl := newRawIntColumn(values)
		return &Column{name: name, rows: len(values), basic: TInt, impl: impl}
	}
	impl := newOffsetColumn(values, min, width)
	return &Column{name: name, rows: len(values), basic: TInt, impl: impl, codec: impl}
}

func freezeStr(name string, values []rawval.Value) *Column {
	impl := newDictColumn(values)
	return &Column{name: name, rows: len(values), basic: TString, impl: impl, codec: impl}
}
