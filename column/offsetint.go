// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

// offsetColumn stores i64 values as value-offset in the narrowest
// unsigned width such that max-min fits, mirroring
// ruba::columns::integers::IntegerOffsetColumn generalized over width.
//
// A null mixed into otherwise-integer data is conflated with code 0 —
// it decodes back as the column's minimum value — per the documented
// resolution of spec.md's null-handling open question. A column of
// nothing but nulls freezes to a dedicated null column instead (see
// Freeze), so this only affects nulls interleaved with real integers.
type offsetColumn struct {
	offset int64
	width  vector.EncodingType // U8, U16, or U32
	u8     []uint8
	u16    []uint16
	u32    []uint32
}

// newOffsetColumn builds an offsetColumn for values known to fit; the
// caller (Freeze) has already checked max-min against the chosen width.
func newOffsetColumn(values []rawval.Value, min int64, width vector.EncodingType) *offsetColumn {
	c := &offsetColumn{offset: min, width: width}
	codes := make([]int64, len(values))
	for i, v := range values {
		if v.Kind == rawval.Null {
			continue
		}
		codes[i] = v.I - min
	}
	switch width {
	case vector.U8:
		c.u8 = make([]uint8, len(codes))
		for i, v := range codes {
			c.u8[i] = uint8(v)
		}
	case vector.U16:
		c.u16 = make([]uint16, len(codes))
		for i, v := range codes {
			c.u16[i] = uint16(v)
		}
	case vector.U32:
		c.u32 = make([]uint32, len(codes))
		for i, v := range codes {
			c.u32[i] = uint32(v)
		}
	}
	return c
}

func (c *offsetColumn) EncodingType() vector.EncodingType { return c.width }

func (c *offsetColumn) CodeCount() int {
	switch c.width {
	case vector.U8:
		return maxUint8Code(c.u8) + 1
	case vector.U16:
		return maxUint16Code(c.u16) + 1
	default:
		return maxUint32Code(c.u32) + 1
	}
}

func maxUint8Code(data []uint8) int {
	m := 0
	for _, v := range data {
		if int(v) > m {
			m = int(v)
		}
	}
	return m
}
func maxUint16Code(data []uint16) int {
	m := 0
	for _, v := range data {
		if int(v) > m {
			m = int(v)
		}
	}
	return m
}
func maxUint32Code(data []uint32) int {
	m := 0
	for _, v := range data {
		if int(v) > m {
			m = int(v)
		}
	}
	return m
}

func (c *offsetColumn) GetEncoded() vector.Vec {
	switch c.width {
	case vector.U8:
		return vector.FromU8(c.u8, c.offset)
	case vector.U16:
		return vector.FromU16(c.u16, c.offset)
	default:
		return vector.FromU32(c.u32, c.offset)
	}
}

func (c *offsetColumn) FilterEncoded(bits *bitvec.Vec) vector.Vec {
	switch c.width {
	case vector.U8:
		return vector.FromU8(filterU8(c.u8, bits), c.offset)
	case vector.U16:
		return vector.FromU16(filterU16(c.u16, bits), c.offset)
	default:
		return vector.FromU32(filterU32(c.u32, bits), c.offset)
	}
}

func (c *offsetColumn) IndexEncoded(idx []int) vector.Vec {
	switch c.width {
	case vector.U8:
		return vector.FromU8(indexU8(c.u8, idx), c.offset)
	case vector.U16:
		return vector.FromU16(indexU16(c.u16, idx), c.offset)
	default:
		return vector.FromU32(indexU32(c.u32, idx), c.offset)
	}
}

func (c *offsetColumn) EncodeStr(s string) rawval.Value { return sentinel() }

func (c *offsetColumn) EncodeInt(i int64) rawval.Value {
	v := i - c.offset
	if v < 0 {
		return sentinel()
	}
	switch c.width {
	case vector.U8:
		if v > 0xFF {
			return sentinel()
		}
	case vector.U16:
		if v > 0xFFFF {
			return sentinel()
		}
	case vector.U32:
		if v > 0xFFFFFFFF {
			return sentinel()
		}
	}
	return rawval.IntValue(v)
}

// Decode resolves code+offset back to i64. Since the encoded Vec already
// carries the offset (set at GetEncoded/FilterEncoded/IndexEncoded time),
// this is the same arithmetic vector.Vec.Decode performs generically;
// offsetColumn.Decode exists to satisfy the Codec interface uniformly
// with dictColumn.Decode, which cannot reuse the generic path.
func (c *offsetColumn) Decode(v vector.Vec) vector.Vec {
	if v.Type() == vector.ConstEnc {
		return v
	}
	return v.Decode()
}

func (c *offsetColumn) collectDecoded() vector.Vec { return c.Decode(c.GetEncoded()) }
func (c *offsetColumn) filterDecode(bits *bitvec.Vec) vector.Vec {
	return c.Decode(c.FilterEncoded(bits))
}
func (c *offsetColumn) indexDecode(idx []int) vector.Vec { return c.Decode(c.IndexEncoded(idx)) }
