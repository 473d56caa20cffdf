// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"sort"

	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

// dictColumn is a string-dictionary encoded column: a codebook of
// distinct strings in first-seen order, plus a packed code stream of the
// narrowest unsigned width that indexes into it.
//
// A null mixed into otherwise-string data is conflated with code 0 —
// it decodes back as whichever string first occupied that code — per
// the documented resolution of spec.md's null-handling open question.
// A column of nothing but nulls freezes to a dedicated null column
// instead (see Freeze), so this only affects nulls interleaved with
// real strings.
type dictColumn struct {
	codebook []string
	lookup   map[string]int // string -> code, for EncodeStr and freeze-time dedup
	ranks    []int32        // code -> rank in ascending lexicographic order, for order-preserving sort

	width vector.EncodingType // U8, U16, or U32
	u8    []uint8
	u16   []uint16
	u32   []uint32
}

func newDictColumn(values []rawval.Value) *dictColumn {
	codebook := make([]string, 0)
	lookup := make(map[string]int)
	codes := make([]int, len(values))
	for i, v := range values {
		if v.Kind == rawval.Null {
			codes[i] = 0
			continue
		}
		code, ok := lookup[v.S]
		if !ok {
			code = len(codebook)
			codebook = append(codebook, v.S)
			lookup[v.S] = code
		}
		codes[i] = code
	}

	d := &dictColumn{codebook: codebook, lookup: lookup}
	d.packCodes(codes)
	d.computeRanks()
	return d
}

func (d *dictColumn) packCodes(codes []int) {
	k := len(d.codebook)
	switch {
	case k-1 <= 0xFF:
		d.width = vector.U8
		d.u8 = make([]uint8, len(codes))
		for i, c := range codes {
			d.u8[i] = uint8(c)
		}
	case k-1 <= 0xFFFF:
		d.width = vector.U16
		d.u16 = make([]uint16, len(codes))
		for i, c := range codes {
			d.u16[i] = uint16(c)
		}
	default:
		d.width = vector.U32
		d.u32 = make([]uint32, len(codes))
		for i, c := range codes {
			d.u32[i] = uint32(c)
		}
	}
}

func (d *dictColumn) computeRanks() {
	order := make([]int, len(d.codebook))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return d.codebook[order[i]] < d.codebook[order[j]] })
	d.ranks = make([]int32, len(d.codebook))
	for rank, code := range order {
		d.ranks[code] = int32(rank)
	}
}

// OrderRanks returns the code->rank table used by the query driver to
// order-preservingly sort a dictionary-encoded column without
// materializing every decoded string: rank[code] gives the position code
// would occupy if the codebook were sorted ascending.
func (d *dictColumn) OrderRanks() []int32 { return d.ranks }

func (d *dictColumn) EncodingType() vector.EncodingType { return d.width }

func (d *dictColumn) CodeCount() int { return len(d.codebook) }

func (d *dictColumn) GetEncoded() vector.Vec {
	switch d.width {
	case vector.U8:
		return vector.FromU8(d.u8, 0)
	case vector.U16:
		return vector.FromU16(d.u16, 0)
	default:
		return vector.FromU32(d.u32, 0)
	}
}

func (d *dictColumn) FilterEncoded(bits *bitvec.Vec) vector.Vec {
	switch d.width {
	case vector.U8:
		return vector.FromU8(filterU8(d.u8, bits), 0)
	case vector.U16:
		return vector.FromU16(filterU16(d.u16, bits), 0)
	default:
		return vector.FromU32(filterU32(d.u32, bits), 0)
	}
}

func (d *dictColumn) IndexEncoded(idx []int) vector.Vec {
	switch d.width {
	case vector.U8:
		return vector.FromU8(indexU8(d.u8, idx), 0)
	case vector.U16:
		return vector.FromU16(indexU16(d.u16, idx), 0)
	default:
		return vector.FromU32(indexU32(d.u32, idx), 0)
	}
}

func (d *dictColumn) EncodeStr(s string) rawval.Value {
	code, ok := d.lookup[s]
	if !ok {
		return sentinel()
	}
	return rawval.IntValue(int64(code))
}

func (d *dictColumn) EncodeInt(i int64) rawval.Value { return sentinel() }

func (d *dictColumn) Decode(v vector.Vec) vector.Vec {
	switch v.Type() {
	case vector.U8:
		codes, _ := v.U8()
		out := make([]string, len(codes))
		for i, c := range codes {
			out[i] = d.codebook[c]
		}
		return vector.FromStr(out)
	case vector.U16:
		codes, _ := v.U16()
		out := make([]string, len(codes))
		for i, c := range codes {
			out[i] = d.codebook[c]
		}
		return vector.FromStr(out)
	case vector.U32:
		codes, _ := v.U32()
		out := make([]string, len(codes))
		for i, c := range codes {
			out[i] = d.codebook[c]
		}
		return vector.FromStr(out)
	case vector.ConstEnc:
		c := v.Constant()
		if c.IsNull() {
			return v
		}
		return vector.FromConstant(rawval.StrValue(d.codebook[c.I]))
	default:
		return v
	}
}

func (d *dictColumn) collectDecoded() vector.Vec {
	return d.Decode(d.GetEncoded())
}

func (d *dictColumn) filterDecode(bits *bitvec.Vec) vector.Vec {
	return d.Decode(d.FilterEncoded(bits))
}

func (d *dictColumn) indexDecode(idx []int) vector.Vec {
	return d.Decode(d.IndexEncoded(idx))
}
