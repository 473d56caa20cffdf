// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

// rawIntColumn is the fallback representation when max-min exceeds 32
// bits: an uncompressed slice of i64 with no codec view, mirroring
// ruba::columns::integers::IntegerColumn.
//
// A null mixed into otherwise-integer data is conflated with the zero
// value — it decodes back as int64(0) — per the documented resolution
// of spec.md's null-handling open question. A column of nothing but
// nulls freezes to a dedicated null column instead (see Freeze), so
// this only affects nulls interleaved with real integers.
type rawIntColumn struct {
	values []int64
}

func newRawIntColumn(values []rawval.Value) *rawIntColumn {
	c := &rawIntColumn{values: make([]int64, len(values))}
	for i, v := range values {
		if v.Kind == rawval.Null {
			continue
		}
		c.values[i] = v.I
	}
	return c
}

func (c *rawIntColumn) collectDecoded() vector.Vec { return vector.FromI64(c.values) }

func (c *rawIntColumn) filterDecode(bits *bitvec.Vec) vector.Vec {
	return vector.FromI64(filterI64(c.values, bits))
}

func (c *rawIntColumn) indexDecode(idx []int) vector.Vec {
	return vector.FromI64(indexI64(c.values, idx))
}
