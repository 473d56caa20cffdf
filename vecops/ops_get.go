// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecops

import (
	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

type getDecodeOp struct{ col *column.Column }

func (op getDecodeOp) Execute(stats *Stats) vector.Vec {
	v := op.col.CollectDecoded()
	stats.RowsScanned += v.Len()
	return v
}

type filterDecodeOp struct {
	col  *column.Column
	bits *bitvec.Vec
}

func (op filterDecodeOp) Execute(stats *Stats) vector.Vec {
	stats.RowsScanned += op.col.Rows()
	v := op.col.FilterDecode(op.bits)
	stats.RowsFiltered += v.Len()
	return v
}

type indexDecodeOp struct {
	col *column.Column
	idx []int
}

func (op indexDecodeOp) Execute(stats *Stats) vector.Vec {
	stats.RowsScanned += op.col.Rows()
	v := op.col.IndexDecode(op.idx)
	stats.RowsFiltered += v.Len()
	return v
}

type getEncodedOp struct{ col *column.Column }

func (op getEncodedOp) Execute(stats *Stats) vector.Vec {
	codec, _ := op.col.Codec()
	v := codec.GetEncoded()
	stats.RowsScanned += v.Len()
	return v
}

type filterEncodedOp struct {
	col  *column.Column
	bits *bitvec.Vec
}

func (op filterEncodedOp) Execute(stats *Stats) vector.Vec {
	stats.RowsScanned += op.col.Rows()
	codec, _ := op.col.Codec()
	v := codec.FilterEncoded(op.bits)
	stats.RowsFiltered += v.Len()
	return v
}

type indexEncodedOp struct {
	col *column.Column
	idx []int
}

func (op indexEncodedOp) Execute(stats *Stats) vector.Vec {
	stats.RowsScanned += op.col.Rows()
	codec, _ := op.col.Codec()
	v := codec.IndexEncoded(op.idx)
	stats.RowsFiltered += v.Len()
	return v
}

type constantOp struct{ val rawval.Value }

func (op constantOp) Execute(stats *Stats) vector.Vec {
	return vector.FromConstant(op.val)
}

// decodeOp decodes a child operator's output through the codec that
// produced it, used when a comparison's LHS stays encoded but a caller
// further up the tree (e.g. a projected SELECT column) needs the
// basic-type view.
type decodeOp struct {
	child Operator
	col   *column.Column
}

func (op decodeOp) Execute(stats *Stats) vector.Vec {
	v := op.child.Execute(stats)
	codec, _ := op.col.Codec()
	return codec.Decode(v)
}
