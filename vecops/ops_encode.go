// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecops

import (
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/vector"
)

// encodeStrConstantOp maps a string constant through col's codec at plan
// execution time, so the comparison operator below it never has to touch
// the codebook on the hot path. The child always evaluates to a single
// ConstEnc string value.
type encodeStrConstantOp struct {
	child Operator
	col   *column.Column
}

func (op encodeStrConstantOp) Execute(stats *Stats) vector.Vec {
	v := op.child.Execute(stats)
	codec, _ := op.col.Codec()
	s := v.Constant()
	return vector.FromConstant(codec.EncodeStr(s.S))
}

type encodeIntConstantOp struct {
	child Operator
	col   *column.Column
}

func (op encodeIntConstantOp) Execute(stats *Stats) vector.Vec {
	v := op.child.Execute(stats)
	codec, _ := op.col.Codec()
	i := v.Constant()
	return vector.FromConstant(codec.EncodeInt(i.I))
}
