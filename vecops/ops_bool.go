// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecops

import (
	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/vector"
)

type booleanAndOp struct{ lhs, rhs Operator }

func (op booleanAndOp) Execute(stats *Stats) vector.Vec {
	l := op.lhs.Execute(stats)
	r := op.rhs.Execute(stats)
	return vector.FromBits(bitvec.And(l.Bits(), r.Bits()))
}

type booleanOrOp struct{ lhs, rhs Operator }

func (op booleanOrOp) Execute(stats *Stats) vector.Vec {
	l := op.lhs.Execute(stats)
	r := op.rhs.Execute(stats)
	return vector.FromBits(bitvec.Or(l.Bits(), r.Bits()))
}
