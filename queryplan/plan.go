// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queryplan builds the expression-tree-shaped query plan
// described in spec.md 4.2: a tree of plan Node values annotated with a
// Type (element basic type + encoding). The plan tree is data only; it
// is lowered into an executable operator tree by package vecops.
package queryplan

import (
	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

// Node is one plan-tree node. The concrete types below are the closed
// set named in spec.md 4.3's operator catalog; Node itself carries no
// behavior; lowering to an executable form is vecops.Build's job.
type Node interface {
	isNode()
}

type GetDecode struct{ Col *column.Column }
type FilterDecode struct {
	Col  *column.Column
	Bits *bitvec.Vec
}
type IndexDecode struct {
	Col *column.Column
	Idx []int
}
type GetEncoded struct{ Col *column.Column }
type FilterEncoded struct {
	Col  *column.Column
	Bits *bitvec.Vec
}
type IndexEncoded struct {
	Col *column.Column
	Idx []int
}
type ConstantNode struct{ Val rawval.Value }
type DecodeNode struct {
	Child Node
	Col   *column.Column // codec source
}
type EncodeStrConstant struct {
	Child Node
	Col   *column.Column
}
type EncodeIntConstant struct {
	Child Node
	Col   *column.Column
}
type LessThanVS struct {
	Width    vector.EncodingType
	LHS, RHS Node
}
type EqualsVS struct {
	Width    vector.EncodingType
	LHS, RHS Node
}
type AndNode struct{ LHS, RHS Node }
type OrNode struct{ LHS, RHS Node }

func (GetDecode) isNode()         {}
func (FilterDecode) isNode()      {}
func (IndexDecode) isNode()       {}
func (GetEncoded) isNode()        {}
func (FilterEncoded) isNode()     {}
func (IndexEncoded) isNode()      {}
func (ConstantNode) isNode()      {}
func (DecodeNode) isNode()        {}
func (EncodeStrConstant) isNode() {}
func (EncodeIntConstant) isNode() {}
func (LessThanVS) isNode()        {}
func (EqualsVS) isNode()          {}
func (AndNode) isNode()           {}
func (OrNode) isNode()            {}
