// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecops

import (
	"github.com/cockroachdb/errors"

	"github.com/solidcoredata/rook/queryplan"
)

// Build lowers a queryplan.Node tree into an executable Operator tree.
// Every comparison and boolean combinator node is specialized here, once,
// on its static width/kind; Execute never re-inspects the plan.
func Build(node queryplan.Node) Operator {
	switch n := node.(type) {
	case queryplan.GetDecode:
		return getDecodeOp{col: n.Col}
	case queryplan.FilterDecode:
		return filterDecodeOp{col: n.Col, bits: n.Bits}
	case queryplan.IndexDecode:
		return indexDecodeOp{col: n.Col, idx: n.Idx}
	case queryplan.GetEncoded:
		return getEncodedOp{col: n.Col}
	case queryplan.FilterEncoded:
		return filterEncodedOp{col: n.Col, bits: n.Bits}
	case queryplan.IndexEncoded:
		return indexEncodedOp{col: n.Col, idx: n.Idx}
	case queryplan.ConstantNode:
		return constantOp{val: n.Val}
	case queryplan.DecodeNode:
		return decodeOp{child: Build(n.Child), col: n.Col}
	case queryplan.EncodeStrConstant:
		return encodeStrConstantOp{child: Build(n.Child), col: n.Col}
	case queryplan.EncodeIntConstant:
		return encodeIntConstantOp{child: Build(n.Child), col: n.Col}
	case queryplan.LessThanVS:
		return compareOp{lhs: Build(n.LHS), rhs: Build(n.RHS), cmp: buildLess(n.Width)}
	case queryplan.EqualsVS:
		return compareOp{lhs: Build(n.LHS), rhs: Build(n.RHS), cmp: buildEquals(n.Width)}
	case queryplan.AndNode:
		return booleanAndOp{lhs: Build(n.LHS), rhs: Build(n.RHS)}
	case queryplan.OrNode:
		return booleanOrOp{lhs: Build(n.LHS), rhs: Build(n.RHS)}
	default:
		panic(errors.AssertionFailedf("vecops: unhandled plan node %T", node))
	}
}
