// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryplan

import (
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/filter"
	"github.com/solidcoredata/rook/queryerr"
	"github.com/solidcoredata/rook/vector"
)

// CreateQueryPlan lowers an expression AST node into a plan Node tree
// under the given column source and ambient filter, per spec.md 4.2.
// Type checking happens here, before any execution: mismatched operand
// types or unsupported constructs return an error instead of a plan.
func CreateQueryPlan(expr Expr, cols map[string]*column.Column, f filter.Filter) (Node, Type, error) {
	switch e := expr.(type) {
	case ColNameExpr:
		return planColumnRef(e, cols, f)
	case ConstExpr:
		return ConstantNode{Val: e.Val}, scalarType(e.Val), nil
	case FuncExpr:
		switch e.Kind {
		case LT:
			return planComparison(e, cols, f, false)
		case Equals:
			return planComparison(e, cols, f, true)
		case And:
			return planBoolean(e, cols, f, true)
		case Or:
			return planBoolean(e, cols, f, false)
		}
	}
	return nil, Type{}, queryerr.Newf(queryerr.UnsupportedQuery, "unrecognized expression %T", expr)
}

func planColumnRef(e ColNameExpr, cols map[string]*column.Column, f filter.Filter) (Node, Type, error) {
	col, ok := cols[e.Name]
	if !ok {
		return nil, Type{}, queryerr.Newf(queryerr.UnknownColumn, "column %q not found", e.Name)
	}
	codec, hasCodec := col.Codec()
	if hasCodec {
		typ := Type{Basic: col.BasicType(), Encoding: codec.EncodingType(), Codec: codec}
		switch f.Kind {
		case filter.None:
			return GetEncoded{Col: col}, typ, nil
		case filter.BitVec:
			return FilterEncoded{Col: col, Bits: f.Bits}, typ, nil
		default: // filter.Indices
			return IndexEncoded{Col: col, Idx: f.Index}, typ, nil
		}
	}
	typ := Type{Basic: col.BasicType(), Encoding: decodedEncodingFor(col.BasicType())}
	switch f.Kind {
	case filter.None:
		return GetDecode{Col: col}, typ, nil
	case filter.BitVec:
		return FilterDecode{Col: col, Bits: f.Bits}, typ, nil
	default: // filter.Indices
		return IndexDecode{Col: col, Idx: f.Index}, typ, nil
	}
}

func planComparison(e FuncExpr, cols map[string]*column.Column, f filter.Filter, equals bool) (Node, Type, error) {
	lhsPlan, lhsType, err := CreateQueryPlan(e.LHS, cols, f)
	if err != nil {
		return nil, Type{}, err
	}
	// The ambient filter applies identically to both operands: they
	// describe the same rows of the same batch.
	rhsPlan, rhsType, err := CreateQueryPlan(e.RHS, cols, f)
	if err != nil {
		return nil, Type{}, err
	}
	if lhsType.Basic != rhsType.Basic {
		return nil, Type{}, queryerr.Newf(queryerr.TypeError, "%s: operand type mismatch (%s vs %s)",
			describeOp(equals), lhsType.Basic, rhsType.Basic)
	}
	if equals {
		if lhsType.Basic != column.TString && lhsType.Basic != column.TInt {
			return nil, Type{}, queryerr.Newf(queryerr.TypeError, "equality unsupported for basic type %s", lhsType.Basic)
		}
	} else if lhsType.Basic != column.TInt {
		return nil, Type{}, queryerr.Newf(queryerr.TypeError, "< unsupported for basic type %s", lhsType.Basic)
	}
	if !rhsType.IsScalar {
		return nil, Type{}, queryerr.Newf(queryerr.UnsupportedQuery, "non-scalar right-hand side is unsupported")
	}

	rhs := rhsPlan
	width := lhsType.Encoding
	if lhsType.IsEncoded() {
		if lhsType.Basic == column.TString {
			rhs = EncodeStrConstant{Child: rhsPlan, Col: ColumnOf(lhsPlan)}
		} else {
			rhs = EncodeIntConstant{Child: rhsPlan, Col: ColumnOf(lhsPlan)}
		}
	}

	if equals {
		return EqualsVS{Width: width, LHS: lhsPlan, RHS: rhs}, BoolType(), nil
	}
	return LessThanVS{Width: width, LHS: lhsPlan, RHS: rhs}, BoolType(), nil
}

func describeOp(equals bool) string {
	if equals {
		return "="
	}
	return "<"
}

// ColumnOf extracts the source column from a GetEncoded/FilterEncoded/
// IndexEncoded node. It is used both to wrap a comparison's RHS constant
// in the right Encode*Constant node and, by package query, to decode an
// aggregation value expression that planColumnRef left encoded.
func ColumnOf(n Node) *column.Column {
	switch t := n.(type) {
	case GetEncoded:
		return t.Col
	case FilterEncoded:
		return t.Col
	case IndexEncoded:
		return t.Col
	default:
		return nil
	}
}

func planBoolean(e FuncExpr, cols map[string]*column.Column, f filter.Filter, and bool) (Node, Type, error) {
	lhsPlan, lhsType, err := CreateQueryPlan(e.LHS, cols, f)
	if err != nil {
		return nil, Type{}, err
	}
	rhsPlan, rhsType, err := CreateQueryPlan(e.RHS, cols, f)
	if err != nil {
		return nil, Type{}, err
	}
	if lhsType.Basic != column.TBoolean || rhsType.Basic != column.TBoolean {
		return nil, Type{}, queryerr.Newf(queryerr.TypeError, "boolean combinator operands must be boolean, got %s and %s", lhsType.Basic, rhsType.Basic)
	}
	if and {
		return AndNode{LHS: lhsPlan, RHS: rhsPlan}, BoolType(), nil
	}
	return OrNode{LHS: lhsPlan, RHS: rhsPlan}, BoolType(), nil
}

// CompileGroupingKey builds the plan for a single grouping expression,
// per spec.md 4.4: multi-column grouping is a non-goal of this core.
func CompileGroupingKey(exprs []Expr, cols map[string]*column.Column, f filter.Filter) (Node, Type, error) {
	if len(exprs) != 1 {
		return nil, Type{}, queryerr.Newf(queryerr.UnsupportedQuery, "multi-column grouping is not supported, got %d expressions", len(exprs))
	}
	node, typ, err := CreateQueryPlan(exprs[0], cols, f)
	if err != nil {
		return nil, Type{}, err
	}
	if !typ.IsEncoded() {
		return nil, Type{}, queryerr.Newf(queryerr.UnsupportedQuery, "grouping key must resolve to an encoded column")
	}
	if typ.Encoding != vector.U8 && typ.Encoding != vector.U16 {
		return nil, Type{}, queryerr.Newf(queryerr.UnsupportedQuery, "dense grouping requires a u8 or u16 encoded column, got %s", typ.Encoding)
	}
	return node, typ, nil
}
