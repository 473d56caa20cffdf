// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/filter"
	"github.com/solidcoredata/rook/queryplan"
	"github.com/solidcoredata/rook/rawcol"
	"github.com/solidcoredata/rook/rawval"
)

func buildIntCol(name string, vals []int64) *column.Column {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.IntValue(v))
	}
	return column.Freeze(name, b)
}

func buildStrCol(name string, vals []string) *column.Column {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.StrValue(v))
	}
	return column.Freeze(name, b)
}

func TestLessThanOnEncodedInt(t *testing.T) {
	col := buildIntCol("age", []int64{10, 20, 30, 40})
	cols := map[string]*column.Column{"age": col}

	expr := queryplan.FuncExpr{
		Kind: queryplan.LT,
		LHS:  queryplan.ColNameExpr{Name: "age"},
		RHS:  queryplan.ConstExpr{Val: rawval.IntValue(25)},
	}
	node, typ, err := queryplan.CreateQueryPlan(expr, cols, filter.NoneFilter())
	require.NoError(t, err)
	require.Equal(t, column.TBoolean, typ.Basic)

	op := Build(node)
	stats := &Stats{}
	result := op.Execute(stats)
	bits := result.Bits()
	require.Equal(t, 4, bits.Len())
	require.True(t, bits.Get(0))
	require.True(t, bits.Get(1))
	require.False(t, bits.Get(2))
	require.False(t, bits.Get(3))
}

func TestEqualsOnEncodedString(t *testing.T) {
	col := buildStrCol("name", []string{"Adam", "Eve", "Adam", "Bob"})
	cols := map[string]*column.Column{"name": col}

	expr := queryplan.FuncExpr{
		Kind: queryplan.Equals,
		LHS:  queryplan.ColNameExpr{Name: "name"},
		RHS:  queryplan.ConstExpr{Val: rawval.StrValue("Adam")},
	}
	node, _, err := queryplan.CreateQueryPlan(expr, cols, filter.NoneFilter())
	require.NoError(t, err)

	op := Build(node)
	bits := op.Execute(&Stats{}).Bits()
	require.Equal(t, 2, bits.PopCount())
	require.True(t, bits.Get(0))
	require.True(t, bits.Get(2))
}

func TestEqualsUnseenStringIsAllFalse(t *testing.T) {
	col := buildStrCol("name", []string{"Adam", "Eve"})
	cols := map[string]*column.Column{"name": col}

	expr := queryplan.FuncExpr{
		Kind: queryplan.Equals,
		LHS:  queryplan.ColNameExpr{Name: "name"},
		RHS:  queryplan.ConstExpr{Val: rawval.StrValue("Nobody")},
	}
	node, _, err := queryplan.CreateQueryPlan(expr, cols, filter.NoneFilter())
	require.NoError(t, err)

	bits := Build(node).Execute(&Stats{}).Bits()
	require.Equal(t, 0, bits.PopCount())
}

func TestBooleanAndCombinesPredicates(t *testing.T) {
	col := buildIntCol("age", []int64{10, 20, 30, 40})
	cols := map[string]*column.Column{"age": col}

	lt := queryplan.FuncExpr{Kind: queryplan.LT, LHS: queryplan.ColNameExpr{Name: "age"}, RHS: queryplan.ConstExpr{Val: rawval.IntValue(35)}}
	eq := queryplan.FuncExpr{Kind: queryplan.Equals, LHS: queryplan.ColNameExpr{Name: "age"}, RHS: queryplan.ConstExpr{Val: rawval.IntValue(20)}}
	and := queryplan.FuncExpr{Kind: queryplan.And, LHS: lt, RHS: eq}

	node, _, err := queryplan.CreateQueryPlan(and, cols, filter.NoneFilter())
	require.NoError(t, err)

	bits := Build(node).Execute(&Stats{}).Bits()
	require.Equal(t, 1, bits.PopCount())
	require.True(t, bits.Get(1))
}

func TestUnsupportedEqualityTypeMismatchIsRejected(t *testing.T) {
	col := buildIntCol("age", []int64{10, 20})
	cols := map[string]*column.Column{"age": col}

	expr := queryplan.FuncExpr{
		Kind: queryplan.Equals,
		LHS:  queryplan.ColNameExpr{Name: "age"},
		RHS:  queryplan.ConstExpr{Val: rawval.StrValue("x")},
	}
	_, _, err := queryplan.CreateQueryPlan(expr, cols, filter.NoneFilter())
	require.Error(t, err)
}
