// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/rook/aggregator"
	"github.com/solidcoredata/rook/batch"
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/queryplan"
	"github.com/solidcoredata/rook/rawcol"
	"github.com/solidcoredata/rook/rawval"
)

func intCol(name string, vals []int64) *column.Column {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.IntValue(v))
	}
	return column.Freeze(name, b)
}

func strCol(name string, vals []string) *column.Column {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.StrValue(v))
	}
	return column.Freeze(name, b)
}

func newBatch(cols ...*column.Column) *batch.Batch {
	b := batch.New()
	for _, c := range cols {
		b.Add(c)
	}
	return b
}

func TestProjectionWithIntegerPredicate(t *testing.T) {
	b := newBatch(intCol("num", []int64{0, 1, 2, 3, 4}), strCol("name", []string{"a", "b", "c", "d", "e"}))
	q := &Query{
		Select: []queryplan.Expr{queryplan.ColNameExpr{Name: "name"}},
		Filter: queryplan.FuncExpr{Kind: queryplan.LT, LHS: queryplan.ColNameExpr{Name: "num"}, RHS: queryplan.ConstExpr{Val: rawval.IntValue(2)}},
		Limit:  Limit{Limit: 10},
	}
	res, err := Run(q, b.Columns())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, res.Select[0].Str())
	require.Equal(t, []string{"name"}, res.ColumnNames)
}

func TestStringEqualityWithDictionary(t *testing.T) {
	b := newBatch(strCol("first_name", []string{"Adam", "Eve", "Adam", "Bob"}))
	q := &Query{
		Select: []queryplan.Expr{queryplan.ColNameExpr{Name: "first_name"}},
		Filter: queryplan.FuncExpr{Kind: queryplan.Equals, LHS: queryplan.ColNameExpr{Name: "first_name"}, RHS: queryplan.ConstExpr{Val: rawval.StrValue("Adam")}},
		Limit:  Limit{Limit: 10},
	}
	res, err := Run(q, b.Columns())
	require.NoError(t, err)
	require.Equal(t, []string{"Adam", "Adam"}, res.Select[0].Str())

	q.Filter = queryplan.FuncExpr{Kind: queryplan.Equals, LHS: queryplan.ColNameExpr{Name: "first_name"}, RHS: queryplan.ConstExpr{Val: rawval.StrValue("Nobody")}}
	res, err = Run(q, b.Columns())
	require.NoError(t, err)
	require.Empty(t, res.Select[0].Str())
}

func TestCountGroupedBySmallCardinalityColumn(t *testing.T) {
	b := newBatch(intCol("passenger_count", []int64{1, 1, 2, 1, 3, 2}))
	q := &Query{
		Select:    []queryplan.Expr{queryplan.ColNameExpr{Name: "passenger_count"}},
		Aggregate: []Aggregate{{Kind: aggregator.Count, Expr: queryplan.ConstExpr{Val: rawval.IntValue(1)}}},
	}
	res, err := Run(q, b.Columns())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, res.GroupBy.I64())
	require.Equal(t, []int64{3, 2, 1}, res.Select[0].I64())
	require.Equal(t, []string{"count_0"}, res.ColumnNames)
}

func TestSumGrouped(t *testing.T) {
	b := newBatch(strCol("k", []string{"x", "y", "x", "y", "x"}), intCol("v", []int64{10, 1, 20, 2, 30}))
	q := &Query{
		Select:    []queryplan.Expr{queryplan.ColNameExpr{Name: "k"}},
		Aggregate: []Aggregate{{Kind: aggregator.Sum, Expr: queryplan.ColNameExpr{Name: "v"}}},
	}
	res, err := Run(q, b.Columns())
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, res.GroupBy.Str())
	require.Equal(t, []int64{60, 3}, res.Select[0].I64())
	require.Equal(t, []string{"sum_0"}, res.ColumnNames)
}

func TestOrderByWithLimit(t *testing.T) {
	b := newBatch(intCol("num", []int64{5, 1, 4, 2, 3}))
	orderBy := "num"
	q := &Query{
		Select:  []queryplan.Expr{queryplan.ColNameExpr{Name: "num"}},
		OrderBy: &orderBy,
		Limit:   Limit{Limit: 3},
	}
	res, err := Run(q, b.Columns())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, res.Select[0].I64())

	q.OrderDesc = true
	res, err = Run(q, b.Columns())
	require.NoError(t, err)
	require.Equal(t, []int64{5, 4, 3}, res.Select[0].I64())
}

func TestBooleanCombinators(t *testing.T) {
	b := newBatch(intCol("a", []int64{0, 1, 2, 3}), intCol("b", []int64{3, 2, 1, 0}))
	q := &Query{
		Select: []queryplan.Expr{queryplan.ColNameExpr{Name: "a"}},
		Filter: queryplan.FuncExpr{
			Kind: queryplan.And,
			LHS:  queryplan.FuncExpr{Kind: queryplan.LT, LHS: queryplan.ColNameExpr{Name: "a"}, RHS: queryplan.ConstExpr{Val: rawval.IntValue(3)}},
			RHS:  queryplan.FuncExpr{Kind: queryplan.LT, LHS: queryplan.ColNameExpr{Name: "b"}, RHS: queryplan.ConstExpr{Val: rawval.IntValue(3)}},
		},
	}
	res, err := Run(q, b.Columns())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, res.Select[0].I64())
}

func TestUnknownColumnIsRejected(t *testing.T) {
	b := newBatch(intCol("a", []int64{1, 2}))
	q := &Query{Select: []queryplan.Expr{queryplan.ColNameExpr{Name: "missing"}}}
	_, err := Run(q, b.Columns())
	require.Error(t, err)
}
