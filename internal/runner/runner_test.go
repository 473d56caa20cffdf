// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/rook/batch"
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/query"
	"github.com/solidcoredata/rook/queryplan"
	"github.com/solidcoredata/rook/rawcol"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/table"
)

func intCol(name string, vals []int64) *column.Column {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.IntValue(v))
	}
	return column.Freeze(name, b)
}

func TestRunTableMergesBatchesInOrder(t *testing.T) {
	b1 := batch.New()
	b1.Add(intCol("num", []int64{1, 2, 3}))
	b2 := batch.New()
	b2.Add(intCol("num", []int64{4, 5}))

	tb := table.New("t")
	tb.Append(b1)
	tb.Append(b2)

	q := &query.Query{Select: []queryplan.Expr{queryplan.ColNameExpr{Name: "num"}}}
	res, err := RunTable(context.Background(), tb, q)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4, 5}, res.Select[0].I64())
	require.Equal(t, 2, res.BatchCount)
	require.Equal(t, 1, res.MergeLevel)
}
