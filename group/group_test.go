// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/rawcol"
	"github.com/solidcoredata/rook/rawval"
)

func buildIntCol(vals []int64) *column.Column {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.IntValue(v))
	}
	return column.Freeze("col", b)
}

func buildStrCol(vals []string) *column.Column {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.StrValue(v))
	}
	return column.Freeze("col", b)
}

func TestCountGroupedByEncodedColumn(t *testing.T) {
	col := buildIntCol([]int64{1, 1, 2, 1, 3, 2})
	codec, ok := col.Codec()
	require.True(t, ok)

	keys := codec.GetEncoded()
	maxIndex := codec.CodeCount() - 1
	counts := Count(keys, maxIndex)

	decodedKeys := DecodeKeys(codec, maxIndex)
	order := SortIndices(decodedKeys)

	sortedKeys := PermuteVec(decodedKeys, order)
	sortedCounts := PermuteI64(counts, order)

	require.Equal(t, []int64{1, 2, 3}, sortedKeys.I64())
	require.Equal(t, []int64{3, 2, 1}, sortedCounts)
}

func TestSumGroupedByEncodedStringColumn(t *testing.T) {
	keyCol := buildStrCol([]string{"x", "y", "x", "y", "x"})
	valCol := buildIntCol([]int64{10, 1, 20, 2, 30})
	codec, ok := keyCol.Codec()
	require.True(t, ok)

	keys := codec.GetEncoded()
	values := valCol.CollectDecoded()
	maxIndex := codec.CodeCount() - 1
	sums := Sum(keys, values, maxIndex)

	decodedKeys := DecodeKeys(codec, maxIndex)
	order := SortIndices(decodedKeys)

	sortedKeys := PermuteVec(decodedKeys, order)
	sortedSums := PermuteI64(sums, order)

	require.Equal(t, []string{"x", "y"}, sortedKeys.Str())
	require.Equal(t, []int64{60, 3}, sortedSums)
}
