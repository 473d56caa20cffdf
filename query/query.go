// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query implements the single-batch query driver of spec.md 4.5:
// filter, then either grouping+aggregation or ORDER BY+LIMIT or a plain
// projection, assembled into a BatchResult. It is the top of the core;
// everything below it (queryplan, vecops, group, column) is orchestrated
// from here, single-threaded per batch as spec.md 5 requires.
package query

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/solidcoredata/rook/aggregator"
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/filter"
	"github.com/solidcoredata/rook/group"
	"github.com/solidcoredata/rook/queryerr"
	"github.com/solidcoredata/rook/queryplan"
	"github.com/solidcoredata/rook/vecops"
	"github.com/solidcoredata/rook/vector"
)

// Aggregate is one (kind, expression) pair from a query's aggregate list.
type Aggregate struct {
	Kind aggregator.Kind
	Expr queryplan.Expr
}

// Limit is the query's row window. It is applied only to ORDER BY
// queries, after the sort, and keeps the first Limit+Offset rows; the
// other query shapes return every row that passes the filter.
type Limit struct {
	Limit  int
	Offset int
}

// Query is the parsed query this driver consumes, per spec.md 6. The
// tokenizer/parser producing it is an external collaborator.
type Query struct {
	Select       []queryplan.Expr
	Table        string
	Filter       queryplan.Expr // nil means trivially true (no WHERE)
	Aggregate    []Aggregate
	OrderBy      *string // column name; nil means no ORDER BY
	OrderDesc    bool
	Limit        Limit
	OrderByIndex *int // index into Select where the ordering column appears
}

// BatchResult is the driver's output for one batch, per spec.md 4.5. The
// merge of multiple BatchResults into a final answer is an external
// collaborator.
type BatchResult struct {
	GroupBy     *vector.Vec
	SortBy      *int
	Select      []vector.Vec
	ColumnNames []string
	Aggregators []aggregator.Kind
	MergeLevel  int
	BatchCount  int
}

// Run executes q against cols, a single batch's column source.
func Run(q *Query, cols map[string]*column.Column) (*BatchResult, error) {
	stats := &vecops.Stats{}

	filt, err := buildFilter(q, cols, stats)
	if err != nil {
		return nil, err
	}

	switch {
	case len(q.Aggregate) > 0:
		return runGrouped(q, cols, filt, stats)
	case q.OrderBy != nil:
		return runOrdered(q, cols, filt, stats)
	default:
		return runProjection(q, cols, filt, stats)
	}
}

func buildFilter(q *Query, cols map[string]*column.Column, stats *vecops.Stats) (filter.Filter, error) {
	if q.Filter == nil {
		return filter.NoneFilter(), nil
	}
	node, typ, err := queryplan.CreateQueryPlan(q.Filter, cols, filter.NoneFilter())
	if err != nil {
		return filter.Filter{}, err
	}
	if typ.Basic != column.TBoolean {
		return filter.Filter{}, queryerr.Newf(queryerr.FatalError, "filter expression did not evaluate to boolean, got %s", typ.Basic)
	}
	result := vecops.Build(node).Execute(stats)
	return filter.FromBits(result.Bits()), nil
}

// decodedPlan builds expr's plan and, if it resolved to an encoded
// column, wraps it in a Decode node so the caller always gets the
// basic-type view. Grouping aggregation and plain projection both need
// this; only comparison operators want to stay encoded.
func decodedPlan(expr queryplan.Expr, cols map[string]*column.Column, filt filter.Filter) (queryplan.Node, queryplan.Type, error) {
	node, typ, err := queryplan.CreateQueryPlan(expr, cols, filt)
	if err != nil {
		return nil, queryplan.Type{}, err
	}
	if typ.IsEncoded() {
		node = queryplan.DecodeNode{Child: node, Col: queryplan.ColumnOf(node)}
	}
	return node, typ, nil
}

func runGrouped(q *Query, cols map[string]*column.Column, filt filter.Filter, stats *vecops.Stats) (*BatchResult, error) {
	keyNode, keyType, err := queryplan.CompileGroupingKey(q.Select, cols, filt)
	if err != nil {
		return nil, err
	}
	keyVec := vecops.Build(keyNode).Execute(stats)
	codec := keyType.Codec
	maxIndex := codec.CodeCount() - 1

	accs := make([][]int64, len(q.Aggregate))
	kinds := make([]aggregator.Kind, len(q.Aggregate))
	for i, agg := range q.Aggregate {
		kinds[i] = agg.Kind
		switch agg.Kind {
		case aggregator.Count:
			accs[i] = group.Count(keyVec, maxIndex)
		case aggregator.Sum:
			valNode, valType, err := decodedPlan(agg.Expr, cols, filt)
			if err != nil {
				return nil, err
			}
			if valType.Basic != column.TInt {
				return nil, queryerr.Newf(queryerr.TypeError, "sum() requires an integer expression, got %s", valType.Basic)
			}
			valVec := vecops.Build(valNode).Execute(stats)
			accs[i] = group.Sum(keyVec, valVec, maxIndex)
		default:
			return nil, queryerr.Newf(queryerr.UnsupportedQuery, "unsupported aggregator %s", agg.Kind)
		}
	}

	decodedKeys := group.DecodeKeys(codec, maxIndex)
	order := group.SortIndices(decodedKeys)
	sortedKeys := group.PermuteVec(decodedKeys, order)

	selectVecs := make([]vector.Vec, len(accs))
	for i, acc := range accs {
		selectVecs[i] = vector.FromI64(group.PermuteI64(acc, order))
	}

	return &BatchResult{
		GroupBy:     &sortedKeys,
		Select:      selectVecs,
		ColumnNames: aggregateColumnNames(q.Aggregate),
		Aggregators: kinds,
		BatchCount:  1,
	}, nil
}

func runOrdered(q *Query, cols map[string]*column.Column, filt filter.Filter, stats *vecops.Stats) (*BatchResult, error) {
	orderExpr := queryplan.ColNameExpr{Name: *q.OrderBy}
	orderNode, orderType, err := queryplan.CreateQueryPlan(orderExpr, cols, filt)
	if err != nil {
		return nil, err
	}
	orderVec := vecops.Build(orderNode).Execute(stats)

	// The ordering plan ran under filt, so sortKeys[k] belongs to the k-th
	// selected row, rows[k]. Sort those positions, then map them to rows.
	rows := baseIndices(filt, orderVec.Len())
	sortKeys := orderSortKeys(orderType, orderVec)
	pos := make([]int, len(rows))
	for i := range pos {
		pos[i] = i
	}
	slices.SortStableFunc(pos, func(a, b int) int {
		if q.OrderDesc {
			return cmp.Compare(sortKeys[b], sortKeys[a])
		}
		return cmp.Compare(sortKeys[a], sortKeys[b])
	})
	idx := make([]int, len(pos))
	for i, p := range pos {
		idx[i] = rows[p]
	}

	window := q.Limit.Limit + q.Limit.Offset
	if window > 0 && window < len(idx) {
		idx = idx[:window]
	}
	projectFilt := filter.FromIndices(idx)

	selectVecs, names, err := projectSelect(q, cols, projectFilt, stats)
	if err != nil {
		return nil, err
	}
	return &BatchResult{
		Select:      selectVecs,
		ColumnNames: names,
		SortBy:      q.OrderByIndex,
		BatchCount:  1,
	}, nil
}

func runProjection(q *Query, cols map[string]*column.Column, filt filter.Filter, stats *vecops.Stats) (*BatchResult, error) {
	selectVecs, names, err := projectSelect(q, cols, filt, stats)
	if err != nil {
		return nil, err
	}
	return &BatchResult{Select: selectVecs, ColumnNames: names, BatchCount: 1}, nil
}

func projectSelect(q *Query, cols map[string]*column.Column, filt filter.Filter, stats *vecops.Stats) ([]vector.Vec, []string, error) {
	out := make([]vector.Vec, len(q.Select))
	names := make([]string, len(q.Select))
	for i, expr := range q.Select {
		node, _, err := decodedPlan(expr, cols, filt)
		if err != nil {
			return nil, nil, err
		}
		out[i] = vecops.Build(node).Execute(stats)
		names[i] = ResultColumnName(expr, i)
	}
	return out, names, nil
}

func baseIndices(filt filter.Filter, n int) []int {
	if filt.Kind == filter.BitVec {
		return filt.Bits.Indices()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// orderSortKeys extracts a per-row int64 sort key for the ordering
// column, using the codebook's precomputed lexicographic rank for an
// orderable encoded column rather than materializing decoded strings.
func orderSortKeys(typ queryplan.Type, v vector.Vec) []int64 {
	if typ.IsEncoded() {
		if orderable, ok := typ.Codec.(column.Orderable); ok {
			ranks := orderable.OrderRanks()
			return rankKeys(v, ranks)
		}
	}
	decoded := v
	if typ.IsEncoded() {
		decoded = typ.Codec.Decode(v)
	}
	switch decoded.Type() {
	case vector.StrEnc:
		data := decoded.Str()
		keys := make([]int64, len(data))
		order := stringRankOrder(data)
		for i, r := range order {
			keys[i] = int64(r)
		}
		return keys
	default:
		n := decoded.Len()
		keys := make([]int64, n)
		for i := 0; i < n; i++ {
			keys[i] = decoded.IntAt(i)
		}
		return keys
	}
}

func rankKeys(v vector.Vec, ranks []int32) []int64 {
	switch v.Type() {
	case vector.U8:
		codes, _ := v.U8()
		out := make([]int64, len(codes))
		for i, c := range codes {
			out[i] = int64(ranks[c])
		}
		return out
	case vector.U16:
		codes, _ := v.U16()
		out := make([]int64, len(codes))
		for i, c := range codes {
			out[i] = int64(ranks[c])
		}
		return out
	case vector.U32:
		codes, _ := v.U32()
		out := make([]int64, len(codes))
		for i, c := range codes {
			out[i] = int64(ranks[c])
		}
		return out
	default:
		panic("query: rankKeys called on non-code vector")
	}
}

// stringRankOrder is the materialized-decode fallback for a string
// column whose codec does not implement column.Orderable: rank each row
// by its own lexicographic position among the batch's values.
func stringRankOrder(data []string) []int {
	idx := make([]int, len(data))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(data[a], data[b]) })
	rank := make([]int, len(data))
	for r, i := range idx {
		rank[i] = r
	}
	return rank
}

// ResultColumnName implements spec.md 4.6: a bare column reference keeps
// its name; anything else is named col_N in select order.
func ResultColumnName(expr queryplan.Expr, idx int) string {
	if col, ok := expr.(queryplan.ColNameExpr); ok {
		return col.Name
	}
	return fmt.Sprintf("col_%d", idx)
}

// aggregateColumnNames implements the aggregate-list half of spec.md 4.6:
// each aggregator yields count_N/sum_N numbered in aggregate-list order.
func aggregateColumnNames(aggs []Aggregate) []string {
	out := make([]string, len(aggs))
	for i, agg := range aggs {
		out[i] = fmt.Sprintf("%s_%d", agg.Kind.ResultPrefix(), i)
	}
	return out
}

// FindReferencedCols collects every column name referenced anywhere in
// q: select list, filter, and aggregate expressions.
func FindReferencedCols(q *Query) map[string]struct{} {
	set := make(map[string]struct{})
	for _, e := range q.Select {
		e.AddColNames(set)
	}
	if q.Filter != nil {
		q.Filter.AddColNames(set)
	}
	for _, agg := range q.Aggregate {
		agg.Expr.AddColNames(set)
	}
	if q.OrderBy != nil {
		set[*q.OrderBy] = struct{}{}
	}
	return set
}
