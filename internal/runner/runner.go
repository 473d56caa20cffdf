// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner is the external collaborator spec.md 5 describes:
// "parallelism lives in the external collaborator that runs independent
// batches concurrently, one task per batch, and merges their
// BatchResults." The core (package query) stays single-threaded per
// batch; this package fans a query out across a table's batches with
// golang.org/x/sync/errgroup and merges the per-batch results.
package runner

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/solidcoredata/rook/query"
	"github.com/solidcoredata/rook/rpc"
	"github.com/solidcoredata/rook/table"
	"github.com/solidcoredata/rook/vector"
)

// Service implements rpc.QueryService over an in-memory set of tables,
// the shape a real transport would sit in front of.
type Service struct {
	Tables map[string]*table.Table
}

// RunQuery implements rpc.QueryService.
func (s *Service) RunQuery(ctx context.Context, req *rpc.QueryRequest) (*rpc.QueryResponse, error) {
	t, ok := s.Tables[req.Table]
	if !ok {
		return nil, errors.Newf("runner: unknown table %q", req.Table)
	}
	res, err := RunTable(ctx, t, req.Query)
	if err != nil {
		return nil, err
	}
	return &rpc.QueryResponse{Result: res}, nil
}

// RunTable executes q against every batch of t concurrently and merges
// the results. Merging is a simplification appropriate to a demo
// collaborator, not a core concern: grouped results from different
// batches are concatenated rather than re-aggregated by key, and the
// returned MergeLevel is bumped by one per merge to record that this
// happened.
func RunTable(ctx context.Context, t *table.Table, q *query.Query) (*query.BatchResult, error) {
	results := make([]*query.BatchResult, len(t.Batches))

	group, _ := errgroup.WithContext(ctx)
	for i, b := range t.Batches {
		i, b := i, b
		group.Go(func() error {
			res, err := query.Run(q, b.Columns())
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return merge(results)
}

func merge(results []*query.BatchResult) (*query.BatchResult, error) {
	if len(results) == 0 {
		return &query.BatchResult{}, nil
	}
	out := &query.BatchResult{
		ColumnNames: results[0].ColumnNames,
		Aggregators: results[0].Aggregators,
		SortBy:      results[0].SortBy,
		MergeLevel:  results[0].MergeLevel + 1,
	}
	width := len(results[0].Select)
	out.Select = make([]vector.Vec, width)
	for i := 0; i < width; i++ {
		parts := make([]vector.Vec, len(results))
		for j, r := range results {
			if len(r.Select) != width {
				return nil, errors.New("runner: mismatched select width across batch results")
			}
			parts[j] = r.Select[i]
		}
		out.Select[i] = concatVecs(parts)
	}
	if results[0].GroupBy != nil {
		parts := make([]vector.Vec, 0, len(results))
		for _, r := range results {
			if r.GroupBy != nil {
				parts = append(parts, *r.GroupBy)
			}
		}
		merged := concatVecs(parts)
		out.GroupBy = &merged
	}
	for _, r := range results {
		out.BatchCount += r.BatchCount
	}
	return out, nil
}

// concatVecs concatenates a sequence of decoded (Raw64 or StrEnc)
// result vectors in batch order.
func concatVecs(parts []vector.Vec) vector.Vec {
	if len(parts) == 0 {
		return vector.FromI64(nil)
	}
	switch parts[0].Type() {
	case vector.StrEnc:
		var out []string
		for _, p := range parts {
			out = append(out, p.Str()...)
		}
		return vector.FromStr(out)
	default:
		var out []int64
		for _, p := range parts {
			out = append(out, p.I64()...)
		}
		return vector.FromI64(out)
	}
}
