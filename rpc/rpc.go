// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc declares the service boundary a transport (not part of
// this core) would expose over the query driver: a single RPC the
// external scheduler dispatches one request at a time, per batch of
// tables it knows about. No transport is implemented here; spec.md 6
// reserves the wire protocol to an external collaborator.
package rpc

import (
	"context"

	"github.com/solidcoredata/rook/query"
)

// QueryService answers a single parsed query against a named table.
type QueryService interface {
	RunQuery(ctx context.Context, req *QueryRequest) (*QueryResponse, error)
}

// QueryRequest names the table to query and carries the already-parsed
// query; tokenizing/parsing SQL text is an external collaborator's job.
type QueryRequest struct {
	Table string
	Query *query.Query
}

// QueryResponse wraps the driver's BatchResult for the requesting
// transport to serialize however it sees fit.
type QueryResponse struct {
	Result *query.BatchResult
}
