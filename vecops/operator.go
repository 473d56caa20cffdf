// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecops lowers a queryplan.Node tree into an executable tree of
// Operator values and runs it single-threaded per batch, per spec.md 4.3
// and 5. Multi-batch concurrency lives outside the core, in package
// internal/runner.
package vecops

import "github.com/solidcoredata/rook/vector"

// Stats accumulates per-execution counters an Operator may report,
// mirroring the teacher's fieldcoder read/write byte counters but scoped
// to query execution instead of wire encoding.
type Stats struct {
	RowsScanned  int
	RowsFiltered int
}

// Operator is a lowered, executable plan node. Execute is called exactly
// once per operator per query run; operators do not cache their result
// across calls and do not retain stats beyond the call in which it was
// passed.
type Operator interface {
	Execute(stats *Stats) vector.Vec
}
