// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements the append-only container of sealed batches
// described in spec.md 3: a table is a name plus an ordered sequence of
// batches, each independently queryable.
package table

import "github.com/solidcoredata/rook/batch"

// Table is a named, ordered sequence of batches.
type Table struct {
	Name    string
	Batches []*batch.Batch
}

// New returns an empty table.
func New(name string) *Table {
	return &Table{Name: name}
}

// Append adds b as the table's newest batch. The query engine never
// mutates or reorders batches once appended.
func (t *Table) Append(b *batch.Batch) {
	t.Batches = append(t.Batches, b)
}
