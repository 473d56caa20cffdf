// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch implements the row-aligned column container described in
// spec.md 3: a batch is an ordered map from column name to Column. All
// columns in a batch share the same row count.
package batch

import (
	"golang.org/x/exp/slices"

	"github.com/solidcoredata/rook/column"
)

// Batch is an ordered, name-addressed set of row-aligned columns.
// Insertion order is preserved so a table's schema has a deterministic
// column order even though lookup is by name.
type Batch struct {
	order []string
	cols  map[string]*column.Column
	rows  int
}

// New returns an empty batch.
func New() *Batch {
	return &Batch{cols: make(map[string]*column.Column)}
}

// Add appends col to the batch. All added columns must share the same row
// count; Add panics otherwise, since misaligned columns within a batch
// are a construction bug, not a runtime condition.
func (b *Batch) Add(col *column.Column) {
	if len(b.cols) == 0 {
		b.rows = col.Rows()
	} else if col.Rows() != b.rows {
		panic("batch: column row count mismatch")
	}
	if _, exists := b.cols[col.Name()]; !exists {
		b.order = append(b.order, col.Name())
	}
	b.cols[col.Name()] = col
}

// Rows returns the batch's row count.
func (b *Batch) Rows() int { return b.rows }

// ColumnNames returns the batch's column names in insertion order. The
// slice is a defensive clone so callers can't mutate the batch's order
// through it.
func (b *Batch) ColumnNames() []string {
	return slices.Clone(b.order)
}

// Column looks up a column by name.
func (b *Batch) Column(name string) (*column.Column, bool) {
	c, ok := b.cols[name]
	return c, ok
}

// Columns returns the name -> Column map the query-plan builder expects
// as its column source (spec.md 6).
func (b *Batch) Columns() map[string]*column.Column {
	return b.cols
}
