// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rawcol implements the ingest-time growable column buffer: an
// ordered sequence of rawval.Value plus a running type classification.
// Buffers live only during ingestion; column.Freeze turns one into a
// column.Column and the buffer is discarded.
package rawcol

import "github.com/solidcoredata/rook/rawval"

// Classification tracks which column.Column representation column.Freeze
// will choose, updated incrementally as values are appended so freeze time
// never has to re-scan for type.
type Classification uint8

const (
	AllNull Classification = iota
	AllInt
	AllStr
	Mixed
)

// Buffer is the ingest-time per-column accumulator.
type Buffer struct {
	values []rawval.Value
	class  Classification
	seen   bool // whether any non-null value has been pushed yet
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{class: AllNull}
}

// WithNulls returns a Buffer pre-populated with n null rows, used when a
// column is discovered partway through ingestion and must be padded to
// align with rows already buffered for other columns.
func WithNulls(n int) *Buffer {
	b := New()
	b.PushNulls(n)
	return b
}

// Len returns the number of rows appended so far.
func (b *Buffer) Len() int { return len(b.values) }

// Classification returns the buffer's current type classification.
func (b *Buffer) Classification() Classification { return b.class }

// Values returns the buffer's backing slice. Callers must not retain it
// past a subsequent mutating call.
func (b *Buffer) Values() []rawval.Value { return b.values }

func (b *Buffer) observe(v rawval.Value) {
	if v.Kind == rawval.Null {
		return
	}
	if !b.seen {
		b.seen = true
		if v.Kind == rawval.Int {
			b.class = AllInt
		} else {
			b.class = AllStr
		}
		return
	}
	switch {
	case b.class == AllInt && v.Kind != rawval.Int:
		b.class = Mixed
	case b.class == AllStr && v.Kind != rawval.Str:
		b.class = Mixed
	}
}

// Push appends a single value.
func (b *Buffer) Push(v rawval.Value) {
	b.observe(v)
	b.values = append(b.values, v)
}

// PushNulls appends n null rows.
func (b *Buffer) PushNulls(n int) {
	for i := 0; i < n; i++ {
		b.values = append(b.values, rawval.NullValue())
	}
}

// PushInts bulk-appends a typed vector of integers, as would arrive from
// a homogeneous columnar ingest source.
func (b *Buffer) PushInts(vs []int64) {
	for _, v := range vs {
		b.Push(rawval.IntValue(v))
	}
}

// PushStrings bulk-appends a typed vector of strings.
func (b *Buffer) PushStrings(vs []string) {
	for _, v := range vs {
		b.Push(rawval.StrValue(v))
	}
}
