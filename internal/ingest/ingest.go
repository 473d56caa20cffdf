// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ingest reads row-oriented delimited text into column.Column
// segments, the external-collaborator boundary spec.md 1 names as the
// core's input: "ingests tabular data (from row-oriented sources such as
// delimited text files or streamed rows)". Type inference per column is
// intentionally simple — int if every observed value parses as an
// integer, string otherwise — mirroring the freeze-time classification
// column.Freeze performs on whatever RawCol this package hands it.
package ingest

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/solidcoredata/rook/batch"
	"github.com/solidcoredata/rook/column"
	"github.com/solidcoredata/rook/rawcol"
	"github.com/solidcoredata/rook/rawval"
)

// ReadCSV reads a header row followed by data rows from r and freezes
// them into a single batch. An empty field decodes to Null.
func ReadCSV(r io.Reader) (*batch.Batch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return batch.New(), nil
	}
	if err != nil {
		return nil, err
	}

	buffers := make([]*rawcol.Buffer, len(header))
	for i := range buffers {
		buffers[i] = rawcol.New()
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range header {
			var field string
			if i < len(record) {
				field = record[i]
			}
			buffers[i].Push(parseField(field))
		}
	}

	b := batch.New()
	for i, name := range header {
		b.Add(column.Freeze(name, buffers[i]))
	}
	return b, nil
}

func parseField(s string) rawval.Value {
	if s == "" {
		return rawval.NullValue()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return rawval.IntValue(n)
	}
	return rawval.StrValue(s)
}
