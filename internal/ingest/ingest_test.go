// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/rook/column"
)

func TestReadCSVInfersIntAndStringColumns(t *testing.T) {
	data := "num,name\n1,a\n2,b\n,c\n"
	b, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 3, b.Rows())

	num, ok := b.Column("num")
	require.True(t, ok)
	require.Equal(t, column.TInt, num.BasicType())

	name, ok := b.Column("name")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, name.CollectDecoded().Str())
}

func TestReadCSVEmptyInput(t *testing.T) {
	b, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, b.Rows())
}
