// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/vector"
)

// nullColumn stores only a row count; every value in it is null.
type nullColumn struct {
	rows int
}

func (c *nullColumn) collectDecoded() vector.Vec { return vector.FromNullRun(c.rows) }

func (c *nullColumn) filterDecode(bits *bitvec.Vec) vector.Vec {
	return vector.FromNullRun(bits.PopCount())
}

func (c *nullColumn) indexDecode(idx []int) vector.Vec {
	return vector.FromNullRun(len(idx))
}
