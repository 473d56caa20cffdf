// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggregator names the aggregation kinds the grouping kernel
// supports.
package aggregator

// Kind is one aggregator in a query's aggregate list.
type Kind uint8

const (
	Count Kind = iota
	Sum
)

func (k Kind) String() string {
	switch k {
	case Count:
		return "count"
	case Sum:
		return "sum"
	default:
		return "unknown"
	}
}

// ResultPrefix is the prefix used when naming this aggregator's result
// column (count_0, sum_0, ...), per spec.md 4.6.
func (k Kind) ResultPrefix() string {
	switch k {
	case Count:
		return "count"
	case Sum:
		return "sum"
	default:
		return "agg"
	}
}
