// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import "github.com/solidcoredata/rook/bitvec"

func filterU8(data []uint8, bits *bitvec.Vec) []uint8 {
	out := make([]uint8, 0, bits.PopCount())
	for i, v := range data {
		if bits.Get(i) {
			out = append(out, v)
		}
	}
	return out
}

func filterU16(data []uint16, bits *bitvec.Vec) []uint16 {
	out := make([]uint16, 0, bits.PopCount())
	for i, v := range data {
		if bits.Get(i) {
			out = append(out, v)
		}
	}
	return out
}

func filterU32(data []uint32, bits *bitvec.Vec) []uint32 {
	out := make([]uint32, 0, bits.PopCount())
	for i, v := range data {
		if bits.Get(i) {
			out = append(out, v)
		}
	}
	return out
}

func filterI64(data []int64, bits *bitvec.Vec) []int64 {
	out := make([]int64, 0, bits.PopCount())
	for i, v := range data {
		if bits.Get(i) {
			out = append(out, v)
		}
	}
	return out
}

func filterStr(data []string, bits *bitvec.Vec) []string {
	out := make([]string, 0, bits.PopCount())
	for i, v := range data {
		if bits.Get(i) {
			out = append(out, v)
		}
	}
	return out
}

func indexU8(data []uint8, idx []int) []uint8 {
	out := make([]uint8, len(idx))
	for i, p := range idx {
		out[i] = data[p]
	}
	return out
}

func indexU16(data []uint16, idx []int) []uint16 {
	out := make([]uint16, len(idx))
	for i, p := range idx {
		out[i] = data[p]
	}
	return out
}

func indexU32(data []uint32, idx []int) []uint32 {
	out := make([]uint32, len(idx))
	for i, p := range idx {
		out[i] = data[p]
	}
	return out
}

func indexI64(data []int64, idx []int) []int64 {
	out := make([]int64, len(idx))
	for i, p := range idx {
		out[i] = data[p]
	}
	return out
}

func indexStr(data []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, p := range idx {
		out[i] = data[p]
	}
	return out
}
