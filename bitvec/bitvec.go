// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitvec implements a packed bit-vector used as the runtime
// representation of boolean predicate results. Words are machine-word
// sized so AND/OR combine in chunks rather than bit-by-bit.
package bitvec

import "math/bits"

const wordBits = 64

// Vec is a fixed-length packed bit-vector.
type Vec struct {
	words []uint64
	n     int
}

// New returns a zeroed Vec of length n.
func New(n int) *Vec {
	return &Vec{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Len returns the number of bits.
func (v *Vec) Len() int { return v.n }

// Get returns the bit at position i.
func (v *Vec) Get(i int) bool {
	return v.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Set sets the bit at position i to val.
func (v *Vec) Set(i int, val bool) {
	w := i / wordBits
	mask := uint64(1) << uint(i%wordBits)
	if val {
		v.words[w] |= mask
	} else {
		v.words[w] &^= mask
	}
}

// And computes the element-wise AND of a and b into a new Vec.
// Panics if the lengths differ.
func And(a, b *Vec) *Vec {
	mustSameLen(a, b)
	out := New(a.n)
	for i := range out.words {
		out.words[i] = a.words[i] & b.words[i]
	}
	return out
}

// Or computes the element-wise OR of a and b into a new Vec.
// Panics if the lengths differ.
func Or(a, b *Vec) *Vec {
	mustSameLen(a, b)
	out := New(a.n)
	for i := range out.words {
		out.words[i] = a.words[i] | b.words[i]
	}
	return out
}

func mustSameLen(a, b *Vec) {
	if a.n != b.n {
		panic("bitvec: length mismatch")
	}
}

// PopCount returns the number of set bits.
func (v *Vec) PopCount() int {
	count := 0
	for _, w := range v.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// Indices returns the positions of all set bits, in ascending order.
func (v *Vec) Indices() []int {
	out := make([]int, 0, v.PopCount())
	for i := 0; i < v.n; i++ {
		if v.Get(i) {
			out = append(out, i)
		}
	}
	return out
}

// FromBools builds a Vec from a slice of bools, one bit per element.
func FromBools(bs []bool) *Vec {
	v := New(len(bs))
	for i, b := range bs {
		if b {
			v.Set(i, true)
		}
	}
	return v
}
