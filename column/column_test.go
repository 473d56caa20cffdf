// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/rook/bitvec"
	"github.com/solidcoredata/rook/rawcol"
	"github.com/solidcoredata/rook/rawval"
	"github.com/solidcoredata/rook/vector"
)

func buildIntBuffer(vals []int64) *rawcol.Buffer {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.IntValue(v))
	}
	return b
}

func buildStrBuffer(vals []string) *rawcol.Buffer {
	b := rawcol.New()
	for _, v := range vals {
		b.Push(rawval.StrValue(v))
	}
	return b
}

func TestFreezeIntChoosesNarrowestWidth(t *testing.T) {
	col := Freeze("num", buildIntBuffer([]int64{0, 1, 2, 3, 4}))
	require.Equal(t, TInt, col.BasicType())
	codec, ok := col.Codec()
	require.True(t, ok)
	require.Equal(t, 5, codec.CodeCount())

	decoded := col.CollectDecoded().I64()
	require.Equal(t, []int64{0, 1, 2, 3, 4}, decoded)
}

func TestFreezeIntFallsBackToRawI64(t *testing.T) {
	col := Freeze("num", buildIntBuffer([]int64{0, 1 << 40}))
	_, ok := col.Codec()
	require.False(t, ok, "columns spanning more than 32 bits must not expose a codec")
	require.Equal(t, []int64{0, 1 << 40}, col.CollectDecoded().I64())
}

func TestStringDictionaryRoundtrip(t *testing.T) {
	col := Freeze("name", buildStrBuffer([]string{"Adam", "Eve", "Adam", "Bob"}))
	codec, ok := col.Codec()
	require.True(t, ok)

	require.Equal(t, []string{"Adam", "Eve", "Adam", "Bob"}, col.CollectDecoded().Str())

	encoded := codec.EncodeStr("Adam")
	require.False(t, encoded.IsNull())
	decodedAdam := codec.Decode(vector.FromConstant(encoded))
	require.Equal(t, "Adam", decodedAdam.Constant().S)

	sentinel := codec.EncodeStr("Nobody")
	require.True(t, sentinel.IsNull(), "unknown strings must encode to the sentinel")
}

func TestFilterDecodePreservesOrderAndPopcount(t *testing.T) {
	col := Freeze("num", buildIntBuffer([]int64{10, 20, 30, 40, 50}))
	bits := bitvec.New(5)
	bits.Set(1, true)
	bits.Set(3, true)

	out := col.FilterDecode(bits).I64()
	require.Equal(t, bits.PopCount(), len(out))
	require.Equal(t, []int64{20, 40}, out)
}

func TestIndexDecodeGathersInOrder(t *testing.T) {
	col := Freeze("name", buildStrBuffer([]string{"a", "b", "c", "d"}))
	out := col.IndexDecode([]int{3, 0, 0}).Str()
	require.Equal(t, []string{"d", "a", "a"}, out)
}

func TestMixedColumnPromotesToString(t *testing.T) {
	b := rawcol.New()
	b.Push(rawval.IntValue(7))
	b.Push(rawval.StrValue("x"))
	col := Freeze("mixed", b)
	require.Equal(t, TString, col.BasicType())
	require.Equal(t, []string{"7", "x"}, col.CollectDecoded().Str())
}

func TestAllNullColumn(t *testing.T) {
	b := rawcol.New()
	b.PushNulls(3)
	col := Freeze("n", b)
	require.Equal(t, TNull, col.BasicType())
	require.Equal(t, 3, col.CollectDecoded().Len())
}

// TestNullInterleavedWithIntConflatesWithMinimum documents the chosen
// resolution of spec.md's null-handling open question for offsetColumn:
// a null mixed into otherwise-integer data is not a dedicated null
// column (that only happens when every value is null), it is conflated
// with the column's minimum value.
func TestNullInterleavedWithIntConflatesWithMinimum(t *testing.T) {
	b := rawcol.New()
	b.Push(rawval.IntValue(10))
	b.Push(rawval.NullValue())
	b.Push(rawval.IntValue(20))
	col := Freeze("num", b)
	require.Equal(t, TInt, col.BasicType())
	require.Equal(t, []int64{10, 10, 20}, col.CollectDecoded().I64())
}

// TestNullInterleavedWithStringConflatesWithFirstCode documents the
// same resolution for dictColumn: a null mixed into otherwise-string
// data decodes back as whichever string first occupied code 0.
func TestNullInterleavedWithStringConflatesWithFirstCode(t *testing.T) {
	b := rawcol.New()
	b.Push(rawval.NullValue())
	b.Push(rawval.StrValue("Adam"))
	b.Push(rawval.StrValue("Eve"))
	col := Freeze("name", b)
	require.Equal(t, TString, col.BasicType())
	require.Equal(t, []string{"Adam", "Adam", "Eve"}, col.CollectDecoded().Str())
}

// TestNullInterleavedWithWideIntConflatesWithZero documents the same
// resolution for rawIntColumn, the fallback for spans too wide for a
// codec: a null mixed into otherwise-integer data decodes back as
// int64(0) rather than a column minimum, since this representation
// carries no offset.
func TestNullInterleavedWithWideIntConflatesWithZero(t *testing.T) {
	b := rawcol.New()
	b.Push(rawval.IntValue(0))
	b.Push(rawval.NullValue())
	b.Push(rawval.IntValue(1 << 40))
	col := Freeze("num", b)
	_, ok := col.Codec()
	require.False(t, ok)
	require.Equal(t, []int64{0, 0, 1 << 40}, col.CollectDecoded().I64())
}
