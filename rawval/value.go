// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rawval defines the universal value union ingested rows and
// decoded query results are made of: Null, a signed 64-bit integer, or a
// string. Values are immutable once constructed.
package rawval

import "fmt"

// Kind tags which field of a Value is populated.
type Kind uint8

const (
	Null Kind = iota
	Int
	Str
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Int:
		return "int"
	case Str:
		return "str"
	default:
		return "unknown"
	}
}

// Value is the tagged union {Null, Int(i64), Str(string)}. The zero value
// is Null, so a freshly zeroed Value never needs an explicit constructor.
type Value struct {
	Kind Kind
	I    int64
	S    string
}

// NullValue returns the null variant.
func NullValue() Value { return Value{Kind: Null} }

// IntValue returns the Int(v) variant.
func IntValue(v int64) Value { return Value{Kind: Int, I: v} }

// StrValue returns the Str(v) variant.
func StrValue(v string) Value { return Value{Kind: Str, S: v} }

// IsNull reports whether v is the null variant.
func (v Value) IsNull() bool { return v.Kind == Null }

func (v Value) String() string {
	switch v.Kind {
	case Null:
		return "NULL"
	case Int:
		return fmt.Sprintf("%d", v.I)
	case Str:
		return v.S
	default:
		return "<invalid>"
	}
}
