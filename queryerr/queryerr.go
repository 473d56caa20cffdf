// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queryerr defines the error-kind taxonomy of spec.md 7:
// TypeError and UnsupportedQuery and UnknownColumn are surfaced at plan
// construction; FatalError signals an internal invariant breach and must
// abort the current query. OutOfRange is deliberately absent here: it is
// handled entirely in-band as a sentinel code (see column.Codec) and
// never surfaced to a caller.
package queryerr

import "github.com/cockroachdb/errors"

// Kind tags which error-handling policy applies to an error produced by
// this module.
type Kind uint8

const (
	TypeError Kind = iota
	UnsupportedQuery
	UnknownColumn
	FatalError
)

func (k Kind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case UnsupportedQuery:
		return "UnsupportedQuery"
	case UnknownColumn:
		return "UnknownColumn"
	case FatalError:
		return "FatalError"
	default:
		return "UnknownErrorKind"
	}
}

type kindError struct {
	kind Kind
	error
}

// Newf builds an error of the given kind.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &kindError{kind: kind, error: errors.Newf("%s: "+format, append([]interface{}{kind}, args...)...)}
}

// Is reports whether err (or anything it wraps) was produced by Newf
// with the given kind.
func Is(err error, kind Kind) bool {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind == kind
	}
	return false
}
