// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryplan

import "github.com/solidcoredata/rook/rawval"

// FuncKind enumerates the binary operators an Expr's Func variant can
// carry.
type FuncKind uint8

const (
	LT FuncKind = iota
	Equals
	And
	Or
)

func (k FuncKind) String() string {
	switch k {
	case LT:
		return "<"
	case Equals:
		return "="
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return "?"
	}
}

// Expr is the parsed query expression AST node: a column reference, a
// constant, or a binary function application. It is produced by the
// external tokenizer/parser; this core only consumes it.
type Expr interface {
	// AddColNames collects the column names this expression references
	// into set.
	AddColNames(set map[string]struct{})
}

// ColNameExpr references a column by name.
type ColNameExpr struct {
	Name string
}

// AddColNames implements Expr.
func (e ColNameExpr) AddColNames(set map[string]struct{}) { set[e.Name] = struct{}{} }

// ConstExpr is a literal value.
type ConstExpr struct {
	Val rawval.Value
}

// AddColNames implements Expr.
func (ConstExpr) AddColNames(map[string]struct{}) {}

// FuncExpr applies a binary operator to two sub-expressions.
type FuncExpr struct {
	Kind     FuncKind
	LHS, RHS Expr
}

// AddColNames implements Expr.
func (e FuncExpr) AddColNames(set map[string]struct{}) {
	e.LHS.AddColNames(set)
	e.RHS.AddColNames(set)
}

// ColNames returns the set of column names e (and any sub-expressions)
// reference.
func ColNames(e Expr) map[string]struct{} {
	set := make(map[string]struct{})
	e.AddColNames(set)
	return set
}
