// Copyright 2026 The Conjure-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast defines the constraint-expression data model: Name, Range,
// Domain, DecisionVariable, Expression and Model, together with the
// uniplate-style generic traversal (Children/WithChildren and the
// traversals derived from them) that the rest of the rewrite engine is
// built on.
package ast

// ExprKind identifies which variant of Expression a node is. It is the
// static discriminator the solver-family gate (package solver) keys its
// per-variant acceptance sets on (spec.md §4.6) without any reflection at
// rewrite time.
type ExprKind int

const (
	// UnspecifiedKind is the zero value and never appears on a well-formed
	// Expression.
	UnspecifiedKind ExprKind = iota

	// Atoms.
	ConstantIntKind
	ConstantBoolKind
	ReferenceKind

	// Arithmetic.
	SumKind

	// Boolean.
	NotKind
	AndKind
	OrKind

	// Comparison.
	EqKind
	NeqKind
	GeqKind
	LeqKind
	GtKind
	LtKind

	// Flattened, solver-specific.
	SumGeqKind
	SumLeqKind
	IneqKind
)

//go:generate stringer -type=ExprKind

func (k ExprKind) String() string {
	switch k {
	case ConstantIntKind:
		return "ConstantInt"
	case ConstantBoolKind:
		return "ConstantBool"
	case ReferenceKind:
		return "Reference"
	case SumKind:
		return "Sum"
	case NotKind:
		return "Not"
	case AndKind:
		return "And"
	case OrKind:
		return "Or"
	case EqKind:
		return "Eq"
	case NeqKind:
		return "Neq"
	case GeqKind:
		return "Geq"
	case LeqKind:
		return "Leq"
	case GtKind:
		return "Gt"
	case LtKind:
		return "Lt"
	case SumGeqKind:
		return "SumGeq"
	case SumLeqKind:
		return "SumLeq"
	case IneqKind:
		return "Ineq"
	default:
		return "Unspecified"
	}
}

// Expression is the central tagged variant of the data model: every
// constraint the engine rewrites is built from these nodes. Each concrete
// type in this package (ConstantInt, Sum, Not, Ineq, ...) implements
// Expression.
//
// Children and WithChildren form the uniplate-style generic traversal
// contract (spec.md §4.1): for every e, e.WithChildren(e.Children()) must
// reproduce e, and WithChildren must fail with a
// *WrongNumberOfChildrenError rather than panic when given a sequence of
// the wrong length. Non-expression fields (the int in ConstantInt, the k in
// Ineq, the Name in Reference) are never children.
type Expression interface {
	// Kind reports the node's variant.
	Kind() ExprKind

	// Children returns this node's immediate sub-expressions, left to
	// right in declaration order.
	Children() []Expression

	// WithChildren rebuilds a node of the same variant with its children
	// replaced, in order, by the given sequence. It fails with
	// *WrongNumberOfChildrenError if len(children) does not match the
	// variant's arity; it never panics on a valid variant.
	WithChildren(children []Expression) (Expression, error)

	// Equal reports structural equality with another Expression.
	Equal(other Expression) bool

	// String renders a debug form of the expression. Display is
	// non-normative (spec.md §9); package serialize defines the normative
	// wire form.
	String() string
}

// equalChildren compares two child slices pairwise using Expression.Equal,
// the shared helper every variadic variant's Equal method reduces to.
func equalChildren(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !exprEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// exprEqual compares two possibly-nil Expressions.
func exprEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
