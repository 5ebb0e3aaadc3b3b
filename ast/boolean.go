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

package ast

import "fmt"

// Not is a unary boolean negation.
type Not struct {
	Arg Expression
}

// Kind implements Expression.
func (Not) Kind() ExprKind { return NotKind }

// Children implements Expression.
func (n Not) Children() []Expression { return []Expression{n.Arg} }

// WithChildren implements Expression.
func (n Not) WithChildren(children []Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, &WrongNumberOfChildrenError{Expected: 1, Got: len(children)}
	}
	return Not{Arg: children[0]}, nil
}

// Equal implements Expression.
func (n Not) Equal(other Expression) bool {
	o, ok := other.(Not)
	return ok && exprEqual(n.Arg, o.Arg)
}

func (n Not) String() string {
	return fmt.Sprintf("Not(%s)", n.Arg)
}

// And is a variadic boolean conjunction.
type And struct {
	Args []Expression
}

// Kind implements Expression.
func (And) Kind() ExprKind { return AndKind }

// Children implements Expression.
func (a And) Children() []Expression { return a.Args }

// WithChildren implements Expression.
func (a And) WithChildren(children []Expression) (Expression, error) {
	if len(children) != len(a.Args) {
		return nil, &WrongNumberOfChildrenError{Expected: len(a.Args), Got: len(children)}
	}
	return And{Args: children}, nil
}

// Equal implements Expression.
func (a And) Equal(other Expression) bool {
	o, ok := other.(And)
	return ok && equalChildren(a.Args, o.Args)
}

func (a And) String() string {
	return "And(" + displayExpressions(a.Args) + ")"
}

// Or is a variadic boolean disjunction.
//
// String deliberately reproduces the original implementation's Display bug
// (original_source/crates/conjure_core/src/ast.rs, the Or arm of
// "impl Display for Expression" prints the literal label "Not"). spec.md §9
// calls out this exact inconsistency and treats display as non-normative;
// serialize.Marshal is the normative form and is unaffected.
type Or struct {
	Args []Expression
}

// Kind implements Expression.
func (Or) Kind() ExprKind { return OrKind }

// Children implements Expression.
func (o Or) Children() []Expression { return o.Args }

// WithChildren implements Expression.
func (o Or) WithChildren(children []Expression) (Expression, error) {
	if len(children) != len(o.Args) {
		return nil, &WrongNumberOfChildrenError{Expected: len(o.Args), Got: len(children)}
	}
	return Or{Args: children}, nil
}

// Equal implements Expression.
func (o Or) Equal(other Expression) bool {
	other2, ok := other.(Or)
	return ok && equalChildren(o.Args, other2.Args)
}

func (o Or) String() string {
	return "Not(" + displayExpressions(o.Args) + ")"
}
