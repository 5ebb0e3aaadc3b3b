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

// Sum is a variadic arithmetic combinator. All-constant folding is a rule
// (the sum_constants rule in package rulelib), not a type invariant: a Sum may legally hold any
// arity, including zero or one operand, until a rule normalizes it.
type Sum struct {
	Args []Expression
}

// Kind implements Expression.
func (Sum) Kind() ExprKind { return SumKind }

// Children implements Expression.
func (s Sum) Children() []Expression { return s.Args }

// WithChildren implements Expression.
func (s Sum) WithChildren(children []Expression) (Expression, error) {
	if len(children) != len(s.Args) {
		return nil, &WrongNumberOfChildrenError{Expected: len(s.Args), Got: len(children)}
	}
	return Sum{Args: children}, nil
}

// Equal implements Expression.
func (s Sum) Equal(other Expression) bool {
	o, ok := other.(Sum)
	return ok && equalChildren(s.Args, o.Args)
}

func (s Sum) String() string {
	return "Sum(" + displayExpressions(s.Args) + ")"
}
