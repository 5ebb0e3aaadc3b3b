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

// SumGeq is the flattened, Minion-native form of Geq(Sum(xs), rhs): it only
// ever appears after rulelib's flatten_sum_geq rule has fired (spec.md §3,
// "Flattened" family).
type SumGeq struct {
	Args []Expression
	Rhs  Expression
}

// Kind implements Expression.
func (SumGeq) Kind() ExprKind { return SumGeqKind }

// Children implements Expression: the summed operands, then Rhs, matching
// the original's sub_expressions order (lhs elements, then rhs).
func (s SumGeq) Children() []Expression {
	return append(append([]Expression{}, s.Args...), s.Rhs)
}

// WithChildren implements Expression.
func (s SumGeq) WithChildren(children []Expression) (Expression, error) {
	if len(children) != len(s.Args)+1 {
		return nil, &WrongNumberOfChildrenError{Expected: len(s.Args) + 1, Got: len(children)}
	}
	return SumGeq{Args: children[:len(children)-1], Rhs: children[len(children)-1]}, nil
}

// Equal implements Expression.
func (s SumGeq) Equal(other Expression) bool {
	o, ok := other.(SumGeq)
	return ok && equalChildren(s.Args, o.Args) && exprEqual(s.Rhs, o.Rhs)
}

func (s SumGeq) String() string {
	return fmt.Sprintf("SumGeq(%s, %s)", displayExpressions(s.Args), s.Rhs)
}

// SumLeq is the flattened, Minion-native form of Leq(Sum(xs), rhs).
type SumLeq struct {
	Args []Expression
	Rhs  Expression
}

// Kind implements Expression.
func (SumLeq) Kind() ExprKind { return SumLeqKind }

// Children implements Expression.
func (s SumLeq) Children() []Expression {
	return append(append([]Expression{}, s.Args...), s.Rhs)
}

// WithChildren implements Expression.
func (s SumLeq) WithChildren(children []Expression) (Expression, error) {
	if len(children) != len(s.Args)+1 {
		return nil, &WrongNumberOfChildrenError{Expected: len(s.Args) + 1, Got: len(children)}
	}
	return SumLeq{Args: children[:len(children)-1], Rhs: children[len(children)-1]}, nil
}

// Equal implements Expression.
func (s SumLeq) Equal(other Expression) bool {
	o, ok := other.(SumLeq)
	return ok && equalChildren(s.Args, o.Args) && exprEqual(s.Rhs, o.Rhs)
}

func (s SumLeq) String() string {
	return fmt.Sprintf("SumLeq(%s, %s)", displayExpressions(s.Args), s.Rhs)
}

// Ineq encodes A - B <= K for an integer constant K (spec.md §3: "Ineq(a,b,k)
// encodes a − b ≤ k"). K is not a child: it is a plain integer field.
type Ineq struct {
	A, B Expression
	K    int
}

// Kind implements Expression.
func (Ineq) Kind() ExprKind { return IneqKind }

// Children implements Expression.
func (i Ineq) Children() []Expression { return []Expression{i.A, i.B} }

// WithChildren implements Expression.
func (i Ineq) WithChildren(children []Expression) (Expression, error) {
	if len(children) != 2 {
		return nil, &WrongNumberOfChildrenError{Expected: 2, Got: len(children)}
	}
	return Ineq{A: children[0], B: children[1], K: i.K}, nil
}

// Equal implements Expression.
func (i Ineq) Equal(other Expression) bool {
	o, ok := other.(Ineq)
	return ok && i.K == o.K && exprEqual(i.A, o.A) && exprEqual(i.B, o.B)
}

func (i Ineq) String() string {
	return fmt.Sprintf("Ineq(%s, %s, %d)", i.A, i.B, i.K)
}
