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

// ConstantInt is a literal integer value. It has no children.
type ConstantInt int

// Kind implements Expression.
func (ConstantInt) Kind() ExprKind { return ConstantIntKind }

// Children implements Expression: atoms have no sub-expressions.
func (ConstantInt) Children() []Expression { return nil }

// WithChildren implements Expression.
func (c ConstantInt) WithChildren(children []Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, &WrongNumberOfChildrenError{Expected: 0, Got: len(children)}
	}
	return c, nil
}

// Equal implements Expression.
func (c ConstantInt) Equal(other Expression) bool {
	o, ok := other.(ConstantInt)
	return ok && c == o
}

func (c ConstantInt) String() string {
	return fmt.Sprintf("ConstantInt(%d)", int(c))
}

// ConstantBool is a literal boolean value. It has no children.
type ConstantBool bool

// Kind implements Expression.
func (ConstantBool) Kind() ExprKind { return ConstantBoolKind }

// Children implements Expression: atoms have no sub-expressions.
func (ConstantBool) Children() []Expression { return nil }

// WithChildren implements Expression.
func (c ConstantBool) WithChildren(children []Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, &WrongNumberOfChildrenError{Expected: 0, Got: len(children)}
	}
	return c, nil
}

// Equal implements Expression.
func (c ConstantBool) Equal(other Expression) bool {
	o, ok := other.(ConstantBool)
	return ok && c == o
}

func (c ConstantBool) String() string {
	return fmt.Sprintf("ConstantBool(%t)", bool(c))
}

// Reference is a use of a decision variable's Name. It has no children: the
// Name itself is not a sub-expression (spec.md §4.1, "non-expression
// fields ... are not children").
type Reference struct {
	Name Name
}

// Kind implements Expression.
func (Reference) Kind() ExprKind { return ReferenceKind }

// Children implements Expression.
func (Reference) Children() []Expression { return nil }

// WithChildren implements Expression.
func (r Reference) WithChildren(children []Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, &WrongNumberOfChildrenError{Expected: 0, Got: len(children)}
	}
	return r, nil
}

// Equal implements Expression.
func (r Reference) Equal(other Expression) bool {
	o, ok := other.(Reference)
	return ok && r.Name.Equal(o.Name)
}

func (r Reference) String() string {
	return fmt.Sprintf("Reference(%s)", r.Name)
}
