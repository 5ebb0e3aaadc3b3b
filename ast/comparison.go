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

// binary is the shared shape of the six comparison operators: two children,
// left-to-right. It is embedded (by value) into each operator's named type
// so that the child list, the arity check and the pairwise comparison
// behind Children/WithChildren/Equal are written once; each operator still
// defines its own Kind and String.
type binary struct {
	Lhs, Rhs Expression
}

func (b binary) children() []Expression { return []Expression{b.Lhs, b.Rhs} }

func (b binary) withChildren(children []Expression) (binary, error) {
	if len(children) != 2 {
		return binary{}, &WrongNumberOfChildrenError{Expected: 2, Got: len(children)}
	}
	return binary{Lhs: children[0], Rhs: children[1]}, nil
}

func (b binary) equal(o binary) bool {
	return exprEqual(b.Lhs, o.Lhs) && exprEqual(b.Rhs, o.Rhs)
}

// Eq is the equality comparison Lhs == Rhs.
type Eq struct{ binary }

func (Eq) Kind() ExprKind            { return EqKind }
func (e Eq) Children() []Expression  { return e.children() }
func (e Eq) Equal(other Expression) bool {
	o, ok := other.(Eq)
	return ok && e.equal(o.binary)
}
func (e Eq) WithChildren(children []Expression) (Expression, error) {
	b, err := e.withChildren(children)
	if err != nil {
		return nil, err
	}
	return Eq{b}, nil
}
func (e Eq) String() string { return fmt.Sprintf("Eq(%s, %s)", e.Lhs, e.Rhs) }

// Neq is the disequality comparison Lhs != Rhs.
type Neq struct{ binary }

func (Neq) Kind() ExprKind            { return NeqKind }
func (n Neq) Children() []Expression  { return n.children() }
func (n Neq) Equal(other Expression) bool {
	o, ok := other.(Neq)
	return ok && n.equal(o.binary)
}
func (n Neq) WithChildren(children []Expression) (Expression, error) {
	b, err := n.withChildren(children)
	if err != nil {
		return nil, err
	}
	return Neq{b}, nil
}
func (n Neq) String() string { return fmt.Sprintf("Neq(%s, %s)", n.Lhs, n.Rhs) }

// Geq is the comparison Lhs >= Rhs.
type Geq struct{ binary }

func (Geq) Kind() ExprKind            { return GeqKind }
func (g Geq) Children() []Expression  { return g.children() }
func (g Geq) Equal(other Expression) bool {
	o, ok := other.(Geq)
	return ok && g.equal(o.binary)
}
func (g Geq) WithChildren(children []Expression) (Expression, error) {
	b, err := g.withChildren(children)
	if err != nil {
		return nil, err
	}
	return Geq{b}, nil
}
func (g Geq) String() string { return fmt.Sprintf("Geq(%s, %s)", g.Lhs, g.Rhs) }

// Leq is the comparison Lhs <= Rhs.
type Leq struct{ binary }

func (Leq) Kind() ExprKind            { return LeqKind }
func (l Leq) Children() []Expression  { return l.children() }
func (l Leq) Equal(other Expression) bool {
	o, ok := other.(Leq)
	return ok && l.equal(o.binary)
}
func (l Leq) WithChildren(children []Expression) (Expression, error) {
	b, err := l.withChildren(children)
	if err != nil {
		return nil, err
	}
	return Leq{b}, nil
}
func (l Leq) String() string { return fmt.Sprintf("Leq(%s, %s)", l.Lhs, l.Rhs) }

// Gt is the comparison Lhs > Rhs.
type Gt struct{ binary }

func (Gt) Kind() ExprKind            { return GtKind }
func (g Gt) Children() []Expression  { return g.children() }
func (g Gt) Equal(other Expression) bool {
	o, ok := other.(Gt)
	return ok && g.equal(o.binary)
}
func (g Gt) WithChildren(children []Expression) (Expression, error) {
	b, err := g.withChildren(children)
	if err != nil {
		return nil, err
	}
	return Gt{b}, nil
}
func (g Gt) String() string { return fmt.Sprintf("Gt(%s, %s)", g.Lhs, g.Rhs) }

// Lt is the comparison Lhs < Rhs.
type Lt struct{ binary }

func (Lt) Kind() ExprKind            { return LtKind }
func (l Lt) Children() []Expression  { return l.children() }
func (l Lt) Equal(other Expression) bool {
	o, ok := other.(Lt)
	return ok && l.equal(o.binary)
}
func (l Lt) WithChildren(children []Expression) (Expression, error) {
	b, err := l.withChildren(children)
	if err != nil {
		return nil, err
	}
	return Lt{b}, nil
}
func (l Lt) String() string { return fmt.Sprintf("Lt(%s, %s)", l.Lhs, l.Rhs) }

// NewEq, NewNeq, ... construct each comparison from its two operands.
func NewEq(lhs, rhs Expression) Eq   { return Eq{binary{lhs, rhs}} }
func NewNeq(lhs, rhs Expression) Neq { return Neq{binary{lhs, rhs}} }
func NewGeq(lhs, rhs Expression) Geq { return Geq{binary{lhs, rhs}} }
func NewLeq(lhs, rhs Expression) Leq { return Leq{binary{lhs, rhs}} }
func NewGt(lhs, rhs Expression) Gt   { return Gt{binary{lhs, rhs}} }
func NewLt(lhs, rhs Expression) Lt   { return Lt{binary{lhs, rhs}} }
