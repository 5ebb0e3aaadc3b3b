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

// This file collects the constructors for every Expression variant in one
// place, the way common/ast/factory.go's ExprFactory does for cel-go's
// variant set. Since Expression variants here are plain value types with
// no identifier bookkeeping to centralize, the constructors are free
// functions rather than a stateful factory value.

// NewConstantInt constructs an integer literal.
func NewConstantInt(v int) ConstantInt { return ConstantInt(v) }

// NewConstantBool constructs a boolean literal.
func NewConstantBool(v bool) ConstantBool { return ConstantBool(v) }

// NewReference constructs a use of a decision variable's Name.
func NewReference(name Name) Reference { return Reference{Name: name} }

// NewSum constructs a variadic arithmetic sum over the given operands.
func NewSum(args ...Expression) Sum { return Sum{Args: args} }

// NewNot constructs a boolean negation.
func NewNot(arg Expression) Not { return Not{Arg: arg} }

// NewAnd constructs a variadic boolean conjunction.
func NewAnd(args ...Expression) And { return And{Args: args} }

// NewOr constructs a variadic boolean disjunction.
func NewOr(args ...Expression) Or { return Or{Args: args} }

// NewSumGeq constructs the flattened Minion-native form of Geq(Sum(args), rhs).
func NewSumGeq(args []Expression, rhs Expression) SumGeq { return SumGeq{Args: args, Rhs: rhs} }

// NewSumLeq constructs the flattened Minion-native form of Leq(Sum(args), rhs).
func NewSumLeq(args []Expression, rhs Expression) SumLeq { return SumLeq{Args: args, Rhs: rhs} }

// NewIneq constructs a − b ≤ k.
func NewIneq(a, b Expression, k int) Ineq { return Ineq{A: a, B: b, K: k} }
