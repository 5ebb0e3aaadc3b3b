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

// Package solver defines the solver-family gate: the static, per-variant
// acceptance sets an Expression.Kind() is checked against before handoff
// (spec.md §4.6), plus helpers for naming variables safely in a solver's
// native identifier syntax.
package solver

import "github.com/conjure-cp/conjure-go/ast"

// Family identifies a downstream solver family and therefore which
// Expression variants a model may contain after rewriting.
type Family int

const (
	// Minion is the finite-domain solver family. Its encoder accepts only
	// ConstantInt, Reference, SumGeq, SumLeq, Ineq (spec.md §6).
	Minion Family = iota
	// SAT is the CNF-style SAT solver family. Its encoder accepts only
	// ConstantInt, Not, And, Or (spec.md §6).
	SAT
)

func (f Family) String() string {
	switch f {
	case Minion:
		return "Minion"
	case SAT:
		return "SAT"
	default:
		return "UnknownFamily"
	}
}

// acceptance is the static variant -> family-set lookup table spec.md §4.6
// requires ("a fixed set known at variant-declaration time ... must not
// require reflection at rewrite time"). It is built once and never
// mutated; Accepts only ever reads from it.
var acceptance = map[ast.ExprKind]map[Family]bool{
	ast.ConstantIntKind:  {Minion: true, SAT: true},
	ast.ConstantBoolKind: {},
	ast.ReferenceKind:    {Minion: true},
	ast.SumKind:          {},
	ast.NotKind:          {SAT: true},
	ast.AndKind:          {SAT: true},
	ast.OrKind:           {SAT: true},
	ast.EqKind:           {},
	ast.NeqKind:          {},
	ast.GeqKind:          {},
	ast.LeqKind:          {},
	ast.GtKind:           {},
	ast.LtKind:           {},
	ast.SumGeqKind:       {Minion: true},
	ast.SumLeqKind:       {Minion: true},
	ast.IneqKind:         {Minion: true},
}

// Accepts reports whether family's back-end encoder accepts the given
// expression variant.
func Accepts(family Family, kind ast.ExprKind) bool {
	return acceptance[kind][family]
}
