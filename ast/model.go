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

import "sort"

// Model is a mapping from Name to DecisionVariable (keys unique, insertion
// order irrelevant) plus an ordered sequence of constraint expressions
// (spec.md §3). Model is a value type: the rewriter consumes one by value
// and returns a new one rather than mutating in place (spec.md §5).
type Model struct {
	variables   map[Name]DecisionVariable
	Constraints []Expression
}

// NewModel returns an empty Model.
func NewModel() Model {
	return Model{variables: make(map[Name]DecisionVariable)}
}

// AddVariable adds or replaces the DecisionVariable bound to name.
func (m *Model) AddVariable(name Name, dv DecisionVariable) {
	if m.variables == nil {
		m.variables = make(map[Name]DecisionVariable)
	}
	m.variables[name] = dv
}

// UpdateDomain replaces the domain of an already-declared variable. It is a
// no-op if name has no entry in the model.
func (m *Model) UpdateDomain(name Name, d Domain) {
	dv, ok := m.variables[name]
	if !ok {
		return
	}
	dv.Domain = d
	m.variables[name] = dv
}

// AddConstraint appends a constraint expression to the model's ordered
// constraint list.
func (m *Model) AddConstraint(e Expression) {
	m.Constraints = append(m.Constraints, e)
}

// Variable looks up the DecisionVariable bound to name.
func (m Model) Variable(name Name) (DecisionVariable, bool) {
	dv, ok := m.variables[name]
	return dv, ok
}

// Names returns the model's variable names sorted by Name.Compare, the
// deterministic order spec.md §9 requires for diagnostics/serialisation
// ("map iteration over variables ... must be sorted by key").
func (m Model) Names() []Name {
	names := make([]Name, 0, len(m.variables))
	for n := range m.variables {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i].Compare(names[j]) < 0
	})
	return names
}

// Clone returns a deep-enough copy of m suitable for the rewriter to
// mutate freely without aliasing the caller's constraint slice or variable
// map (spec.md §5: "the rewriter consumes a Model by value (or a snapshot
// clone) and returns a new Model").
func (m Model) Clone() Model {
	vars := make(map[Name]DecisionVariable, len(m.variables))
	for k, v := range m.variables {
		vars[k] = v
	}
	constraints := make([]Expression, len(m.Constraints))
	copy(constraints, m.Constraints)
	return Model{variables: vars, Constraints: constraints}
}

// Validate checks every Reference appearing in the model's constraints
// against the declared variable map, and every direct Reference/ConstantInt
// equality against the referenced variable's declared domain, returning
// *UndeclaredReferenceError or *DomainMismatchError for the first violation
// encountered in constraint order.
func (m Model) Validate() error {
	for _, c := range m.Constraints {
		for _, sub := range Universe(c) {
			ref, ok := sub.(Reference)
			if !ok {
				if err := m.checkDomainMismatch(sub); err != nil {
					return err
				}
				continue
			}
			if _, declared := m.variables[ref.Name]; !declared {
				return &UndeclaredReferenceError{Name: ref.Name}
			}
		}
	}
	return nil
}

// checkDomainMismatch covers spec.md §7's DomainMismatch case: a literal
// compared against a declared variable outside (or of the wrong kind for)
// its domain. Only the direct Reference-vs-ConstantInt shape of Eq is
// checked; anything rule-rewriting has not yet reduced to that shape is
// left for a later Validate pass once it has.
func (m Model) checkDomainMismatch(e Expression) error {
	eq, ok := e.(Eq)
	if !ok {
		return nil
	}
	ref, value, ok := referenceAndConstantInt(eq.Lhs, eq.Rhs)
	if !ok {
		return nil
	}
	dv, declared := m.variables[ref.Name]
	if !declared {
		return nil
	}
	if dv.Domain.IsBool() || !dv.Domain.Contains(value) {
		return &DomainMismatchError{Name: ref.Name}
	}
	return nil
}

// referenceAndConstantInt reports the Reference and ConstantInt operands of
// a binary expression's two sides, in either order, if that is what they are.
func referenceAndConstantInt(lhs, rhs Expression) (Reference, int, bool) {
	if ref, ok := lhs.(Reference); ok {
		if ci, ok := rhs.(ConstantInt); ok {
			return ref, int(ci), true
		}
	}
	if ref, ok := rhs.(Reference); ok {
		if ci, ok := lhs.(ConstantInt); ok {
			return ref, int(ci), true
		}
	}
	return Reference{}, 0, false
}

// Equal reports structural equality between two models: same variable
// bindings and the same constraint list in the same order.
func (m Model) Equal(other Model) bool {
	if len(m.variables) != len(other.variables) {
		return false
	}
	for name, dv := range m.variables {
		odv, ok := other.variables[name]
		if !ok || !dv.Domain.Equal(odv.Domain) {
			return false
		}
	}
	if len(m.Constraints) != len(other.Constraints) {
		return false
	}
	for i, c := range m.Constraints {
		if !exprEqual(c, other.Constraints[i]) {
			return false
		}
	}
	return true
}
