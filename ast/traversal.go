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

// Descend applies f to each of e's immediate children and rebuilds e from
// the results. f is never called on e itself. Rule code should never need
// this directly; it exists so higher-order traversals such as Transform
// can be written once against the two primitives, per spec.md §4.1's rationale: "rule code never pattern-matches
// over the full variant set; adding a new variant requires only updating
// the two primitives."
func Descend(e Expression, f func(Expression) Expression) (Expression, error) {
	children := e.Children()
	if len(children) == 0 {
		return e, nil
	}
	next := make([]Expression, len(children))
	for i, c := range children {
		next[i] = f(c)
	}
	return e.WithChildren(next)
}

// Transform applies f bottom-up: f is applied to every node only after its
// children have already been transformed. If f is idempotent, the overall
// traversal reaches a fixed point in one pass.
func Transform(e Expression, f func(Expression) Expression) Expression {
	rebuilt, err := Descend(e, func(child Expression) Expression {
		return Transform(child, f)
	})
	if err != nil {
		// Descend only fails when f returns the wrong number of children,
		// which cannot happen here since the child count is preserved by
		// construction; treat it as unreachable rather than reporting a
		// traversal error through Transform's error-free signature.
		return e
	}
	return f(rebuilt)
}

// Universe returns e and all of its subexpressions in pre-order, e first.
// The whole slice is built before it is returned; the enumeration is not
// lazy.
func Universe(e Expression) []Expression {
	out := []Expression{e}
	for _, c := range e.Children() {
		out = append(out, Universe(c)...)
	}
	return out
}
