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

// Package registry holds the process-wide, immutable table of rewrite
// rules (spec.md §4.3). Rules self-register from rulelib's init()
// functions; the table becomes read-only the first time it is read.
package registry

import (
	"errors"

	"github.com/conjure-cp/conjure-go/ast"
)

// ErrRuleNotApplicable is the distinguished error a Rule's Apply function
// returns to mean "this rule does not match at this site" (spec.md §4.2).
// It is expected and internal: the rewriter consumes it and it is never
// surfaced to a pipeline caller (spec.md §7).
var ErrRuleNotApplicable = errors.New("registry: rule not applicable")

// ApplyFunc is a pure function from an expression to a rewritten
// expression, or ErrRuleNotApplicable. Implementations must be local
// (inspect only the node and a bounded prefix of its descendants), sound
// (semantically equivalent under any valuation — the engine trusts the
// rule author on this), and progress-making (a successful result must not
// be structurally equal to the input; spec.md §4.2).
type ApplyFunc func(ast.Expression) (ast.Expression, error)

// Rule is a named rewrite rule tagged with the rule sets it belongs to and
// a priority used to order rules within a resolved sequence (spec.md §4.2).
type Rule struct {
	// Name uniquely identifies the rule across the registry.
	Name string
	// RuleSets is the set of rule-set names this rule is a member of.
	RuleSets []string
	// Priority orders rules within a resolved sequence: higher fires
	// first, ties broken by Name.
	Priority int
	// OutputKinds declares every Expression variant this rule can
	// introduce at the rewritten node. The rule-set resolver (spec.md
	// §4.4) uses this to decide whether a rule can participate in a
	// resolution targeting a given solver family: a rule whose output
	// might not be accepted by that family is excluded rather than risk
	// leaving the model in the family's unaccepted fragment.
	OutputKinds []ast.ExprKind
	// Apply is the rule's rewrite function.
	Apply ApplyFunc
}

// InRuleSet reports whether the rule belongs to the named rule set.
func (r Rule) InRuleSet(name string) bool {
	for _, s := range r.RuleSets {
		if s == name {
			return true
		}
	}
	return false
}
