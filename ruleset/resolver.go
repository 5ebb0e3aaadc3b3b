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

// Package ruleset resolves a target solver family and a list of rule-set
// names into the ordered rule sequence the rewriter consumes (spec.md
// §4.4). It is grounded on the same pattern google-cel-go's
// cel/optimizer.go uses to turn a set of named ASTOptimizers into an
// ordered optimization pipeline, adapted here to filter by solver-family
// acceptance rather than by optimizer dependency edges.
package ruleset

import (
	"fmt"
	"sort"

	"github.com/conjure-cp/conjure-go/registry"
	"github.com/conjure-cp/conjure-go/solver"
)

// UnknownRuleSetError reports that a requested rule-set name has no rules
// registered under it.
type UnknownRuleSetError struct {
	Name string
}

func (e *UnknownRuleSetError) Error() string {
	return fmt.Sprintf("ruleset: unknown rule set %q", e.Name)
}

// Resolve computes the ordered, deduplicated rule sequence for family from
// the union of ruleSetNames (spec.md §4.4). An empty ruleSetNames, or a
// named rule set whose members are all filtered out for family, is not an
// error — the resulting sequence is simply shorter (an entirely empty
// result makes the rewriter a no-op). A name with no rules registered
// under it anywhere is reported
// as *UnknownRuleSetError, since that is very likely a typo rather than an
// intentionally sparse rule set.
func Resolve(family solver.Family, ruleSetNames []string) ([]registry.Rule, error) {
	known := make(map[string]bool)
	for _, r := range registry.Rules() {
		for _, s := range r.RuleSets {
			known[s] = true
		}
	}

	seen := make(map[string]bool)
	var resolved []registry.Rule
	for _, name := range ruleSetNames {
		if !known[name] {
			return nil, &UnknownRuleSetError{Name: name}
		}
		for _, r := range registry.RulesInSet(name) {
			if seen[r.Name] {
				continue
			}
			if !acceptedByFamily(r, family) {
				continue
			}
			seen[r.Name] = true
			resolved = append(resolved, r)
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].Priority != resolved[j].Priority {
			return resolved[i].Priority > resolved[j].Priority
		}
		return resolved[i].Name < resolved[j].Name
	})
	return resolved, nil
}

func acceptedByFamily(r registry.Rule, family solver.Family) bool {
	for _, k := range r.OutputKinds {
		if !solver.Accepts(family, k) {
			return false
		}
	}
	return true
}
