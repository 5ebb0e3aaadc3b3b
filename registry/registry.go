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

package registry

import (
	"fmt"
	"sort"
	"sync"
)

// UnknownRuleError is returned by RuleByName when no rule with the given
// name has been registered. It is a test-only lookup failure mode
// (spec.md §7: "test-only; surfaced").
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("registry: unknown rule %q", e.Name)
}

var (
	mu      sync.Mutex
	rules   = map[string]Rule{}
	started bool
)

// Register adds rule to the process-wide table. It must be called during
// package initialization (conventionally from an init() func in package
// rulelib) before any rewrite begins; calling it afterwards, or
// registering two rules under the same name, is a startup error and
// panics, matching spec.md §4.3's "two rules with the same name is a
// startup error" and §9's guidance for registries without implicit
// self-registration: "implementations without that facility must expose
// an explicit register(rule) called during startup ... post-startup
// mutation is forbidden."
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	if started {
		panic(fmt.Sprintf("registry: Register(%q) called after startup; the registry is immutable once rewriting begins", r.Name))
	}
	if _, exists := rules[r.Name]; exists {
		panic(fmt.Sprintf("registry: duplicate rule name %q", r.Name))
	}
	rules[r.Name] = r
}

// freeze marks the registry read-only. Called lazily by the first read so
// that every rulelib init() has had a chance to run via Go's own
// initialization ordering, without requiring callers to invoke an explicit
// Start() step.
func freeze() {
	mu.Lock()
	defer mu.Unlock()
	started = true
}

// Rules returns every registered rule, sorted by descending priority with
// ties broken by name (the same order RulesInSet and the resolver produce),
// so callers get a deterministic view regardless of registration order.
func Rules() []Rule {
	freeze()
	mu.Lock()
	defer mu.Unlock()
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, r)
	}
	sortRules(out)
	return out
}

// RuleByName looks up a single rule by its unique name.
func RuleByName(name string) (Rule, error) {
	freeze()
	mu.Lock()
	defer mu.Unlock()
	r, ok := rules[name]
	if !ok {
		return Rule{}, &UnknownRuleError{Name: name}
	}
	return r, nil
}

// RulesInSet returns every rule tagged with the named rule set, in the same
// descending-priority, name-tiebreak order as Rules.
func RulesInSet(name string) []Rule {
	freeze()
	mu.Lock()
	defer mu.Unlock()
	var out []Rule
	for _, r := range rules {
		if r.InRuleSet(name) {
			out = append(out, r)
		}
	}
	sortRules(out)
	return out
}

func sortRules(rs []Rule) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Priority != rs[j].Priority {
			return rs[i].Priority > rs[j].Priority
		}
		return rs[i].Name < rs[j].Name
	})
}

// reset clears the registry. Test-only: it lets registry_test.go exercise
// Register/duplicate-name/post-freeze behaviour without interference from
// rulelib's real rule set, and without leaking state between test cases.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	rules = map[string]Rule{}
	started = false
}

// ResetForTest clears the registry and un-freezes it. Exported so that
// tests in other packages, such as ruleset's, can
// populate a hermetic set of rules instead of exercising whatever rulelib
// registered via its init() functions. Production code must never call
// this: the registry is meant to be populated once, at process start, and
// held immutable for the rest of the run.
func ResetForTest() {
	reset()
}
