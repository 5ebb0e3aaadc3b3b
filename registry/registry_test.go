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
	"errors"
	"testing"

	"github.com/conjure-cp/conjure-go/ast"
)

func noopApply(e ast.Expression) (ast.Expression, error) {
	return nil, ErrRuleNotApplicable
}

func TestRegisterAndLookup(t *testing.T) {
	reset()
	defer reset()

	Register(Rule{Name: "r1", RuleSets: []string{"A"}, Priority: 10, Apply: noopApply})
	Register(Rule{Name: "r2", RuleSets: []string{"A", "B"}, Priority: 20, Apply: noopApply})

	rules := Rules()
	if len(rules) != 2 {
		t.Fatalf("Rules() returned %d rules, want 2", len(rules))
	}
	if rules[0].Name != "r2" {
		t.Errorf("Rules()[0] = %q, want %q (higher priority first)", rules[0].Name, "r2")
	}

	got, err := RuleByName("r1")
	if err != nil {
		t.Fatalf("RuleByName(r1): %v", err)
	}
	if got.Name != "r1" {
		t.Errorf("RuleByName(r1).Name = %q, want r1", got.Name)
	}

	inA := RulesInSet("A")
	if len(inA) != 2 {
		t.Errorf("RulesInSet(A) = %d rules, want 2", len(inA))
	}
	inB := RulesInSet("B")
	if len(inB) != 1 || inB[0].Name != "r2" {
		t.Errorf("RulesInSet(B) = %v, want [r2]", inB)
	}
}

func TestRuleByNameUnknown(t *testing.T) {
	reset()
	defer reset()

	var unknown *UnknownRuleError
	_, err := RuleByName("does-not-exist")
	if !errors.As(err, &unknown) {
		t.Fatalf("RuleByName(unknown): got %v, want *UnknownRuleError", err)
	}
}

func TestRegisterDuplicateNamePanics(t *testing.T) {
	reset()
	defer reset()

	Register(Rule{Name: "dup", Priority: 1, Apply: noopApply})
	defer func() {
		if recover() == nil {
			t.Errorf("Register with duplicate name did not panic")
		}
	}()
	Register(Rule{Name: "dup", Priority: 2, Apply: noopApply})
}

func TestRegisterAfterFreezePanics(t *testing.T) {
	reset()
	defer reset()

	Register(Rule{Name: "before-freeze", Priority: 1, Apply: noopApply})
	_ = Rules() // triggers freeze()

	defer func() {
		if recover() == nil {
			t.Errorf("Register after the registry was read did not panic")
		}
	}()
	Register(Rule{Name: "after-freeze", Priority: 1, Apply: noopApply})
}

func TestTiesBrokenByName(t *testing.T) {
	reset()
	defer reset()

	Register(Rule{Name: "zebra", Priority: 5, Apply: noopApply})
	Register(Rule{Name: "alpha", Priority: 5, Apply: noopApply})

	rules := Rules()
	if rules[0].Name != "alpha" || rules[1].Name != "zebra" {
		t.Errorf("Rules() with tied priority = %v, want [alpha, zebra]", rules)
	}
}
