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

package rulelib

import (
	"testing"

	"github.com/conjure-cp/conjure-go/ast"
	"github.com/conjure-cp/conjure-go/registry"
)

func a(name string) ast.Expression { return ast.NewReference(ast.UserName(name)) }

func TestSumConstants(t *testing.T) {
	in := ast.NewSum(a("x"), ast.NewConstantInt(2), ast.NewConstantInt(3), a("y"))
	out, err := sumConstants(in)
	if err != nil {
		t.Fatalf("sumConstants: %v", err)
	}
	sum := out.(ast.Sum)
	want := ast.NewSum(a("x"), a("y"), ast.NewConstantInt(5))
	if !sum.Equal(want) {
		t.Errorf("sumConstants(%v) = %v, want %v", in, sum, want)
	}
}

func TestSumConstantsRequiresTwoConstants(t *testing.T) {
	in := ast.NewSum(a("x"), ast.NewConstantInt(2))
	if _, err := sumConstants(in); err != registry.ErrRuleNotApplicable {
		t.Errorf("sumConstants with one constant: got %v, want ErrRuleNotApplicable", err)
	}
}

func TestUnwrapSum(t *testing.T) {
	in := ast.NewSum(a("x"))
	out, err := unwrapSum(in)
	if err != nil {
		t.Fatalf("unwrapSum: %v", err)
	}
	if !out.Equal(a("x")) {
		t.Errorf("unwrapSum(%v) = %v, want x", in, out)
	}
}

func TestLtToIneq(t *testing.T) {
	in := ast.NewLt(a("x"), a("y"))
	out, err := ltToIneq(in)
	if err != nil {
		t.Fatalf("ltToIneq: %v", err)
	}
	want := ast.NewIneq(a("x"), a("y"), -1)
	if !out.Equal(want) {
		t.Errorf("ltToIneq(%v) = %v, want %v", in, out, want)
	}
}

func TestSumLeqToSumLeq(t *testing.T) {
	in := ast.NewLeq(ast.NewSum(a("x"), a("y")), ast.NewConstantInt(10))
	out, err := sumLeqToSumLeq(in)
	if err != nil {
		t.Fatalf("sumLeqToSumLeq: %v", err)
	}
	want := ast.NewSumLeq([]ast.Expression{a("x"), a("y")}, ast.NewConstantInt(10))
	if !out.Equal(want) {
		t.Errorf("sumLeqToSumLeq(%v) = %v, want %v", in, out, want)
	}
}

func TestFlattenSumGeq(t *testing.T) {
	in := ast.NewGeq(ast.NewSum(a("x"), a("y")), ast.NewConstantInt(3))
	out, err := flattenSumGeq(in)
	if err != nil {
		t.Fatalf("flattenSumGeq: %v", err)
	}
	want := ast.NewSumGeq([]ast.Expression{a("x"), a("y")}, ast.NewConstantInt(3))
	if !out.Equal(want) {
		t.Errorf("flattenSumGeq(%v) = %v, want %v", in, out, want)
	}
}

func TestRemoveDoubleNegation(t *testing.T) {
	in := ast.NewNot(ast.NewNot(a("x")))
	out, err := removeDoubleNegation(in)
	if err != nil {
		t.Fatalf("removeDoubleNegation: %v", err)
	}
	if !out.Equal(a("x")) {
		t.Errorf("removeDoubleNegation(%v) = %v, want x", in, out)
	}
}

func TestRemoveDoubleNegationRejectsSingleNegation(t *testing.T) {
	in := ast.NewNot(a("x"))
	if _, err := removeDoubleNegation(in); err != registry.ErrRuleNotApplicable {
		t.Errorf("removeDoubleNegation(Not(x)): got %v, want ErrRuleNotApplicable", err)
	}
}

func TestUnwrapNestedOr(t *testing.T) {
	in := ast.NewOr(a("x"), ast.NewOr(a("y"), a("z")))
	out, err := unwrapNestedOr(in)
	if err != nil {
		t.Fatalf("unwrapNestedOr: %v", err)
	}
	want := ast.NewOr(a("x"), a("y"), a("z"))
	if !out.Equal(want) {
		t.Errorf("unwrapNestedOr(%v) = %v, want %v", in, out, want)
	}
}

func TestUnwrapNestedOrRejectsNonNested(t *testing.T) {
	in := ast.NewOr(a("x"), a("y"))
	if _, err := unwrapNestedOr(in); err != registry.ErrRuleNotApplicable {
		t.Errorf("unwrapNestedOr on non-nested input: got %v, want ErrRuleNotApplicable", err)
	}
}

func TestUnwrapNestedAnd(t *testing.T) {
	in := ast.NewAnd(ast.NewAnd(a("x"), a("y")), a("z"))
	out, err := unwrapNestedAnd(in)
	if err != nil {
		t.Fatalf("unwrapNestedAnd: %v", err)
	}
	want := ast.NewAnd(a("x"), a("y"), a("z"))
	if !out.Equal(want) {
		t.Errorf("unwrapNestedAnd(%v) = %v, want %v", in, out, want)
	}
}

func TestRemoveTrivialAndOr(t *testing.T) {
	if out, err := removeTrivialAnd(ast.NewAnd(a("x"))); err != nil || !out.Equal(a("x")) {
		t.Errorf("removeTrivialAnd(And(x)) = %v, %v, want x, nil", out, err)
	}
	if out, err := removeTrivialOr(ast.NewOr(a("x"))); err != nil || !out.Equal(a("x")) {
		t.Errorf("removeTrivialOr(Or(x)) = %v, %v, want x, nil", out, err)
	}
}

func TestRemoveConstantsFromOrShortCircuitsOnTrue(t *testing.T) {
	in := ast.NewOr(a("x"), ast.NewConstantBool(true), a("y"))
	out, err := removeConstantsFromOr(in)
	if err != nil {
		t.Fatalf("removeConstantsFromOr: %v", err)
	}
	if !out.Equal(ast.NewConstantBool(true)) {
		t.Errorf("removeConstantsFromOr(%v) = %v, want true", in, out)
	}
}

func TestRemoveConstantsFromOrDropsFalse(t *testing.T) {
	in := ast.NewOr(a("x"), ast.NewConstantBool(false), a("y"))
	out, err := removeConstantsFromOr(in)
	if err != nil {
		t.Fatalf("removeConstantsFromOr: %v", err)
	}
	want := ast.NewOr(a("x"), a("y"))
	if !out.Equal(want) {
		t.Errorf("removeConstantsFromOr(%v) = %v, want %v", in, out, want)
	}
}

func TestRemoveConstantsFromAndRejectsAllReferences(t *testing.T) {
	in := ast.NewAnd(a("x"), a("y"))
	if _, err := removeConstantsFromAnd(in); err != registry.ErrRuleNotApplicable {
		t.Errorf("removeConstantsFromAnd on all-reference input: got %v, want ErrRuleNotApplicable", err)
	}
}

func TestRemoveConstantsFromAndShortCircuitsOnFalse(t *testing.T) {
	in := ast.NewAnd(a("x"), ast.NewConstantBool(false))
	out, err := removeConstantsFromAnd(in)
	if err != nil {
		t.Fatalf("removeConstantsFromAnd: %v", err)
	}
	if !out.Equal(ast.NewConstantBool(false)) {
		t.Errorf("removeConstantsFromAnd(%v) = %v, want false", in, out)
	}
}

func TestDistributeNotOverAnd(t *testing.T) {
	in := ast.NewNot(ast.NewAnd(a("x"), a("y")))
	out, err := distributeNotOverAnd(in)
	if err != nil {
		t.Fatalf("distributeNotOverAnd: %v", err)
	}
	want := ast.NewOr(ast.NewNot(a("x")), ast.NewNot(a("y")))
	if !out.Equal(want) {
		t.Errorf("distributeNotOverAnd(%v) = %v, want %v", in, out, want)
	}
}

func TestDistributeNotOverOr(t *testing.T) {
	in := ast.NewNot(ast.NewOr(a("x"), a("y")))
	out, err := distributeNotOverOr(in)
	if err != nil {
		t.Fatalf("distributeNotOverOr: %v", err)
	}
	want := ast.NewAnd(ast.NewNot(a("x")), ast.NewNot(a("y")))
	if !out.Equal(want) {
		t.Errorf("distributeNotOverOr(%v) = %v, want %v", in, out, want)
	}
}

func TestDistributeOrOverAnd(t *testing.T) {
	in := ast.NewOr(ast.NewAnd(a("x"), a("y")), a("r"))
	out, err := distributeOrOverAnd(in)
	if err != nil {
		t.Fatalf("distributeOrOverAnd: %v", err)
	}
	want := ast.NewAnd(ast.NewOr(a("r"), a("x")), ast.NewOr(a("r"), a("y")))
	if !out.Equal(want) {
		t.Errorf("distributeOrOverAnd(%v) = %v, want %v", in, out, want)
	}
}

func TestDistributeOrOverAndRejectsTwoAnds(t *testing.T) {
	in := ast.NewOr(ast.NewAnd(a("x")), ast.NewAnd(a("y")))
	if _, err := distributeOrOverAnd(in); err != registry.ErrRuleNotApplicable {
		t.Errorf("distributeOrOverAnd with two And operands: got %v, want ErrRuleNotApplicable", err)
	}
}

// TestAllRulesRegistered exercises the package's init()-time
// self-registration: once rulelib is imported, registry.Rules() must be
// non-empty (spec.md §7 supplemented features, "rules_present" sanity).
func TestAllRulesRegistered(t *testing.T) {
	rules := registry.Rules()
	if len(rules) == 0 {
		t.Fatal("registry.Rules() is empty after importing rulelib")
	}
	names := map[string]bool{}
	for _, r := range rules {
		names[r.Name] = true
	}
	for _, want := range []string{
		"sum_constants", "unwrap_sum", "lt_to_ineq", "sum_leq_to_sumleq",
		"flatten_sum_geq", "remove_double_negation", "unwrap_nested_or",
		"unwrap_nested_and", "remove_trivial_and", "remove_trivial_or",
		"remove_constants_from_or", "remove_constants_from_and",
		"distribute_not_over_and", "distribute_not_over_or",
		"distribute_or_over_and",
	} {
		if !names[want] {
			t.Errorf("registry.Rules() missing %q", want)
		}
	}
}
