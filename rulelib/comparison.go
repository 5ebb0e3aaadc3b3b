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
	"github.com/conjure-cp/conjure-go/ast"
	"github.com/conjure-cp/conjure-go/registry"
)

func init() {
	registry.Register(registry.Rule{
		Name:        "lt_to_ineq",
		RuleSets:    []string{RuleSetMinion},
		Priority:    PriorityFlatten,
		OutputKinds: []ast.ExprKind{ast.IneqKind},
		Apply:       ltToIneq,
	})
	registry.Register(registry.Rule{
		Name:        "sum_leq_to_sumleq",
		RuleSets:    []string{RuleSetMinion},
		Priority:    PriorityFlatten,
		OutputKinds: []ast.ExprKind{ast.SumLeqKind},
		Apply:       sumLeqToSumLeq,
	})
	registry.Register(registry.Rule{
		Name:        "flatten_sum_geq",
		RuleSets:    []string{RuleSetMinion},
		Priority:    PriorityFlatten,
		OutputKinds: []ast.ExprKind{ast.SumGeqKind},
		Apply:       flattenSumGeq,
	})
}

// ltToIneq rewrites Lt(a, b) into the Minion-native Ineq(a, b, -1)
// (a - b <= -1, i.e. a < b).
func ltToIneq(e ast.Expression) (ast.Expression, error) {
	lt, ok := e.(ast.Lt)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	return ast.NewIneq(lt.Lhs, lt.Rhs, -1), nil
}

// sumLeqToSumLeq rewrites Leq(Sum(xs), rhs) into the flattened SumLeq(xs, rhs).
func sumLeqToSumLeq(e ast.Expression) (ast.Expression, error) {
	leq, ok := e.(ast.Leq)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	sum, ok := leq.Lhs.(ast.Sum)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	return ast.NewSumLeq(sum.Args, leq.Rhs), nil
}

// flattenSumGeq rewrites Geq(Sum(xs), rhs) into the flattened SumGeq(xs, rhs).
func flattenSumGeq(e ast.Expression) (ast.Expression, error) {
	geq, ok := e.(ast.Geq)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	sum, ok := geq.Lhs.(ast.Sum)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	return ast.NewSumGeq(sum.Args, geq.Rhs), nil
}
