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
		Name:     "sum_constants",
		RuleSets: []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority: PriorityFold,
		Apply:    sumConstants,
	})
	registry.Register(registry.Rule{
		Name:     "unwrap_sum",
		RuleSets: []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority: PriorityUnwrap,
		Apply:    unwrapSum,
	})
}

// sumConstants folds every ConstantInt operand of a Sum with two or more
// constant operands into a single trailing ConstantInt, leaving the
// non-constant operands in their original relative order (spec.md §4.2
// ordering note).
func sumConstants(e ast.Expression) (ast.Expression, error) {
	sum, ok := e.(ast.Sum)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}

	var nonConstants []ast.Expression
	total := 0
	constCount := 0
	for _, arg := range sum.Args {
		if c, ok := arg.(ast.ConstantInt); ok {
			total += int(c)
			constCount++
			continue
		}
		nonConstants = append(nonConstants, arg)
	}
	if constCount < 2 {
		return nil, registry.ErrRuleNotApplicable
	}

	newArgs := append(nonConstants, ast.NewConstantInt(total))
	return ast.NewSum(newArgs...), nil
}

// unwrapSum replaces a singleton Sum([c]) with c directly.
func unwrapSum(e ast.Expression) (ast.Expression, error) {
	sum, ok := e.(ast.Sum)
	if !ok || len(sum.Args) != 1 {
		return nil, registry.ErrRuleNotApplicable
	}
	return sum.Args[0], nil
}
