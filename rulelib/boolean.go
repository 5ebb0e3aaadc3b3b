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
		Name:     "remove_double_negation",
		RuleSets: []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority: PriorityUnwrap,
		Apply:    removeDoubleNegation,
	})
	registry.Register(registry.Rule{
		Name:        "unwrap_nested_or",
		RuleSets:    []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority:    PriorityFlattenBoolean,
		OutputKinds: []ast.ExprKind{ast.OrKind},
		Apply:       unwrapNestedOr,
	})
	registry.Register(registry.Rule{
		Name:        "unwrap_nested_and",
		RuleSets:    []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority:    PriorityFlattenBoolean,
		OutputKinds: []ast.ExprKind{ast.AndKind},
		Apply:       unwrapNestedAnd,
	})
	registry.Register(registry.Rule{
		Name:     "remove_trivial_and",
		RuleSets: []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority: PriorityUnwrap,
		Apply:    removeTrivialAnd,
	})
	registry.Register(registry.Rule{
		Name:     "remove_trivial_or",
		RuleSets: []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority: PriorityUnwrap,
		Apply:    removeTrivialOr,
	})
	registry.Register(registry.Rule{
		Name:        "remove_constants_from_or",
		RuleSets:    []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority:    PriorityFold,
		OutputKinds: []ast.ExprKind{ast.ConstantBoolKind, ast.OrKind},
		Apply:       removeConstantsFromOr,
	})
	registry.Register(registry.Rule{
		Name:        "remove_constants_from_and",
		RuleSets:    []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority:    PriorityFold,
		OutputKinds: []ast.ExprKind{ast.ConstantBoolKind, ast.AndKind},
		Apply:       removeConstantsFromAnd,
	})
	registry.Register(registry.Rule{
		Name:        "distribute_not_over_and",
		RuleSets:    []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority:    PriorityDistributeNot,
		OutputKinds: []ast.ExprKind{ast.OrKind, ast.NotKind},
		Apply:       distributeNotOverAnd,
	})
	registry.Register(registry.Rule{
		Name:        "distribute_not_over_or",
		RuleSets:    []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority:    PriorityDistributeNot,
		OutputKinds: []ast.ExprKind{ast.AndKind, ast.NotKind},
		Apply:       distributeNotOverOr,
	})
	registry.Register(registry.Rule{
		Name:        "distribute_or_over_and",
		RuleSets:    []string{RuleSetBase, RuleSetMinion, RuleSetSAT},
		Priority:    PriorityDistributeOr,
		OutputKinds: []ast.ExprKind{ast.AndKind, ast.OrKind},
		Apply:       distributeOrOverAnd,
	})
}

// removeDoubleNegation rewrites Not(Not(e)) into e.
func removeDoubleNegation(e ast.Expression) (ast.Expression, error) {
	outer, ok := e.(ast.Not)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	inner, ok := outer.Arg.(ast.Not)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	return inner.Arg, nil
}

// unwrapNestedOr flattens one level of Or nesting: Or([…, Or(ys), …])
// becomes a single Or with ys spliced in at that position.
func unwrapNestedOr(e ast.Expression) (ast.Expression, error) {
	or, ok := e.(ast.Or)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	flattened, changed := flattenOnce[ast.Or](or.Args)
	if !changed {
		return nil, registry.ErrRuleNotApplicable
	}
	return ast.NewOr(flattened...), nil
}

// unwrapNestedAnd flattens one level of And nesting, mirroring unwrapNestedOr.
func unwrapNestedAnd(e ast.Expression) (ast.Expression, error) {
	and, ok := e.(ast.And)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	flattened, changed := flattenOnce[ast.And](and.Args)
	if !changed {
		return nil, registry.ErrRuleNotApplicable
	}
	return ast.NewAnd(flattened...), nil
}

// flattenOnce splices the children of any immediate operand of type T into
// args at that operand's position, used by unwrapNestedOr/unwrapNestedAnd
// to implement "Or([…, Or(ys), …]) -> flattened Or" generically over both
// connectives.
func flattenOnce[T ast.Expression](args []ast.Expression) ([]ast.Expression, bool) {
	changed := false
	var out []ast.Expression
	for _, a := range args {
		if nested, ok := a.(T); ok {
			out = append(out, nested.Children()...)
			changed = true
			continue
		}
		out = append(out, a)
	}
	return out, changed
}

// removeTrivialAnd replaces a singleton And([e]) with e.
func removeTrivialAnd(e ast.Expression) (ast.Expression, error) {
	and, ok := e.(ast.And)
	if !ok || len(and.Args) != 1 {
		return nil, registry.ErrRuleNotApplicable
	}
	return and.Args[0], nil
}

// removeTrivialOr replaces a singleton Or([e]) with e.
func removeTrivialOr(e ast.Expression) (ast.Expression, error) {
	or, ok := e.(ast.Or)
	if !ok || len(or.Args) != 1 {
		return nil, registry.ErrRuleNotApplicable
	}
	return or.Args[0], nil
}

// removeConstantsFromOr collapses Or([…, ConstantBool, …]) to ConstantBool
// true the moment any operand is true (Or is satisfied regardless of the
// rest); otherwise drops every false constant operand, which contribute
// nothing to an Or.
func removeConstantsFromOr(e ast.Expression) (ast.Expression, error) {
	or, ok := e.(ast.Or)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	var kept []ast.Expression
	sawConstant := false
	for _, a := range or.Args {
		c, ok := a.(ast.ConstantBool)
		if !ok {
			kept = append(kept, a)
			continue
		}
		sawConstant = true
		if bool(c) {
			return ast.NewConstantBool(true), nil
		}
	}
	if !sawConstant {
		return nil, registry.ErrRuleNotApplicable
	}
	return ast.NewOr(kept...), nil
}

// removeConstantsFromAnd collapses And([…, ConstantBool, …]) to
// ConstantBool false the moment any operand is false; otherwise drops
// every true constant operand, which contribute nothing to an And.
func removeConstantsFromAnd(e ast.Expression) (ast.Expression, error) {
	and, ok := e.(ast.And)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	var kept []ast.Expression
	sawConstant := false
	for _, a := range and.Args {
		c, ok := a.(ast.ConstantBool)
		if !ok {
			kept = append(kept, a)
			continue
		}
		sawConstant = true
		if !bool(c) {
			return ast.NewConstantBool(false), nil
		}
	}
	if !sawConstant {
		return nil, registry.ErrRuleNotApplicable
	}
	return ast.NewAnd(kept...), nil
}

// distributeNotOverAnd applies De Morgan's law: Not(And(xs)) becomes
// Or(xs.map(Not)).
func distributeNotOverAnd(e ast.Expression) (ast.Expression, error) {
	not, ok := e.(ast.Not)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	and, ok := not.Arg.(ast.And)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	negated := make([]ast.Expression, len(and.Args))
	for i, x := range and.Args {
		negated[i] = ast.NewNot(x)
	}
	return ast.NewOr(negated...), nil
}

// distributeNotOverOr applies De Morgan's law: Not(Or(xs)) becomes
// And(xs.map(Not)).
func distributeNotOverOr(e ast.Expression) (ast.Expression, error) {
	not, ok := e.(ast.Not)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	or, ok := not.Arg.(ast.Or)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}
	negated := make([]ast.Expression, len(or.Args))
	for i, x := range or.Args {
		negated[i] = ast.NewNot(x)
	}
	return ast.NewAnd(negated...), nil
}

// distributeOrOverAnd distributes disjunction over conjunction:
// Or([And(xs), r]) becomes And(xs.map(x => Or([r, x]))), with r placed
// first inside each new Or (spec.md §4.2 ordering note).
func distributeOrOverAnd(e ast.Expression) (ast.Expression, error) {
	or, ok := e.(ast.Or)
	if !ok || len(or.Args) != 2 {
		return nil, registry.ErrRuleNotApplicable
	}

	and, r, ok := singleAndOperand(or.Args)
	if !ok {
		return nil, registry.ErrRuleNotApplicable
	}

	distributed := make([]ast.Expression, len(and.Args))
	for i, x := range and.Args {
		distributed[i] = ast.NewOr(r, x)
	}
	return ast.NewAnd(distributed...), nil
}

// singleAndOperand reports whether exactly one of args is an And, and
// returns it alongside the other operand.
func singleAndOperand(args []ast.Expression) (and ast.And, other ast.Expression, ok bool) {
	a0, ok0 := args[0].(ast.And)
	a1, ok1 := args[1].(ast.And)
	switch {
	case ok0 && !ok1:
		return a0, args[1], true
	case ok1 && !ok0:
		return a1, args[0], true
	default:
		return ast.And{}, nil, false
	}
}
