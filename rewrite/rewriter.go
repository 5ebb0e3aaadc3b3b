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

// Package rewrite implements the fixed-point rewriter (spec.md §4.5): it
// drives a Model's constraints to a fixed point under a resolved rule
// sequence using the highest-priority, highest-position strategy. The
// sequential-pass-over-a-tree shape is grounded on google-cel-go's
// StaticOptimizer.Optimize (cel/optimizer.go), generalized from a fixed
// list of whole-AST optimizer passes to a per-node, priority-ordered rule
// search restarted from the top of the tree on every successful rewrite.
package rewrite

import (
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/conjure-cp/conjure-go/ast"
	"github.com/conjure-cp/conjure-go/corectx"
	"github.com/conjure-cp/conjure-go/registry"
)

// DefaultMaxRewrites is the default ceiling on the number of successful
// rewrites applied to a single root constraint before the rewriter gives
// up and reports non-convergence (spec.md §4.5: "default: ten thousand
// rewrites per root constraint").
const DefaultMaxRewrites = 10000

// DidNotConvergeError reports that a single root constraint exceeded its
// rewrite budget without reaching a fixed point — almost always a sign of
// a non-terminating (or oscillating) rule pair in the resolved sequence.
type DidNotConvergeError struct {
	// Rule is the name of the rule whose application pushed the
	// constraint over the ceiling.
	Rule string
	// Depth is the number of successful rewrites already applied to this
	// constraint when the ceiling was hit.
	Depth int
}

func (e *DidNotConvergeError) Error() string {
	return fmt.Sprintf("rewrite: did not converge after %d rewrites (last rule: %q)", e.Depth, e.Rule)
}

// Model rewrites every constraint in m to a fixed point under rules (the
// already priority-sorted sequence ruleset.Resolve produces), recording
// per-rule fire counts and wall-clock duration into ctx.Diagnostics. It
// returns a new Model with the rewritten constraint list in original
// order; m itself is not mutated. maxRewrites caps the number of
// successful rewrites applied to any one root constraint; zero selects
// DefaultMaxRewrites.
func Model(ctx *corectx.Context, m ast.Model, rules []registry.Rule, maxRewrites int) (ast.Model, error) {
	if maxRewrites <= 0 {
		maxRewrites = DefaultMaxRewrites
	}

	start := time.Now()
	out := m.Clone()
	for i, c := range out.Constraints {
		rewritten, err := fixpoint(ctx, c, rules, maxRewrites)
		if err != nil {
			return ast.Model{}, err
		}
		out.Constraints[i] = rewritten
	}
	ctx.Diagnostics.Duration += time.Since(start)
	return out, nil
}

// fixpoint repeatedly applies the highest-priority, highest-position rule
// to c until no rule applies anywhere in the tree (spec.md §4.5 algorithm).
func fixpoint(ctx *corectx.Context, c ast.Expression, rules []registry.Rule, maxRewrites int) (ast.Expression, error) {
	for depth := 0; ; depth++ {
		rewritten, ruleName, applied := tryRewriteOnce(c, rules)
		if !applied {
			return c, nil
		}
		if depth >= maxRewrites {
			return nil, &DidNotConvergeError{Rule: ruleName, Depth: depth}
		}
		glog.V(1).Infof("rewrite: %q fired at depth %d", ruleName, depth)
		ctx.Diagnostics.RecordFire(ruleName)
		c = rewritten
	}
}

// tryRewriteOnce walks c in pre-order and, at the first node where some
// rule in priority order applies, splices the result back in (rebuilding
// ancestors up to the root via WithChildren) and returns the new whole
// expression and the name of the rule that fired.
func tryRewriteOnce(c ast.Expression, rules []registry.Rule) (rewritten ast.Expression, ruleName string, applied bool) {
	for _, r := range rules {
		result, err := r.Apply(c)
		if err == nil {
			return result, r.Name, true
		}
		if err != registry.ErrRuleNotApplicable {
			glog.Warningf("rewrite: rule %q returned unexpected error %v; treating as not applicable", r.Name, err)
		}
	}

	children := c.Children()
	for i, child := range children {
		rebuiltChild, name, ok := tryRewriteOnce(child, rules)
		if !ok {
			continue
		}
		newChildren := make([]ast.Expression, len(children))
		copy(newChildren, children)
		newChildren[i] = rebuiltChild
		rebuilt, err := c.WithChildren(newChildren)
		if err != nil {
			// newChildren has the same length as c.Children(), so
			// WithChildren cannot reject it on arity.
			continue
		}
		return rebuilt, name, true
	}
	return nil, "", false
}
