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

// Package rulelib is the built-in rule catalogue (spec.md §4.2 table). Every
// rule self-registers into package registry from this package's init()
// functions, the way cel-go's standard library functions register
// themselves into an Env via declaration tables rather than requiring a
// caller to wire each one by hand.
//
// Importing rulelib for its side effects is required before
// ruleset.Resolve can see any of these rules — callers that want only a
// subset of the catalogue should write their own rulelib-shaped package
// instead of importing this one.
package rulelib

// Rule-set names the catalogue tags its rules with. RuleSetBase holds
// every rule that is sound and useful regardless of target solver family,
// and each of those rules is also tagged RuleSetMinion and RuleSetSAT.
// RuleSetMinion additionally holds the Minion-specific flattening rules;
// the catalogue has no SAT-specific rules, so RuleSetSAT holds exactly the
// base rules.
const (
	RuleSetBase   = "base"
	RuleSetMinion = "minion"
	RuleSetSAT    = "sat"
)

// Priority bands, highest first. Flattening/unwrapping rules run before
// constant folding so folding sees maximally-merged operands; De Morgan
// distribution runs last since distribute_or_over_and can re-introduce
// And/Or nodes that the earlier bands would otherwise have already
// cleaned up, and running it first would cause needless back-and-forth
// with unwrap_nested_or/unwrap_nested_and.
const (
	PriorityFlattenBoolean = 100
	PriorityUnwrap         = 90
	PriorityFold           = 80
	PriorityFlatten        = 70
	PriorityDistributeNot  = 20
	PriorityDistributeOr   = 10
)
