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

// Package corectx holds the shared object carried through one model's
// processing pipeline: configuration, diagnostics, and source provenance
// (spec.md §3, "Context"). It is grounded on google-cel-go's
// OptimizerContext (cel/optimizer.go), which bundles an Env, Issues, and
// expression factory into one value threaded through a StaticOptimizer's
// pass sequence the same way a Context is threaded through rewriting here.
package corectx

import "github.com/conjure-cp/conjure-go/solver"

// Config is the caller-supplied configuration for one pipeline run:
// which rule sets to resolve, which solver family to target, and where
// the model came from.
type Config struct {
	// RuleSets is the list of rule-set names passed to ruleset.Resolve.
	RuleSets []string
	// Family is the target solver family for both the resolver and the
	// post-rewrite solver-family gate.
	Family solver.Family
	// FileName is the source file the model was parsed from, carried for
	// diagnostics/error messages only — mirrors the original
	// implementation's context.file_name provenance field (spec.md §7
	// supplemented features).
	FileName string
	// MaxRewritesPerConstraint overrides the rewriter's default
	// 10,000-rewrite convergence ceiling per root constraint. Zero means
	// "use the default".
	MaxRewritesPerConstraint int
	// Verbose and Accept mirror the original implementation's ACCEPT/VERBOSE
	// toggles (spec.md §6 External Interfaces): they are documented
	// configuration surface for a harness to set, not read by the core
	// rewriting/gate logic itself.
	Verbose bool
	Accept  bool
}

// Context is the object shared by every subsystem touching one model:
// its Config plus the Diagnostics accumulated while processing it.
type Context struct {
	Config      Config
	Diagnostics Diagnostics
}

// New returns a Context with zeroed Diagnostics ready to accumulate.
func New(cfg Config) *Context {
	return &Context{Config: cfg}
}
