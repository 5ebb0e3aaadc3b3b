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

// Command conjure-rewrite reads a serialized Model, rewrites it to a
// fixed point against a configured rule set, validates the result against
// the target solver family, and writes the rewritten Model back out.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/conjure-cp/conjure-go/corectx"
	"github.com/conjure-cp/conjure-go/rewrite"
	_ "github.com/conjure-cp/conjure-go/rulelib"
	"github.com/conjure-cp/conjure-go/ruleset"
	"github.com/conjure-cp/conjure-go/serialize"
	"github.com/conjure-cp/conjure-go/solver"
)

var (
	configPath = flag.String("config", "", "path to a YAML rewrite config (spec.md §3 Context)")
	modelPath  = flag.String("model", "", "path to a serialized Model JSON document (default: stdin)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		glog.Exit(err)
	}
}

func run() error {
	cfg, err := readConfig(*configPath)
	if err != nil {
		return fmt.Errorf("conjure-rewrite: reading config: %w", err)
	}

	modelData, err := readModel(*modelPath)
	if err != nil {
		return fmt.Errorf("conjure-rewrite: reading model: %w", err)
	}
	model, err := serialize.UnmarshalModel(modelData)
	if err != nil {
		return fmt.Errorf("conjure-rewrite: decoding model: %w", err)
	}
	if err := model.Validate(); err != nil {
		return fmt.Errorf("conjure-rewrite: invalid input model: %w", err)
	}

	rules, err := ruleset.Resolve(cfg.Family, cfg.RuleSets)
	if err != nil {
		return fmt.Errorf("conjure-rewrite: resolving rule sets: %w", err)
	}

	ctx := corectx.New(cfg)
	maxRewrites := cfg.MaxRewritesPerConstraint
	if maxRewrites <= 0 {
		maxRewrites = rewrite.DefaultMaxRewrites
	}
	rewritten, err := rewrite.Model(ctx, model, rules, maxRewrites)
	if err != nil {
		return fmt.Errorf("conjure-rewrite: rewriting: %w", err)
	}

	if err := solver.Validate(rewritten, cfg.Family); err != nil {
		return fmt.Errorf("conjure-rewrite: rewritten model not accepted by target solver: %w", err)
	}

	out, err := serialize.MarshalModel(rewritten)
	if err != nil {
		return fmt.Errorf("conjure-rewrite: encoding result: %w", err)
	}
	fmt.Println(string(out))

	glog.V(1).Infof("conjure-rewrite: %d distinct rules fired, %d total rewrites in %s",
		len(ctx.Diagnostics.RuleFireCounts), ctx.Diagnostics.TotalRewrites, ctx.Diagnostics.Duration)
	return nil
}

func readConfig(path string) (corectx.Config, error) {
	if path == "" {
		return corectx.Config{Family: solver.Minion, RuleSets: []string{"base", "minion"}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return corectx.Config{}, err
	}
	return corectx.LoadConfig(data)
}

func readModel(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
