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

package corectx

import (
	"encoding/json"
	"time"
)

// Diagnostics accumulates the rewriter's statistics (spec.md §4.5):
// per-rule fire counts, total rewrites, and wall-clock duration. A single
// Diagnostics value is shared by every root constraint rewritten within
// one Context.
type Diagnostics struct {
	// RuleFireCounts maps a rule name to the number of times it fired
	// across the whole model.
	RuleFireCounts map[string]int `json:"ruleFireCounts"`
	// TotalRewrites is the sum of every successful rule application.
	TotalRewrites int `json:"totalRewrites"`
	// Duration is the wall-clock time spent rewriting the whole model.
	Duration time.Duration `json:"durationNanos"`
}

// RecordFire increments the fire count for rule and the total rewrite
// count by one.
func (d *Diagnostics) RecordFire(rule string) {
	if d.RuleFireCounts == nil {
		d.RuleFireCounts = make(map[string]int)
	}
	d.RuleFireCounts[rule]++
	d.TotalRewrites++
}

// diagnosticsJSON mirrors Diagnostics' shape but stores Duration as
// nanoseconds, the same deterministic, unit-explicit encoding
// ast/serialize uses for Model, so stats saved by one process and loaded
// by another do not depend on time.Duration's string format (spec.md §7
// supplemented features, "save_stats_json" in the original test harness).
type diagnosticsJSON struct {
	RuleFireCounts map[string]int `json:"ruleFireCounts"`
	TotalRewrites  int            `json:"totalRewrites"`
	DurationNanos  int64          `json:"durationNanos"`
}

// MarshalJSON encodes Diagnostics with Duration flattened to nanoseconds.
func (d Diagnostics) MarshalJSON() ([]byte, error) {
	return json.Marshal(diagnosticsJSON{
		RuleFireCounts: d.RuleFireCounts,
		TotalRewrites:  d.TotalRewrites,
		DurationNanos:  int64(d.Duration),
	})
}

// UnmarshalJSON decodes the nanoseconds-flattened form MarshalJSON produces.
func (d *Diagnostics) UnmarshalJSON(data []byte) error {
	var raw diagnosticsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.RuleFireCounts = raw.RuleFireCounts
	d.TotalRewrites = raw.TotalRewrites
	d.Duration = time.Duration(raw.DurationNanos)
	return nil
}
