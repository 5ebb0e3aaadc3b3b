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
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/conjure-cp/conjure-go/solver"
)

// yamlConfig is the on-disk shape of a Config, using plain strings for the
// solver family so config files stay human-writable ("minion"/"sat")
// instead of needing to know the Family enum's underlying integers.
type yamlConfig struct {
	RuleSets                 []string `yaml:"ruleSets"`
	Family                   string   `yaml:"family"`
	FileName                 string   `yaml:"fileName"`
	MaxRewritesPerConstraint int      `yaml:"maxRewritesPerConstraint"`
	Verbose                  bool     `yaml:"verbose"`
	Accept                   bool     `yaml:"accept"`
}

// UnknownFamilyError reports a "family" value in a config file that does
// not name a known solver.Family.
type UnknownFamilyError struct {
	Value string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("corectx: unknown solver family %q (want \"minion\" or \"sat\")", e.Value)
}

// LoadConfig parses a YAML document into a Config. It is the config-file
// counterpart to constructing a Config literal in code, grounded on
// cuelang-cue's internal/encoding/yaml decoder usage of gopkg.in/yaml.v3
// for structured decoding (rather than cuelang-cue's own CUE-syntax-tree
// decoder, which has no analogue here).
func LoadConfig(data []byte) (Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("corectx: parsing config: %w", err)
	}

	family, err := parseFamily(raw.Family)
	if err != nil {
		return Config{}, err
	}

	return Config{
		RuleSets:                 raw.RuleSets,
		Family:                   family,
		FileName:                 raw.FileName,
		MaxRewritesPerConstraint: raw.MaxRewritesPerConstraint,
		Verbose:                  raw.Verbose,
		Accept:                   raw.Accept,
	}, nil
}

func parseFamily(s string) (solver.Family, error) {
	switch s {
	case "minion", "Minion":
		return solver.Minion, nil
	case "sat", "SAT", "Sat":
		return solver.SAT, nil
	default:
		return 0, &UnknownFamilyError{Value: s}
	}
}
