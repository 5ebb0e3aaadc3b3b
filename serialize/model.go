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

package serialize

import (
	"encoding/json"

	"github.com/conjure-cp/conjure-go/ast"
)

// MarshalModel encodes a Model as {"Variables": [...], "Constraints": [...]}.
// Variables is an array of {"Name": ..., "Domain": ...} pairs ordered by
// Model.Names() (spec.md §9's sorted-by-key rule), not map iteration order,
// so two calls on an equal Model always produce byte-identical output.
// Constraints preserves declaration order.
func MarshalModel(m ast.Model) ([]byte, error) {
	names := m.Names()
	variables := make([]json.RawMessage, len(names))
	for i, name := range names {
		dv, _ := m.Variable(name)
		entry, err := marshalVariableEntry(name, dv)
		if err != nil {
			return nil, err
		}
		variables[i] = jsonRaw(entry)
	}

	constraints := make([]json.RawMessage, len(m.Constraints))
	for i, c := range m.Constraints {
		data, err := MarshalExpression(c)
		if err != nil {
			return nil, err
		}
		constraints[i] = jsonRaw(data)
	}

	return object(map[string]interface{}{
		"Variables":   variables,
		"Constraints": constraints,
	})
}

func marshalVariableEntry(name ast.Name, dv ast.DecisionVariable) ([]byte, error) {
	nameJSON, err := MarshalName(name)
	if err != nil {
		return nil, err
	}
	domainJSON, err := MarshalDomain(dv.Domain)
	if err != nil {
		return nil, err
	}
	return object(map[string]interface{}{
		"Name":   jsonRaw(nameJSON),
		"Domain": jsonRaw(domainJSON),
	})
}

// UnmarshalModel decodes the form MarshalModel produces.
func UnmarshalModel(data []byte) (ast.Model, error) {
	var wire struct {
		Variables   []json.RawMessage
		Constraints []json.RawMessage
	}
	if err := unmarshalInto(jsonRaw(data), &wire); err != nil {
		return ast.Model{}, err
	}

	m := ast.NewModel()
	for _, entry := range wire.Variables {
		var fields struct {
			Name   json.RawMessage
			Domain json.RawMessage
		}
		if err := unmarshalInto(entry, &fields); err != nil {
			return ast.Model{}, err
		}
		name, err := UnmarshalName(fields.Name)
		if err != nil {
			return ast.Model{}, err
		}
		domain, err := UnmarshalDomain(fields.Domain)
		if err != nil {
			return ast.Model{}, err
		}
		m.AddVariable(name, ast.NewDecisionVariable(domain))
	}

	for _, c := range wire.Constraints {
		expr, err := UnmarshalExpression(c)
		if err != nil {
			return ast.Model{}, err
		}
		m.AddConstraint(expr)
	}

	return m, nil
}
