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

import "github.com/conjure-cp/conjure-go/ast"

// marshalRange encodes a Range as {"Hi": n, "Lo": n} via the object helper,
// so its keys sort lexicographically the same way every other object in
// this package does.
func marshalRange(r ast.Range) (interface{}, error) {
	data, err := object(map[string]interface{}{"Hi": r.Hi, "Lo": r.Lo})
	if err != nil {
		return nil, err
	}
	return jsonRaw(data), nil
}

// MarshalDomain encodes a Domain carrying its discriminator and, for
// integer domains, its canonical range list (spec.md §6: "Domains carry
// their discriminator and range list").
func MarshalDomain(d ast.Domain) ([]byte, error) {
	if d.IsBool() {
		return singleton("Bool", struct{}{})
	}
	ranges := d.Ranges()
	wire := make([]interface{}, len(ranges))
	for i, r := range ranges {
		rangeJSON, err := marshalRange(r)
		if err != nil {
			return nil, err
		}
		wire[i] = rangeJSON
	}
	return singleton("Int", wire)
}

type rangeWire struct {
	Hi int
	Lo int
}

// UnmarshalDomain decodes the form MarshalDomain produces.
func UnmarshalDomain(data []byte) (ast.Domain, error) {
	key, value, err := decodeSingleton(data)
	if err != nil {
		return ast.Domain{}, err
	}
	switch key {
	case "Bool":
		return ast.BoolDomain(), nil
	case "Int":
		var wire []rangeWire
		if err := unmarshalInto(value, &wire); err != nil {
			return ast.Domain{}, err
		}
		ranges := make([]ast.Range, len(wire))
		for i, w := range wire {
			ranges[i] = ast.Bounded(w.Lo, w.Hi)
		}
		return ast.IntDomain(ranges...)
	default:
		return ast.Domain{}, &UnknownDiscriminatorError{Kind: "Domain", Key: key}
	}
}
