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

// Package serialize defines the stable JSON wire form for Name, Domain,
// Expression, and Model (spec.md §6): round-trippable, with object keys in
// fixed lexicographic order and arrays in declaration order. It is the
// normative form; ast.Expression.String() is debug-only and, for Or, even
// reproduces a known display bug that never reaches this package (spec.md
// §9).
package serialize

import "encoding/json"

// object marshals a field-name-to-value map as a JSON object. encoding/json
// sorts map[string]T keys lexicographically when marshaling, which is the
// mechanism this package relies on everywhere to satisfy spec.md §6's "key
// ordering within objects is fixed (lexicographic by key)" without hand
// writing an ordered encoder.
func object(fields map[string]interface{}) ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		raw[k] = data
	}
	return json.Marshal(raw)
}

// singleton marshals a one-key discriminated-union object, e.g.
// {"UserName": "a"}.
func singleton(key string, value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{key: data})
}

// decodeSingleton unmarshals a one-key discriminated-union object and
// reports which key was present.
func decodeSingleton(data []byte) (key string, value json.RawMessage, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, err
	}
	for k, v := range raw {
		return k, v, nil
	}
	return "", nil, errEmptyUnion
}

// jsonRaw wraps already-encoded JSON bytes so that embedding them inside a
// further json.Marshal call (e.g. as an element of a []interface{})
// reproduces them verbatim instead of re-encoding as a base64 string, which
// is what a plain []byte would do.
func jsonRaw(data []byte) json.RawMessage {
	return json.RawMessage(data)
}

// unmarshalInto is a thin json.Unmarshal wrapper so callers working with
// json.RawMessage read the same way regardless of where the RawMessage
// came from (a top-level document or an object/singleton field).
func unmarshalInto(data json.RawMessage, v interface{}) error {
	return json.Unmarshal(data, v)
}
