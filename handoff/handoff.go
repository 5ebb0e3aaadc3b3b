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

// Package handoff encodes a validated Model as a structpb.Struct: the
// protobuf-native form a solver driver running in a different process (or
// behind a gRPC boundary this module does not itself define) can consume
// without depending on this module's Go types, the way common/types's
// NewJsonStruct lets cel-go move a value across the same boundary.
package handoff

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/conjure-cp/conjure-go/ast"
	"github.com/conjure-cp/conjure-go/serialize"
)

// NotValidatedError reports that Encode was asked to hand off a Model that
// fails Model.Validate; Cause is the validation error. A structpb handoff crosses a
// process boundary; surfacing an undeclared reference after that boundary
// is a worse failure mode than refusing to encode it here.
type NotValidatedError struct {
	Cause error
}

func (e *NotValidatedError) Error() string {
	return "handoff: model failed validation: " + e.Cause.Error()
}

func (e *NotValidatedError) Unwrap() error { return e.Cause }

// Encode validates m and converts it to a structpb.Struct, reusing
// package serialize's JSON wire form as the intermediate representation so
// the two encodings never drift out of sync with each other.
func Encode(m ast.Model) (*structpb.Struct, error) {
	if err := m.Validate(); err != nil {
		return nil, &NotValidatedError{Cause: err}
	}

	data, err := serialize.MarshalModel(m)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return structpb.NewStruct(raw)
}

// Decode converts a structpb.Struct produced by Encode back into a Model.
func Decode(s *structpb.Struct) (ast.Model, error) {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return ast.Model{}, err
	}
	return serialize.UnmarshalModel(data)
}
