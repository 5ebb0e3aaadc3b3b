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

// MarshalName encodes a Name as the discriminated union spec.md §6
// requires: {"UserName": "a"} or {"MachineName": 17}.
func MarshalName(n ast.Name) ([]byte, error) {
	if n.IsUserName() {
		return singleton("UserName", n.UserNameValue())
	}
	return singleton("MachineName", n.MachineNameValue())
}

// UnmarshalName decodes the form MarshalName produces.
func UnmarshalName(data []byte) (ast.Name, error) {
	key, value, err := decodeSingleton(data)
	if err != nil {
		return ast.Name{}, err
	}
	switch key {
	case "UserName":
		var s string
		if err := unmarshalInto(value, &s); err != nil {
			return ast.Name{}, err
		}
		return ast.UserName(s), nil
	case "MachineName":
		var id int64
		if err := unmarshalInto(value, &id); err != nil {
			return ast.Name{}, err
		}
		return ast.MachineName(id), nil
	default:
		return ast.Name{}, &UnknownDiscriminatorError{Kind: "Name", Key: key}
	}
}
