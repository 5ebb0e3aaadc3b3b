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

package solver

import (
	"fmt"

	strcase "github.com/stoewer/go-strcase"

	"github.com/conjure-cp/conjure-go/ast"
)

// SafeIdentifier renders a Name as the token the Minion/SAT back ends
// expect: user names are snake_cased (back ends are far less forgiving
// about identifier casing/punctuation than the essence front-end is),
// machine names are given a fixed "__aux<N>" form that cannot collide with
// a snake_cased user name.
func SafeIdentifier(name ast.Name) string {
	if name.IsMachineName() {
		return fmt.Sprintf("__aux%d", name.MachineNameValue())
	}
	return strcase.SnakeCase(name.UserNameValue())
}
