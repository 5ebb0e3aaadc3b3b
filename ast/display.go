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

package ast

import "fmt"

// displayExpressions renders a list of sub-expressions the way the original
// implementation's display_expressions helper did: short lists print in
// full, longer ones collapse to "first..last". Display is non-normative
// (spec.md §9); this exists purely to keep String() output legible.
func displayExpressions(exprs []Expression) string {
	if len(exprs) <= 3 {
		out := ""
		for i, e := range exprs {
			if i > 0 {
				out += ", "
			}
			out += e.String()
		}
		return out
	}
	return fmt.Sprintf("%s..%s", exprs[0], exprs[len(exprs)-1])
}
