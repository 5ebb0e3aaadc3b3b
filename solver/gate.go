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
	"strconv"

	"github.com/conjure-cp/conjure-go/ast"
)

// UnsupportedExpressionError reports that, after rewriting terminated, some
// node in the model is not accepted by the target solver family — i.e. the
// chosen rule set was not adequate to drive that node into the family's
// accepted fragment (spec.md §4.6).
type UnsupportedExpressionError struct {
	Kind   ast.ExprKind
	Family Family
	// Path is a human-readable pre-order path to the offending node, e.g.
	// "constraint[2].Children[0]".
	Path string
}

func (e *UnsupportedExpressionError) Error() string {
	return fmt.Sprintf("solver: %s is not accepted by %s at %s", e.Kind, e.Family, e.Path)
}

// Validate checks every node in every constraint of model against family's
// acceptance set (spec.md §4.6, "Validation pass"). It returns the first
// *UnsupportedExpressionError encountered, in constraint then pre-order
// position.
func Validate(model ast.Model, family Family) error {
	for i, c := range model.Constraints {
		if err := validateNode(c, family, fmt.Sprintf("constraint[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(e ast.Expression, family Family, path string) error {
	if !Accepts(family, e.Kind()) {
		return &UnsupportedExpressionError{Kind: e.Kind(), Family: family, Path: path}
	}
	for i, c := range e.Children() {
		childPath := path + ".Children[" + strconv.Itoa(i) + "]"
		if err := validateNode(c, family, childPath); err != nil {
			return err
		}
	}
	return nil
}
