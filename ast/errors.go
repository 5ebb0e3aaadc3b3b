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

// ErrEmptyDomain is returned when an integer domain is constructed with no
// ranges, violating DecisionVariable's non-empty-domain invariant.
var ErrEmptyDomain = fmt.Errorf("ast: integer domain must have at least one range")

// WrongNumberOfChildrenError is returned by Expression.WithChildren when the
// supplied child sequence does not match the variant's fixed arity. It is a
// traversal-misuse error, surfaced to the caller rather than recovered from
// internally.
type WrongNumberOfChildrenError struct {
	Expected int
	Got      int
}

func (e *WrongNumberOfChildrenError) Error() string {
	return fmt.Sprintf("ast: wrong number of children: expected %d, got %d", e.Expected, e.Got)
}

// DomainMismatchError reports that a reference's declared domain is
// incompatible with its use, discovered during model-entry validation.
type DomainMismatchError struct {
	Name Name
}

func (e *DomainMismatchError) Error() string {
	return fmt.Sprintf("ast: domain mismatch for %s", e.Name)
}

// UndeclaredReferenceError reports that an expression references a Name with
// no corresponding entry in the model's variable map.
type UndeclaredReferenceError struct {
	Name Name
}

func (e *UndeclaredReferenceError) Error() string {
	return fmt.Sprintf("ast: undeclared reference %s", e.Name)
}
