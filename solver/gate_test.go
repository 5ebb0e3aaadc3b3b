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
	"errors"
	"testing"

	"github.com/conjure-cp/conjure-go/ast"
)

func TestValidateMinionAcceptsFlattenedForm(t *testing.T) {
	a := ast.NewReference(ast.UserName("a"))
	b := ast.NewReference(ast.UserName("b"))
	m := ast.NewModel()
	m.AddVariable(ast.UserName("a"), ast.NewDecisionVariable(ast.BoolDomain()))
	m.AddVariable(ast.UserName("b"), ast.NewDecisionVariable(ast.BoolDomain()))
	m.AddConstraint(ast.NewSumLeq([]ast.Expression{a, b}, ast.NewConstantInt(4)))
	m.AddConstraint(ast.NewIneq(a, b, -1))

	if err := Validate(m, Minion); err != nil {
		t.Errorf("Validate(Minion) = %v, want nil", err)
	}
}

func TestValidateRejectsUnflattenedForm(t *testing.T) {
	a := ast.NewReference(ast.UserName("a"))
	m := ast.NewModel()
	m.AddConstraint(ast.NewGeq(ast.NewSum(a, ast.NewConstantInt(1)), ast.NewConstantInt(2)))

	var unsupported *UnsupportedExpressionError
	err := Validate(m, Minion)
	if !errors.As(err, &unsupported) {
		t.Fatalf("Validate(Minion) on Geq(Sum(...)): got %v, want *UnsupportedExpressionError", err)
	}
	if unsupported.Kind != ast.GeqKind {
		t.Errorf("unsupported.Kind = %s, want Geq", unsupported.Kind)
	}
}

func TestValidateSATAcceptsBooleanForm(t *testing.T) {
	m := ast.NewModel()
	m.AddConstraint(ast.NewAnd(ast.NewNot(ast.NewConstantInt(1)), ast.NewOr(ast.NewConstantInt(0), ast.NewConstantInt(1))))

	if err := Validate(m, SAT); err != nil {
		t.Errorf("Validate(SAT) = %v, want nil", err)
	}
}

func TestValidateSATRejectsReference(t *testing.T) {
	a := ast.NewReference(ast.UserName("a"))
	m := ast.NewModel()
	m.AddConstraint(ast.NewNot(a))

	var unsupported *UnsupportedExpressionError
	err := Validate(m, SAT)
	if !errors.As(err, &unsupported) {
		t.Fatalf("Validate(SAT) on Not(Reference): got %v, want *UnsupportedExpressionError", err)
	}
	if unsupported.Kind != ast.ReferenceKind {
		t.Errorf("unsupported.Kind = %s, want Reference", unsupported.Kind)
	}
}

func TestSafeIdentifier(t *testing.T) {
	cases := []struct {
		name ast.Name
		want string
	}{
		{ast.UserName("myVarName"), "my_var_name"},
		{ast.MachineName(7), "__aux7"},
	}
	for _, c := range cases {
		if got := SafeIdentifier(c.name); got != c.want {
			t.Errorf("SafeIdentifier(%v) = %q, want %q", c.name, got, c.want)
		}
	}
}
