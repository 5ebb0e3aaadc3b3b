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

package handoff

import (
	"errors"
	"testing"

	"github.com/conjure-cp/conjure-go/ast"
)

func buildValidModel(t *testing.T) ast.Model {
	t.Helper()
	m := ast.NewModel()
	intDomain, err := ast.IntDomain(ast.Bounded(0, 10))
	if err != nil {
		t.Fatalf("IntDomain: %v", err)
	}
	x := ast.UserName("x")
	m.AddVariable(x, ast.NewDecisionVariable(intDomain))
	m.AddConstraint(ast.NewGeq(ast.NewReference(x), ast.NewConstantInt(3)))
	return m
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := buildValidModel(t)
	s, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !in.Equal(out) {
		t.Errorf("round trip model = %v, want equal to %v", out, in)
	}
}

func TestEncodeRejectsUndeclaredReference(t *testing.T) {
	m := ast.NewModel()
	m.AddConstraint(ast.NewReference(ast.UserName("ghost")))

	_, err := Encode(m)
	if err == nil {
		t.Fatal("expected error for undeclared reference")
	}
	var notValidated *NotValidatedError
	if !errors.As(err, &notValidated) {
		t.Fatalf("Encode error = %v, want *NotValidatedError", err)
	}
	var undeclared *ast.UndeclaredReferenceError
	if !errors.As(err, &undeclared) {
		t.Fatalf("Encode error = %v, want wrapped *ast.UndeclaredReferenceError", err)
	}
}
