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

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func exampleExpressions() []Expression {
	a := NewReference(UserName("a"))
	b := NewReference(UserName("b"))
	return []Expression{
		NewConstantInt(42),
		NewConstantBool(true),
		a,
		NewSum(a, b, NewConstantInt(1)),
		NewNot(a),
		NewAnd(a, b),
		NewOr(a, b),
		NewEq(a, b),
		NewNeq(a, b),
		NewGeq(a, b),
		NewLeq(a, b),
		NewGt(a, b),
		NewLt(a, b),
		NewSumGeq([]Expression{a, b}, NewConstantInt(3)),
		NewSumLeq([]Expression{a, b}, NewConstantInt(3)),
		NewIneq(a, b, -1),
	}
}

// TestRoundTripIdentity is spec.md §8 invariant 1:
// forall e, e.WithChildren(e.Children()) == e.
func TestRoundTripIdentity(t *testing.T) {
	for _, e := range exampleExpressions() {
		got, err := e.WithChildren(e.Children())
		if err != nil {
			t.Fatalf("%v.WithChildren(%v.Children()) returned error: %v", e, e, err)
		}
		if !exprEqual(got, e) {
			t.Errorf("round-trip identity failed: got %v, want %v", got, e)
		}
	}
}

// TestWrongNumberOfChildren is spec.md §8 invariant 2: a WithChildren call
// with a mismatched-length sequence fails with *WrongNumberOfChildrenError
// carrying the expected and actual lengths.
func TestWrongNumberOfChildren(t *testing.T) {
	for _, e := range exampleExpressions() {
		want := len(e.Children())
		_, err := e.WithChildren(append(e.Children(), NewConstantInt(0)))
		var wrongErr *WrongNumberOfChildrenError
		if !errors.As(err, &wrongErr) {
			t.Fatalf("%v.WithChildren(extra child): got err %v, want *WrongNumberOfChildrenError", e, err)
		}
		if wrongErr.Expected != want || wrongErr.Got != want+1 {
			t.Errorf("%v.WithChildren(extra child): got (%d,%d), want (%d,%d)",
				e, wrongErr.Expected, wrongErr.Got, want, want+1)
		}
	}
}

func TestDescendTransformUniverse(t *testing.T) {
	a := NewReference(UserName("a"))
	b := NewReference(UserName("b"))
	expr := NewSum(a, b, NewConstantInt(1))

	universe := Universe(expr)
	if len(universe) != 4 {
		t.Fatalf("Universe(%v) = %d nodes, want 4", expr, len(universe))
	}
	if !exprEqual(universe[0], expr) {
		t.Errorf("Universe's first element should be the root, got %v", universe[0])
	}

	doubled := Transform(expr, func(e Expression) Expression {
		if ci, ok := e.(ConstantInt); ok {
			return ConstantInt(int(ci) * 2)
		}
		return e
	})
	want := NewSum(a, b, NewConstantInt(2))
	if !exprEqual(doubled, want) {
		t.Errorf("Transform doubling constants: got %v, want %v", doubled, want)
	}
}

func TestOrDisplayBugPreserved(t *testing.T) {
	o := NewOr(NewConstantBool(true), NewConstantBool(false))
	got := o.String()
	want := "Not(ConstantBool(true), ConstantBool(false))"
	if got != want {
		t.Errorf("Or.String() = %q, want %q (original's Display bug must be preserved, see spec.md §9)", got, want)
	}
}

func TestNameOrdering(t *testing.T) {
	userA := UserName("a")
	userB := UserName("b")
	machine1 := MachineName(1)

	if userA.Compare(userB) >= 0 {
		t.Errorf("UserName(a) should sort before UserName(b)")
	}
	if userB.Compare(machine1) >= 0 {
		t.Errorf("user names should sort before machine names")
	}
	if MachineName(1).Compare(MachineName(2)) >= 0 {
		t.Errorf("MachineName(1) should sort before MachineName(2)")
	}
}

func TestDomainCanonicalization(t *testing.T) {
	d, err := IntDomain(Bounded(5, 7), Single(1), Bounded(2, 4))
	if err != nil {
		t.Fatalf("IntDomain: %v", err)
	}
	want := []Range{{Lo: 1, Hi: 7}}
	got := d.Ranges()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("canonical ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestDomainRequiresNonEmpty(t *testing.T) {
	if _, err := IntDomain(); !errors.Is(err, ErrEmptyDomain) {
		t.Errorf("IntDomain() with no ranges: got %v, want ErrEmptyDomain", err)
	}
}

func TestModelValidate(t *testing.T) {
	m := NewModel()
	m.AddVariable(UserName("a"), NewDecisionVariable(BoolDomain()))
	m.AddConstraint(NewReference(UserName("a")))
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	m.AddConstraint(NewReference(UserName("b")))
	var undeclared *UndeclaredReferenceError
	if err := m.Validate(); !errors.As(err, &undeclared) {
		t.Errorf("Validate() with undeclared reference: got %v, want *UndeclaredReferenceError", err)
	}
}

func TestModelValidateDomainMismatch(t *testing.T) {
	d, err := IntDomain(Bounded(0, 5))
	if err != nil {
		t.Fatalf("IntDomain: %v", err)
	}
	m := NewModel()
	m.AddVariable(UserName("x"), NewDecisionVariable(d))
	m.AddConstraint(NewEq(NewReference(UserName("x")), NewConstantInt(3)))
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() with in-domain literal: got %v, want nil", err)
	}

	m.AddConstraint(NewEq(NewConstantInt(10), NewReference(UserName("x"))))
	var mismatch *DomainMismatchError
	if err := m.Validate(); !errors.As(err, &mismatch) {
		t.Errorf("Validate() with out-of-domain literal: got %v, want *DomainMismatchError", err)
	} else if !mismatch.Name.Equal(UserName("x")) {
		t.Errorf("mismatch.Name = %v, want x", mismatch.Name)
	}
}
