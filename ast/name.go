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
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameCollator backs the lexicographic ordering of user-supplied names.
//
// A collator rather than raw byte comparison is used so that ordering is an
// explicit, documented policy (golang.org/x/text/language.Und, i.e. locale
// independent) instead of an accident of UTF-8 byte values.
var nameCollator = collate.New(language.Und)

// NameKind distinguishes the two disjoint identity forms a Name may take.
type NameKind int

const (
	// UserNameKind identifies a Name backed by a user-supplied identifier.
	UserNameKind NameKind = iota
	// MachineNameKind identifies a Name introduced by the rewrite engine
	// itself, e.g. during flattening.
	MachineNameKind
)

// Name is the identity of a decision variable. It is either a user-supplied
// textual identifier or a machine-generated integer identifier. The two
// kinds are disjoint: exactly one of UserName/MachineName is meaningful,
// selected by Kind.
type Name struct {
	kind        NameKind
	userName    string
	machineName int64
}

// UserName constructs a Name from a user-supplied identifier.
func UserName(identifier string) Name {
	return Name{kind: UserNameKind, userName: identifier}
}

// MachineName constructs a Name from a machine-generated integer identifier.
func MachineName(id int64) Name {
	return Name{kind: MachineNameKind, machineName: id}
}

// Kind reports which of UserName/MachineName the Name was built from.
func (n Name) Kind() NameKind {
	return n.kind
}

// IsUserName reports whether n was built via UserName.
func (n Name) IsUserName() bool {
	return n.kind == UserNameKind
}

// IsMachineName reports whether n was built via MachineName.
func (n Name) IsMachineName() bool {
	return n.kind == MachineNameKind
}

// UserNameValue returns the underlying identifier text. It is only
// meaningful when IsUserName() is true.
func (n Name) UserNameValue() string {
	return n.userName
}

// MachineNameValue returns the underlying machine identifier. It is only
// meaningful when IsMachineName() is true.
func (n Name) MachineNameValue() int64 {
	return n.machineName
}

// Equal reports structural equality between two Names.
func (n Name) Equal(other Name) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case UserNameKind:
		return n.userName == other.userName
	default:
		return n.machineName == other.machineName
	}
}

// Compare orders Names: user names sort before machine names (Open Question
// decision, see DESIGN.md); user names compare lexicographically via a
// locale-independent collator, machine names compare numerically.
func (n Name) Compare(other Name) int {
	if n.kind != other.kind {
		if n.kind == UserNameKind {
			return -1
		}
		return 1
	}
	if n.kind == UserNameKind {
		return nameCollator.CompareString(n.userName, other.userName)
	}
	switch {
	case n.machineName < other.machineName:
		return -1
	case n.machineName > other.machineName:
		return 1
	default:
		return 0
	}
}

// String renders a debug form of the Name. Display is non-normative; see
// package serialize for the normative wire form.
func (n Name) String() string {
	if n.IsUserName() {
		return fmt.Sprintf("UserName(%s)", n.userName)
	}
	return fmt.Sprintf("MachineName(%d)", n.machineName)
}
