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

import (
	"errors"
	"fmt"
)

var errEmptyUnion = errors.New("serialize: discriminated union object has no keys")

// UnknownDiscriminatorError reports a discriminated-union key this package
// does not recognize — most likely a wire document produced by a newer or
// unrelated encoder.
type UnknownDiscriminatorError struct {
	Kind string
	Key  string
}

func (e *UnknownDiscriminatorError) Error() string {
	return fmt.Sprintf("serialize: unknown %s discriminator %q", e.Kind, e.Key)
}
