// Copyright 2023-2026 The pyscanner Authors
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

package token

import "strings"

// Set is a set of token [Kind]s, passed by the host to Scan to enumerate
// which kinds its grammar would currently accept.
//
// The zero Set is empty.
type Set uint16

// NewSet constructs a set containing exactly the given kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	return s.With(kinds...)
}

// With returns a copy of this set with the given kinds added.
func (s Set) With(kinds ...Kind) Set {
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Without returns a copy of this set with the given kinds removed.
func (s Set) Without(kinds ...Kind) Set {
	for _, k := range kinds {
		s &^= 1 << k
	}
	return s
}

// Has returns whether the set contains k.
func (s Set) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// HasAny returns whether the set contains at least one of the given kinds.
func (s Set) HasAny(kinds ...Kind) bool {
	for _, k := range kinds {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// InsideBrackets reports whether the host's grammar position is inside an
// open bracket pair, which it signals by accepting one of the close-bracket
// kinds. Indentation is not significant there (implicit line joining).
func (s Set) InsideBrackets() bool {
	return s.HasAny(CloseParen, CloseBracket, CloseBrace)
}

// String implements [fmt.Stringer].
func (s Set) String() string {
	var names []string
	for k := Kind(0); k < Kind(total); k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
