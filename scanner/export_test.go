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

package scanner

import "slices"

// This file exports internal symbols for testing purposes only. It allows
// the external test package to inspect the scanner's stacks while keeping
// them encapsulated everywhere else.

// Stacks returns copies of s's delimiter and indent stacks.
func Stacks(s *Scanner) (delims []Delimiter, indents []uint16) {
	return slices.Clone(s.state.delims), slices.Clone(s.state.indents)
}
