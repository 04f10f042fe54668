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

import "fmt"

// Token is a single committed token, extracted from a cursor after a
// successful scan.
//
// Start and End are byte offsets into the scanned file. Layout tokens
// (Newline, Indent, Dedent) are zero-width: the whitespace that produced them
// is consumed as insignificant trivia, not as token text.
type Token struct {
	Kind       Kind
	Start, End int
	Text       string
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t == Token{}
}

// Len returns the byte length of the token's span.
func (t Token) Len() int {
	return t.End - t.Start
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%v[%d:%d]", t.Kind, t.Start, t.End)
	}
	return fmt.Sprintf("%v[%d:%d](%q)", t.Kind, t.Start, t.End, t.Text)
}
