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

import (
	"github.com/treelang/pyscanner/source"
	"github.com/treelang/pyscanner/token"
)

// tabWidth is how many columns a tab counts for when measuring indentation.
// Flat, not aligned to tab stops.
const tabWidth = 8

// scanLayout consumes whitespace, comments, line continuations and blank
// lines in a single forward pass, then decides between INDENT, DEDENT and
// NEWLINE by comparing the measured indentation to the indent stack. If no
// layout token applies it hands off to the string-start scanner.
func (s *Scanner) scanLayout(c *source.Cursor, valid token.Set, recovery bool) bool {
	var (
		eol    bool
		column int

		// Indentation of the first comment on this blank stretch, or -1.
		// Dedents are deferred past comments indented at or beyond the
		// current block's own level.
		firstComment = -1
	)

loop:
	for {
		switch r := c.Peek(); r {
		case '\n':
			eol = true
			column = 0
			c.Advance(true)

		case ' ':
			column++
			c.Advance(true)

		case '\t':
			column += tabWidth
			c.Advance(true)

		case '\r', '\f':
			// Whitespace normalization, not line termination.
			column = 0
			c.Advance(true)

		case '#':
			if firstComment < 0 {
				firstComment = column
			}
			for !c.Done() && c.Peek() != '\n' {
				c.Advance(true)
			}
			column = 0

		case '\\':
			// Line continuation: the logical line runs on, so no layout
			// boundary here. Anything but a newline after the backslash is
			// malformed.
			c.Advance(true)
			if c.Peek() == '\r' {
				c.Advance(true)
			}
			if c.Peek() != '\n' {
				return false
			}
			c.Advance(true)

		case -1:
			// End-of-input is an implicit end-of-line at the top column.
			column = 0
			eol = true
			break loop

		default:
			// The next significant token starts here.
			break loop
		}
	}

	if eol {
		if len(s.state.indents) > 0 {
			top := int(s.state.indents[len(s.state.indents)-1])

			if valid.Has(token.Indent) && column > top {
				s.state.indents = append(s.state.indents, uint16(column))
				c.SetResult(token.Indent)
				return true
			}

			// A dedent is also taken when the grammar has stopped accepting
			// newlines outside brackets, which is how the host signals that
			// only closing blocks remain. It is deferred while the first
			// comment of this stretch sits at the current block's own
			// indentation: that comment still belongs to the open block.
			if (valid.Has(token.Dedent) || (!valid.Has(token.Newline) && !valid.InsideBrackets())) &&
				column < top && firstComment < top {
				s.state.indents = s.state.indents[:len(s.state.indents)-1]
				c.SetResult(token.Dedent)
				return true
			}
		}

		if valid.Has(token.Newline) && !recovery {
			c.SetResult(token.Newline)
			return true
		}
	}

	// A bare prefix or quote cannot follow an as-yet-unresolved comment
	// scan, so string starts are only tried on comment-free stretches.
	if firstComment < 0 && valid.Has(token.StringStart) {
		return s.scanStringStart(c)
	}

	return false
}
