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

// scanContent scans the body of the innermost open string literal, emitting
// a content token, an interpolation boundary, or the string's end.
//
// done reports whether this call decided the scan: if done, ok is Scan's
// result. Reaching end-of-input without terminating leaves the scan
// undecided and the layout phase takes over.
func (s *Scanner) scanContent(c *source.Cursor) (done, ok bool) {
	delim := s.state.delims[len(s.state.delims)-1]
	end := delim.Quote.End()

	// Whether any content has been consumed this call. An empty content
	// token is acceptable only at a fresh token boundary, such as between
	// two interpolations; it is never produced mid-token.
	var hasContent bool

	for !c.Done() {
		switch r := c.Peek(); {
		case (r == '{' || r == '}') && delim.Format:
			// Stop before the brace so the grammar can parse the
			// interpolated expression as an ordinary production.
			c.MarkEnd()
			c.SetResult(token.StringContent)
			return true, true

		case r == '\\':
			switch {
			case delim.Raw:
				// The backslash escapes a terminator or another backslash
				// without ending the string; both stay content.
				c.Advance(false)
				if r := c.Peek(); r == end || r == '\\' {
					c.Advance(false)
				}
				continue

			case delim.Bytes:
				c.MarkEnd()
				c.Advance(false)
				if r := c.Peek(); r != 'N' && r != 'u' && r != 'U' {
					c.SetResult(token.StringContent)
					return true, true
				}
				// \N{...}, \uXXXX and \UXXXXXXXX are not escape sequences
				// in byte strings; scan on through them.
				c.Advance(false)

			default:
				// Escape interpretation belongs to the grammar; content
				// stops just before the backslash.
				c.MarkEnd()
				c.SetResult(token.StringContent)
				return true, true
			}

		case r == end:
			if delim.Triple {
				return true, s.scanTripleEnd(c, end, hasContent)
			}
			if hasContent {
				c.SetResult(token.StringContent)
			} else {
				c.Advance(false)
				s.state.delims = s.state.delims[:len(s.state.delims)-1]
				c.SetResult(token.StringEnd)
			}
			c.MarkEnd()
			return true, true

		case r == '\n' && hasContent && !delim.Triple:
			// A non-triple string must not span an unescaped newline. This
			// is a syntax error for the grammar's own recovery to handle.
			return true, false
		}

		c.Advance(false)
		hasContent = true
	}

	return false, false
}

// scanTripleEnd resolves a terminator character seen inside a triple-quoted
// string, which ends only at three consecutive occurrences.
//
// The cursor's lookahead is on the first occurrence; the token end is marked
// just before it.
func (s *Scanner) scanTripleEnd(c *source.Cursor, end rune, hasContent bool) bool {
	c.MarkEnd()
	c.Advance(false)
	if c.Peek() == end {
		c.Advance(false)
		if c.Peek() == end {
			if hasContent {
				// The closing quotes are only a terminator at a fresh token
				// boundary; emit the accumulated content first and leave
				// them for the next call.
				c.SetResult(token.StringContent)
				return true
			}
			c.Advance(false)
			c.MarkEnd()
			s.state.delims = s.state.delims[:len(s.state.delims)-1]
			c.SetResult(token.StringEnd)
			return true
		}
	}

	// One or two quote characters short of a terminator are still content.
	c.MarkEnd()
	c.SetResult(token.StringContent)
	return true
}

// scanStringStart recognizes a string literal's prefix letters and opening
// quote, pushing the resulting delimiter.
func (s *Scanner) scanStringStart(c *source.Cursor) bool {
	var delim Delimiter

	// Prefix letters combine in any order; u is accepted for compatibility
	// but carries no meaning.
prefix:
	for {
		switch c.Peek() {
		case 'f', 'F':
			delim.Format = true
		case 'r', 'R':
			delim.Raw = true
		case 'b', 'B':
			delim.Bytes = true
		case 'u', 'U':
		default:
			break prefix
		}
		c.Advance(false)
	}

	switch r := c.Peek(); r {
	case '`':
		delim.Quote = quoteFor(r)
		c.Advance(false)
		c.MarkEnd()

	case '\'', '"':
		delim.Quote = quoteFor(r)
		end := delim.Quote.End()
		c.Advance(false)
		c.MarkEnd()
		if c.Peek() == end {
			c.Advance(false)
			if c.Peek() == end {
				c.Advance(false)
				c.MarkEnd()
				delim.Triple = true
			}
		}

	default:
		// Either prefix letters with no quote following (an incomplete
		// literal the grammar reports) or nothing string-like at all;
		// neither yields an external token.
		return false
	}

	s.state.delims = append(s.state.delims, delim)
	c.SetResult(token.StringStart)
	return true
}
