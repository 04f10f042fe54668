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

package scanner_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/treelang/pyscanner/scanner"
	"github.com/treelang/pyscanner/source"
	"github.com/treelang/pyscanner/token"
)

// scanAt runs a single scan over text at the given offset.
func scanAt(sc *scanner.Scanner, text string, offset int, kinds ...token.Kind) (token.Token, bool) {
	cur := source.NewCursorAt(source.NewFile("test.py", text), offset)
	if !sc.Scan(cur, token.NewSet(kinds...)) {
		return token.Token{}, false
	}
	return cur.Token()
}

// driver is a minimal stand-in for a Python-like host grammar. It asks for a
// logical newline after each statement, offers indent/dedent decisions at
// line boundaries, and consumes whitespace, comments, interpolated
// expressions and escape sequences itself, the way the grammar's own rules
// would.
//
// After every committed token it checks the scanner's structural invariants.
type driver struct {
	t  *testing.T
	sc *scanner.Scanner

	text        string
	pos         int
	depth       int
	wantNewline bool

	tokens []token.Token
}

func newDriver(t *testing.T, text string) *driver {
	return &driver{t: t, sc: scanner.New(), text: text}
}

// kinds drives the whole input and returns the kinds of the emitted tokens.
func (d *driver) kinds() []token.Kind {
	d.run()
	kinds := make([]token.Kind, len(d.tokens))
	for i, tok := range d.tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func (d *driver) run() []token.Token {
	file := source.NewFile("test.py", d.text)
	cur := source.NewCursor(file)

	for steps := 0; ; steps++ {
		require.Less(d.t, steps, 10*len(d.text)+100, "driver does not make progress")

		if d.pos >= len(d.text) && !d.sc.InString() {
			cur.Reset(d.pos)
			if d.wantNewline && d.sc.Scan(cur, token.NewSet(token.Newline)) {
				d.emit(cur)
			}
			for {
				cur.Reset(d.pos)
				if !d.sc.Scan(cur, token.NewSet(token.Dedent)) {
					break
				}
				d.emit(cur)
			}
			return d.tokens
		}

		var valid token.Set
		switch {
		case d.sc.InString():
			valid = token.NewSet(token.StringContent, token.StringEnd)
		case d.depth > 0:
			valid = token.NewSet(token.StringStart,
				token.CloseParen, token.CloseBracket, token.CloseBrace)
		case d.wantNewline:
			valid = token.NewSet(token.Newline, token.StringStart)
		default:
			valid = token.NewSet(token.Indent, token.Dedent, token.StringStart)
		}

		cur.Reset(d.pos)
		if d.sc.Scan(cur, valid) {
			tok := d.emit(cur)

			switch tok.Kind {
			case token.Newline:
				d.wantNewline = false
			case token.StringEnd:
				d.wantNewline = true
			case token.StringContent:
				d.hostAfterContent()
			}
			continue
		}

		require.False(d.t, d.sc.InString(),
			"string does not terminate at offset %d", d.pos)
		if d.pos >= len(d.text) {
			return d.tokens
		}
		d.hostFallback()
	}
}

func (d *driver) emit(cur *source.Cursor) token.Token {
	tok, ok := cur.Token()
	require.True(d.t, ok, "scan succeeded without committing a token")
	d.tokens = append(d.tokens, tok)
	d.pos = tok.End

	// Structural invariants, checked after every token: the indent stack is
	// never empty, starts at 0, and is strictly increasing.
	_, indents := scanner.Stacks(d.sc)
	require.NotEmpty(d.t, indents)
	require.Zero(d.t, indents[0])
	for i := 1; i < len(indents); i++ {
		require.Less(d.t, indents[i-1], indents[i],
			"indent stack is not strictly increasing: %v", indents)
	}
	return tok
}

// hostAfterContent consumes whatever a content token stopped in front of:
// an interpolated expression, a stray closing brace, or an escape sequence.
func (d *driver) hostAfterContent() {
	if d.pos >= len(d.text) {
		return
	}
	switch d.text[d.pos] {
	case '{':
		depth := 0
		for ; d.pos < len(d.text); d.pos++ {
			switch d.text[d.pos] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					d.pos++
					return
				}
			}
		}
	case '}':
		d.pos++
	case '\\':
		_, size := utf8.DecodeRuneInString(d.text[d.pos+1:])
		d.pos += 1 + size
	}
}

// hostFallback consumes trivia or one word when no external token applies.
func (d *driver) hostFallback() {
	switch d.text[d.pos] {
	case ' ', '\t', '\r', '\f':
		for d.pos < len(d.text) && strings.ContainsRune(" \t\r\f", rune(d.text[d.pos])) {
			d.pos++
		}
		// A comment glued to this whitespace is consumed with it, so the
		// next layout scan measures a fresh stretch.
		if d.pos < len(d.text) && d.text[d.pos] == '#' {
			for d.pos < len(d.text) && d.text[d.pos] != '\n' {
				d.pos++
			}
		}
	case '#':
		for d.pos < len(d.text) && d.text[d.pos] != '\n' {
			d.pos++
		}
	case '\n':
		d.pos++
	case '(', '[', '{':
		d.depth++
		d.pos++
		d.wantNewline = true
	case ')', ']', '}':
		if d.depth > 0 {
			d.depth--
		}
		d.pos++
		d.wantNewline = true
	default:
		if isIdent(d.text[d.pos]) {
			for d.pos < len(d.text) && isIdent(d.text[d.pos]) {
				d.pos++
			}
		} else {
			_, size := utf8.DecodeRuneInString(d.text[d.pos:])
			d.pos += size
		}
		d.wantNewline = true
	}
}

func isIdent(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
