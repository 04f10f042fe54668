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

package source

import (
	"unicode/utf8"

	"github.com/treelang/pyscanner/token"
)

// Cursor is the scanner-facing handle over a [File]'s text.
//
// A scan proceeds by peeking the lookahead rune and advancing past it, either
// as part of the token being built or as an insignificant skip. The committed
// token's span runs from the position after the last skip up to wherever
// [Cursor.MarkEnd] last marked; runes advanced past but never marked are
// lookahead only and will be rescanned by the next call. A token whose end
// was marked before its start is normalized to a zero-width token at the
// marked end: this is how the layout tokens anchor themselves before the
// whitespace that produced them, so that a later scan can measure the same
// stretch again.
type Cursor struct {
	file *File

	start int // Position after the last insignificant skip.
	pos   int // Lookahead position.
	end   int // Last marked token end.

	result    token.Kind
	hasResult bool
}

// NewCursor constructs a cursor over file, positioned at its start.
func NewCursor(file *File) *Cursor {
	return &Cursor{file: file}
}

// NewCursorAt constructs a cursor over file positioned at the given byte
// offset.
func NewCursorAt(file *File, offset int) *Cursor {
	c := NewCursor(file)
	c.Reset(offset)
	return c
}

// File returns the file this cursor reads from.
func (c *Cursor) File() *File {
	return c.file
}

// Pos returns the cursor's lookahead byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Done returns whether the lookahead position is at end-of-input.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.file.Text())
}

// Peek returns the lookahead rune without advancing.
//
// Returns -1 at end-of-input.
func (c *Cursor) Peek() rune {
	if c.Done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(c.file.Text()[c.pos:])
	return r
}

// Advance consumes the lookahead rune.
//
// If skip is true, everything consumed so far is discarded from the token
// being built; skipped runes can never be part of any committed token. A
// skip does not disturb an already-marked end.
func (c *Cursor) Advance(skip bool) {
	if c.Done() {
		return
	}

	_, size := utf8.DecodeRuneInString(c.file.Text()[c.pos:])
	c.pos += size
	if skip {
		c.start = c.pos
	}
}

// MarkEnd marks the current lookahead position as the token's end.
//
// May be called multiple times; the last call before returning wins.
func (c *Cursor) MarkEnd() {
	c.end = c.pos
}

// SetResult records the kind of the token being committed.
func (c *Cursor) SetResult(kind token.Kind) {
	c.result = kind
	c.hasResult = true
}

// Token extracts the committed token, if any.
func (c *Cursor) Token() (token.Token, bool) {
	if !c.hasResult {
		return token.Token{}, false
	}

	start := min(c.start, c.end)
	return token.Token{
		Kind:  c.result,
		Start: start,
		End:   c.end,
		Text:  c.file.Text()[start:c.end],
	}, true
}

// Reset rewinds the cursor to the given byte offset and clears any committed
// result, readying it for the next scan.
func (c *Cursor) Reset(offset int) {
	c.start = offset
	c.pos = offset
	c.end = offset
	c.result = token.Unrecognized
	c.hasResult = false
}
