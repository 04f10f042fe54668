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

// Package scanner implements the context-sensitive half of a Python-style
// tokenizer: indentation-driven block structure and the internal structure of
// string literals, neither of which a context-free grammar can express.
//
// A host parser calls [Scanner.Scan] at each position where its grammar
// would accept one of the external token kinds, passing the set of kinds that
// are currently valid. The scanner either commits exactly one token through
// the cursor and returns true, or declines and returns false, deferring to
// the grammar's own rules. Declining is not an error.
//
// The scanner carries state between calls: a stack of open string delimiters
// and a stack of open block indentation widths. Hosts that backtrack or
// re-scan after an edit must snapshot that state with [Scanner.Serialize]
// and restore it with [Scanner.Deserialize]; the stacks are exactly as
// mutable as the host's checkpoint discipline assumes.
package scanner

import (
	"github.com/treelang/pyscanner/source"
	"github.com/treelang/pyscanner/token"
)

// Scanner scans the context-sensitive tokens of one parse session.
//
// A Scanner is single-threaded: the host invokes it strictly call-by-call on
// its own goroutine, and every call runs to completion before returning.
type Scanner struct {
	state state
}

// New constructs a scanner in the initial state: no open strings, indent
// stack containing only the top level.
func New() *Scanner {
	return &Scanner{state: newState()}
}

// Scan attempts to produce one token at the cursor's position.
//
// valid enumerates the kinds the host's grammar would currently accept. On
// success the token is committed through the cursor and Scan returns true.
// On failure nothing observable was consumed and the host falls back to its
// own grammar rules.
func (s *Scanner) Scan(c *source.Cursor, valid token.Set) bool {
	// A grammar position cannot accept both string content and an indent
	// decision; the host requests both only while replaying speculatively in
	// error recovery. Scanning string content then would corrupt the
	// incremental progress of an earlier call, so the content phase is
	// skipped entirely.
	recovery := valid.Has(token.StringContent) && valid.Has(token.Indent)

	if valid.Has(token.StringContent) && !recovery && len(s.state.delims) > 0 {
		if done, ok := s.scanContent(c); done {
			return ok
		}
		// End-of-input inside the string; fall through to the layout phase.
	}

	c.MarkEnd()
	return s.scanLayout(c, valid, recovery)
}

// InString returns whether the scanner is currently inside at least one open
// string literal.
//
// Hosts use this to decide whether to request string-body kinds on the next
// scan.
func (s *Scanner) InString() bool {
	return len(s.state.delims) > 0
}

// Depth returns the number of open string literals.
func (s *Scanner) Depth() int {
	return len(s.state.delims)
}

// SerializeTo writes an opaque snapshot of the scanner's state into buf,
// returning the number of bytes written. If buf is too small the snapshot is
// silently truncated.
func (s *Scanner) SerializeTo(buf []byte) int {
	return s.state.serializeTo(buf)
}

// Serialize returns an opaque snapshot of the scanner's state.
//
// Snapshots round-trip: restoring one always reproduces the state it was
// taken from, for any state the scanner itself can reach within the
// serialization caps.
func (s *Scanner) Serialize() []byte {
	return s.state.serialize()
}

// Deserialize restores a snapshot previously produced by [Scanner.Serialize].
//
// An empty (or nil) snapshot restores the initial state.
func (s *Scanner) Deserialize(buf []byte) {
	s.state.deserialize(buf)
}
