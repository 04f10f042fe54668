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
	"fmt"
	"slices"
)

// maxSerializedDelimiters caps how many open delimiters a snapshot records.
// Practical string nesting rarely exceeds single digits.
const maxSerializedDelimiters = 255

// state is the carried-over scanner state: the stack of open string
// delimiters and the stack of open block indentation widths.
//
// The indent stack is strictly increasing bottom-to-top and its base entry is
// always 0, the top level. Only the layout scanner mutates it.
type state struct {
	delims  []Delimiter
	indents []uint16
}

func newState() state {
	return state{indents: []uint16{0}}
}

// reset restores the canonical initial state.
func (s *state) reset() {
	s.delims = s.delims[:0]
	s.indents = append(s.indents[:0], 0)
}

// serializeTo writes a snapshot of the state into buf and returns the number
// of bytes written.
//
// The format is one delimiter-count byte, that many delimiter flag bytes,
// then the indent stack minus its base entry, each width truncated to one
// byte. Widths above 255 columns alias; realistic indentation never
// approaches that. If buf runs out of capacity the snapshot is silently
// truncated.
func (s *state) serializeTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	count := min(len(s.delims), maxSerializedDelimiters)
	buf[0] = byte(count)
	n := 1

	for _, d := range s.delims[:count] {
		if n >= len(buf) {
			return n
		}
		buf[n] = d.pack()
		n++
	}

	for _, col := range s.indents[1:] {
		if n >= len(buf) {
			return n
		}
		buf[n] = byte(col)
		n++
	}

	return n
}

// serialize returns a snapshot in a fresh, exactly-sized buffer.
func (s *state) serialize() []byte {
	size := 1 + min(len(s.delims), maxSerializedDelimiters) + len(s.indents) - 1
	buf := make([]byte, size)
	return buf[:s.serializeTo(buf)]
}

// deserialize restores the state recorded in buf.
//
// An empty buf restores the canonical initial state. Buffers this package
// produced always round-trip; deserializing is idempotent.
func (s *state) deserialize(buf []byte) {
	s.reset()
	if len(buf) == 0 {
		return
	}

	count := int(buf[0])
	n := 1
	for ; count > 0 && n < len(buf); count-- {
		s.delims = append(s.delims, unpackDelimiter(buf[n]))
		n++
	}
	for ; n < len(buf); n++ {
		s.indents = append(s.indents, uint16(buf[n]))
	}
}

// Equal reports whether two states record the same stacks.
func (s state) Equal(t state) bool {
	return slices.Equal(s.delims, t.delims) && slices.Equal(s.indents, t.indents)
}

// String implements [fmt.Stringer].
func (s state) String() string {
	return fmt.Sprintf("state{delims: %v, indents: %v}", s.delims, s.indents)
}
