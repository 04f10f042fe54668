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

// Package token defines the vocabulary of context-sensitive tokens that the
// scanner can produce on behalf of a host parser, along with the request sets
// the host uses to say which of them its grammar would currently accept.
package token

import "fmt"

const (
	Unrecognized Kind = iota // Not a token the scanner produces.

	Newline       // End of a logical line.
	Indent        // A block opened at a deeper indentation.
	Dedent        // A block closed by a shallower indentation.
	StringStart   // A string prefix and its opening quote(s).
	StringContent // A run of literal string content.
	StringEnd     // A string's closing quote(s).
	Comment       // A comment; reserved for hosts that surface comment trivia.
	CloseParen    // Grammar position accepts `)`; consulted, never produced.
	CloseBracket  // Grammar position accepts `]`; consulted, never produced.
	CloseBrace    // Grammar position accepts `}`; consulted, never produced.

	total // Must remain last.
)

// Kind identifies what kind of token a particular [Token] is.
//
// The close-bracket kinds exist only so a host can communicate "the grammar
// is currently inside brackets" through a request [Set]; Scan never records
// them as a result.
type Kind byte

// IsClose returns whether this kind is one of the close-bracket kinds.
func (k Kind) IsClose() bool {
	return k == CloseParen || k == CloseBracket || k == CloseBrace
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Newline:
		return "Newline"
	case Indent:
		return "Indent"
	case Dedent:
		return "Dedent"
	case StringStart:
		return "StringStart"
	case StringContent:
		return "StringContent"
	case StringEnd:
		return "StringEnd"
	case Comment:
		return "Comment"
	case CloseParen:
		return "CloseParen"
	case CloseBracket:
		return "CloseBracket"
	case CloseBrace:
		return "CloseBrace"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
