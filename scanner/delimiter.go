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

import "fmt"

// Quote identifies which quote character delimits a string literal.
//
// Exactly one quote style applies to any open literal; the discriminated
// field, rather than independent bits, is what enforces that.
type Quote byte

const (
	QuoteNone   Quote = iota
	QuoteSingle       // '
	QuoteDouble       // "
	QuoteBack         // `
)

// End returns the character that terminates a literal quoted with q.
//
// Triple-quoting changes how many consecutive occurrences are required, never
// which character.
func (q Quote) End() rune {
	switch q {
	case QuoteSingle:
		return '\''
	case QuoteDouble:
		return '"'
	case QuoteBack:
		return '`'
	default:
		panic(fmt.Sprintf("pyscanner: no end character for %v", q))
	}
}

// String implements [fmt.Stringer].
func (q Quote) String() string {
	switch q {
	case QuoteNone:
		return "QuoteNone"
	case QuoteSingle:
		return "QuoteSingle"
	case QuoteDouble:
		return "QuoteDouble"
	case QuoteBack:
		return "QuoteBack"
	default:
		return fmt.Sprintf("scanner.Quote(%d)", int(q))
	}
}

// quoteFor returns the quote style opened by the given character.
//
// Callers must only pass a character the string-start scanner has already
// matched; anything else is a contract violation.
func quoteFor(r rune) Quote {
	switch r {
	case '\'':
		return QuoteSingle
	case '"':
		return QuoteDouble
	case '`':
		return QuoteBack
	default:
		panic(fmt.Sprintf("pyscanner: unsupported quote character %q", r))
	}
}

// Delimiter describes the quoting style of one open string literal.
//
// It is constructed once by the string-start scanner and immutable
// thereafter.
type Delimiter struct {
	Quote  Quote
	Raw    bool // r-prefixed; backslashes do not introduce escapes.
	Format bool // f-prefixed; braces delimit interpolated expressions.
	Bytes  bool // b-prefixed.
	Triple bool // Opened by three consecutive quote characters.
}

// Delimiter flag bits, as serialized.
const (
	flagSingleQuote byte = 1 << iota
	flagDoubleQuote
	flagBackQuote
	flagRaw
	flagFormat
	flagTriple
	flagBytes
)

// pack encodes the delimiter as a single flag byte for serialization.
func (d Delimiter) pack() byte {
	var b byte
	switch d.Quote {
	case QuoteSingle:
		b = flagSingleQuote
	case QuoteDouble:
		b = flagDoubleQuote
	case QuoteBack:
		b = flagBackQuote
	case QuoteNone:
	}
	if d.Raw {
		b |= flagRaw
	}
	if d.Format {
		b |= flagFormat
	}
	if d.Triple {
		b |= flagTriple
	}
	if d.Bytes {
		b |= flagBytes
	}
	return b
}

// unpackDelimiter inverts [Delimiter.pack].
func unpackDelimiter(b byte) Delimiter {
	d := Delimiter{
		Raw:    b&flagRaw != 0,
		Format: b&flagFormat != 0,
		Triple: b&flagTriple != 0,
		Bytes:  b&flagBytes != 0,
	}
	switch {
	case b&flagSingleQuote != 0:
		d.Quote = QuoteSingle
	case b&flagDoubleQuote != 0:
		d.Quote = QuoteDouble
	case b&flagBackQuote != 0:
		d.Quote = QuoteBack
	}
	return d
}
