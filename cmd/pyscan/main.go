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

// pyscan dumps the external-token stream the scanner produces for each input
// file, driving it with a minimal stand-in for a Python-like host grammar.
// It exists for debugging the scanner, not for parsing programs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"

	"github.com/treelang/pyscanner/scanner"
	"github.com/treelang/pyscanner/source"
	"github.com/treelang/pyscanner/token"
)

var showHost = flag.Bool("host", false, "also print spans consumed by the stand-in host")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: pyscan [-host] file.py...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Files are independent sessions, so scan them concurrently, but keep
	// the fan-out bounded and the output in argument order.
	var (
		sem     = semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
		wg      sync.WaitGroup
		ctx     = context.Background()
		outputs = make([]string, len(paths))
		errs    = make([]error, len(paths))
	)
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				errs[i] = err
				return
			}
			defer sem.Release(1)

			text, err := os.ReadFile(path)
			if err != nil {
				errs[i] = err
				return
			}
			outputs[i] = dump(source.NewFile(path, string(text)))
		}()
	}
	wg.Wait()

	failed := false
	for i, path := range paths {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "pyscan: %v\n", errs[i])
			failed = true
			continue
		}
		if len(paths) > 1 {
			fmt.Printf("== %s\n", path)
		}
		fmt.Print(outputs[i])
	}
	if failed {
		os.Exit(1)
	}
}

// dump runs the scanner over file under the stand-in host and renders one
// token per line.
//
// The stand-in mimics the shape of a Python-like host: after each statement
// it asks for a logical newline, then offers indent/dedent decisions, and it
// consumes whitespace, comments, interpolated expressions and escape
// sequences itself, the way a grammar's own rules would.
func dump(file *source.File) string {
	var (
		sc  = scanner.New()
		cur = source.NewCursor(file)
		out strings.Builder

		text  = file.Text()
		pos   int
		depth int // Open bracket depth, tracked from host-consumed runes.

		// Whether the host is at a point where a statement could end.
		wantNewline bool
	)

	host := func(end int) {
		if *showHost && end > pos {
			fmt.Fprintf(&out, "host[%d:%d](%q)\n", pos, end, text[pos:end])
		}
		pos = end
	}

	emit := func() token.Token {
		tok, _ := cur.Token()
		fmt.Fprintf(&out, "%v\n", tok)
		pos = tok.End
		return tok
	}

	for {
		if pos >= len(text) && !sc.InString() {
			// End-of-input: one final logical newline, then drain the
			// remaining open blocks.
			cur.Reset(pos)
			if wantNewline && sc.Scan(cur, token.NewSet(token.Newline)) {
				emit()
			}
			for {
				cur.Reset(pos)
				if !sc.Scan(cur, token.NewSet(token.Dedent)) {
					break
				}
				emit()
			}
			return out.String()
		}

		var valid token.Set
		switch {
		case sc.InString():
			valid = token.NewSet(token.StringContent, token.StringEnd)
		case depth > 0:
			valid = token.NewSet(token.StringStart,
				token.CloseParen, token.CloseBracket, token.CloseBrace)
		case wantNewline:
			valid = token.NewSet(token.Newline, token.StringStart)
		default:
			valid = token.NewSet(token.Indent, token.Dedent, token.StringStart)
		}

		cur.Reset(pos)
		if sc.Scan(cur, valid) {
			tok := emit()

			switch tok.Kind {
			case token.Newline:
				wantNewline = false

			case token.StringContent:
				// A content token stops just before whatever the grammar
				// itself must consume: an interpolation, a stray closing
				// brace, or an escape sequence.
				if pos < len(text) {
					switch text[pos] {
					case '{':
						host(skipInterpolation(text, pos))
					case '}':
						host(pos + 1)
					case '\\':
						_, size := utf8.DecodeRuneInString(text[pos+1:])
						host(pos + 1 + size)
					}
				}

			case token.StringEnd:
				wantNewline = true
			}
			continue
		}

		if sc.InString() {
			// Content scan declined: an unterminated or malformed string.
			fmt.Fprintf(&out, "error: string does not terminate at offset %d\n", pos)
			return out.String()
		}
		if pos >= len(text) {
			return out.String()
		}

		// No external token applies here. Consume trivia or one word, the
		// way the host grammar's own lexer would, then ask again.
		switch text[pos] {
		case ' ', '\t', '\r', '\f':
			end := pos
			for end < len(text) && strings.ContainsRune(" \t\r\f", rune(text[end])) {
				end++
			}
			// A comment glued to this whitespace is consumed with it, so
			// the next layout scan measures a fresh stretch.
			if end < len(text) && text[end] == '#' {
				for end < len(text) && text[end] != '\n' {
					end++
				}
			}
			host(end)
		case '#':
			end := pos
			for end < len(text) && text[end] != '\n' {
				end++
			}
			host(end)
		case '\n':
			host(pos + 1)
		default:
			host(nextWord(text, pos, &depth))
			wantNewline = true
		}
	}
}

// skipInterpolation consumes a braced interpolated expression, including its
// closing brace.
func skipInterpolation(text string, pos int) int {
	depth := 0
	for ; pos < len(text); pos++ {
		switch text[pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return pos + 1
			}
		}
	}
	return pos
}

// nextWord consumes a run of identifier characters, or a single rune of
// punctuation, updating the bracket depth.
func nextWord(text string, pos int, depth *int) int {
	isIdent := func(b byte) bool {
		return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
	}

	if isIdent(text[pos]) {
		end := pos
		for end < len(text) && isIdent(text[end]) {
			end++
		}
		return end
	}

	switch text[pos] {
	case '(', '[', '{':
		*depth++
	case ')', ']', '}':
		if *depth > 0 {
			*depth--
		}
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return pos + size
}
