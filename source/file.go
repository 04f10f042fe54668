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

// Package source provides the input-side plumbing for the scanner: immutable
// source files with location lookup, and the cursor the scanner consumes
// input through.
package source

import (
	"slices"
	"strings"
	"sync"
)

// File is a source file being scanned.
//
// It contains additional book-keeping information for resolving locations.
// Files are immutable once created.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is
	// possible to recover which line that offset is on by performing a binary
	// search on this list.
	//
	// Alternatively, this slice can be interpreted as the index after each \n
	// in the original file.
	lineIndex []int
}

// Location is a line/column position within a [File].
//
// Line is 1-indexed. Column is a 1-indexed display column, measured with
// [Width].
type Location struct {
	Offset int
	Line   int
	Column int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; it is carried for the host's
// diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// LineByOffset searches this file's line index to find the line number (1-indexed)
// for the line containing the given byte offset.
//
// This operation is O(log n).
func (f *File) LineByOffset(offset int) (number int) {
	lines := f.lines()

	// Find the largest index in lines such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	return line + 1
}

// Location builds full location information for the given byte offset.
//
// This operation is O(log n) in the number of lines plus O(n) in the length
// of the offset's line.
func (f *File) Location(offset int) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	line := f.LineByOffset(offset)
	start, _ := f.LineOffsets(line)
	return Location{
		Offset: offset,
		Line:   line,
		Column: Width(0, f.Text()[start:offset]) + 1,
	}
}

// Line returns the given line, including its trailing newline.
//
// line is expected to be 1-indexed.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return f.text[start:end]
}

// LineOffsets returns the offsets for the given line, including its trailing
// newline.
//
// line is expected to be 1-indexed.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], len(f.Text())
	}
	return lines[line-1], lines[line]
}

func (f *File) lines() []int {
	if f == nil {
		return nil
	}

	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.Text()
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
