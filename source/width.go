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
	"strings"

	"github.com/rivo/uniseg"
)

// TabWidth is the width of a tab character.
//
// Tabs count as a flat TabWidth columns rather than aligning to the next tab
// stop. The indentation rules measure tabs the same way, so columns reported
// here line up with the scanner's indentation arithmetic.
const TabWidth = 8

// Width measures the display width of text if placed at the given column.
//
// Widths of non-tab characters are measured per grapheme cluster, so
// combining marks and East Asian wide characters count as a terminal would
// render them.
func Width(column int, text string) int {
	// We can't just use StringWidth, because that does not know about tabs.
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		chunk := text
		if haveTab {
			chunk, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(chunk)
		if haveTab {
			column += TabWidth
		}
	}
	return column
}
