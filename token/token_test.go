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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/treelang/pyscanner/token"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Newline", token.Newline.String())
	assert.Equal(t, "StringContent", token.StringContent.String())
	assert.Equal(t, "token.Kind(200)", token.Kind(200).String())
}

func TestKindIsClose(t *testing.T) {
	t.Parallel()

	assert.True(t, token.CloseParen.IsClose())
	assert.True(t, token.CloseBracket.IsClose())
	assert.True(t, token.CloseBrace.IsClose())
	assert.False(t, token.Newline.IsClose())
	assert.False(t, token.StringStart.IsClose())
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := token.NewSet(token.Newline, token.Indent)
	assert.True(t, s.Has(token.Newline))
	assert.True(t, s.Has(token.Indent))
	assert.False(t, s.Has(token.Dedent))

	s = s.With(token.Dedent).Without(token.Newline)
	assert.True(t, s.Has(token.Dedent))
	assert.False(t, s.Has(token.Newline))

	assert.True(t, s.HasAny(token.Newline, token.Indent))
	assert.False(t, s.HasAny(token.StringStart, token.StringEnd))

	assert.Zero(t, token.NewSet())
}

func TestSetInsideBrackets(t *testing.T) {
	t.Parallel()

	assert.False(t, token.NewSet(token.Newline, token.StringStart).InsideBrackets())
	assert.True(t, token.NewSet(token.StringStart, token.CloseParen).InsideBrackets())
	assert.True(t, token.NewSet(token.CloseBrace).InsideBrackets())
}

func TestSetString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{}", token.NewSet().String())
	assert.Equal(t, "{Newline, Indent}",
		token.NewSet(token.Indent, token.Newline).String())
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Newline[3:3]",
		token.Token{Kind: token.Newline, Start: 3, End: 3}.String())
	assert.Equal(t, `StringContent[1:3]("ab")`,
		token.Token{Kind: token.StringContent, Start: 1, End: 3, Text: "ab"}.String())

	assert.True(t, token.Token{}.IsZero())
	assert.False(t, token.Token{Kind: token.Newline}.IsZero())
}
