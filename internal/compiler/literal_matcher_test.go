// Copyright 2026 The GoCheck Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralMatcherFind(t *testing.T) {
	m := newLiteralMatcher("foo bar", false, false)
	text := "xxx foo    bar yyy"
	spans, ok := m.Find(text, 0, len(text))
	require.True(t, ok)
	assert.Equal(t, "foo    bar", text[spans[0][0]:spans[0][1]])
}

func TestLiteralMatcherMatchAtRequiresExactStart(t *testing.T) {
	m := newLiteralMatcher("foo", false, false)
	text := "xfoo"
	_, ok := m.MatchAt(text, 0, len(text))
	assert.False(t, ok)

	_, ok = m.MatchAt(text, 1, len(text))
	assert.True(t, ok)
}

func TestLiteralMatcherNextRestrictsToFollowingLine(t *testing.T) {
	m := newLiteralMatcher("bar", true, false)
	text := "foo\nbar\nbaz"
	spans, ok := m.Find(text, 0, len(text))
	require.True(t, ok)
	assert.Equal(t, "bar", text[spans[0][0]:spans[0][1]])

	_, ok = m.Find("foo", 0, 3)
	assert.False(t, ok)
}

func TestLiteralMatcherMissingWhitespaceFails(t *testing.T) {
	m := newLiteralMatcher("foo bar", false, false)
	_, ok := m.Find("foobar", 0, 6)
	assert.False(t, ok)
}

func TestLiteralMatcherStrictRequiresExactWhitespace(t *testing.T) {
	m := newLiteralMatcher("foo  bar", false, true)

	_, ok := m.Find("foo  bar", 0, len("foo  bar"))
	assert.True(t, ok)

	_, ok = m.Find("foo bar", 0, len("foo bar"))
	assert.False(t, ok, "strict mode must not treat the pattern's whitespace run as flexible")

	_, ok = m.Find("foo   bar", 0, len("foo   bar"))
	assert.False(t, ok)
}

func TestLiteralMatcherStrictMatchAtExactSubstring(t *testing.T) {
	m := newLiteralMatcher("foo", false, true)
	text := "xfoo"
	_, ok := m.MatchAt(text, 0, len(text))
	assert.False(t, ok)

	spans, ok := m.MatchAt(text, 1, len(text))
	require.True(t, ok)
	assert.Equal(t, "foo", text[spans[0][0]:spans[0][1]])
}
