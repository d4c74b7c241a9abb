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

// Tests live in an external test package so they can drive source.File
// with a real compiler.Compiled matcher without creating an import cycle
// (internal/compiler imports internal/source).
package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofilecheck/gocheck/internal/compiler"
	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/source"
	"github.com/gofilecheck/gocheck/internal/uop"
)

func literalCompiled(t *testing.T, text string) *compiler.Compiled {
	t.Helper()
	op := ops.CheckOp{Kind: ops.Check, UOps: []uop.Op{uop.Literal{Text: text}}}
	c, err := compiler.Compile(op, env.New(), false)
	require.NoError(t, err)
	return c
}

func TestFileFindAndMoveTo(t *testing.T) {
	f := source.New("t", "line one\nline two\nline three\n")
	c := literalCompiled(t, "two")
	match, ok := f.Find(c.Matcher, false)
	require.True(t, ok)
	f.MoveTo(match.End(0))
	assert.Equal(t, 2, f.LineNo)
}

func TestFileMatchAnchored(t *testing.T) {
	f := source.New("t", "foo bar")
	c := literalCompiled(t, "foo")
	_, ok := f.Match(c.Matcher)
	assert.True(t, ok)

	f2 := source.New("t", "xfoo bar")
	_, ok = f2.Match(c.Matcher)
	assert.False(t, ok)
}

func TestFileDiscontiguousHoles(t *testing.T) {
	f := source.New("t", "aaa bbb ccc")
	f.StartDiscontiguousRegion()
	assert.True(t, f.IsDiscontiguous())

	bMatcher := literalCompiled(t, "bbb").Matcher
	_, ok := f.MatchAndAddHole(bMatcher)
	require.True(t, ok)

	aMatcher := literalCompiled(t, "aaa").Matcher
	_, ok = f.MatchAndAddHole(aMatcher)
	require.True(t, ok)

	f.AdvanceToLastHole()
	assert.False(t, f.IsDiscontiguous())
	assert.Equal(t, f.Range.Start, len("aaa bbb"))
}

func TestFileAdvanceByPanicsOnOvershoot(t *testing.T) {
	f := source.New("t", "abc")
	assert.Panics(t, func() { f.AdvanceBy(10) })
}

func TestFileAdvanceByPanicsOnNegative(t *testing.T) {
	f := source.New("t", "abc")
	assert.Panics(t, func() { f.AdvanceBy(-1) })
}

func TestFileSkipToEndOfLine(t *testing.T) {
	f := source.New("t", "abc\ndef")
	f.SkipToEndOfLine()
	assert.True(t, f.IsEndOfLine())
	assert.Equal(t, 3, f.Pos())
}

func TestFileIsEndOfFile(t *testing.T) {
	f := source.New("t", "   \n  ")
	assert.True(t, f.IsEndOfFile())

	f2 := source.New("t", "x")
	assert.False(t, f2.IsEndOfFile())
}

func TestFileCRLFCanonicalised(t *testing.T) {
	f := source.New("t", "a\r\nb\r\n")
	assert.Equal(t, "a\nb\n", f.Content)
}

func TestFileAdvanceRange(t *testing.T) {
	f := source.New("t", "one\ntwo\nthree\n")
	f.Queue = []source.Range{source.NewRange(4, 8)}
	f.AdvanceRange()
	assert.Equal(t, source.NewRange(4, 8), f.Range)
	assert.Equal(t, 2, f.LineNo)
	assert.Empty(t, f.Queue)
}
