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

	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/uop"
)

func TestCompileLiteralFastPath(t *testing.T) {
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{uop.Literal{Text: "foo   bar"}},
	}
	compiled, err := Compile(op, env.New(), false)
	require.NoError(t, err)

	_, isLiteral := compiled.Matcher.(*literalMatcher)
	assert.True(t, isLiteral)

	spans, ok := compiled.Matcher.MatchAt("foo  bar baz", 0, 12)
	require.True(t, ok)
	assert.Equal(t, 0, spans[0][0])
}

func TestCompileRegexWithCapture(t *testing.T) {
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{
			uop.Literal{Text: "reg "},
			uop.Capture{Name: "REG", Pattern: `[0-9]+`, ValueMapper: uop.StrMapper},
		},
	}
	compiled, err := Compile(op, env.New(), false)
	require.NoError(t, err)
	require.Len(t, compiled.Captures, 1)

	spans, ok := compiled.Matcher.Find("reg 42", 0, 6)
	require.True(t, ok)
	cap := compiled.Captures["REG"]
	assert.Equal(t, "42", "reg 42"[spans[cap.Group][0]:spans[cap.Group][1]])
}

func TestCompileSubstBackreference(t *testing.T) {
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{
			uop.Capture{Name: "X", Pattern: `[a-z]+`, ValueMapper: uop.StrMapper},
			uop.Literal{Text: " == "},
			uop.Subst{Name: "X"},
		},
	}
	compiled, err := Compile(op, env.New(), false)
	require.NoError(t, err)

	_, ok := compiled.Matcher.Find("abc == abc", 0, len("abc == abc"))
	assert.True(t, ok)
	_, ok = compiled.Matcher.Find("abc == xyz", 0, len("abc == xyz"))
	assert.False(t, ok)
}

func TestCompileSubstOfBoundVariable(t *testing.T) {
	vars := env.New()
	vars.Set("X", env.Str("hello"))
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{uop.Subst{Name: "X"}},
	}
	compiled, err := Compile(op, vars, false)
	require.NoError(t, err)
	_, isLiteral := compiled.Matcher.(*literalMatcher)
	assert.True(t, isLiteral)
}

func TestCompileSubstOfUnboundVariableErrors(t *testing.T) {
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{uop.Regex{Pattern: "a|b"}, uop.Subst{Name: "UNDEF"}},
	}
	_, err := Compile(op, env.New(), false)
	assert.Error(t, err)
}

func TestCompilePseudoVar(t *testing.T) {
	op := ops.CheckOp{
		Kind:       ops.Check,
		SourceLine: 10,
		UOps:       []uop.Op{uop.PseudoVar{Offset: 2}},
	}
	compiled, err := Compile(op, env.New(), false)
	require.NoError(t, err)
	_, ok := compiled.Matcher.Find("12", 0, 2)
	assert.True(t, ok)
}

func TestCompileNumSubst(t *testing.T) {
	vars := env.New()
	vars.Set("REG", env.Int(5))
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{uop.NumSubst{Name: "REG", Expr: "REG+1"}},
	}
	compiled, err := Compile(op, vars, false)
	require.NoError(t, err)
	_, ok := compiled.Matcher.Find("6", 0, 1)
	assert.True(t, ok)
}

func TestCompileEmpty(t *testing.T) {
	op := ops.CheckOp{Kind: ops.Empty}
	compiled, err := Compile(op, env.New(), false)
	require.NoError(t, err)
	_, ok := compiled.Matcher.MatchAt("rest of line\n\nmore", 0, len("rest of line\n\nmore"))
	assert.True(t, ok)
}

func TestCompileAlternationWrapped(t *testing.T) {
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{
			uop.Regex{Pattern: "foo|bar"},
			uop.Literal{Text: "!"},
		},
	}
	compiled, err := Compile(op, env.New(), false)
	require.NoError(t, err)
	_, ok := compiled.Matcher.Find("bar!", 0, 4)
	assert.True(t, ok)
}

func TestCompileStrictWhitespaceDisablesRunCollapsing(t *testing.T) {
	op := ops.CheckOp{
		Kind: ops.Check,
		UOps: []uop.Op{uop.Literal{Text: "a  b"}},
	}

	loose, err := Compile(op, env.New(), false)
	require.NoError(t, err)
	_, ok := loose.Matcher.Find("a b", 0, len("a b"))
	assert.True(t, ok, "non-strict mode should collapse the whitespace run")
	_, ok = loose.Matcher.Find("a   b", 0, len("a   b"))
	assert.True(t, ok)

	strict, err := Compile(op, env.New(), true)
	require.NoError(t, err)
	_, ok = strict.Matcher.Find("a b", 0, len("a b"))
	assert.False(t, ok, "strict-whitespace mode must not match a different amount of whitespace")
	_, ok = strict.Matcher.Find("a  b", 0, len("a  b"))
	assert.True(t, ok, "strict-whitespace mode must still match the exact whitespace given")
}

func TestHasTopLevelAlternation(t *testing.T) {
	assert.True(t, hasTopLevelAlternation("a|b"))
	assert.False(t, hasTopLevelAlternation("(a|b)"))
}

func TestCountGroups(t *testing.T) {
	assert.Equal(t, 1, countGroups("(a)"))
	assert.Equal(t, 0, countGroups("(?:a)"))
	assert.Equal(t, 2, countGroups("(a)(b)"))
}
