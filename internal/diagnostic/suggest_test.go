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

package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/source"
	"github.com/gofilecheck/gocheck/internal/uop"
)

func TestSuggestPrefixFindsShortenedMatch(t *testing.T) {
	op := ops.CheckOp{
		Prefix: "CHECK",
		Kind:   ops.Check,
		Arg:    "helloworld extra-stuff-that-never-appears",
		UOps: []uop.Op{
			uop.Literal{Text: "helloworld extra-stuff-that-never-appears"},
		},
	}
	file := source.New("t", "preface helloworld trailer")
	suggestion, ok := SuggestPrefix(op, env.New(), file, false)
	require.True(t, ok)
	assert.Contains(t, suggestion, "possible intended match")
}

func TestSuggestPrefixNoneFound(t *testing.T) {
	op := ops.CheckOp{
		Prefix: "CHECK",
		Kind:   ops.Check,
		Arg:    "zzz",
		UOps:   []uop.Op{uop.Literal{Text: "zzz"}},
	}
	file := source.New("t", "nothing in common here")
	_, ok := SuggestPrefix(op, env.New(), file, false)
	assert.False(t, ok)
}

func TestShrinkHalvesLongLiteral(t *testing.T) {
	uops := []uop.Op{uop.Literal{Text: "abcdefgh"}}
	shrunk, ok := shrink(uops)
	require.True(t, ok)
	require.Len(t, shrunk, 1)
	assert.Equal(t, "abcd", shrunk[0].(uop.Literal).Text)
}

func TestShrinkDropsLastOp(t *testing.T) {
	uops := []uop.Op{uop.Literal{Text: "a"}, uop.Regex{Pattern: "b"}}
	shrunk, ok := shrink(uops)
	require.True(t, ok)
	assert.Len(t, shrunk, 1)
}

func TestShrinkEmptyFails(t *testing.T) {
	_, ok := shrink(nil)
	assert.False(t, ok)
}
