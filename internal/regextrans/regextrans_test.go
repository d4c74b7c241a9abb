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

package regextrans

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGoRegexPosixClasses(t *testing.T) {
	got, err := ToGoRegex(`[[:digit:]]+`)
	require.NoError(t, err)
	assert.Equal(t, `[0-9]+`, got)
}

func TestToGoRegexUnknownClass(t *testing.T) {
	_, err := ToGoRegex(`[[:bogus:]]`)
	assert.Error(t, err)
}

func TestRewriteNegatedNewlines(t *testing.T) {
	got := rewriteNegatedNewlines(`[^a]`)
	assert.Equal(t, `[^\na]`, got)

	already := rewriteNegatedNewlines(`[^\na]`)
	assert.Equal(t, `[^\na]`, already)
}

func TestToGoRegexCompiles(t *testing.T) {
	translated, err := ToGoRegex(`[[:alpha:]][^x]*`)
	require.NoError(t, err)
	re, err := regexp.Compile(translated)
	require.NoError(t, err)
	assert.True(t, re.MatchString("Hello"))
}

func TestMLIRExtension(t *testing.T) {
	got := MLIRExtension(`\V = foo`)
	assert.Contains(t, got, `%(`)
	_, err := regexp.Compile(got)
	assert.NoError(t, err)
}

func TestPatternFromNumSubstSpec(t *testing.T) {
	cases := []struct {
		digits   string
		encoding NumEncoding
		pattern  string
		input    string
		want     int
	}{
		{"", Unsigned, `\d+`, "42", 42},
		{"", Signed, `[+-]?\d+`, "-7", -7},
		{"", LowerHex, `[a-f0-9]+`, "1a", 26},
		{"", UpperHex, `[A-F0-9]+`, "1A", 26},
		{"2", Unsigned, `\d{2}`, "07", 7},
	}
	for _, c := range cases {
		pattern, toInt := PatternFromNumSubstSpec(c.digits, c.encoding)
		assert.Equal(t, c.pattern, pattern)
		got, err := toInt(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}
