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

import "strings"

// literalMatcher implements source.Matcher for directives whose micro-ops
// are exclusively literal text and already-bound substitutions (the
// "literal fast-path" from the pattern compiler), avoiding a regex
// compilation entirely. In default mode, whitespace runs in the pattern
// are treated as "one or more whitespace characters", mirroring the regex
// path's whitespace-run handling; under --strict-whitespace the pattern is
// instead matched as a plain, exact substring.
type literalMatcher struct {
	parts    []string // pattern split on whitespace runs (non-strict mode)
	strict   string   // exact pattern text (strict-whitespace mode)
	isStrict bool
	isNext   bool // restrict the search to the line after pos
}

func newLiteralMatcher(pattern string, isNext, strictWhitespace bool) *literalMatcher {
	if strictWhitespace {
		return &literalMatcher{strict: pattern, isStrict: true, isNext: isNext}
	}
	return &literalMatcher{parts: strings.Fields(pattern), isNext: isNext}
}

// MatchAt anchors the pattern at pos exactly.
func (m *literalMatcher) MatchAt(text string, pos, end int) ([][2]int, bool) {
	pos, end, ok := m.bounds(text, pos, end)
	if !ok {
		return nil, false
	}
	if m.isStrict {
		if !strings.HasPrefix(text[pos:end], m.strict) {
			return nil, false
		}
		return [][2]int{{pos, pos + len(m.strict)}}, true
	}
	if len(m.parts) == 0 {
		return [][2]int{{pos, pos}}, true
	}
	if !strings.HasPrefix(text[pos:end], m.parts[0]) {
		return nil, false
	}
	return m.consumeFrom(text, pos+len(m.parts[0]), end, pos)
}

// Find searches for the pattern anywhere in [pos, end). In non-strict mode
// it searches for the first whitespace-delimited part, then requires the
// remaining parts to follow in order separated by whitespace runs; in
// strict mode it does a plain substring search for the whole pattern.
func (m *literalMatcher) Find(text string, pos, end int) ([][2]int, bool) {
	pos, end, ok := m.bounds(text, pos, end)
	if !ok {
		return nil, false
	}
	if m.isStrict {
		idx := strings.Index(text[pos:end], m.strict)
		if idx < 0 {
			return nil, false
		}
		start := pos + idx
		return [][2]int{{start, start + len(m.strict)}}, true
	}
	if len(m.parts) == 0 {
		return [][2]int{{pos, pos}}, true
	}
	idx := strings.Index(text[pos:end], m.parts[0])
	if idx < 0 {
		return nil, false
	}
	start := pos + idx
	return m.consumeFrom(text, start+len(m.parts[0]), end, start)
}

// consumeFrom requires every remaining part to appear in order, separated
// by a positive run of whitespace, starting the scan at cursor.
func (m *literalMatcher) consumeFrom(text string, cursor, end, start int) ([][2]int, bool) {
	for _, part := range m.parts[1:] {
		wsStart := cursor
		for cursor < end && isSpace(text[cursor]) {
			cursor++
		}
		if cursor == wsStart {
			return nil, false
		}
		if !strings.HasPrefix(text[cursor:end], part) {
			return nil, false
		}
		cursor += len(part)
	}
	return [][2]int{{start, cursor}}, true
}

// bounds applies the NEXT restriction: skip past exactly one '\n' from pos,
// then bound the search by the following '\n'.
func (m *literalMatcher) bounds(text string, pos, end int) (int, int, bool) {
	if !m.isNext {
		return pos, end, true
	}
	nl := strings.IndexByte(text[pos:end], '\n')
	if nl < 0 {
		return 0, 0, false
	}
	newPos := pos + nl + 1
	newEnd := end
	if nl2 := strings.IndexByte(text[newPos:end], '\n'); nl2 >= 0 {
		newEnd = newPos + nl2
	}
	return newPos, newEnd, true
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' }
