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

package source

// Matcher is the minimal capability a compiled directive pattern must
// provide for the cursor to search or anchor-match against input text.
// internal/compiler's regex-backed and literal-backed pattern types both
// implement this structurally; source never imports internal/compiler.
type Matcher interface {
	// MatchAt reports whether the pattern matches starting exactly at pos,
	// bounded by end. On success it returns one span per capture group
	// (group 0 is the whole match).
	MatchAt(text string, pos, end int) (spans [][2]int, ok bool)
	// Find searches for the leftmost match anywhere in [pos, end).
	Find(text string, pos, end int) (spans [][2]int, ok bool)
}

// Match is the result of a successful MatchAt/Find, exposing the matched
// spans the way spec.md's match object does (start(0)/end(0)/group(0), and
// numbered groups for captures).
type Match struct {
	text  string
	spans [][2]int
}

// Start returns the start offset of group g (0 is the whole match).
func (m Match) Start(g int) int { return m.spans[g][0] }

// End returns the end offset of group g (0 is the whole match).
func (m Match) End(g int) int { return m.spans[g][1] }

// Group returns the text matched by group g, or "" if that group did not
// participate in the match.
func (m Match) Group(g int) string {
	if g >= len(m.spans) {
		return ""
	}
	s := m.spans[g]
	if s[0] < 0 || s[1] < 0 {
		return ""
	}
	return m.text[s[0]:s[1]]
}

// Span returns the whole-match span (group 0).
func (m Match) Span() Span { return Span{m.spans[0][0], m.spans[0][1]} }
