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

import "regexp"

// regexMatcher implements source.Matcher over a compiled *regexp.Regexp.
type regexMatcher struct {
	re *regexp.Regexp
}

// MatchAt reports an anchored match at pos by requiring the leftmost match
// within [pos, end) to start at pos itself.
func (m *regexMatcher) MatchAt(text string, pos, end int) ([][2]int, bool) {
	loc := m.re.FindStringSubmatchIndex(text[pos:end])
	if loc == nil || loc[0] != 0 {
		return nil, false
	}
	return toSpans(loc, pos), true
}

// Find performs an unanchored search within [pos, end).
func (m *regexMatcher) Find(text string, pos, end int) ([][2]int, bool) {
	loc := m.re.FindStringSubmatchIndex(text[pos:end])
	if loc == nil {
		return nil, false
	}
	return toSpans(loc, pos), true
}

// toSpans converts a regexp submatch-index pair list (as returned by
// FindStringSubmatchIndex: [start0,end0, start1,end1, ...], -1 for groups
// that didn't participate) into per-group [2]int spans offset by base.
func toSpans(loc []int, base int) [][2]int {
	spans := make([][2]int, len(loc)/2)
	for i := range spans {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 || e < 0 {
			spans[i] = [2]int{-1, -1}
			continue
		}
		spans[i] = [2]int{s + base, e + base}
	}
	return spans
}
