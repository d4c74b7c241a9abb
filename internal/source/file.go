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

// Package source implements the Input Cursor: ownership of the input text,
// the current line counter, and the current range of interest (contiguous
// or discontiguous), plus the positional search and range-splitting
// operations the matcher and preprocessor drive it with.
package source

import "strings"

// File owns the input text and the matcher's position within it.
type File struct {
	Name    string
	Content string // canonicalised to '\n' line endings
	LineNo  int    // current line, 1-indexed
	Range   Range  // current range of interest
	Queue   []Range
}

// New loads content, canonicalising CRLF to LF, and returns a File whose
// current range spans the whole text.
func New(name, content string) *File {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return &File{
		Name:    name,
		Content: content,
		LineNo:  1,
		Range:   NewRange(0, len(content)),
	}
}

// Pos is the current cursor position (the start of the current range).
func (f *File) Pos() int { return f.Range.Start }

// AdvanceBy moves the cursor forward by n bytes, updating the line counter
// by the number of newlines consumed. Panics if this would move the start
// past the current end, matching spec.md §4.5's "range.end < range.start
// fatal" rule.
func (f *File) AdvanceBy(n int) {
	if n < 0 {
		panic("source: AdvanceBy called with a negative distance")
	}
	newStart := f.Range.Start + n
	if newStart > f.Range.End {
		panic("source: AdvanceBy moved past the end of the current range")
	}
	f.LineNo += strings.Count(f.Content[f.Range.Start:newStart], "\n")
	f.Range.Start = newStart
}

// MoveTo moves the cursor forward to pos, which must be >= the current
// start.
func (f *File) MoveTo(pos int) {
	if pos < f.Range.Start {
		panic("source: MoveTo called with a position before the current start")
	}
	f.AdvanceBy(pos - f.Range.Start)
}

// Match performs an anchored match at the current range's start, bounded
// by its end.
func (f *File) Match(m Matcher) (Match, bool) {
	spans, ok := m.MatchAt(f.Content, f.Range.Start, f.Range.End)
	if !ok {
		return Match{}, false
	}
	return Match{text: f.Content, spans: spans}, true
}

// Find performs an unanchored search starting at the current range's
// start. When thisLine is true the search is bounded by the next '\n'
// (CHECK-SAME semantics); otherwise it is bounded by the current range's
// end.
func (f *File) Find(m Matcher, thisLine bool) (Match, bool) {
	end := f.Range.End
	if thisLine {
		if nl := strings.IndexByte(f.Content[f.Range.Start:f.Range.End], '\n'); nl >= 0 {
			end = f.Range.Start + nl
		}
	}
	spans, ok := m.Find(f.Content, f.Range.Start, end)
	if !ok {
		return Match{}, false
	}
	return Match{text: f.Content, spans: spans}, true
}

// FindBetween searches r's spans in order (the complement of any holes)
// and returns the first hit, implementing "leftmost match wins" across a
// possibly-discontiguous search region.
func (f *File) FindBetween(m Matcher, r Range) (Match, bool) {
	for _, span := range r.Spans() {
		if spans, ok := m.Find(f.Content, span.Start, span.End); ok {
			return Match{text: f.Content, spans: spans}, true
		}
	}
	return Match{}, false
}

// IsDiscontiguous reports whether the current range carries holes.
func (f *File) IsDiscontiguous() bool { return f.Range.IsDiscontiguous() }

// StartDiscontiguousRegion converts the current (contiguous) range into a
// discontiguous one with identical bounds.
func (f *File) StartDiscontiguousRegion() {
	f.Range = f.Range.StartDiscontiguous()
}

// MatchAndAddHole searches the current (possibly punctured) range for m;
// on success the matched span becomes a new hole and the match is
// returned.
func (f *File) MatchAndAddHole(m Matcher) (Match, bool) {
	match, ok := f.FindBetween(m, f.Range)
	if !ok {
		return Match{}, false
	}
	f.Range = f.Range.AddHole(match.Span())
	return match, true
}

// AdvanceToLastHole collapses the current discontiguous range to the
// contiguous remainder after its last hole, updating the line counter for
// the text skipped over.
func (f *File) AdvanceToLastHole() {
	tail := f.Range.CollapseToTail()
	if tail.Start > f.Range.Start {
		f.LineNo += strings.Count(f.Content[f.Range.Start:tail.Start], "\n")
	}
	f.Range = tail
}

// SkipToEndOfLine moves the cursor to the position of the next '\n' (or to
// end of file if there is none), without consuming it.
func (f *File) SkipToEndOfLine() {
	if nl := strings.IndexByte(f.Content[f.Range.Start:], '\n'); nl >= 0 {
		f.MoveTo(f.Range.Start + nl)
		return
	}
	f.MoveTo(len(f.Content))
}

// IsEndOfLine reports whether the cursor is at a newline or end of file.
func (f *File) IsEndOfLine() bool {
	return f.Range.Start >= len(f.Content) || f.Content[f.Range.Start] == '\n'
}

// IsEndOfFile reports whether only whitespace (including newlines) remains
// in the input from the cursor onward.
func (f *File) IsEndOfFile() bool {
	return strings.TrimSpace(f.Content[f.Range.Start:]) == ""
}

// StartsWith reports whether the text at the cursor starts with s.
func (f *File) StartsWith(s string) bool {
	return strings.HasPrefix(f.Content[f.Range.Start:], s)
}

// StartOfLine returns the offset of the first character of the line
// containing pos.
func (f *File) StartOfLine(pos int) int {
	if idx := strings.LastIndexByte(f.Content[:pos], '\n'); idx >= 0 {
		return idx + 1
	}
	return 0
}

// AdvanceRange pops the next queued range (populated by the preprocessor
// while partitioning labels) and makes it current. It is a no-op if the
// queue is empty, which only happens if a CHECK-LABEL directive exists
// without having been pre-located by the preprocessor - a programmer error
// the preprocessor is responsible for preventing.
func (f *File) AdvanceRange() {
	if len(f.Queue) == 0 {
		return
	}
	f.Range, f.Queue = f.Queue[0], f.Queue[1:]
	// Re-derive the line counter for the new range's start, since label
	// partitioning can jump the cursor forward across untouched text.
	f.LineNo = 1 + strings.Count(f.Content[:f.Range.Start], "\n")
}
