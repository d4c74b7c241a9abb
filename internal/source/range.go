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

import "sort"

// Span is a half-open interval [Start, End) over the input text.
type Span struct {
	Start, End int
}

// Range is an Input Range: a half-open interval, optionally punctured by an
// ordered, non-overlapping list of Holes representing already-matched
// CHECK-DAG subregions. A nil Holes slice means the range is contiguous; a
// non-nil (possibly empty) slice means it is a Discontiguous Range, even
// when there are zero holes yet.
type Range struct {
	Start, End int
	Holes      []Span
}

// NewRange returns a contiguous range [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// IsDiscontiguous reports whether this range carries a (possibly empty)
// hole list.
func (r Range) IsDiscontiguous() bool {
	return r.Holes != nil
}

// Spans returns the ordered sub-intervals of [Start, End) that are not
// covered by any hole. For a contiguous range this is exactly
// [{Start, End}]. Invariant 2 from spec.md §8: the union of Spans() plus
// the union of Holes equals [Start, End).
func (r Range) Spans() []Span {
	if !r.IsDiscontiguous() {
		return []Span{{r.Start, r.End}}
	}
	var out []Span
	cursor := r.Start
	for _, h := range r.Holes {
		if h.Start > cursor {
			out = append(out, Span{cursor, h.Start})
		}
		cursor = h.End
	}
	if cursor < r.End {
		out = append(out, Span{cursor, r.End})
	}
	return out
}

// StartDiscontiguous returns a copy of r converted to a discontiguous range
// with identical bounds and no holes. Panics if r is already discontiguous,
// mirroring the precondition in spec.md §4.5 ("current range is
// contiguous").
func (r Range) StartDiscontiguous() Range {
	if r.IsDiscontiguous() {
		panic("source: StartDiscontiguous called on an already-discontiguous range")
	}
	r.Holes = []Span{}
	return r
}

// AddHole inserts span into the hole list, merging with any hole it
// overlaps or touches so the invariant (sorted, non-overlapping) holds.
// Precondition: r.IsDiscontiguous() and span is within [r.Start, r.End).
func (r Range) AddHole(span Span) Range {
	holes := append([]Span(nil), r.Holes...)
	holes = append(holes, span)
	sort.Slice(holes, func(i, j int) bool { return holes[i].Start < holes[j].Start })

	merged := holes[:0]
	for _, h := range holes {
		if n := len(merged); n > 0 && h.Start <= merged[n-1].End {
			if h.End > merged[n-1].End {
				merged[n-1].End = h.End
			}
			continue
		}
		merged = append(merged, h)
	}
	r.Holes = merged
	return r
}

// StartOfFirstHole returns the start of the first (leftmost) hole and true,
// or (0, false) if r is contiguous or has no holes yet.
func (r Range) StartOfFirstHole() (int, bool) {
	if !r.IsDiscontiguous() || len(r.Holes) == 0 {
		return 0, false
	}
	return r.Holes[0].Start, true
}

// EndOfLastHole returns the end of the last hole and true, or (0, false) if
// r is contiguous or has no holes yet.
func (r Range) EndOfLastHole() (int, bool) {
	if !r.IsDiscontiguous() || len(r.Holes) == 0 {
		return 0, false
	}
	return r.Holes[len(r.Holes)-1].End, true
}

// CollapseToTail returns the contiguous range [end-of-last-hole, End). If r
// has no holes, it collapses to [Start, End) unchanged.
func (r Range) CollapseToTail() Range {
	start := r.Start
	if end, ok := r.EndOfLastHole(); ok {
		start = end
	}
	return NewRange(start, r.End)
}

// SplitAt splits r at match (a span fully within r) into the portion before
// the match (appended to a cursor's range queue by the preprocessor) and
// the remaining portion starting at match's end, which becomes the new
// current range.
func (r Range) SplitAt(match Span) (before, after Range) {
	return NewRange(r.Start, match.Start), NewRange(match.End, r.End)
}
