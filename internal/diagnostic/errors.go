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

// Package diagnostic defines the three structured error kinds the matcher
// pipeline can fail with, plus the diagnostic formatting (source context,
// colorized output, and the "possible intended match" heuristic) used to
// report them.
package diagnostic

import (
	"fmt"

	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/source"
)

// ParseError is a malformed directive: empty argument, invalid
// substitution form, CHECK-COUNT-0, or an unterminated bracket/brace.
// It is always fatal and carries enough to point at the offending text.
type ParseError struct {
	Line   int // 1-indexed line number in the check file
	Column int // 0-indexed byte offset into Text
	Text   string
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s\n%s", e.Line, e.Column+1, e.Msg, e.Text)
}

// CheckError is a directive that could not match, or a semantic violation:
// undefined variable reference, an empty capture under --reject-empty-vars,
// a CHECK-LABEL that wasn't found, or a match-full-lines violation. A
// label is not checked for being unique in the input; its first match is
// used.
type CheckError struct {
	Op         ops.CheckOp
	Msg        string
	Suggestion string // set by SuggestPrefix, empty if no plausible near-match was found
}

func (e *CheckError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("%s: %s: %s", e.Op.Line(), e.Msg, e.Op.Arg)
	}
	return fmt.Sprintf("%s: %s: %s\nnote: %s", e.Op.Line(), e.Msg, e.Op.Arg, e.Suggestion)
}

// ErrorOnMatch is a CHECK-NOT directive whose pattern was found within its
// enforced region.
type ErrorOnMatch struct {
	Op    ops.CheckOp
	Match source.Span
}

func (e *ErrorOnMatch) Error() string {
	return fmt.Sprintf("%s: not expected to match, but matched at [%d,%d)", e.Op.Line(), e.Match.Start, e.Match.End)
}
