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

// Package ops defines CheckOp, the concrete representation of one parsed
// directive (e.g. `CHECK-NEXT: foo`), and its Kind enumeration.
package ops

import (
	"fmt"

	"github.com/gofilecheck/gocheck/internal/uop"
)

// Kind identifies a directive's positional semantics.
type Kind string

const (
	Check Kind = "CHECK"
	Next  Kind = "NEXT"
	Same  Kind = "SAME"
	Dag   Kind = "DAG"
	Not   Kind = "NOT"
	Empty Kind = "EMPTY"
	Label Kind = "LABEL"
	Count Kind = "COUNT"
)

// CheckOp is one parsed directive line.
type CheckOp struct {
	Prefix     string // the recognised check-prefix string, e.g. "CHECK"
	Kind       Kind
	Arg        string // raw argument text, for diagnostics
	SourceLine int    // 1-indexed line number in the check file
	UOps       []uop.Op
	IsLiteral  bool // argument taken as a single literal, bypassing substitution syntax

	// Count is only meaningful when Kind == Count; it is the N in
	// CHECK-COUNT-N (N >= 1).
	Count int
}

// CheckName is the label used in diagnostics, e.g. "CHECK-NEXT".
func (op CheckOp) CheckName() string {
	suffix := ""
	if op.IsLiteral {
		suffix = "{LITERAL}"
	}
	switch op.Kind {
	case Check:
		return op.Prefix + suffix
	case Count:
		return fmt.Sprintf("%s-COUNT-%d%s", op.Prefix, op.Count, suffix)
	default:
		return fmt.Sprintf("%s-%s%s", op.Prefix, op.Kind, suffix)
	}
}

// Line renders the directive the way it originally appeared, for
// diagnostics.
func (op CheckOp) Line() string {
	return fmt.Sprintf("%s: %s", op.CheckName(), op.Arg)
}

// WithUOps returns a copy of op with its UOps replaced, used by the
// prefix-shortening diagnostic heuristic to try progressively shorter
// micro-op lists without mutating the original directive.
func (op CheckOp) WithUOps(uops []uop.Op) CheckOp {
	op.UOps = uops
	return op
}
