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
	"fmt"

	"github.com/gofilecheck/gocheck/internal/compiler"
	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/source"
	"github.com/gofilecheck/gocheck/internal/uop"
)

// minSuggestionLen is the approximate content length below which the
// prefix-shortening search gives up.
const minSuggestionLen = 5

// SuggestPrefix implements the "possible intended match" heuristic: it
// repeatedly drops the directive's trailing micro-op (halving a trailing
// long literal first) and reports the first shortened prefix that
// successfully matches somewhere in file's current range.
func SuggestPrefix(op ops.CheckOp, vars env.Env, file *source.File, strictWhitespace bool) (string, bool) {
	uops := append([]uop.Op(nil), op.UOps...)

	for approxLen(uops) >= minSuggestionLen {
		shortened := op.WithUOps(uops)
		if compiled, err := compiler.Compile(shortened, vars, strictWhitespace); err == nil {
			if match, ok := file.Find(compiled.Matcher, false); ok {
				return fmt.Sprintf("possible intended match for %s at offset %d", shortened.CheckName(), match.Start(0)), true
			}
		}
		next, ok := shrink(uops)
		if !ok {
			break
		}
		uops = next
	}
	return "", false
}

func approxLen(uops []uop.Op) int {
	n := 0
	for _, u := range uops {
		if lit, ok := u.(uop.Literal); ok {
			n += len(lit.Text)
			continue
		}
		n += 3
	}
	return n
}

// shrink drops the last micro-op, or halves it first if it is a literal
// longer than a single character.
func shrink(uops []uop.Op) ([]uop.Op, bool) {
	if len(uops) == 0 {
		return nil, false
	}
	last := uops[len(uops)-1]
	if lit, ok := last.(uop.Literal); ok && len(lit.Text) > 1 {
		half := len(lit.Text) / 2
		out := append([]uop.Op(nil), uops[:len(uops)-1]...)
		out = append(out, uop.Literal{Text: lit.Text[:half]})
		return out, true
	}
	return uops[:len(uops)-1], true
}
