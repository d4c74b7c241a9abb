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

// Package preprocess implements label partitioning: before matching
// begins, every CHECK-LABEL directive is located up front and used to
// split the input into label-bounded sub-ranges, so the matcher never has
// to special-case label search inline.
package preprocess

import (
	"fmt"

	"github.com/gofilecheck/gocheck/internal/compiler"
	"github.com/gofilecheck/gocheck/internal/diagnostic"
	"github.com/gofilecheck/gocheck/internal/env"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/source"
)

// Partition locates every LABEL directive in order and splits the
// remaining search range at each match. The ranges before each label
// match, followed by the range after the last one, become file's ranges:
// the first (the text before the first label) is made current and the
// rest are queued, so each CHECK-LABEL advances the matcher into the range
// that follows its label. Non-label directives are untouched; they are
// matched later against whichever range is current when the matcher
// reaches them.
func Partition(file *source.File, directives []ops.CheckOp, strictWhitespace bool) error {
	current := file.Range
	var queue []source.Range

	for _, op := range directives {
		if op.Kind != ops.Label {
			continue
		}
		compiled, err := compiler.Compile(op, env.New(), strictWhitespace)
		if err != nil {
			return fmt.Errorf("%s: %w", op.CheckName(), err)
		}
		match, ok := file.FindBetween(compiled.Matcher, current)
		if !ok {
			return &diagnostic.CheckError{Op: op, Msg: "label not found"}
		}
		before, after := current.SplitAt(match.Span())
		queue = append(queue, before)
		current = after
	}

	queue = append(queue, current)
	file.Range = queue[0]
	file.Queue = queue[1:]
	return nil
}
