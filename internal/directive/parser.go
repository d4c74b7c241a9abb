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

// Package directive implements the directive parser: it reads a check
// file line by line, recognises directive lines against the configured
// check and comment prefixes, and lowers each directive's argument into
// the micro-op sequence the compiler consumes.
package directive

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gofilecheck/gocheck/internal/collections"
	"github.com/gofilecheck/gocheck/internal/diagnostic"
	"github.com/gofilecheck/gocheck/internal/ops"
	"github.com/gofilecheck/gocheck/internal/uop"
)

// Options configures how directive lines are recognised.
type Options struct {
	CheckPrefixes    []string
	CommentPrefixes  []string
	StrictWhitespace bool

	// MLIREnabled turns on the \V MLIR variable-reference shorthand inside
	// {{...}} regex fragments, gated behind FILECHECK_FEATURE_ENABLE the
	// same way the upstream tool gates dialect extensions.
	MLIREnabled bool
}

var suffixKinds = map[string]ops.Kind{
	"NEXT":  ops.Next,
	"SAME":  ops.Same,
	"DAG":   ops.Dag,
	"NOT":   ops.Not,
	"EMPTY": ops.Empty,
	"LABEL": ops.Label,
}

// Parse reads every line of r and returns the directive lines found, in
// file order.
func Parse(r io.Reader, opts Options) ([]ops.CheckOp, error) {
	opts.CheckPrefixes = dedupePrefixes(opts.CheckPrefixes)
	opts.CommentPrefixes = dedupePrefixes(opts.CommentPrefixes)

	directiveRe, err := buildDirectiveRegex(opts.CheckPrefixes)
	if err != nil {
		return nil, err
	}

	var out []ops.CheckOp
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()

		commentIdx := firstPrefixIndex(text, opts.CommentPrefixes)
		loc := directiveRe.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		directiveIdx := loc[0]
		if commentIdx >= 0 && commentIdx < directiveIdx {
			continue
		}

		op, err := parseLine(text, loc, line, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading check file: %w", err)
	}
	return out, nil
}

// buildDirectiveRegex builds the directive-recognition pattern. Prefixes
// are sorted longest-first so that a prefix which is itself a prefix of
// another configured prefix never shadows it.
func buildDirectiveRegex(prefixes []string) (*regexp.Regexp, error) {
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("no check prefixes configured")
	}
	sorted := append([]string(nil), prefixes...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	var alt []string
	for _, p := range sorted {
		alt = append(alt, regexp.QuoteMeta(p))
	}
	pattern := `(` + strings.Join(alt, "|") + `)(?:-(DAG|COUNT-[0-9]+|NOT|EMPTY|NEXT|SAME|LABEL))?(\{LITERAL\})?:( ?)(.*)$`
	return regexp.Compile(pattern)
}

// dedupePrefixes drops repeated prefixes while preserving the first
// occurrence's position, so a caller accidentally passing the same prefix
// twice (e.g. "-check-prefix CHECK -check-prefixes CHECK,CHECK") doesn't
// produce a redundant alternation branch or a doubled substring scan.
func dedupePrefixes(prefixes []string) []string {
	seen := collections.SetOf[string]()
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		out = append(out, p)
	}
	return out
}

// firstPrefixIndex returns the earliest byte offset at which any of
// prefixes occurs in text, or -1 if none occur.
func firstPrefixIndex(text string, prefixes []string) int {
	best := -1
	for _, p := range prefixes {
		if idx := strings.Index(text, p); idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best
}

func parseLine(text string, loc []int, lineNo int, opts Options) (ops.CheckOp, error) {
	prefix := text[loc[2]:loc[3]]

	kind := ops.Check
	count := 0
	if loc[4] >= 0 {
		suffix := text[loc[4]:loc[5]]
		if strings.HasPrefix(suffix, "COUNT-") {
			kind = ops.Count
			n, err := strconv.Atoi(strings.TrimPrefix(suffix, "COUNT-"))
			if err != nil {
				return ops.CheckOp{}, &diagnostic.ParseError{Line: lineNo, Column: loc[4], Text: text, Msg: "malformed COUNT suffix"}
			}
			if n == 0 {
				return ops.CheckOp{}, &diagnostic.ParseError{Line: lineNo, Column: loc[4], Text: text, Msg: "CHECK-COUNT-0 is not allowed"}
			}
			count = n
		} else {
			kind = suffixKinds[suffix]
		}
	}

	isLiteral := loc[6] >= 0
	argStart := loc[10]
	arg := text[loc[10]:loc[11]]

	if !opts.StrictWhitespace {
		arg = strings.TrimSpace(arg)
	}
	if arg == "" && kind != ops.Empty {
		return ops.CheckOp{}, &diagnostic.ParseError{Line: lineNo, Column: argStart, Text: text, Msg: "empty directive argument"}
	}

	op := ops.CheckOp{
		Prefix:     prefix,
		Kind:       kind,
		Arg:        arg,
		SourceLine: lineNo,
		IsLiteral:  isLiteral,
		Count:      count,
	}

	if isLiteral {
		op.UOps = []uop.Op{uop.Literal{Text: arg}}
		return op, nil
	}

	uops, err := tokenizeArgument(arg, lineNo, text, opts.MLIREnabled)
	if err != nil {
		// tokenizeArgument reports columns relative to arg; make them
		// relative to the whole line, like the other ParseErrors here.
		if pe, ok := err.(*diagnostic.ParseError); ok {
			pe.Column += argStart + strings.Index(text[argStart:loc[11]], arg)
		}
		return ops.CheckOp{}, err
	}
	op.UOps = uops
	return op, nil
}
